// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/structeng/parframe/inp"
)

// space dimensions and dofs per node of realized models
const (
	Ndm = 3 // 3D
	Ndf = 6 // {ux, uy, uz, rx, ry, rz}
)

// allFixed restrains all six dofs (fully clamped base nodes)
var allFixed = []int{1, 1, 1, 1, 1, 1}

// Realize defines a structural model inside the external solver. It wipes the
// solver's global state first, then defines nodes, sections and
// transformations, elements, boundary conditions and loads, in this order.
// Base nodes (floor 0) are fully fixed. Any solver rejection is returned as
// SolverPreparationError
func Realize(sv Solver, m *inp.Model) error {

	// the solver state is process-wide; start from scratch
	sv.Wipe()
	if err := sv.Begin(Ndm, Ndf); err != nil {
		return prepErr("solver rejected model %q: %v", m.Name, err)
	}

	// nodes
	for tag := 1; tag <= len(m.Geo.Nodes); tag++ {
		n, ok := m.Geo.Nodes[tag]
		if !ok {
			return prepErr("model %q has no node tagged %d", m.Name, tag)
		}
		if err := sv.Node(n.Tag, n.C[0], n.C[1], n.C[2]); err != nil {
			return prepErr("solver rejected node %d of model %q: %v", n.Tag, m.Name, err)
		}
	}

	// sections and transformations
	mat := m.Mat
	for _, tag := range []int{inp.SecTagSlab, inp.SecTagColumn, inp.SecTagBeam} {
		sec, ok := m.Sec.Sections[tag]
		if !ok {
			return prepErr("model %q has no section tagged %d", m.Name, tag)
		}
		var err error
		switch sec.Type {
		case "ElasticMembranePlateSection":
			err = sv.ShellSection(sec.Tag, mat.E, mat.Nu, sec.Thick, mat.Rho)
		case "Elastic":
			err = sv.FrameSection(sec.Tag, mat.E, sec.A(), sec.Iz(), sec.Iy(), mat.G(), sec.J())
		default:
			return prepErr("model %q uses unknown section type %q", m.Name, sec.Type)
		}
		if err != nil {
			return prepErr("solver rejected section %d of model %q: %v", sec.Tag, m.Name, err)
		}
	}
	for _, tag := range []int{inp.TransfTagColumn, inp.TransfTagBeam} {
		tr, ok := m.Sec.Transfs[tag]
		if !ok {
			return prepErr("model %q has no transformation tagged %d", m.Name, tag)
		}
		if err := sv.Transf(tr.Tag, tr.Vecxz); err != nil {
			return prepErr("solver rejected transformation %d of model %q: %v", tr.Tag, m.Name, err)
		}
	}

	// elements
	for tag := 1; tag <= len(m.Geo.Elements); tag++ {
		e, ok := m.Geo.Elements[tag]
		if !ok {
			return prepErr("model %q has no element tagged %d", m.Name, tag)
		}
		var err error
		switch e.Type {
		case inp.ElemSlab:
			err = sv.Shell(e.Tag, e.Verts, e.Sec)
		case inp.ElemColumn, inp.ElemBeamX, inp.ElemBeamY:
			sec, ok := m.Sec.Sections[e.Sec]
			if !ok {
				return prepErr("element %d of model %q refers to inexistent section %d", e.Tag, m.Name, e.Sec)
			}
			err = sv.Frame(e.Tag, e.Verts, e.Sec, sec.Transf)
		default:
			return prepErr("model %q has element %d of unknown type %q", m.Name, e.Tag, e.Type)
		}
		if err != nil {
			return prepErr("solver rejected element %d of model %q: %v", e.Tag, m.Name, err)
		}
	}

	// boundary conditions: base nodes fully fixed
	for _, n := range m.Geo.FloorNodes(0) {
		if err := sv.Fix(n.Tag, allFixed); err != nil {
			return prepErr("solver rejected support at node %d of model %q: %v", n.Tag, m.Name, err)
		}
	}

	// loads
	for tag := 1; tag <= len(m.Geo.Nodes); tag++ {
		for _, l := range m.Lds.Loads[tag] {
			if err := sv.NodalLoad(l.Node, l.F); err != nil {
				return prepErr("solver rejected load at node %d of model %q: %v", l.Node, m.Name, err)
			}
		}
	}
	return nil
}
