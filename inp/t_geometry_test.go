// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_geom01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("geom01. grid generation and counts")

	geo, err := NewGeometry(1.5, 10.0, 4, 4, 2, 3.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", geo)

	// nodes: (nx+1)*(ny+1)*(nfloors+1)
	chk.IntAssert(len(geo.Nodes), 5*5*3)
	chk.Float64(tst, "L", 1e-15, geo.L, 15.0)
	chk.Float64(tst, "B", 1e-15, geo.B, 10.0)

	// elements: slabs + columns + beams
	nslabs := 4 * 4 * 2
	ncols := 5 * 5 * 2
	nbeams := (5*4 + 4*5) * 2
	chk.IntAssert(len(geo.Elements), nslabs+ncols+nbeams)
	chk.IntAssert(len(geo.ElementsByType(ElemSlab, -1)), nslabs)
	chk.IntAssert(len(geo.ElementsByType(ElemColumn, -1)), ncols)
	chk.IntAssert(len(geo.ElementsByType(ElemBeamX, -1))+len(geo.ElementsByType(ElemBeamY, -1)), nbeams)

	// no dangling elements
	if err := geo.Check(); err != nil {
		tst.Errorf("geometry check failed:\n%v", err)
		return
	}

	// first node at origin, last node at (L, B, H)
	n1 := geo.Nodes[1]
	chk.Array(tst, "node 1", 1e-15, n1.C, []float64{0, 0, 0})
	chk.IntAssert(n1.Floor, 0)
	nlast := geo.Nodes[len(geo.Nodes)]
	chk.Array(tst, "last node", 1e-15, nlast.C, []float64{15, 10, 6})
	chk.IntAssert(nlast.Floor, 2)
}

func Test_geom02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("geom02. column and slab connectivity")

	geo, err := NewGeometry(1.0, 8.0, 4, 2, 1, 3.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// first slab joins the four corners of the first cell of floor 1
	npf := 5 * 3
	slabs := geo.ElementsByType(ElemSlab, 1)
	chk.Ints(tst, "slab 1 verts", slabs[0].Verts, []int{npf + 1, npf + 2, npf + 7, npf + 6})

	// first column joins node 1 to the same grid point one floor up
	cols := geo.ElementsByType(ElemColumn, 0)
	chk.Ints(tst, "column 1 verts", cols[0].Verts, []int{1, 1 + npf})

	// beams stay within one floor
	for _, e := range geo.ElementsByType(ElemBeamX, 1) {
		a, b := geo.Nodes[e.Verts[0]], geo.Nodes[e.Verts[1]]
		chk.IntAssert(a.Floor, b.Floor)
		chk.IntAssert(b.I, a.I+1)
	}
	for _, e := range geo.ElementsByType(ElemBeamY, 1) {
		a, b := geo.Nodes[e.Verts[0]], geo.Nodes[e.Verts[1]]
		chk.IntAssert(a.Floor, b.Floor)
		chk.IntAssert(b.J, a.J+1)
	}

	// floor and boundary queries
	chk.IntAssert(len(geo.FloorNodes(1)), npf)
	chk.IntAssert(len(geo.BoundaryNodes(1)), 12)
}

func Test_geom03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("geom03. invalid inputs")

	for _, bad := range []struct {
		ratio, width float64
		nx, ny, nf   int
		height       float64
	}{
		{0, 10, 4, 4, 2, 3},     // zero ratio
		{1.5, -1, 4, 4, 2, 3},   // negative width
		{1.5, 10, 2, 4, 2, 3},   // nx too small
		{1.5, 10, 4, 1, 2, 3},   // ny too small
		{1.5, 10, 4, 4, 0, 3},   // no floors
		{1.5, 10, 4, 4, 2, 0},   // zero floor height
	} {
		geo, err := NewGeometry(bad.ratio, bad.width, bad.nx, bad.ny, bad.nf, bad.height)
		if err == nil {
			tst.Errorf("geometry %v should have failed\n", bad)
			return
		}
		var cerr *ConfigurationError
		if !errors.As(err, &cerr) {
			tst.Errorf("error should be ConfigurationError. %v is incorrect\n", err)
			return
		}
		if geo != nil {
			tst.Errorf("no partial geometry must be constructed on failure\n")
			return
		}
	}
}
