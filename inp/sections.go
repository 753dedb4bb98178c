// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/utl"

// fixed section and transformation tags. one section exists per element kind
const (
	SecTagSlab      = 1 // ElasticMembranePlateSection for slab panels
	SecTagColumn    = 2 // Elastic frame section for columns
	SecTagBeam      = 3 // Elastic frame section for beams
	TransfTagColumn = 4 // geometric transformation for columns
	TransfTagBeam   = 5 // geometric transformation for beams
)

// Section holds one structural cross-section. Frame sections (column, beam)
// carry W x H dimensions and a transformation tag; shell sections (slab)
// carry a thickness
type Section struct {
	Tag    int     `json:"tag"`              // identifier
	Type   string  `json:"type"`             // solver section type; e.g. "Elastic", "ElasticMembranePlateSection"
	Elem   string  `json:"elem"`             // element kind this section serves: slab, column or beam
	Mat    string  `json:"mat"`              // name of material
	W      float64 `json:"w,omitempty"`      // width [m] (frame sections)
	H      float64 `json:"h,omitempty"`      // height [m] (frame sections)
	Thick  float64 `json:"thick,omitempty"`  // thickness [m] (shell sections)
	Transf int     `json:"transf,omitempty"` // tag of geometric transformation (frame sections)
}

// A returns the cross-sectional area of a frame section
func (o *Section) A() float64 {
	return o.W * o.H
}

// Iz returns the second moment of area about the local z axis
func (o *Section) Iz() float64 {
	return o.W * o.H * o.H * o.H / 12.0
}

// Iy returns the second moment of area about the local y axis
func (o *Section) Iy() float64 {
	return o.H * o.W * o.W * o.W / 12.0
}

// J returns the torsional constant using the rectangular approximation
func (o *Section) J() float64 {
	a := utl.Max(o.W, o.H)
	b := utl.Min(o.W, o.H)
	return a * b * b * b * (1.0/3.0 - 0.21*(b/a)*(1.0-(b*b*b*b)/(12.0*a*a*a*a)))
}

// Transf holds one geometric transformation encoding the local axis
// orientation needed to place frame elements in 3D
type Transf struct {
	Tag   int       `json:"tag"`   // identifier
	Type  string    `json:"type"`  // transformation type; e.g. "Linear"
	Vecxz []float64 `json:"vecxz"` // [3] local x-z plane reference vector
}

// Sections holds all cross-sections and geometric transformations of a model
type Sections struct {
	Sections map[int]*Section `json:"sections"` // tag => section
	Transfs  map[int]*Transf  `json:"transfs"`  // tag => transformation
}

// SecDims holds the fixed cross-section dimensions
type SecDims struct {
	ColW      float64 `json:"colw"`      // column width [m]
	ColH      float64 `json:"colh"`      // column height [m]
	BeamW     float64 `json:"beamw"`     // beam width [m]
	BeamH     float64 `json:"beamh"`     // beam height [m]
	SlabThick float64 `json:"slabthick"` // slab thickness [m]
}

// SetDefault sets default dimensions: 0.40x0.40 columns, 0.25x0.40 beams and
// 0.10 slabs
func (o *SecDims) SetDefault() {
	o.ColW = 0.40
	o.ColH = 0.40
	o.BeamW = 0.25
	o.BeamH = 0.40
	o.SlabThick = 0.10
}

// Check validates the dimensions
func (o *SecDims) Check() error {
	if o.ColW <= 0 || o.ColH <= 0 {
		return confErr("column dimensions must be positive. %gx%g is invalid", o.ColW, o.ColH)
	}
	if o.BeamW <= 0 || o.BeamH <= 0 {
		return confErr("beam dimensions must be positive. %gx%g is invalid", o.BeamW, o.BeamH)
	}
	if o.SlabThick <= 0 {
		return confErr("slab thickness must be positive. %g is invalid", o.SlabThick)
	}
	return nil
}

// NewSections builds one section per element kind (slab, column, beam) with
// the given dimensions and shared material, plus one geometric transformation
// per frame section kind: columns use {0,1,0} as x-z reference vector and
// beams use {0,0,1}. It returns ConfigurationError on non-positive dimensions
func NewSections(dims SecDims, mat *Material) (*Sections, error) {
	if err := dims.Check(); err != nil {
		return nil, err
	}
	if err := mat.Check(); err != nil {
		return nil, err
	}
	o := &Sections{
		Sections: map[int]*Section{
			SecTagSlab:   {Tag: SecTagSlab, Type: "ElasticMembranePlateSection", Elem: "slab", Mat: mat.Name, Thick: dims.SlabThick},
			SecTagColumn: {Tag: SecTagColumn, Type: "Elastic", Elem: "column", Mat: mat.Name, W: dims.ColW, H: dims.ColH, Transf: TransfTagColumn},
			SecTagBeam:   {Tag: SecTagBeam, Type: "Elastic", Elem: "beam", Mat: mat.Name, W: dims.BeamW, H: dims.BeamH, Transf: TransfTagBeam},
		},
		Transfs: map[int]*Transf{
			TransfTagColumn: {Tag: TransfTagColumn, Type: "Linear", Vecxz: []float64{0, 1, 0}},
			TransfTagBeam:   {Tag: TransfTagBeam, Type: "Linear", Vecxz: []float64{0, 0, 1}},
		},
	}
	return o, nil
}

// ByElem returns the section serving a given element type
//  Note: returns nil if not found
func (o *Sections) ByElem(etype string) *Section {
	kind := etype
	if etype == ElemBeamX || etype == ElemBeamY {
		kind = "beam"
	}
	for _, sec := range o.Sections {
		if sec.Elem == kind {
			return sec
		}
	}
	return nil
}
