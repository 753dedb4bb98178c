// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// FixedParams holds the non-parametric inputs shared by every model a builder
// produces
type FixedParams struct {
	Dims        SecDims   `json:"dims"`        // cross-section dimensions
	NumFloors   int       `json:"numfloors"`   // number of floors
	FloorHeight float64   `json:"floorheight"` // height of each floor [m]
	Intensity   float64   `json:"intensity"`   // distributed load intensity on top floor [tonf/m2]
	Mat         *Material `json:"mat"`         // shared material
}

// SetDefault sets default values: 2 floors of 3m, 1 tonf/m2 gravity load and
// C210 concrete
func (o *FixedParams) SetDefault() {
	o.Dims.SetDefault()
	o.NumFloors = 2
	o.FloorHeight = 3.0
	o.Intensity = 1.0
	o.Mat = ConcreteC210()
}

// ModelBuilder orchestrates the construction of structural models, invoking
// the geometry, sections, loads and analysis-configuration builders in
// dependency order and assembling the result
type ModelBuilder struct {
	Fixed  FixedParams // non-parametric inputs
	DirOut string      // output directory for persisted models; "" disables persistence
}

// NewModelBuilder returns a builder with default fixed parameters. Models are
// persisted to dirout on creation unless dirout is empty
func NewModelBuilder(dirout string) *ModelBuilder {
	o := &ModelBuilder{DirOut: dirout}
	o.Fixed.SetDefault()
	return o
}

// Model builds one structural model from the parametric inputs. kinds may be
// nil to enable the default {static, modal} set. Any builder failure is
// returned as ConfigurationError without persisting a partial model
func (o *ModelBuilder) Model(aspectRatio, width float64, nx, ny int, kinds []string, overrides Overrides) (*Model, error) {

	if kinds == nil {
		kinds = []string{KindStatic, KindModal}
	}

	par := Parameters{
		AspectRatio: aspectRatio,
		B:           width,
		Nx:          nx,
		Ny:          ny,
		NumFloors:   o.Fixed.NumFloors,
		FloorHeight: o.Fixed.FloorHeight,
	}

	// build components in dependency order. loads depend on geometry; the
	// other builders are independent
	geo, err := NewGeometry(aspectRatio, width, nx, ny, o.Fixed.NumFloors, o.Fixed.FloorHeight)
	if err != nil {
		return nil, err
	}
	sec, err := NewSections(o.Fixed.Dims, o.Fixed.Mat)
	if err != nil {
		return nil, err
	}
	lds, err := NewLoads(geo, o.Fixed.Intensity)
	if err != nil {
		return nil, err
	}
	cfg, err := NewConfig(kinds, overrides)
	if err != nil {
		return nil, err
	}

	m := NewModel(par, o.Fixed.Mat, geo, sec, lds, cfg)
	if o.DirOut != "" {
		if err := m.Save(o.DirOut); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// convenience variants fixing the enabled analyses to common subsets ////////

// StaticOnly builds a model with static analysis only
func (o *ModelBuilder) StaticOnly(aspectRatio, width float64, nx, ny int) (*Model, error) {
	return o.Model(aspectRatio, width, nx, ny, []string{KindStatic}, nil)
}

// ModalOnly builds a model with modal analysis only
func (o *ModelBuilder) ModalOnly(aspectRatio, width float64, nx, ny int) (*Model, error) {
	return o.Model(aspectRatio, width, nx, ny, []string{KindModal}, nil)
}

// StaticDynamic builds a model with static and dynamic analyses
func (o *ModelBuilder) StaticDynamic(aspectRatio, width float64, nx, ny int) (*Model, error) {
	return o.Model(aspectRatio, width, nx, ny, []string{KindStatic, KindDynamic}, nil)
}

// Complete builds a model with all three analyses enabled
func (o *ModelBuilder) Complete(aspectRatio, width float64, nx, ny int) (*Model, error) {
	return o.Model(aspectRatio, width, nx, ny, []string{KindStatic, KindModal, KindDynamic}, nil)
}

// ModelSpec holds the inputs of one model in a batch
type ModelSpec struct {
	AspectRatio float64   // footprint length-to-width ratio
	Width       float64   // footprint width [m]
	Nx, Ny      int       // grid counts
	Kinds       []string  // enabled analyses; nil => default set
	Overrides   Overrides // per-kind parameter overrides
}

// Models builds one model per spec, stopping at the first failure
func (o *ModelBuilder) Models(specs []ModelSpec) ([]*Model, error) {
	res := make([]*Model, 0, len(specs))
	for _, s := range specs {
		m, err := o.Model(s.AspectRatio, s.Width, s.Nx, s.Ny, s.Kinds, s.Overrides)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}
