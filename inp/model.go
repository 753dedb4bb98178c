// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
)

// NamePrefix is the fixed project prefix of generated model names
var NamePrefix = "F01"

// ModelName returns the deterministic encoded name of a model; e.g.
// aspectRatio=1.5, B=10, nx=12, ny=24 => "F01_15_10_1224"
func ModelName(aspectRatio, width float64, nx, ny int) string {
	return io.Sf("%s_%02d_%02d_%04d", NamePrefix, int(aspectRatio*10), int(width), nx*100+ny)
}

// Model aggregates the geometry, sections, loads and analysis configuration
// of one structural model under a generated name. It is the unit of
// persistence and is immutable after construction
type Model struct {
	Name string          `json:"name"`     // generated name encoding the parametric inputs
	Par  Parameters      `json:"par"`      // the parametric inputs
	Mat  *Material       `json:"mat"`      // shared material
	Geo  *Geometry       `json:"geo"`      // nodes and elements
	Sec  *Sections       `json:"sec"`      // sections and transformations
	Lds  *Loads          `json:"lds"`      // nodal loads
	Cfg  *AnalysisConfig `json:"cfg"`      // analysis configuration
	Path string          `json:"-"`        // file this model was saved to or read from; not persisted
}

// NewModel assembles a structural model from already-built components and
// generates its name from the parametric inputs
func NewModel(par Parameters, mat *Material, geo *Geometry, sec *Sections, lds *Loads, cfg *AnalysisConfig) *Model {
	return &Model{
		Name: ModelName(par.AspectRatio, par.B, par.Nx, par.Ny),
		Par:  par,
		Mat:  mat,
		Geo:  geo,
		Sec:  sec,
		Lds:  lds,
		Cfg:  cfg,
	}
}

// Check verifies the internal consistency of the aggregate
func (o *Model) Check() error {
	if o.Name == "" {
		return confErr("model name cannot be empty")
	}
	if o.Mat == nil || o.Geo == nil || o.Sec == nil || o.Lds == nil || o.Cfg == nil {
		return confErr("model %q is incomplete", o.Name)
	}
	if err := o.Mat.Check(); err != nil {
		return err
	}
	if err := o.Geo.Check(); err != nil {
		return err
	}
	return nil
}

// Marshal returns the persisted (.json) form of the model. The output is
// stable: marshalling an unchanged model twice yields identical bytes
func (o *Model) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, persErr("cannot marshal model %q: %v", o.Name, err)
	}
	return b, nil
}

// Save writes the model to <dirout>/<name>.json, creating the directory if
// needed, and records the written path in o.Path
func (o *Model) Save(dirout string) error {
	b, err := o.Marshal()
	if err != nil {
		return err
	}
	if dirout != "" {
		if err := os.MkdirAll(dirout, 0777); err != nil {
			return persErr("cannot create directory %q: %v", dirout, err)
		}
	}
	fn := filepath.Join(dirout, o.Name+".json")
	if err := os.WriteFile(fn, b, 0666); err != nil {
		return persErr("cannot write model file %q: %v", fn, err)
	}
	o.Path = fn
	return nil
}

// Unmarshal reconstructs a model from its persisted form, satisfying the
// round-trip law: Marshal(Unmarshal(Marshal(m))) == Marshal(m)
func Unmarshal(b []byte) (*Model, error) {
	o := new(Model)
	if err := json.Unmarshal(b, o); err != nil {
		return nil, persErr("cannot unmarshal model data: %v", err)
	}
	if err := o.Check(); err != nil {
		return nil, persErr("persisted model is inconsistent: %v", err)
	}
	return o, nil
}

// ReadModel reads a persisted model from a (.json) file
func ReadModel(path string) (*Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, persErr("cannot read model file %q: %v", path, err)
	}
	o, err := Unmarshal(b)
	if err != nil {
		return nil, err
	}
	o.Path = path
	return o, nil
}

// Summary returns a short formatted description of the model
func (o *Model) Summary() string {
	return io.Sf("%s: %v, %d nodes, %d elements, %d loaded nodes, analyses=%v",
		o.Name, &o.Par, len(o.Geo.Nodes), len(o.Geo.Elements), len(o.Lds.Loads), o.Cfg.Enabled)
}
