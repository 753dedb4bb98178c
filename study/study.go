// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package study orchestrates parametric studies: it enumerates the cartesian
// parameter grid of a sweep definition, builds one model per combination and
// analyzes the batch sequentially through one engine
package study

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/structeng/parframe/fem"
	"github.com/structeng/parframe/inp"
	"gopkg.in/yaml.v3"
)

// analysis bundle names usable in a sweep distribution
const (
	BundleStatic   = "static"   // static analysis only
	BundleModal    = "modal"    // modal analysis only
	BundleDynamic  = "dynamic"  // dynamic analysis only
	BundleComplete = "complete" // all three analyses
)

// bundleKinds maps bundle names to enabled analysis kinds
var bundleKinds = map[string][]string{
	BundleStatic:   {inp.KindStatic},
	BundleModal:    {inp.KindModal},
	BundleDynamic:  {inp.KindDynamic},
	BundleComplete: {inp.KindStatic, inp.KindModal, inp.KindDynamic},
}

// Study holds the definition of one parametric sweep
type Study struct {
	Ratios       []float64          `yaml:"ratios"`       // aspect ratios L/B to sweep
	Widths       []float64          `yaml:"widths"`       // footprint widths [m] to sweep
	Nxs          []int              `yaml:"nxs"`          // x grid counts to sweep
	Nys          []int              `yaml:"nys"`          // y grid counts to sweep
	Distribution map[string]float64 `yaml:"distribution"` // fraction of combinations per analysis bundle; remainder runs complete
	DirOut       string             `yaml:"dirout"`       // directory for persisted models; "" disables persistence
}

// Check validates the sweep definition
func (o *Study) Check() error {
	if len(o.Ratios) == 0 || len(o.Widths) == 0 || len(o.Nxs) == 0 || len(o.Nys) == 0 {
		return &inp.ConfigurationError{Msg: "study needs at least one value per parameter list"}
	}
	sum := 0.0
	for name, frac := range o.Distribution {
		if _, ok := bundleKinds[name]; !ok {
			return &inp.ConfigurationError{Msg: io.Sf("unknown analysis bundle %q in distribution", name)}
		}
		if frac < 0 || frac > 1 {
			return &inp.ConfigurationError{Msg: io.Sf("distribution fraction of %q must be within [0, 1]. %g is invalid", name, frac)}
		}
		sum += frac
	}
	if sum > 1.0+1e-12 {
		return &inp.ConfigurationError{Msg: io.Sf("distribution fractions sum to %g; must not exceed 1", sum)}
	}
	return nil
}

// ReadStudy reads a sweep definition from a (.yaml) file
func ReadStudy(path string) (*Study, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &inp.PersistenceError{Msg: io.Sf("cannot read study file %q: %v", path, err)}
	}
	o := new(Study)
	if err := yaml.Unmarshal(b, o); err != nil {
		return nil, &inp.PersistenceError{Msg: io.Sf("cannot unmarshal study file %q: %v", path, err)}
	}
	if err := o.Check(); err != nil {
		return nil, err
	}
	return o, nil
}

// Combo holds one parameter combination together with its analysis bundle
type Combo struct {
	Ratio  float64 // aspect ratio
	Width  float64 // footprint width [m]
	Nx, Ny int     // grid counts
	Bundle string  // analysis bundle name
}

// NumCombos returns the number of parameter combinations
func (o *Study) NumCombos() int {
	return len(o.Ratios) * len(o.Widths) * len(o.Nxs) * len(o.Nys)
}

// Combos enumerates the cartesian parameter grid in deterministic order
// (ratio-major, then width, nx, ny) and assigns analysis bundles by the
// configured distribution: fractions map to contiguous blocks of static,
// modal and dynamic bundles in this order, and the remainder runs complete
func (o *Study) Combos() []Combo {
	total := o.NumCombos()
	nstatic := int(float64(total) * o.Distribution[BundleStatic])
	nmodal := int(float64(total) * o.Distribution[BundleModal])
	ndynamic := int(float64(total) * o.Distribution[BundleDynamic])

	bundle := func(idx int) string {
		switch {
		case idx < nstatic:
			return BundleStatic
		case idx < nstatic+nmodal:
			return BundleModal
		case idx < nstatic+nmodal+ndynamic:
			return BundleDynamic
		}
		return BundleComplete
	}

	res := make([]Combo, 0, total)
	idx := 0
	for _, r := range o.Ratios {
		for _, w := range o.Widths {
			for _, nx := range o.Nxs {
				for _, ny := range o.Nys {
					res = append(res, Combo{Ratio: r, Width: w, Nx: nx, Ny: ny, Bundle: bundle(idx)})
					idx++
				}
			}
		}
	}
	return res
}

// Outcome pairs one combination with the analysis results of its model
type Outcome struct {
	Combo   Combo        // the parameter combination
	Model   *inp.Model   // the generated model
	Results *fem.Results // analysis outcome; Success=false entries stay in the batch
}

// Run builds and analyzes one model per combination, sequentially through the
// given engine (the solver is a single-slot resource). Builder failures abort
// the study, because an invalid sweep is a caller mistake; analysis failures
// are kept in the outcomes and the batch carries on
func (o *Study) Run(mb *inp.ModelBuilder, eng *fem.Engine, verbose bool) ([]*Outcome, error) {
	if err := o.Check(); err != nil {
		return nil, err
	}
	if o.DirOut != "" {
		mb.DirOut = o.DirOut
	}
	combos := o.Combos()
	if verbose {
		io.Pf("--- running parametric study: %d combinations ---\n", len(combos))
	}
	res := make([]*Outcome, 0, len(combos))
	for i, c := range combos {
		kinds, ok := bundleKinds[c.Bundle]
		if !ok {
			return nil, chk.Err("unknown analysis bundle %q", c.Bundle)
		}
		m, err := mb.Model(c.Ratio, c.Width, c.Nx, c.Ny, kinds, nil)
		if err != nil {
			return nil, err
		}
		r := eng.Analyze(m)
		if verbose {
			io.Pf("%4d/%d %s %v\n", i+1, len(combos), c.Bundle, r)
		}
		res = append(res, &Outcome{Combo: c, Model: m, Results: r})
	}
	return res, nil
}

// NumFailed returns how many outcomes ended without success
func NumFailed(outcomes []*Outcome) (n int) {
	for _, oc := range outcomes {
		if !oc.Results.Success {
			n++
		}
	}
	return
}
