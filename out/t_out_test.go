// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/structeng/parframe/fem"
	"github.com/structeng/parframe/inp"
)

// fakeViz counts Visualize calls and records the passed intent
type fakeViz struct {
	ncalls int
	scale  float64
}

func (o *fakeViz) Visualize(m *inp.Model, res *fem.Results, cfg *inp.VizConfig) error {
	o.ncalls++
	o.scale = cfg.DeformScale
	return nil
}

// fakeReporter counts Generate calls and can be set to fail
type fakeReporter struct {
	ncalls int
	fail   bool
}

func (o *fakeReporter) Generate(m *inp.Model, res *fem.Results) error {
	o.ncalls++
	if o.fail {
		return errors.New("cannot render report")
	}
	return nil
}

// fakeExporter counts Export calls
type fakeExporter struct {
	ncalls int
}

func (o *fakeExporter) Export(m *inp.Model, res *fem.Results) error {
	o.ncalls++
	return nil
}

func Test_post01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("post01. fan-out honours the visualization intent")

	mb := inp.NewModelBuilder("")
	m, err := mb.StaticOnly(1.0, 8.0, 3, 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res := &fem.Results{Name: m.Name, Success: true, Completed: []string{inp.KindStatic}}

	viz := new(fakeViz)
	rep := new(fakeReporter)
	exp := new(fakeExporter)
	pp := &PostProcessor{
		Visualizers: []Visualizer{viz},
		Reporters:   []ReportGenerator{rep},
		Exporters:   []DataExporter{exp},
	}

	// visualization disabled by default: the visualizer must be skipped
	errs := pp.Process(m, res)
	chk.IntAssert(len(errs), 0)
	chk.IntAssert(viz.ncalls, 0)
	chk.IntAssert(rep.ncalls, 1)
	chk.IntAssert(exp.ncalls, 1)

	// enabling the intent activates the visualizer with the model's settings
	m2, err := mb.Model(1.0, 8.0, 3, 2, []string{inp.KindStatic},
		inp.Overrides{"viz": {"enabled": true, "deformscale": 75.0}})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	errs = pp.Process(m2, res)
	chk.IntAssert(len(errs), 0)
	chk.IntAssert(viz.ncalls, 1)
	chk.Float64(tst, "deform scale", 1e-15, viz.scale, 75)
}

func Test_post02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("post02. a failing collaborator does not stop the others")

	mb := inp.NewModelBuilder("")
	m, err := mb.StaticOnly(1.0, 8.0, 3, 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res := &fem.Results{Name: m.Name, Success: true}

	rep := &fakeReporter{fail: true}
	exp := new(fakeExporter)
	pp := &PostProcessor{
		Reporters: []ReportGenerator{rep},
		Exporters: []DataExporter{exp},
	}

	errs := pp.Process(m, res)
	chk.IntAssert(len(errs), 1)
	chk.IntAssert(rep.ncalls, 1)
	chk.IntAssert(exp.ncalls, 1) // still ran
}
