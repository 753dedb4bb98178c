// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out declares the post-processing boundary: the collaborator
// interfaces consuming a model/results pair to produce visualizations,
// reports and data exports. The analysis engine never depends on this package
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/structeng/parframe/fem"
	"github.com/structeng/parframe/inp"
)

// Visualizer produces visualization files from a model/results pair,
// honouring the model's visualization intent
type Visualizer interface {
	Visualize(m *inp.Model, res *fem.Results, cfg *inp.VizConfig) error
}

// ReportGenerator produces report files from a model/results pair
type ReportGenerator interface {
	Generate(m *inp.Model, res *fem.Results) error
}

// DataExporter exports raw result data from a model/results pair
type DataExporter interface {
	Export(m *inp.Model, res *fem.Results) error
}

// PostProcessor fans a model/results pair out to registered collaborators.
// Visualizers are skipped entirely when the model's visualization intent is
// disabled. A failing collaborator does not stop the others
type PostProcessor struct {
	Visualizers []Visualizer      // optional visualization collaborators
	Reporters   []ReportGenerator // optional report collaborators
	Exporters   []DataExporter    // optional data-export collaborators
}

// Process runs all registered collaborators and returns the collected errors
func (o *PostProcessor) Process(m *inp.Model, res *fem.Results) (errs []error) {
	if m.Cfg.Viz.Enabled {
		for _, v := range o.Visualizers {
			if err := v.Visualize(m, res, &m.Cfg.Viz); err != nil {
				errs = append(errs, chk.Err("visualizer failed for %q: %v", m.Name, err))
			}
		}
	}
	for _, r := range o.Reporters {
		if err := r.Generate(m, res); err != nil {
			errs = append(errs, chk.Err("report generation failed for %q: %v", m.Name, err))
		}
	}
	for _, e := range o.Exporters {
		if err := e.Export(m, res); err != nil {
			errs = append(errs, chk.Err("data export failed for %q: %v", m.Name, err))
		}
	}
	return
}
