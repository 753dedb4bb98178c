// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/structeng/parframe/inp"
)

// StaticResults holds the typed results of one static analysis
type StaticResults struct {
	MaxDisp   float64           `json:"maxdisp"`   // maximum displacement magnitude
	Disp      map[int][]float64 `json:"disp"`      // node tag => [3] displacement vector
	Converged bool              `json:"converged"` // solve reached a solution within tolerance
	Niter     int               `json:"niter"`     // number of iterations/steps performed
	MaxStress float64           `json:"maxstress"` // TODO: populate once the solver exposes element stress recovery
}

// ModalResults holds the typed results of one modal analysis
type ModalResults struct {
	Periods       []float64           `json:"periods"`       // [nmodes] natural periods, ordered
	Frequencies   []float64           `json:"frequencies"`   // [nmodes] natural frequencies = 1/T
	Shapes        []map[int][]float64 `json:"shapes"`        // [nmodes] node tag => [3] mode shape vector
	Participation []float64           `json:"participation"` // [nmodes] modal participation factors
}

// FundamentalPeriod returns the period of the first mode
func (o *ModalResults) FundamentalPeriod() float64 {
	if len(o.Periods) == 0 {
		return 0
	}
	return o.Periods[0]
}

// DynamicResults holds the typed results of one dynamic analysis. The content
// is a minimal peak-response summary; richer time-history statistics are an
// extension point
type DynamicResults struct {
	MaxDisp        float64 `json:"maxdisp"`        // peak displacement magnitude
	MaxVel         float64 `json:"maxvel"`         // peak velocity magnitude
	MaxAcc         float64 `json:"maxacc"`         // peak acceleration magnitude
	ConvergedSteps int     `json:"convergedsteps"` // number of steps that converged
	TotalSteps     int     `json:"totalsteps"`     // number of steps attempted
	Damping        float64 `json:"damping"`        // damping ratio used
}

// ConvergenceRatio returns the fraction of time steps that converged
func (o *DynamicResults) ConvergenceRatio() float64 {
	if o.TotalSteps == 0 {
		return 0
	}
	return float64(o.ConvergedSteps) / float64(o.TotalSteps)
}

// Results aggregates the outcome of one Analyze call. Success tracking is
// per-kind: each enabled kind that completes appears in Completed and fills
// its results record; each kind that fails contributes an entry to Errors.
// Success is false only when the solver rejected the model during preparation
// or when every enabled kind failed
type Results struct {
	Name      string          `json:"name"`              // name of the analyzed model
	Static    *StaticResults  `json:"static,omitempty"`  // nil unless static was enabled and completed
	Modal     *ModalResults   `json:"modal,omitempty"`   // nil unless modal was enabled and completed
	Dynamic   *DynamicResults `json:"dynamic,omitempty"` // nil unless dynamic was enabled and completed
	Completed []string        `json:"completed"`         // analysis kinds that completed
	Errors    []string        `json:"errors"`            // per-kind and preparation error messages
	Success   bool            `json:"success"`           // see above
}

// HasErrors tells whether any error was recorded
func (o *Results) HasErrors() bool {
	return len(o.Errors) > 0
}

// String returns a one-line summary of the results
func (o *Results) String() string {
	return io.Sf("%s: success=%v completed=%v errors=%d", o.Name, o.Success, o.Completed, len(o.Errors))
}

// newStaticResults converts raw static output into typed results
func newStaticResults(raw *StaticRaw) *StaticResults {
	res := &StaticResults{
		Disp:      raw.Disp,
		Converged: raw.Converged,
		Niter:     raw.Niter,
	}
	for _, u := range raw.Disp {
		mag := math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
		if mag > res.MaxDisp {
			res.MaxDisp = mag
		}
	}
	return res
}

// newModalResults converts raw eigen-solve output into typed results
func newModalResults(raw *ModalRaw) *ModalResults {
	res := &ModalResults{
		Periods:       raw.Periods,
		Shapes:        raw.Shapes,
		Participation: raw.Participation,
	}
	res.Frequencies = make([]float64, len(raw.Periods))
	for i, t := range raw.Periods {
		if t > 0 {
			res.Frequencies[i] = 1.0 / t
		}
	}
	return res
}

// newDynamicResults converts raw time-integration output into typed results
func newDynamicResults(raw *DynamicRaw, cfg *inp.DynamicConfig) *DynamicResults {
	return &DynamicResults{
		MaxDisp:        raw.MaxDisp,
		MaxVel:         raw.MaxVel,
		MaxAcc:         raw.MaxAcc,
		ConvergedSteps: raw.ConvergedSteps,
		TotalSteps:     raw.TotalSteps,
		Damping:        cfg.Damping,
	}
}
