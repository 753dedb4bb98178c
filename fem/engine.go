// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/structeng/parframe/inp"
)

// Engine drives the external solver through the analysis kinds enabled in a
// model's configuration. One engine owns one solver instance; realization and
// solving of one model form a single critical section guarded by a one-slot
// lock, because the solver operates on process-wide state. Throughput for
// large parametric studies comes from independent worker processes, each with
// its own solver, not from in-process concurrency
type Engine struct {
	Sv      Solver     // the external solver
	Verbose bool       // show messages
	mu      sync.Mutex // single-slot guard over realize+solve
}

// NewEngine returns an engine bound to one solver instance
func NewEngine(sv Solver) *Engine {
	return &Engine{Sv: sv}
}

// Analyze realizes the model in the solver and runs the enabled analysis
// kinds in canonical order. The caller always receives a structured result:
// preparation failures and per-kind execution failures are folded into
// Results.Errors rather than returned, so a batch of parametric analyses can
// continue past individual failures
func (o *Engine) Analyze(m *inp.Model) *Results {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := &Results{Name: m.Name}
	if o.Verbose {
		io.Pf("> analyzing %s (analyses=%v)\n", m.Name, m.Cfg.Enabled)
	}

	// realize model inside the solver
	if err := Realize(o.Sv, m); err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	// run enabled analyses; a failed kind is recorded and the others proceed
	if m.Cfg.Has(inp.KindStatic) {
		raw, err := o.Sv.SolveStatic(m.Cfg.Static)
		if err != nil {
			res.Errors = append(res.Errors, execErr(inp.KindStatic, "static analysis of %q failed: %v", m.Name, err).Error())
		} else {
			res.Static = newStaticResults(raw)
			res.Completed = append(res.Completed, inp.KindStatic)
		}
	}
	if m.Cfg.Has(inp.KindModal) {
		raw, err := o.Sv.SolveModal(m.Cfg.Modal)
		if err != nil {
			res.Errors = append(res.Errors, execErr(inp.KindModal, "modal analysis of %q failed: %v", m.Name, err).Error())
		} else {
			res.Modal = newModalResults(raw)
			res.Completed = append(res.Completed, inp.KindModal)
		}
	}
	if m.Cfg.Has(inp.KindDynamic) {
		raw, err := o.Sv.SolveDynamic(m.Cfg.Dynamic)
		if err != nil {
			res.Errors = append(res.Errors, execErr(inp.KindDynamic, "dynamic analysis of %q failed: %v", m.Name, err).Error())
		} else {
			res.Dynamic = newDynamicResults(raw, m.Cfg.Dynamic)
			res.Completed = append(res.Completed, inp.KindDynamic)
		}
	}

	res.Success = len(res.Completed) > 0
	if o.Verbose {
		io.Pf("> %v\n", res)
	}
	return res
}

// AnalyzeFile reads a persisted model and analyzes it. A missing or malformed
// file is returned as PersistenceError; analysis failures are folded into the
// results as in Analyze
func (o *Engine) AnalyzeFile(path string) (*Results, error) {
	m, err := inp.ReadModel(path)
	if err != nil {
		return nil, err
	}
	return o.Analyze(m), nil
}
