// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// SolverPreparationError indicates that the external solver rejected the
// realized model; e.g. duplicate identifiers or a disconnected graph
type SolverPreparationError struct {
	Msg string
}

func (e *SolverPreparationError) Error() string { return e.Msg }

// prepErr returns a new SolverPreparationError with formatted message
func prepErr(msg string, prm ...interface{}) *SolverPreparationError {
	return &SolverPreparationError{Msg: io.Sf(msg, prm...)}
}

// AnalysisExecutionError indicates that one analysis kind failed during
// solve, eigen-solve or time-integration
type AnalysisExecutionError struct {
	Kind string // the analysis kind that failed
	Msg  string
}

func (e *AnalysisExecutionError) Error() string { return e.Msg }

// execErr returns a new AnalysisExecutionError with formatted message
func execErr(kind, msg string, prm ...interface{}) *AnalysisExecutionError {
	return &AnalysisExecutionError{Kind: kind, Msg: io.Sf(msg, prm...)}
}
