// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the analysis engine driving an external finite
// element solver over structural models
package fem

import (
	"github.com/structeng/parframe/inp"
)

// Solver is the interface of the external finite element solver. The solver
// holds process-wide mutable state (one "current model" that the solve calls
// implicitly operate on), so a caller must Wipe before realizing a new model
// and must not interleave calls for different models. The Engine enforces
// this discipline with a single-slot guard
type Solver interface {

	// model definition
	Wipe()                                              // reset the solver's global state
	Begin(ndm, ndf int) error                           // start a new model with ndm dimensions and ndf dofs per node
	Node(tag int, x, y, z float64) error                // define one node
	ShellSection(tag int, e, nu, th, rho float64) error // define one membrane-plate section
	FrameSection(tag int, e, a, iz, iy, g, j float64) error
	Transf(tag int, vecxz []float64) error          // define one geometric transformation
	Shell(tag int, verts []int, sec int) error      // define one 4-vert shell element
	Frame(tag int, verts []int, sec, tr int) error  // define one frame (beam-column) element
	Fix(tag int, dofs []int) error                  // restrain dofs of one node (1 = fixed)
	NodalLoad(tag int, f []float64) error           // apply one nodal force vector

	// analyses
	SolveStatic(cfg *inp.StaticConfig) (*StaticRaw, error)
	SolveModal(cfg *inp.ModalConfig) (*ModalRaw, error)
	SolveDynamic(cfg *inp.DynamicConfig) (*DynamicRaw, error)
}

// StaticRaw holds the raw output of one static solve
type StaticRaw struct {
	Disp      map[int][]float64 // node tag => [3] displacement vector
	Niter     int               // number of iterations/steps performed
	Converged bool              // solve reached a solution within tolerance
}

// ModalRaw holds the raw output of one eigen-solve
type ModalRaw struct {
	Periods       []float64           // [nmodes] natural periods, ordered
	Shapes        []map[int][]float64 // [nmodes] node tag => [3] mode shape vector
	Participation []float64           // [nmodes] modal participation factors
}

// DynamicRaw holds the raw output of one time-integration
type DynamicRaw struct {
	MaxDisp        float64 // peak displacement magnitude over the time history
	MaxVel         float64 // peak velocity magnitude
	MaxAcc         float64 // peak acceleration magnitude
	ConvergedSteps int     // number of steps that converged
	TotalSteps     int     // number of steps attempted
}
