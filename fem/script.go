// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/structeng/parframe/inp"
)

// ScriptWriter implements Solver by recording the command stream as a
// runnable openseespy script instead of executing it. Solve calls emit the
// corresponding analysis commands and return empty raw results, so a
// ScriptWriter is a dry-run target: pass it to Realize/Engine to export a
// model as a standalone script
type ScriptWriter struct {
	buf         bytes.Buffer
	patternDone bool // load pattern preamble was emitted for the current model
}

// NewScriptWriter returns an empty script writer
func NewScriptWriter() *ScriptWriter {
	return new(ScriptWriter)
}

// String returns the script recorded so far
func (o *ScriptWriter) String() string {
	return o.buf.String()
}

// Save writes the recorded script to <dirout>/<fnkey>.py
func (o *ScriptWriter) Save(dirout, fnkey string) error {
	if dirout != "" {
		if err := os.MkdirAll(dirout, 0777); err != nil {
			return prepErr("cannot create directory %q: %v", dirout, err)
		}
	}
	fn := filepath.Join(dirout, fnkey+".py")
	if err := os.WriteFile(fn, o.buf.Bytes(), 0666); err != nil {
		return prepErr("cannot write script file %q: %v", fn, err)
	}
	return nil
}

func (o *ScriptWriter) ln(msg string, prm ...interface{}) {
	o.buf.WriteString(io.Sf(msg, prm...))
	o.buf.WriteString("\n")
}

// Wipe resets the recorded script and emits the preamble
func (o *ScriptWriter) Wipe() {
	o.buf.Reset()
	o.patternDone = false
	o.ln("import openseespy.opensees as ops")
	o.ln("")
	o.ln("ops.wipe()")
}

// Begin emits the model command
func (o *ScriptWriter) Begin(ndm, ndf int) error {
	o.ln("ops.model('basic', '-ndm', %d, '-ndf', %d)", ndm, ndf)
	return nil
}

// Node emits one node command
func (o *ScriptWriter) Node(tag int, x, y, z float64) error {
	o.ln("ops.node(%d, %g, %g, %g)", tag, x, y, z)
	return nil
}

// ShellSection emits one membrane-plate section command
func (o *ScriptWriter) ShellSection(tag int, e, nu, th, rho float64) error {
	o.ln("ops.section('ElasticMembranePlateSection', %d, %g, %g, %g, %g)", tag, e, nu, th, rho)
	return nil
}

// FrameSection emits one elastic frame section command
func (o *ScriptWriter) FrameSection(tag int, e, a, iz, iy, g, j float64) error {
	o.ln("ops.section('Elastic', %d, %g, %g, %g, %g, %g, %g)", tag, e, a, iz, iy, g, j)
	return nil
}

// Transf emits one geometric transformation command
func (o *ScriptWriter) Transf(tag int, vecxz []float64) error {
	o.ln("ops.geomTransf('Linear', %d, %g, %g, %g)", tag, vecxz[0], vecxz[1], vecxz[2])
	return nil
}

// Shell emits one 4-vert shell element command
func (o *ScriptWriter) Shell(tag int, verts []int, sec int) error {
	o.ln("ops.element('ShellMITC4', %d, %d, %d, %d, %d, %d)", tag, verts[0], verts[1], verts[2], verts[3], sec)
	return nil
}

// Frame emits one beam-column element command
func (o *ScriptWriter) Frame(tag int, verts []int, sec, tr int) error {
	o.ln("ops.element('elasticBeamColumn', %d, %d, %d, %d, %d)", tag, verts[0], verts[1], sec, tr)
	return nil
}

// Fix emits one support command
func (o *ScriptWriter) Fix(tag int, dofs []int) error {
	o.ln("ops.fix(%d, %d, %d, %d, %d, %d, %d)", tag, dofs[0], dofs[1], dofs[2], dofs[3], dofs[4], dofs[5])
	return nil
}

// NodalLoad emits the load pattern preamble on first use, then one load
// command per call
func (o *ScriptWriter) NodalLoad(tag int, f []float64) error {
	if !o.patternDone {
		o.ln("ops.timeSeries('Linear', 1)")
		o.ln("ops.pattern('Plain', 1, 1)")
		o.patternDone = true
	}
	o.ln("ops.load(%d, %g, %g, %g, 0.0, 0.0, 0.0)", tag, f[0], f[1], f[2])
	return nil
}

// SolveStatic emits the static analysis block
func (o *ScriptWriter) SolveStatic(cfg *inp.StaticConfig) (*StaticRaw, error) {
	o.ln("")
	o.ln("ops.system('%s')", cfg.System)
	o.ln("ops.numberer('%s')", cfg.Numberer)
	o.ln("ops.constraints('%s')", cfg.Constraints)
	o.ln("ops.integrator('%s', %g)", cfg.Integrator, 1.0/float64(cfg.NmaxIt))
	o.ln("ops.algorithm('%s')", cfg.Algorithm)
	o.ln("ops.analysis('Static')")
	o.ln("ops.analyze(%d)", cfg.NmaxIt)
	return &StaticRaw{}, nil
}

// SolveModal emits the eigen analysis block
func (o *ScriptWriter) SolveModal(cfg *inp.ModalConfig) (*ModalRaw, error) {
	o.ln("")
	o.ln("ops.system('%s')", cfg.System)
	o.ln("ops.numberer('%s')", cfg.Numberer)
	o.ln("ops.constraints('%s')", cfg.Constraints)
	o.ln("eigenvalues = ops.eigen('-%s', %d)", cfg.EigenSolver, cfg.NumModes)
	return &ModalRaw{}, nil
}

// SolveDynamic emits the time-integration block
func (o *ScriptWriter) SolveDynamic(cfg *inp.DynamicConfig) (*DynamicRaw, error) {
	o.ln("")
	o.ln("ops.integrator('%s', 0.5, 0.25)", cfg.Integrator)
	o.ln("ops.algorithm('%s')", cfg.Algorithm)
	o.ln("ops.analysis('Transient')")
	o.ln("ops.analyze(%d, %g)", cfg.NumSteps, cfg.Dt)
	return &DynamicRaw{TotalSteps: cfg.NumSteps}, nil
}

// WriteScript records the full command stream of one model (realization plus
// the enabled analysis blocks) and returns the script text
func WriteScript(m *inp.Model) (string, error) {
	sw := NewScriptWriter()
	if err := Realize(sw, m); err != nil {
		return "", err
	}
	if m.Cfg.Has(inp.KindStatic) {
		sw.SolveStatic(m.Cfg.Static)
	}
	if m.Cfg.Has(inp.KindModal) {
		sw.SolveModal(m.Cfg.Modal)
	}
	if m.Cfg.Has(inp.KindDynamic) {
		sw.SolveDynamic(m.Cfg.Dynamic)
	}
	return sw.String(), nil
}
