// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package study

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/structeng/parframe/fem"
	"github.com/structeng/parframe/inp"
)

func Test_study01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("study01. combination grid and bundle distribution")

	s := &Study{
		Ratios:       []float64{1.0, 1.5},
		Widths:       []float64{8.0, 10.0},
		Nxs:          []int{3, 4},
		Nys:          []int{3},
		Distribution: map[string]float64{BundleStatic: 0.5, BundleModal: 0.25},
	}
	if err := s.Check(); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(s.NumCombos(), 8)

	combos := s.Combos()
	chk.IntAssert(len(combos), 8)

	// contiguous blocks: 4 static, 2 modal, remainder complete
	nper := map[string]int{}
	for _, c := range combos {
		nper[c.Bundle]++
	}
	chk.IntAssert(nper[BundleStatic], 4)
	chk.IntAssert(nper[BundleModal], 2)
	chk.IntAssert(nper[BundleComplete], 2)
	chk.String(tst, combos[0].Bundle, BundleStatic)
	chk.String(tst, combos[7].Bundle, BundleComplete)

	// deterministic ratio-major order
	chk.Float64(tst, "first ratio", 1e-15, combos[0].Ratio, 1.0)
	chk.Float64(tst, "last ratio", 1e-15, combos[7].Ratio, 1.5)
	chk.IntAssert(combos[0].Nx, 3)
	chk.IntAssert(combos[1].Nx, 4)
}

func Test_study02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("study02. sweep definition rejections")

	// empty parameter list
	s := &Study{Ratios: []float64{1.0}, Widths: []float64{8.0}, Nxs: []int{3}}
	var cerr *inp.ConfigurationError
	if err := s.Check(); err == nil || !errors.As(err, &cerr) {
		tst.Errorf("empty ny list should yield ConfigurationError. %v is incorrect\n", err)
		return
	}

	// unknown bundle
	s = &Study{
		Ratios: []float64{1.0}, Widths: []float64{8.0}, Nxs: []int{3}, Nys: []int{3},
		Distribution: map[string]float64{"pushover": 0.5},
	}
	if err := s.Check(); err == nil || !errors.As(err, &cerr) {
		tst.Errorf("unknown bundle should yield ConfigurationError. %v is incorrect\n", err)
		return
	}

	// fractions exceeding one
	s = &Study{
		Ratios: []float64{1.0}, Widths: []float64{8.0}, Nxs: []int{3}, Nys: []int{3},
		Distribution: map[string]float64{BundleStatic: 0.8, BundleModal: 0.5},
	}
	if err := s.Check(); err == nil || !errors.As(err, &cerr) {
		tst.Errorf("overfull distribution should yield ConfigurationError. %v is incorrect\n", err)
	}
}

func Test_study03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("study03. read sweep definition from file")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "sweep.yaml")
	data := `ratios: [1.0, 1.5, 2.0]
widths: [8.0]
nxs: [3, 4]
nys: [3]
distribution:
  static: 0.5
  modal: 0.25
`
	if err := os.WriteFile(fn, []byte(data), 0666); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	s, err := ReadStudy(fn)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("study = %+v\n", s)
	chk.Array(tst, "ratios", 1e-15, s.Ratios, []float64{1.0, 1.5, 2.0})
	chk.Ints(tst, "nxs", s.Nxs, []int{3, 4})
	chk.IntAssert(s.NumCombos(), 6)
	chk.Float64(tst, "static fraction", 1e-15, s.Distribution[BundleStatic], 0.5)

	// missing file
	_, err = ReadStudy(filepath.Join(dir, "inexistent.yaml"))
	var perr *inp.PersistenceError
	if err == nil || !errors.As(err, &perr) {
		tst.Errorf("missing file should yield PersistenceError. %v is incorrect\n", err)
		return
	}

	// invalid content surfaces the check error
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("ratios: [1.0]\n"), 0666)
	_, err = ReadStudy(bad)
	var cerr *inp.ConfigurationError
	if err == nil || !errors.As(err, &cerr) {
		tst.Errorf("incomplete sweep should yield ConfigurationError. %v is incorrect\n", err)
	}
}

func Test_study04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("study04. batch run over a small grid")

	s := &Study{
		Ratios:       []float64{1.0, 1.5},
		Widths:       []float64{8.0},
		Nxs:          []int{3},
		Nys:          []int{2},
		Distribution: map[string]float64{BundleStatic: 0.5},
		DirOut:       tst.TempDir(),
	}
	mb := inp.NewModelBuilder("")
	eng := fem.NewEngine(fem.NewScriptWriter())

	outcomes, err := s.Run(mb, eng, false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.IntAssert(len(outcomes), 2)
	chk.IntAssert(NumFailed(outcomes), 0)

	// each outcome has a persisted model and results per its bundle
	for _, oc := range outcomes {
		if oc.Model.Path == "" {
			tst.Errorf("model %q should have been persisted\n", oc.Model.Name)
			return
		}
		if _, err := os.Stat(oc.Model.Path); err != nil {
			tst.Errorf("model file %q should exist\n", oc.Model.Path)
			return
		}
		chk.Strings(tst, "completed", oc.Results.Completed, bundleKinds[oc.Combo.Bundle])
	}
	chk.String(tst, outcomes[0].Combo.Bundle, BundleStatic)
	chk.String(tst, outcomes[1].Combo.Bundle, BundleComplete)
	chk.String(tst, outcomes[0].Model.Name, "F01_10_08_0302")
}
