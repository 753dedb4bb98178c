// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_loads01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("loads01. top floor gravity loads")

	geo, err := NewGeometry(1.5, 10.0, 4, 4, 2, 3.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	lds, err := NewLoads(geo, 1.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// only top floor nodes carry loads
	chk.IntAssert(len(lds.Loads), 5*5)
	for tag, recs := range lds.Loads {
		chk.IntAssert(geo.Nodes[tag].Floor, geo.NumFloors)
		for _, l := range recs {
			if l.Case != LoadCaseDead {
				tst.Errorf("load case must be dead. %q is incorrect\n", l.Case)
				return
			}
			if l.F[2] >= 0 {
				tst.Errorf("gravity load must point downwards. %g is incorrect\n", l.F[2])
				return
			}
		}
	}

	// forces sum to intensity * footprint area
	io.Pforan("sum(Fz) = %v\n", lds.SumVertical())
	chk.Float64(tst, "total vertical force", 1e-12, lds.SumVertical(), -1.0*geo.FootprintArea())
}

func Test_loads02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("loads02. tributary areas")

	geo, err := NewGeometry(2.0, 6.0, 4, 3, 1, 3.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	lds, err := NewLoads(geo, 2.5)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	dx := geo.L / float64(geo.Nx) // 3.0
	dy := geo.B / float64(geo.Ny) // 2.0
	for _, n := range geo.FloorNodes(geo.NumFloors) {
		area := lds.Loads[n.Tag][0].Area
		switch {
		case (n.I == 0 || n.I == geo.Nx) && (n.J == 0 || n.J == geo.Ny): // corner
			chk.Float64(tst, io.Sf("corner area node %d", n.Tag), 1e-14, area, dx*dy/4.0)
		case n.I == 0 || n.I == geo.Nx || n.J == 0 || n.J == geo.Ny: // edge
			chk.Float64(tst, io.Sf("edge area node %d", n.Tag), 1e-14, area, dx*dy/2.0)
		default: // interior
			chk.Float64(tst, io.Sf("interior area node %d", n.Tag), 1e-14, area, dx*dy)
		}
	}
	chk.Float64(tst, "total vertical force", 1e-12, lds.SumVertical(), -2.5*geo.L*geo.B)
}

func Test_loads03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("loads03. invalid intensity")

	geo, err := NewGeometry(1.5, 10.0, 4, 4, 2, 3.0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = NewLoads(geo, 0)
	if err == nil {
		tst.Errorf("zero intensity should have failed\n")
		return
	}
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		tst.Errorf("error should be ConfigurationError. %v is incorrect\n", err)
	}
}
