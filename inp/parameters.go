// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the definition of parametric frame models: geometry,
// sections, loads and analysis configuration, the aggregated structural model
// with its (.json) persisted form, and the orchestrating model builder
package inp

import "github.com/cpmech/gosl/io"

// Parameters holds the parametric inputs (the "master keys") that drive the
// generation of one structural model
type Parameters struct {

	// input
	AspectRatio float64 `json:"aspectratio"` // footprint length-to-width ratio L/B
	B           float64 `json:"b"`           // footprint width [m]
	Nx          int     `json:"nx"`          // number of bays along x
	Ny          int     `json:"ny"`          // number of bays along y
	NumFloors   int     `json:"numfloors"`   // number of floors above base
	FloorHeight float64 `json:"floorheight"` // height of each floor [m]
}

// Check validates the parametric inputs
//  Note: nx >= 3 and ny >= 2 is the minimum grid for a stable frame
func (o *Parameters) Check() error {
	if o.AspectRatio <= 0 {
		return confErr("aspect ratio L/B must be positive. %g is invalid", o.AspectRatio)
	}
	if o.B <= 0 {
		return confErr("width B must be positive. %g is invalid", o.B)
	}
	if o.Nx < 3 {
		return confErr("nx must be at least 3. %d is invalid", o.Nx)
	}
	if o.Ny < 2 {
		return confErr("ny must be at least 2. %d is invalid", o.Ny)
	}
	if o.NumFloors < 1 {
		return confErr("number of floors must be at least 1. %d is invalid", o.NumFloors)
	}
	if o.FloorHeight <= 0 {
		return confErr("floor height must be positive. %g is invalid", o.FloorHeight)
	}
	return nil
}

// L returns the footprint length along x computed from B and the aspect ratio
func (o *Parameters) L() float64 {
	return o.AspectRatio * o.B
}

// TotalHeight returns the total height of the structure
func (o *Parameters) TotalHeight() float64 {
	return float64(o.NumFloors) * o.FloorHeight
}

// FootprintArea returns the footprint area L*B
func (o *Parameters) FootprintArea() float64 {
	return o.L() * o.B
}

// GridDims returns the spacing between grid lines along x and y
func (o *Parameters) GridDims() (dx, dy float64) {
	return o.L() / float64(o.Nx), o.B / float64(o.Ny)
}

// String returns a one-line description of the parameters
func (o *Parameters) String() string {
	return io.Sf("L=%gm B=%gm grid=%dx%d floors=%d h=%gm", o.L(), o.B, o.Nx, o.Ny, o.NumFloors, o.FloorHeight)
}
