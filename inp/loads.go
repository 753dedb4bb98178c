// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// load case names
const (
	LoadCaseDead    = "dead"
	LoadCaseLive    = "live"
	LoadCaseSeismic = "seismic"
)

// Load holds one nodal load record
type Load struct {
	Node int       `json:"node"`           // tag of loaded node
	F    []float64 `json:"f"`              // [3] force vector {fx, fy, fz} [tonf]
	Case string    `json:"case"`           // load case: dead, live or seismic
	Area float64   `json:"area,omitempty"` // tributary area used to compute F [m2]
}

// Loads holds all nodal loads of a model. A node may carry more than one load
// record
type Loads struct {
	Loads     map[int][]*Load `json:"loads"`     // node tag => load records
	Intensity float64         `json:"intensity"` // distributed load intensity [tonf/m2]
}

// NewLoads builds the gravity load records of the default scheme: every node
// of the top floor receives a vertical force equal to the distributed load
// intensity times its tributary area (interior nodes take a full dx*dy cell,
// edge nodes half and corner nodes a quarter), so that the per-node forces
// sum to intensity times the footprint area. Nodes below the top floor carry
// no load
func NewLoads(geo *Geometry, intensity float64) (*Loads, error) {
	if intensity <= 0 {
		return nil, confErr("load intensity must be positive. %g is invalid", intensity)
	}
	o := &Loads{
		Loads:     make(map[int][]*Load),
		Intensity: intensity,
	}
	dx := geo.L / float64(geo.Nx)
	dy := geo.B / float64(geo.Ny)
	for _, n := range o.topFloorNodes(geo) {
		wx := dx
		if n.I == 0 || n.I == geo.Nx {
			wx = dx / 2.0
		}
		wy := dy
		if n.J == 0 || n.J == geo.Ny {
			wy = dy / 2.0
		}
		area := wx * wy
		o.Loads[n.Tag] = append(o.Loads[n.Tag], &Load{
			Node: n.Tag,
			F:    []float64{0, 0, -intensity * area}, // negative => downwards
			Case: LoadCaseDead,
			Area: area,
		})
	}
	return o, nil
}

// topFloorNodes returns the nodes of the top floor
func (o *Loads) topFloorNodes(geo *Geometry) []*Node {
	return geo.FloorNodes(geo.NumFloors)
}

// SumVertical returns the total vertical force over all load records
func (o *Loads) SumVertical() (sum float64) {
	for _, recs := range o.Loads {
		for _, l := range recs {
			sum += l.F[2]
		}
	}
	return
}
