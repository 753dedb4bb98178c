// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// element type names
const (
	ElemSlab   = "slab"   // 4-vert shell panel, one per grid cell per floor above base
	ElemColumn = "column" // vertical frame member between consecutive floors
	ElemBeamX  = "beam_x" // horizontal frame member along x
	ElemBeamY  = "beam_y" // horizontal frame member along y
)

// Node holds one structural node. Nodes are immutable once created and owned
// exclusively by the Geometry that generated them
type Node struct {
	Tag   int       `json:"tag"`   // identifier; tags start at 1
	C     []float64 `json:"c"`     // [3] coordinates {x, y, z}
	Floor int       `json:"floor"` // floor index; 0 = base
	I     int       `json:"i"`     // grid position along x
	J     int       `json:"j"`     // grid position along y
}

// Element holds one structural element connecting nodes of the same geometry
type Element struct {
	Tag   int    `json:"tag"`   // identifier
	Type  string `json:"type"`  // one of {slab, column, beam_x, beam_y}
	Verts []int  `json:"verts"` // tags of connected nodes
	Floor int    `json:"floor"` // floor index this element belongs to
	Sec   int    `json:"sec"`   // tag of section assigned to this element
}

// Geometry holds the node/element graph of one multi-storey rectangular frame
type Geometry struct {

	// node and element maps
	Nodes    map[int]*Node    `json:"nodes"`    // tag => node
	Elements map[int]*Element `json:"elements"` // tag => element

	// derived scalars
	L           float64 `json:"l"`           // footprint length along x [m]
	B           float64 `json:"b"`           // footprint width along y [m]
	Nx          int     `json:"nx"`          // number of bays along x
	Ny          int     `json:"ny"`          // number of bays along y
	NumFloors   int     `json:"numfloors"`   // number of floors above base
	FloorHeight float64 `json:"floorheight"` // height of each floor [m]
}

// NewGeometry builds the geometry of a multi-storey rectangular frame. Nodes
// are placed on a regular (nx+1) x (ny+1) grid at each of (numFloors+1)
// elevations including the base. Columns connect grid points of consecutive
// floors; beams connect adjacent grid points of each floor above the base in
// both directions; one slab panel covers each grid cell of each floor above
// the base. It returns ConfigurationError on invalid input without partially
// constructing a geometry
func NewGeometry(aspectRatio, width float64, nx, ny, numFloors int, floorHeight float64) (*Geometry, error) {
	prm := Parameters{
		AspectRatio: aspectRatio,
		B:           width,
		Nx:          nx,
		Ny:          ny,
		NumFloors:   numFloors,
		FloorHeight: floorHeight,
	}
	if err := prm.Check(); err != nil {
		return nil, err
	}
	o := &Geometry{
		L:           prm.L(),
		B:           prm.B,
		Nx:          nx,
		Ny:          ny,
		NumFloors:   numFloors,
		FloorHeight: floorHeight,
	}
	o.createNodes(&prm)
	o.createElements(&prm)
	return o, nil
}

// createNodes generates all nodes, floor-major then j then i, tags from 1
func (o *Geometry) createNodes(prm *Parameters) {
	o.Nodes = make(map[int]*Node)
	dx, dy := prm.GridDims()
	tag := 1
	for floor := 0; floor <= prm.NumFloors; floor++ {
		z := float64(floor) * prm.FloorHeight
		for j := 0; j <= prm.Ny; j++ {
			for i := 0; i <= prm.Nx; i++ {
				o.Nodes[tag] = &Node{
					Tag:   tag,
					C:     []float64{float64(i) * dx, float64(j) * dy, z},
					Floor: floor,
					I:     i,
					J:     j,
				}
				tag++
			}
		}
	}
}

// createElements generates slabs, then columns, then beams along x and y.
// Node tags are fully determined by grid position and floor index
func (o *Geometry) createElements(prm *Parameters) {
	o.Elements = make(map[int]*Element)
	nx, ny := prm.Nx, prm.Ny
	npf := (nx + 1) * (ny + 1) // nodes per floor
	tag := 1

	// slab panels, one per grid cell per floor above base
	for floor := 1; floor <= prm.NumFloors; floor++ {
		base := floor * npf
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				n1 := base + j*(nx+1) + i + 1
				n2 := base + j*(nx+1) + i + 2
				n3 := base + (j+1)*(nx+1) + i + 2
				n4 := base + (j+1)*(nx+1) + i + 1
				o.Elements[tag] = &Element{Tag: tag, Type: ElemSlab, Verts: []int{n1, n2, n3, n4}, Floor: floor, Sec: SecTagSlab}
				tag++
			}
		}
	}

	// columns between consecutive floors, at every grid point
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			for floor := 0; floor < prm.NumFloors; floor++ {
				n1 := floor*npf + j*(nx+1) + i + 1
				n2 := (floor+1)*npf + j*(nx+1) + i + 1
				o.Elements[tag] = &Element{Tag: tag, Type: ElemColumn, Verts: []int{n1, n2}, Floor: floor, Sec: SecTagColumn}
				tag++
			}
		}
	}

	// beams on each floor above base
	for floor := 1; floor <= prm.NumFloors; floor++ {
		base := floor * npf
		for j := 0; j <= ny; j++ {
			for i := 0; i < nx; i++ {
				n1 := base + j*(nx+1) + i + 1
				o.Elements[tag] = &Element{Tag: tag, Type: ElemBeamX, Verts: []int{n1, n1 + 1}, Floor: floor, Sec: SecTagBeam}
				tag++
			}
		}
		for j := 0; j < ny; j++ {
			for i := 0; i <= nx; i++ {
				n1 := base + j*(nx+1) + i + 1
				o.Elements[tag] = &Element{Tag: tag, Type: ElemBeamY, Verts: []int{n1, n1 + nx + 1}, Floor: floor, Sec: SecTagBeam}
				tag++
			}
		}
	}
}

// Check verifies the internal consistency of the geometry; i.e. that every
// element refers to existing nodes and that the node count matches the grid
func (o *Geometry) Check() error {
	nnod := (o.Nx + 1) * (o.Ny + 1) * (o.NumFloors + 1)
	if len(o.Nodes) != nnod {
		return confErr("geometry has %d nodes but the %dx%d grid with %d floors requires %d", len(o.Nodes), o.Nx, o.Ny, o.NumFloors, nnod)
	}
	for _, e := range o.Elements {
		for _, v := range e.Verts {
			if _, ok := o.Nodes[v]; !ok {
				return confErr("element %d (%s) refers to inexistent node %d", e.Tag, e.Type, v)
			}
		}
	}
	return nil
}

// FloorNodes returns all nodes of a given floor, sorted by tag
func (o *Geometry) FloorNodes(floor int) (res []*Node) {
	for tag := 1; tag <= len(o.Nodes); tag++ {
		if n, ok := o.Nodes[tag]; ok && n.Floor == floor {
			res = append(res, n)
		}
	}
	return
}

// BoundaryNodes returns the nodes on the edge of the grid. floor < 0 selects
// all floors
func (o *Geometry) BoundaryNodes(floor int) (res []*Node) {
	for tag := 1; tag <= len(o.Nodes); tag++ {
		n, ok := o.Nodes[tag]
		if !ok {
			continue
		}
		if floor >= 0 && n.Floor != floor {
			continue
		}
		if n.I == 0 || n.I == o.Nx || n.J == 0 || n.J == o.Ny {
			res = append(res, n)
		}
	}
	return
}

// ElementsByType returns all elements of a given type, sorted by tag.
// floor < 0 selects all floors
func (o *Geometry) ElementsByType(etype string, floor int) (res []*Element) {
	for tag := 1; tag <= len(o.Elements); tag++ {
		e, ok := o.Elements[tag]
		if !ok {
			continue
		}
		if e.Type != etype {
			continue
		}
		if floor >= 0 && e.Floor != floor {
			continue
		}
		res = append(res, e)
	}
	return
}

// TotalHeight returns the total height of the structure
func (o *Geometry) TotalHeight() float64 {
	return float64(o.NumFloors) * o.FloorHeight
}

// FootprintArea returns the footprint area L*B
func (o *Geometry) FootprintArea() float64 {
	return o.L * o.B
}

// String returns a one-line description of the geometry
func (o *Geometry) String() string {
	return io.Sf("geometry: %d nodes, %d elements, %dx%d grid, %d floors", len(o.Nodes), len(o.Elements), o.Nx, o.Ny, o.NumFloors)
}
