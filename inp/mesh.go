// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data records and the mesh file reader
package inp

import (
	"github.com/cpmech/gosl/chk"
)

// constants fixed by the element family (4-node planestress quadrilateral)
const (
	Ndim         = 2 // spatial dimension
	DofsPerNode  = 2 // number of unknowns per node: ux and uy
	NodesPerCell = 4 // number of nodes per cell
)

// Node holds the input data and the equation numbers of one mesh vertex
type Node struct {

	// input data
	Id int                  // id
	X  [Ndim]float64        // position coordinates
	Bc [DofsPerNode]int     // boundary flags: 0 => free, nonzero => fixed at zero
	Pm [DofsPerNode]float64 // applied nodal load components

	// derived
	Eq [DofsPerNode]int // 1-based global equation numbers; set by fem.Domain.AssignDofs
}

// Cell holds the connectivity and body-load data of one quadrilateral cell
type Cell struct {
	Id    int               // id
	Verts [NodesPerCell]int // indices into Mesh.Nodes; defines the local node order
	Q     [Ndim]float64     // constant body-load parameters (qx, qy)
}

// Properties holds the single material applied uniformly to all cells
type Properties struct {
	Thickness float64 // membrane thickness
	E         float64 // Young's modulus
	Nu        float64 // Poisson's ratio
}

// Mesh holds all nodes, cells and material data of one analysis
type Mesh struct {

	// input data
	Nodes []*Node    // all nodes
	Cells []*Cell    // all cells
	Prop  Properties // material properties

	// maps
	Vid2node map[int]int // node id => index in Nodes
}

// Ntotal returns the total number of node-dof pairs
func (o *Mesh) Ntotal() int {
	return len(o.Nodes) * DofsPerNode
}

// Check verifies the mesh records after reading
func (o *Mesh) Check() (err error) {
	if len(o.Nodes) < NodesPerCell {
		return chk.Err("mesh needs at least %d nodes; got %d", NodesPerCell, len(o.Nodes))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh has no cells")
	}
	for _, c := range o.Cells {
		for _, v := range c.Verts {
			if v < 0 || v >= len(o.Nodes) {
				return chk.Err("cell %d references inexistent node index %d", c.Id, v)
			}
		}
	}
	if o.Prop.Thickness <= 0 {
		return chk.Err("thickness must be positive; got %g", o.Prop.Thickness)
	}
	if o.Prop.E <= 0 {
		return chk.Err("Young's modulus must be positive; got %g", o.Prop.E)
	}
	if o.Prop.Nu <= -1 || o.Prop.Nu >= 0.5 {
		return chk.Err("Poisson's ratio must be within (-1, 0.5); got %g", o.Prop.Nu)
	}
	return
}
