// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the element kernels of the 4-node planestress
// quadrilateral: local stiffness, equivalent body load and nodal stresses
package ele

import (
	"github.com/cpmech/gosl/utl"

	"github.com/psfem/psfem/inp"
)

// Kernel computes the local mechanics of one cell. The local dof ordering of
// every input/output array is: all x components of the local nodes first,
// then all y components; i.e. index d*NodesPerCell + n holds dof d of local
// node n. The assembly location arrays follow the same ordering.
type Kernel interface {

	// Stiffness returns the [8][8] local stiffness matrix
	Stiffness(x [][]float64, prp *inp.Properties) (Ke [][]float64, err error)

	// BodyLoad returns the [8] equivalent nodal load vector of a constant
	// body force q = (qx, qy)
	BodyLoad(x [][]float64, q []float64, prp *inp.Properties) (fe []float64, err error)

	// StressAtNodes returns the [4][3] stress triples (sxx, syy, sxy) at the
	// local nodes for given local displacements ue
	StressAtNodes(x [][]float64, prp *inp.Properties, ue []float64) (sig [][]float64, err error)
}

// BuildCoordsMatrix returns the [ndim][nnode] matrix of nodal coordinates of
// one cell, ordered per connectivity
func BuildCoordsMatrix(c *inp.Cell, msh *inp.Mesh) (x [][]float64) {
	x = utl.Alloc(inp.Ndim, inp.NodesPerCell)
	for n, v := range c.Verts {
		for i := 0; i < inp.Ndim; i++ {
			x[i][n] = msh.Nodes[v].X[i]
		}
	}
	return
}
