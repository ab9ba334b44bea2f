// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"

	"github.com/psfem/psfem/ele"
	"github.com/psfem/psfem/inp"
)

// AssembleKt accumulates the reduced global stiffness matrix from the local
// matrices of all cells. Contributions touching a fixed dof are dropped:
// with fixed displacements identically zero, dropping the row and column is
// exactly the elimination of the essential boundary conditions.
// AssignDofs must have been called; Kt is sized here, exactly once.
func (o *Domain) AssembleKt() (err error) {
	if o.Nfree > 0 {
		o.Kt = mat.NewDense(o.Nfree, o.Nfree, nil)
	}
	for _, c := range o.Msh.Cells {
		x := ele.BuildCoordsMatrix(c, o.Msh)
		Ke, err := o.Kernel.Stiffness(x, &o.Msh.Prop)
		if err != nil {
			return chk.Err("stiffness of cell %d failed:\n%v", c.Id, err)
		}
		if o.KeSink != nil {
			o.KeSink(c.Id, Ke)
		}
		dofs := o.CellDofs(c)
		for p, dp := range dofs {
			if dp.Fixed {
				continue
			}
			for q, dq := range dofs {
				if dq.Fixed {
					continue
				}
				i, j := dp.Eq-1, dq.Eq-1
				o.Kt.Set(i, j, o.Kt.At(i, j)+Ke[p][q])
			}
		}
	}
	return
}

// AssembleR builds the global load vector: direct nodal loads first
// (overwrite: a node specifies the total applied component at its equation),
// then the body-force-equivalent loads of all cells (accumulate). All
// entries are computed; the solve later consumes only the free block.
func (o *Domain) AssembleR() (err error) {
	o.R = make([]float64, o.Ntotal)
	for m, nod := range o.Msh.Nodes {
		for d := 0; d < inp.DofsPerNode; d++ {
			o.R[o.Dofs[m][d].Eq-1] = nod.Pm[d]
		}
	}
	for _, c := range o.Msh.Cells {
		x := ele.BuildCoordsMatrix(c, o.Msh)
		fe, err := o.Kernel.BodyLoad(x, c.Q[:], &o.Msh.Prop)
		if err != nil {
			return chk.Err("body load of cell %d failed:\n%v", c.Id, err)
		}
		for l, dof := range o.CellDofs(c) {
			o.R[dof.Eq-1] += fe[l]
		}
	}
	return
}
