// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/psfem/psfem/inp"
)

// Dof is one node-dof pair: the tag tells the two partitions apart and Eq
// carries the 1-based global equation number shared by both.
//
// The numbering keeps the two partitions contiguous: free equations occupy
// [1, Nfree] ascending in traversal order; fixed equations occupy
// [Nfree+1, Ntotal], assigned in traversal order but descending from Ntotal.
// The reduced system is then simply the leading Nfree entries of the global
// vectors, with no extra bookkeeping during assembly.
type Dof struct {
	Fixed bool // fixed at zero (homogeneous essential boundary condition)
	Eq    int  // 1-based global equation number
}

// AssignDofs numbers every node-dof pair of the mesh, mutating Node.Eq in
// place, and sets Ntotal, Nfree and Nfixed
func (o *Domain) AssignDofs() {
	nnodes := len(o.Msh.Nodes)
	o.Ntotal = nnodes * inp.DofsPerNode
	o.Dofs = make([][]Dof, nnodes)
	f, k := 0, 0
	for m, nod := range o.Msh.Nodes {
		o.Dofs[m] = make([]Dof, inp.DofsPerNode)
		for d := 0; d < inp.DofsPerNode; d++ {
			if nod.Bc[d] == 0 {
				f++
				o.Dofs[m][d] = Dof{Fixed: false, Eq: f}
			} else {
				k++
				o.Dofs[m][d] = Dof{Fixed: true, Eq: o.Ntotal - k + 1}
			}
			nod.Eq[d] = o.Dofs[m][d].Eq
		}
	}
	o.Nfree = f
	o.Nfixed = k
}

// CellDofs returns the dofs of one cell ordered per the kernel's local dof
// convention: index d*NodesPerCell + n holds dof d of local node n
func (o *Domain) CellDofs(c *inp.Cell) (dofs []Dof) {
	dofs = make([]Dof, inp.DofsPerNode*inp.NodesPerCell)
	for d := 0; d < inp.DofsPerNode; d++ {
		for n, v := range c.Verts {
			dofs[d*inp.NodesPerCell+n] = o.Dofs[v][d]
		}
	}
	return
}

// Umap returns the location array of one cell: the global equation numbers
// in the kernel's local dof ordering
func (o *Domain) Umap(c *inp.Cell) (umap []int) {
	dofs := o.CellDofs(c)
	umap = make([]int, len(dofs))
	for i, dof := range dofs {
		umap[i] = dof.Eq
	}
	return
}
