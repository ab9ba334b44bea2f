// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the recovery of results (stresses, scale factor,
// strain energy) and the report writers
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/psfem/psfem/ele"
	"github.com/psfem/psfem/fem"
	"github.com/psfem/psfem/inp"
)

// constants
var (
	DirOut = "/tmp/psfem" // directory for output files
)

// StressRecovery computes the nodal stress triples of every cell:
// sig[i][n] = (sxx, syy, sxy) at local node n of cell i
func StressRecovery(dom *fem.Domain) (sig [][][]float64, err error) {
	nu := inp.DofsPerNode * inp.NodesPerCell
	sig = make([][][]float64, len(dom.Msh.Cells))
	for i, c := range dom.Msh.Cells {
		x := ele.BuildCoordsMatrix(c, dom.Msh)
		ue := make([]float64, nu)
		for l, eq := range dom.Umap(c) {
			ue[l] = dom.U[eq-1]
		}
		sig[i], err = dom.Kernel.StressAtNodes(x, &dom.Msh.Prop, ue)
		if err != nil {
			return nil, chk.Err("stress recovery of cell %d failed:\n%v", c.Id, err)
		}
	}
	return
}

// ScaleFactor returns the factor that inflates the largest displacement
// magnitude to 20% of the position norm of the node where it occurs, for
// plotting. A structure with no displacement at all cannot be scaled and is
// reported through err; callers may substitute a default.
func ScaleFactor(dom *fem.Domain) (scale float64, err error) {
	maxDisp, maxPos := 0.0, 0.0
	for _, nod := range dom.Msh.Nodes {
		for d := 0; d < inp.DofsPerNode; d++ {
			u := math.Abs(dom.U[nod.Eq[d]-1])
			if u > maxDisp {
				maxDisp = u
				maxPos = math.Hypot(nod.X[0], nod.X[1])
			}
		}
	}
	if maxDisp == 0 {
		return 0, chk.Err("degenerate scale: structure has no displacement")
	}
	scale = 0.2 * maxPos / maxDisp
	return
}
