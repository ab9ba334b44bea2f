// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/psfem/psfem/inp"
)

// stubKernel returns constant local arrays, for assembly tests
type stubKernel struct {
	ke [][]float64 // local stiffness to return
	fe []float64   // local load to return; nil means zeros
}

func (o *stubKernel) Stiffness(x [][]float64, prp *inp.Properties) ([][]float64, error) {
	return o.ke, nil
}

func (o *stubKernel) BodyLoad(x [][]float64, q []float64, prp *inp.Properties) ([]float64, error) {
	if o.fe == nil {
		return make([]float64, inp.DofsPerNode*inp.NodesPerCell), nil
	}
	return o.fe, nil
}

func (o *stubKernel) StressAtNodes(x [][]float64, prp *inp.Properties, ue []float64) ([][]float64, error) {
	return utl.Alloc(inp.NodesPerCell, 3), nil
}

// onesMatrix returns an n x n matrix filled with ones
func onesMatrix(n int) (a [][]float64) {
	a = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = 1
		}
	}
	return
}

// identityMatrix returns the n x n identity
func identityMatrix(n int) (a [][]float64) {
	a = utl.Alloc(n, n)
	for i := 0; i < n; i++ {
		a[i][i] = 1
	}
	return
}

// ktToMatrix extracts the assembled Kt into a [][]float64
func ktToMatrix(dom *Domain) (a [][]float64) {
	a = utl.Alloc(dom.Nfree, dom.Nfree)
	for i := 0; i < dom.Nfree; i++ {
		for j := 0; j < dom.Nfree; j++ {
			a[i][j] = dom.Kt.At(i, j)
		}
	}
	return
}

func Test_assembly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly01. fixed contributions are dropped")

	dom := NewDomain(smallMesh())
	dom.Kernel = &stubKernel{ke: onesMatrix(8)}
	dom.AssignDofs()
	if err := dom.AssembleKt(); err != nil {
		tst.Errorf("AssembleKt failed:\n%v", err)
		return
	}

	// with a local matrix of ones, each entry of Kt must equal the number of
	// cells whose free equations include both the row and the column; any
	// contribution touching a fixed dof must not appear
	cellFreeEqs := [][]int{
		{1, 7, 9, 2, 8},          // cell 1: eqs 12, 11 and 10 are fixed
		{1, 3, 5, 7, 2, 4, 6, 8}, // cell 2: all free
	}
	expected := utl.Alloc(dom.Nfree, dom.Nfree)
	for _, eqs := range cellFreeEqs {
		for _, a := range eqs {
			for _, b := range eqs {
				expected[a-1][b-1]++
			}
		}
	}
	chk.Deep2(tst, "Kt", 1e-15, ktToMatrix(dom), expected)
}

func Test_assembly02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly02. load vector: overwrite then accumulate")

	msh := smallMesh()
	msh.Nodes[1].Pm = [2]float64{10, 20}
	dom := NewDomain(msh)
	dom.Kernel = &stubKernel{ke: identityMatrix(8), fe: []float64{1, 2, 3, 4, 5, 6, 7, 8}}
	dom.AssignDofs()
	if err := dom.AssembleR(); err != nil {
		tst.Errorf("AssembleR failed:\n%v", err)
		return
	}

	// nodal loads land at the node equations; the stub cell loads are then
	// accumulated through the location arrays of both cells, fixed dofs
	// included (umaps: cell 1 => 12,1,7,9,11,2,8,10; cell 2 => 1,3,5,7,2,4,6,8)
	chk.Array(tst, "R", 1e-15, dom.R, []float64{13, 31, 2, 6, 3, 7, 7, 15, 4, 8, 5, 1})
}

func Test_assembly03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly03. round-trip with identity stub kernel")

	msh := smallMesh()
	msh.Nodes[1].Pm = [2]float64{2, 4}
	msh.Nodes[2].Pm = [2]float64{1, 1}
	msh.Nodes[3].Pm = [2]float64{3, 3}
	msh.Nodes[4].Pm = [2]float64{4, 6}
	msh.Nodes[5].Pm = [2]float64{5, 0}
	dom := NewDomain(msh)
	dom.Kernel = &stubKernel{ke: identityMatrix(8)}
	if err := dom.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// Kt is diagonal holding the cell multiplicity of each free equation
	diag := []float64{2, 2, 1, 1, 1, 1, 2, 2, 1}
	expected := utl.Alloc(dom.Nfree, dom.Nfree)
	for i, v := range diag {
		expected[i][i] = v
	}
	chk.Deep2(tst, "Kt", 1e-15, ktToMatrix(dom), expected)

	// U = R / diag on the free block; fixed entries stay zero
	chk.Array(tst, "U", 1e-14, dom.U, []float64{1, 2, 1, 1, 3, 3, 2, 3, 5, 0, 0, 0})
	chk.Float64(tst, "energy", 1e-13, dom.Energy(), 40.5)
}

func Test_assembly04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembly04. symmetry with the quad4 kernel")

	dom := NewDomain(smallMesh())
	ndumped := 0
	dom.KeSink = func(cid int, Ke [][]float64) { ndumped++ }
	dom.AssignDofs()
	if err := dom.AssembleKt(); err != nil {
		tst.Errorf("AssembleKt failed:\n%v", err)
		return
	}
	chk.IntAssert(ndumped, len(dom.Msh.Cells))

	a := ktToMatrix(dom)
	at := utl.Alloc(dom.Nfree, dom.Nfree)
	for i := 0; i < dom.Nfree; i++ {
		for j := 0; j < dom.Nfree; j++ {
			at[i][j] = a[j][i]
		}
	}
	chk.Deep2(tst, "Kt symmetry", 1e-10, a, at)
}
