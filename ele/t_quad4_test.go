// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/psfem/psfem/inp"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unitSquare returns the coordinates of a unit square cell
func unitSquare() [][]float64 {
	return [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
}

// distorted returns the coordinates of a distorted but convex quadrilateral
func distorted() [][]float64 {
	return [][]float64{
		{0, 2, 2.2, -0.1},
		{0, 0.2, 1.5, 1.2},
	}
}

func Test_quad401(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad401. stiffness: symmetry and rigid-body modes")

	prp := &inp.Properties{Thickness: 1, E: 100, Nu: 0.25}
	o := NewQuad4()
	for label, x := range map[string][][]float64{"square": unitSquare(), "distorted": distorted()} {

		Ke, err := o.Stiffness(x, prp)
		if err != nil {
			tst.Errorf("%s: Stiffness failed:\n%v", label, err)
			return
		}

		// symmetry
		nu := len(Ke)
		KeT := utl.Alloc(nu, nu)
		for i := 0; i < nu; i++ {
			for j := 0; j < nu; j++ {
				KeT[i][j] = Ke[j][i]
			}
		}
		chk.Deep2(tst, io.Sf("%s: Ke symmetry", label), 1e-10, Ke, KeT)

		// rigid translations produce no forces
		for d := 0; d < inp.DofsPerNode; d++ {
			f := make([]float64, nu)
			for i := 0; i < nu; i++ {
				for n := 0; n < inp.NodesPerCell; n++ {
					f[i] += Ke[i][d*inp.NodesPerCell+n]
				}
			}
			chk.Array(tst, io.Sf("%s: Ke * translation%d", label, d), 1e-10, f, make([]float64, nu))
		}
	}
}

func Test_quad402(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad402. equivalent nodal load of constant body force")

	prp := &inp.Properties{Thickness: 2, E: 100, Nu: 0.25}
	o := NewQuad4()
	fe, err := o.BodyLoad(unitSquare(), []float64{2, 3}, prp)
	if err != nil {
		tst.Errorf("BodyLoad failed:\n%v", err)
		return
	}

	// q * thickness * area / 4 per node and direction
	chk.Array(tst, "fe", 1e-13, fe, []float64{1, 1, 1, 1, 1.5, 1.5, 1.5, 1.5})
}

func Test_quad403(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad403. degenerate geometry")

	prp := &inp.Properties{Thickness: 1, E: 100, Nu: 0.25}
	x := [][]float64{ // collinear nodes: zero area
		{0, 1, 2, 3},
		{0, 0, 0, 0},
	}
	o := NewQuad4()
	if _, err := o.Stiffness(x, prp); err == nil {
		tst.Errorf("error expected for zero-area cell")
		return
	}
	if _, err := o.BodyLoad(x, []float64{1, 0}, prp); err == nil {
		tst.Errorf("error expected for zero-area cell")
		return
	}
	if _, err := o.StressAtNodes(x, prp, make([]float64, 8)); err == nil {
		tst.Errorf("error expected for zero-area cell")
	}
}

func Test_quad404(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad404. stresses of a uniform strain field")

	// impose ux = 0.01*x, uy = 0 on the unit square
	prp := &inp.Properties{Thickness: 1, E: 100, Nu: 0.25}
	ue := []float64{0, 0.01, 0.01, 0, 0, 0, 0, 0}
	o := NewQuad4()
	sig, err := o.StressAtNodes(unitSquare(), prp, ue)
	if err != nil {
		tst.Errorf("StressAtNodes failed:\n%v", err)
		return
	}

	// sig = D * (0.01, 0, 0) at every node
	c := prp.E / (1.0 - prp.Nu*prp.Nu)
	for n := 0; n < inp.NodesPerCell; n++ {
		chk.Array(tst, io.Sf("sig @ node %d", n), 1e-12, sig[n], []float64{c * 0.01, c * prp.Nu * 0.01, 0})
	}
}
