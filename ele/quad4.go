// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/psfem/psfem/inp"
)

// Quad4 implements the planestress kernels of the 4-node isoparametric
// quadrilateral with 2x2 Gauss integration. The scratchpad fields are reused
// between calls; one Quad4 must not be shared between concurrent analyses.
type Quad4 struct {

	// scratchpad. computed @ each ip
	N     []float64   // [4] interpolation functions
	dNdrs [][]float64 // [2][4] derivatives w.r.t natural coordinates
	dNdx  [][]float64 // [2][4] derivatives w.r.t x-y coordinates
	B     [][]float64 // [3][8] strain-displacement matrix
	D     [][]float64 // [3][3] planestress elastic matrix
	eps   []float64   // [3] strains @ node
}

// NewQuad4 returns a new Quad4 kernel
func NewQuad4() (o *Quad4) {
	o = new(Quad4)
	o.N = make([]float64, inp.NodesPerCell)
	o.dNdrs = utl.Alloc(inp.Ndim, inp.NodesPerCell)
	o.dNdx = utl.Alloc(inp.Ndim, inp.NodesPerCell)
	o.B = utl.Alloc(3, inp.DofsPerNode*inp.NodesPerCell)
	o.D = utl.Alloc(3, 3)
	o.eps = make([]float64, 3)
	return
}

// Stiffness returns the local stiffness matrix:
//  Ke = sum_ip Bt * D * B * thickness * detJ * w
func (o *Quad4) Stiffness(x [][]float64, prp *inp.Properties) (Ke [][]float64, err error) {
	nu := inp.DofsPerNode * inp.NodesPerCell
	Ke = utl.Alloc(nu, nu)
	o.calcD(prp)
	for _, ip := range ipsQua4 {
		detJ, err := o.calcGrads(x, ip[0], ip[1])
		if err != nil {
			return nil, err
		}
		o.calcB()
		coef := prp.Thickness * detJ // unit ip weights
		for i := 0; i < nu; i++ {
			for j := 0; j < nu; j++ {
				for k := 0; k < 3; k++ {
					for l := 0; l < 3; l++ {
						Ke[i][j] += coef * o.B[k][i] * o.D[k][l] * o.B[l][j]
					}
				}
			}
		}
	}
	return
}

// BodyLoad returns the equivalent nodal load vector of a constant body
// force q = (qx, qy):
//  fe = sum_ip Nt * q * thickness * detJ * w
func (o *Quad4) BodyLoad(x [][]float64, q []float64, prp *inp.Properties) (fe []float64, err error) {
	fe = make([]float64, inp.DofsPerNode*inp.NodesPerCell)
	for _, ip := range ipsQua4 {
		detJ, err := o.calcGrads(x, ip[0], ip[1])
		if err != nil {
			return nil, err
		}
		ShapeFuncs(o.N, ip[0], ip[1])
		coef := prp.Thickness * detJ
		for d := 0; d < inp.DofsPerNode; d++ {
			for n := 0; n < inp.NodesPerCell; n++ {
				fe[d*inp.NodesPerCell+n] += coef * o.N[n] * q[d]
			}
		}
	}
	return
}

// StressAtNodes returns the stress triples (sxx, syy, sxy) at the local
// nodes, evaluated at the corner natural coordinates:
//  sig = D * B * ue
func (o *Quad4) StressAtNodes(x [][]float64, prp *inp.Properties, ue []float64) (sig [][]float64, err error) {
	nu := inp.DofsPerNode * inp.NodesPerCell
	if len(ue) != nu {
		return nil, chk.Err("local displacement vector must have %d components; got %d", nu, len(ue))
	}
	sig = utl.Alloc(inp.NodesPerCell, 3)
	o.calcD(prp)
	for n, rs := range NatCoords {
		_, err := o.calcGrads(x, rs[0], rs[1])
		if err != nil {
			return nil, err
		}
		o.calcB()
		for k := 0; k < 3; k++ {
			o.eps[k] = 0
			for j := 0; j < nu; j++ {
				o.eps[k] += o.B[k][j] * ue[j]
			}
		}
		for k := 0; k < 3; k++ {
			for l := 0; l < 3; l++ {
				sig[n][k] += o.D[k][l] * o.eps[l]
			}
		}
	}
	return
}

// calcD fills the planestress elastic matrix
func (o *Quad4) calcD(prp *inp.Properties) {
	c := prp.E / (1.0 - prp.Nu*prp.Nu)
	o.D[0][0] = c
	o.D[0][1] = c * prp.Nu
	o.D[0][2] = 0
	o.D[1][0] = c * prp.Nu
	o.D[1][1] = c
	o.D[1][2] = 0
	o.D[2][0] = 0
	o.D[2][1] = 0
	o.D[2][2] = c * (1.0 - prp.Nu) / 2.0
}

// calcGrads computes the x-y derivatives of the interpolation functions at
// the natural coordinates (r, s) for the cell with coordinates x [ndim][nnode]
func (o *Quad4) calcGrads(x [][]float64, r, s float64) (detJ float64, err error) {

	// Jacobian J[i][j] = dx_j/d{r,s}[i]
	ShapeDerivs(o.dNdrs, r, s)
	var J [2][2]float64
	for i := 0; i < inp.Ndim; i++ {
		for j := 0; j < inp.Ndim; j++ {
			J[i][j] = 0
			for n := 0; n < inp.NodesPerCell; n++ {
				J[i][j] += o.dNdrs[i][n] * x[j][n]
			}
		}
	}
	detJ = J[0][0]*J[1][1] - J[0][1]*J[1][0]
	if detJ <= 0 {
		return 0, chk.Err("degenerate cell geometry: det(J) = %g at (r,s) = (%g,%g)", detJ, r, s)
	}

	// dNdx = inv(J) * dNdrs
	for n := 0; n < inp.NodesPerCell; n++ {
		o.dNdx[0][n] = (+J[1][1]*o.dNdrs[0][n] - J[0][1]*o.dNdrs[1][n]) / detJ
		o.dNdx[1][n] = (-J[1][0]*o.dNdrs[0][n] + J[0][0]*o.dNdrs[1][n]) / detJ
	}
	return
}

// calcB fills the strain-displacement matrix from the current dNdx.
// Column ordering matches the local dof ordering d*nnode + n.
func (o *Quad4) calcB() {
	for n := 0; n < inp.NodesPerCell; n++ {
		o.B[0][n] = o.dNdx[0][n]
		o.B[0][inp.NodesPerCell+n] = 0
		o.B[1][n] = 0
		o.B[1][inp.NodesPerCell+n] = o.dNdx[1][n]
		o.B[2][n] = o.dNdx[1][n]
		o.B[2][inp.NodesPerCell+n] = o.dNdx[0][n]
	}
}
