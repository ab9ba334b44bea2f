// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "math"

// NatCoords holds the natural coordinates (r, s) of the corner nodes of the
// quadrilateral, in local node order (counterclockwise)
var NatCoords = [][]float64{
	{-1, -1},
	{+1, -1},
	{+1, +1},
	{-1, +1},
}

// ipsQua4 holds the 2x2 Gauss integration points (weights are all 1)
var ipsQua4 [][]float64

func init() {
	g := 1.0 / math.Sqrt(3.0)
	ipsQua4 = [][]float64{
		{-g, -g},
		{+g, -g},
		{+g, +g},
		{-g, +g},
	}
}

// ShapeFuncs evaluates the bilinear interpolation functions at (r, s)
func ShapeFuncs(N []float64, r, s float64) {
	N[0] = (1.0 - r) * (1.0 - s) / 4.0
	N[1] = (1.0 + r) * (1.0 - s) / 4.0
	N[2] = (1.0 + r) * (1.0 + s) / 4.0
	N[3] = (1.0 - r) * (1.0 + s) / 4.0
}

// ShapeDerivs evaluates the derivatives of the interpolation functions with
// respect to the natural coordinates: dNdrs[i][n] = dN_n/d{r,s}[i]
func ShapeDerivs(dNdrs [][]float64, r, s float64) {
	dNdrs[0][0] = -(1.0 - s) / 4.0
	dNdrs[0][1] = +(1.0 - s) / 4.0
	dNdrs[0][2] = +(1.0 + s) / 4.0
	dNdrs[0][3] = -(1.0 + s) / 4.0
	dNdrs[1][0] = -(1.0 - r) / 4.0
	dNdrs[1][1] = -(1.0 + r) / 4.0
	dNdrs[1][2] = +(1.0 + r) / 4.0
	dNdrs[1][3] = +(1.0 - r) / 4.0
}
