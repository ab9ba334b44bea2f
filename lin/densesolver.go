// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lin implements the direct solution of dense linear systems via LU
// factorization, split into an explicit factorize step and an apply step
package lin

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Factorization holds the LU decomposition of a square matrix, ready to be
// applied to right-hand sides
type Factorization struct {
	lu mat.LU
	n  int
}

// Factorize computes the LU decomposition of the square matrix a. The input
// matrix is not modified. A singular matrix is a fatal condition reported
// through err; no regularization is attempted.
func Factorize(a *mat.Dense) (o *Factorization, err error) {
	m, n := a.Dims()
	if m != n {
		return nil, chk.Err("matrix must be square; got %d x %d", m, n)
	}
	if n < 1 {
		return nil, chk.Err("matrix must have at least one equation")
	}
	o = new(Factorization)
	o.n = n
	o.lu.Factorize(a)
	if c := o.lu.Cond(); math.IsInf(c, 1) || math.IsNaN(c) {
		return nil, chk.Err("system matrix is singular")
	}
	return
}

// N returns the dimension of the factorized system
func (o *Factorization) N() int { return o.n }

// Apply solves the original system for one right-hand side b
func (o *Factorization) Apply(b []float64) (x []float64, err error) {
	if len(b) != o.n {
		return nil, chk.Err("right-hand side must have %d components; got %d", o.n, len(b))
	}
	var xv mat.VecDense
	if e := o.lu.SolveVecTo(&xv, false, mat.NewVecDense(o.n, b)); e != nil {
		return nil, chk.Err("system matrix is singular or badly conditioned:\n%v", e)
	}
	x = make([]float64, o.n)
	for i := 0; i < o.n; i++ {
		x[i] = xv.AtVec(i)
	}
	return
}
