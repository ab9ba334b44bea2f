// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/psfem/psfem/lin"
)

// Solve factorizes the reduced stiffness matrix and solves for the free
// displacements. U is allocated here with full length; the fixed entries
// are never written and remain zero.
func (o *Domain) Solve() (err error) {
	o.U = make([]float64, o.Ntotal)
	if o.Nfree == 0 {
		return // fully fixed structure
	}
	fac, err := lin.Factorize(o.Kt)
	if err != nil {
		return chk.Err("cannot factorize reduced stiffness matrix:\n%v", err)
	}
	ufree, err := fac.Apply(o.R[:o.Nfree])
	if err != nil {
		return chk.Err("cannot solve reduced system:\n%v", err)
	}
	copy(o.U, ufree)
	return
}

// Energy returns the total strain energy 0.5 * R . U over the full vectors.
// Fixed entries of U are zero and do not contribute.
func (o *Domain) Energy() float64 {
	return 0.5 * floats.Dot(o.R, o.U)
}
