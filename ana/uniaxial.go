// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the numerical
// results
package ana

// Uniaxial computes the exact planestress solution of a membrane stretched
// along x by a uniform axial stress, with the left edge kept at ux = 0
type Uniaxial struct {
	Sx float64 // uniform axial stress
	E  float64 // Young's modulus
	Nu float64 // Poisson's ratio
}

// Displ returns the displacements at (x, y)
func (o *Uniaxial) Displ(x, y float64) (ux, uy float64) {
	ux = o.Sx / o.E * x
	uy = -o.Nu * o.Sx / o.E * y
	return
}

// Stress returns the uniform stress components
func (o *Uniaxial) Stress() (sxx, syy, sxy float64) {
	return o.Sx, 0, 0
}

// Energy returns the strain energy stored in the volume v
func (o *Uniaxial) Energy(v float64) float64 {
	return 0.5 * o.Sx * o.Sx / o.E * v
}
