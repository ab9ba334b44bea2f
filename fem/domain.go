// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the static planestress pipeline: equation
// numbering, assembly of the reduced stiffness matrix and load vector,
// and the direct solution for nodal displacements
package fem

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/psfem/psfem/ele"
	"github.com/psfem/psfem/inp"
)

// Domain holds all data for one static planestress analysis
type Domain struct {

	// input
	Msh     *inp.Mesh  // mesh and material data
	Kernel  ele.Kernel // element kernel; quad4 planestress by default
	Verbose bool       // show messages

	// dof numbering
	Dofs   [][]Dof // [nnodes][ndofs] tagged equation numbers
	Ntotal int     // total number of equations
	Nfree  int     // number of free (solved for) equations
	Nfixed int     // number of fixed (zero) equations

	// linear system
	Kt *mat.Dense // [nfree][nfree] global stiffness reduced to the free dofs
	R  []float64  // [ntotal] global load vector
	U  []float64  // [ntotal] global displacements; fixed entries remain zero

	// diagnostics
	KeSink func(cid int, Ke [][]float64) // receives each local stiffness matrix before assembly
}

// NewDomain returns a new Domain for the given mesh, with the quad4
// planestress kernel attached
func NewDomain(msh *inp.Mesh) (o *Domain) {
	o = new(Domain)
	o.Msh = msh
	o.Kernel = ele.NewQuad4()
	return
}

// Run executes the whole pipeline: numbering, assembly of Kt and R, and the
// direct solve for U
func (o *Domain) Run() (err error) {
	o.AssignDofs()
	if o.Verbose {
		io.Pf("> %d equations: %d free + %d fixed\n", o.Ntotal, o.Nfree, o.Nfixed)
	}
	if err = o.AssembleKt(); err != nil {
		return
	}
	if err = o.AssembleR(); err != nil {
		return
	}
	if o.Verbose {
		io.Pf("> assembly completed\n")
	}
	if err = o.Solve(); err != nil {
		return
	}
	if o.Verbose {
		io.Pf("> solution completed\n")
	}
	return
}
