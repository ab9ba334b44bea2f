// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"

	"github.com/psfem/psfem/fem"
)

// Report composes the three output artifacts of one analysis:
//  <key>-kmats.txt   -- per-cell local stiffness dump
//  <key>-results.txt -- equation table, strain energy, displacements, stresses
//  <key>-viz.txt     -- visualization records for post-processing
// Everything is buffered; Save flushes all files together so that either the
// full report set is written or none is.
type Report struct {

	// input
	Dom *fem.Domain // the analysis
	Key string      // base name for the output files

	// buffers
	kmats bytes.Buffer // local stiffness dump
	res   bytes.Buffer // results report
	viz   bytes.Buffer // visualization file
}

// NewReport returns a new Report and hooks the stiffness dump into the
// domain's assembly diagnostics
func NewReport(dom *fem.Domain, key string) (o *Report) {
	o = new(Report)
	o.Dom = dom
	o.Key = key
	dom.KeSink = o.AddKe
	return
}

// AddKe appends one local stiffness matrix to the diagnostic dump
func (o *Report) AddKe(cid int, Ke [][]float64) {
	n := len(Ke)
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, Ke[i][j])
		}
	}
	io.Ff(&o.kmats, "K of cell %d:\n%.6v\n\n", cid, mat.Formatted(a, mat.Prefix("  "), mat.Squeeze()))
}

// Build composes the results and visualization reports. It must be called
// after the solve; a degenerate scale factor is reported as a warning and
// replaced by 1.
func (o *Report) Build() (err error) {
	dom := o.Dom

	// stress recovery
	sig, err := StressRecovery(dom)
	if err != nil {
		return
	}

	// visualization scale factor
	scale, err := ScaleFactor(dom)
	if err != nil {
		io.Pfred("warning: %v => using scale factor = 1\n", err)
		scale = 1
		err = nil
	}

	// equation numbering table
	io.Ff(&o.res, "equation numbers (%d total: %d free + %d fixed)\n", dom.Ntotal, dom.Nfree, dom.Nfixed)
	io.Ff(&o.res, "%6s%8s%8s\n", "node", "eqx", "eqy")
	for _, nod := range dom.Msh.Nodes {
		io.Ff(&o.res, "%6d%8d%8d\n", nod.Id, nod.Eq[0], nod.Eq[1])
	}

	// strain energy
	io.Ff(&o.res, "\nstrain energy = %23.10e\n", dom.Energy())

	// displacements
	io.Ff(&o.res, "\ndisplacements\n")
	io.Ff(&o.res, "%6s%23s%23s\n", "node", "ux", "uy")
	for _, nod := range dom.Msh.Nodes {
		io.Ff(&o.res, "%6d%23.10e%23.10e\n", nod.Id, dom.U[nod.Eq[0]-1], dom.U[nod.Eq[1]-1])
	}

	// stresses
	io.Ff(&o.res, "\nstresses\n")
	io.Ff(&o.res, "%6s%6s%23s%23s%23s\n", "cell", "node", "sxx", "syy", "sxy")
	for i, c := range dom.Msh.Cells {
		for n, v := range c.Verts {
			io.Ff(&o.res, "%6d%6d%23.10e%23.10e%23.10e\n", c.Id, dom.Msh.Nodes[v].Id,
				sig[i][n][0], sig[i][n][1], sig[i][n][2])
		}
	}

	// visualization file: cell count, scale factor, then per cell 4 records
	// of position, displacement pair and stress triple
	io.Ff(&o.viz, "%d\n", len(dom.Msh.Cells))
	io.Ff(&o.viz, "%23.10e\n", scale)
	for i, c := range dom.Msh.Cells {
		for n, v := range c.Verts {
			nod := dom.Msh.Nodes[v]
			io.Ff(&o.viz, "%23.10e%23.10e%23.10e%23.10e%23.10e%23.10e%23.10e\n",
				nod.X[0], nod.X[1],
				dom.U[nod.Eq[0]-1], dom.U[nod.Eq[1]-1],
				sig[i][n][0], sig[i][n][1], sig[i][n][2])
		}
	}
	return
}

// Save writes all report files at once. Nothing must be saved if the
// pipeline or Build failed earlier.
func (o *Report) Save() {
	io.WriteFileVD(DirOut, io.Sf("%s-kmats.txt", o.Key), &o.kmats)
	io.WriteFileVD(DirOut, io.Sf("%s-results.txt", o.Key), &o.res)
	io.WriteFileVD(DirOut, io.Sf("%s-viz.txt", o.Key), &o.viz)
}
