// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Psfem computes the static response of 2D planestress structures
// discretized with 4-node quadrilateral elements
package main

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/psfem/psfem/fem"
	"github.com/psfem/psfem/inp"
	"github.com/psfem/psfem/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/patch", ".dat", true)
	verbose := io.ArgToBool(1, true)
	refEnergy := io.ArgToFloat(2, math.NaN())

	// message
	if verbose {
		io.PfWhite("\nPsfem -- planestress FEM with 4-node quadrilaterals\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"mesh filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"reference strain energy", "refEnergy", refEnergy,
		))
	}

	// read mesh
	msh, err := inp.ReadMesh(fnamepath)
	if err != nil {
		chk.Panic("cannot read mesh:\n%v", err)
	}
	if verbose {
		io.Pf("> %d nodes and %d cells read\n", len(msh.Nodes), len(msh.Cells))
	}

	// run analysis
	dom := fem.NewDomain(msh)
	dom.Verbose = verbose
	rep := out.NewReport(dom, fnkey)
	if err := dom.Run(); err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// reports; written only after the whole pipeline succeeded
	if err := rep.Build(); err != nil {
		chk.Panic("cannot build reports:\n%v", err)
	}
	rep.Save()

	// summary
	energy := dom.Energy()
	io.Pf("\nstrain energy = %23.10e\n", energy)
	if !math.IsNaN(refEnergy) {
		io.Pf("reference     = %23.10e (diff = %g)\n", refEnergy, math.Abs(energy-refEnergy))
	}
	if verbose {
		io.PfGreen("> Success\n")
	}
}
