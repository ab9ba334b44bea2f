// Copyright 2017 The Psfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// ReadMesh reads a mesh file with three sections, each preceded by one
// header line (skipped):
//  1. node count, then per node: id x y bcX bcY loadX loadY
//  2. cell count, then per cell: id n1 n2 n3 n4 qx qy
//  3. three scalar records: thickness, Young's modulus, Poisson's ratio
// Node ids are arbitrary positive integers; connectivity references node ids.
func ReadMesh(fn string) (msh *Mesh, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot open mesh file %q:\n%v", fn, err)
	}
	msh, err = parseMesh(b)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}
	return
}

// parseMesh parses the raw content of a mesh file
func parseMesh(b []byte) (msh *Mesh, err error) {
	r := reader{lines: strings.Split(string(b), "\n")}
	msh = new(Mesh)
	msh.Vid2node = make(map[int]int)

	// section 1: nodes
	if err = r.header(); err != nil {
		return
	}
	nn, err := r.count("node")
	if err != nil {
		return
	}
	msh.Nodes = make([]*Node, nn)
	for i := 0; i < nn; i++ {
		f, lnum, e := r.record(7)
		if e != nil {
			return nil, e
		}
		nod := new(Node)
		if nod.Id, err = r.atoi(f[0], lnum); err != nil {
			return
		}
		for d := 0; d < Ndim; d++ {
			if nod.X[d], err = r.atof(f[1+d], lnum); err != nil {
				return
			}
		}
		for d := 0; d < DofsPerNode; d++ {
			if nod.Bc[d], err = r.atoi(f[3+d], lnum); err != nil {
				return
			}
			if nod.Pm[d], err = r.atof(f[5+d], lnum); err != nil {
				return
			}
		}
		if _, ok := msh.Vid2node[nod.Id]; ok {
			return nil, chk.Err("line %d: duplicate node id %d", lnum, nod.Id)
		}
		msh.Vid2node[nod.Id] = i
		msh.Nodes[i] = nod
	}

	// section 2: cells
	if err = r.header(); err != nil {
		return
	}
	nc, err := r.count("cell")
	if err != nil {
		return
	}
	msh.Cells = make([]*Cell, nc)
	cids := make(map[int]bool)
	for i := 0; i < nc; i++ {
		f, lnum, e := r.record(1 + NodesPerCell + Ndim)
		if e != nil {
			return nil, e
		}
		c := new(Cell)
		if c.Id, err = r.atoi(f[0], lnum); err != nil {
			return
		}
		if cids[c.Id] {
			return nil, chk.Err("line %d: duplicate cell id %d", lnum, c.Id)
		}
		cids[c.Id] = true
		for n := 0; n < NodesPerCell; n++ {
			vid, e := r.atoi(f[1+n], lnum)
			if e != nil {
				return nil, e
			}
			idx, ok := msh.Vid2node[vid]
			if !ok {
				return nil, chk.Err("line %d: cell %d references unknown node id %d", lnum, c.Id, vid)
			}
			c.Verts[n] = idx
		}
		for d := 0; d < Ndim; d++ {
			if c.Q[d], err = r.atof(f[1+NodesPerCell+d], lnum); err != nil {
				return
			}
		}
		msh.Cells[i] = c
	}

	// section 3: properties
	if err = r.header(); err != nil {
		return
	}
	if msh.Prop.Thickness, err = r.scalar(); err != nil {
		return
	}
	if msh.Prop.E, err = r.scalar(); err != nil {
		return
	}
	if msh.Prop.Nu, err = r.scalar(); err != nil {
		return
	}

	err = msh.Check()
	return
}

// reader walks the input lines keeping track of line numbers for messages
type reader struct {
	lines []string
	pos   int // index of next line
}

// next returns the fields of the next nonblank line
func (o *reader) next() (fields []string, lnum int, err error) {
	for o.pos < len(o.lines) {
		line := o.lines[o.pos]
		o.pos++
		fields = strings.Fields(line)
		if len(fields) > 0 {
			return fields, o.pos, nil
		}
	}
	return nil, o.pos, chk.Err("premature end of file")
}

// header consumes one section header line
func (o *reader) header() (err error) {
	_, _, err = o.next()
	return
}

// count reads a record count line
func (o *reader) count(kind string) (n int, err error) {
	f, lnum, err := o.next()
	if err != nil {
		return
	}
	if len(f) != 1 {
		return 0, chk.Err("line %d: %s count must be a single integer", lnum, kind)
	}
	if n, err = o.atoi(f[0], lnum); err != nil {
		return
	}
	if n < 1 {
		return 0, chk.Err("line %d: %s count must be positive; got %d", lnum, kind, n)
	}
	return
}

// record reads one line with exactly nfields fields
func (o *reader) record(nfields int) (fields []string, lnum int, err error) {
	fields, lnum, err = o.next()
	if err != nil {
		return
	}
	if len(fields) != nfields {
		return nil, lnum, chk.Err("line %d: record must have %d fields; got %d", lnum, nfields, len(fields))
	}
	return
}

// scalar reads one line with a single real number
func (o *reader) scalar() (v float64, err error) {
	f, lnum, err := o.record(1)
	if err != nil {
		return
	}
	return o.atof(f[0], lnum)
}

func (o *reader) atoi(s string, lnum int) (i int, err error) {
	i, e := strconv.Atoi(s)
	if e != nil {
		return 0, chk.Err("line %d: cannot parse integer from %q", lnum, s)
	}
	return
}

func (o *reader) atof(s string, lnum int) (v float64, err error) {
	v, e := strconv.ParseFloat(s, 64)
	if e != nil {
		return 0, chk.Err("line %d: cannot parse number from %q", lnum, s)
	}
	return
}
