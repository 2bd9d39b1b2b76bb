// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Triplet is a simple sparse matrix in coordinate format. Repeated (i,j) entries
// are summed up when converting to a dense matrix
type Triplet struct {
	m, n int       // dimensions
	pos  int       // current position and number of entries
	max  int       // maximum number of entries
	i, j []int     // indices
	x    []float64 // values
}

// Init allocates all memory required to hold a sparse matrix in triplet form
func (o *Triplet) Init(m, n, max int) {
	o.m, o.n, o.pos, o.max = m, n, 0, max
	o.i = make([]int, max)
	o.j = make([]int, max)
	o.x = make([]float64, max)
}

// Start (re)starts the index for inserting items using the Put command
func (o *Triplet) Start() {
	o.pos = 0
}

// Put inserts an element at (i,j)
func (o *Triplet) Put(i, j int, x float64) {
	if o.pos >= o.max {
		chk.Panic("cannot put item because max number of items has been exceeded (pos = %d, max = %d)", o.pos, o.max)
	}
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot put item (%d,%d) in %d×%d matrix", i, j, o.m, o.n)
	}
	o.i[o.pos], o.j[o.pos], o.x[o.pos] = i, j, x
	o.pos++
}

// Len returns the number of entries
func (o *Triplet) Len() int { return o.pos }

// Dims returns the dimensions
func (o *Triplet) Dims() (m, n int) { return o.m, o.n }

// ToDense returns the dense form of this matrix
func (o *Triplet) ToDense() *mat.Dense {
	a := mat.NewDense(o.m, o.n, nil)
	for k := 0; k < o.pos; k++ {
		a.Set(o.i[k], o.j[k], a.At(o.i[k], o.j[k])+o.x[k])
	}
	return a
}

// ToSymDense returns the symmetric dense form of this matrix built from the upper triangle
//  Note: the caller must put both (i,j) and (j,i) entries; those with i > j are ignored
func (o *Triplet) ToSymDense() *mat.SymDense {
	if o.m != o.n {
		chk.Panic("cannot convert %d×%d triplet to symmetric matrix", o.m, o.n)
	}
	a := mat.NewSymDense(o.m, nil)
	for k := 0; k < o.pos; k++ {
		i, j := o.i[k], o.j[k]
		if i > j {
			continue
		}
		a.SetSym(i, j, a.At(i, j)+o.x[k])
	}
	return a
}
