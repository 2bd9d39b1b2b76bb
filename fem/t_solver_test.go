// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_numbering01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("numbering01. free DOFs first; restrained nodes last")

	o := NewStructure(nil, nil)
	n0, _ := o.AddNode(0, 0, 0)
	n1, _ := o.AddNode(1, 1, 0)
	n2, _ := o.AddNode(2, 2, 0)
	n3, _ := o.AddNode(3, 3, 0)
	n0.SetSupport(&ele.Support{Ux: true, Uy: true, Rz: true})
	n2.SetSupport(&ele.Support{Uy: true})
	n3.SetSpring(&ele.ElasticSupport{Ky: 100})

	err := o.Renumber()
	if err != nil {
		tst.Errorf("Renumber failed:\n%v", err)
		return
	}
	chk.IntAssert(o.Ndof, 8)
	chk.Ints(tst, "n1", n1.Eqs[:], []int{0, 1, 2})
	chk.Ints(tst, "n3", n3.Eqs[:], []int{3, 4, 5})
	chk.Ints(tst, "n2", n2.Eqs[:], []int{6, 8, 7})
	chk.Ints(tst, "n0", n0.Eqs[:], []int{9, 10, 11})

	// all restrained
	for _, n := range []*ele.Node{n1, n2} {
		n.SetSupport(&ele.Support{Ux: true, Uy: true, Rz: true})
	}
	n3.Spring = nil
	n3.SetSupport(&ele.Support{Ux: true, Uy: true, Rz: true})
	if o.Renumber() == nil {
		tst.Errorf("Renumber should have failed with zero DOFs\n")
	}
}

func Test_triplet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("triplet01. triplet to dense and symmetric dense")

	var t Triplet
	t.Init(3, 3, 10)
	t.Put(0, 0, 1)
	t.Put(0, 0, 2)
	t.Put(0, 1, 3)
	t.Put(1, 0, 3)
	t.Put(1, 1, 4)
	t.Put(2, 2, 5)
	t.Put(2, 1, -1)
	t.Put(1, 2, -1)
	chk.IntAssert(t.Len(), 8)
	m, n := t.Dims()
	chk.IntAssert(m, 3)
	chk.IntAssert(n, 3)

	a := t.ToDense()
	chk.Deep2(tst, "a", 1e-17, denseToSlice(a), [][]float64{
		{3, 3, 0},
		{3, 4, -1},
		{0, -1, 5},
	})
	s := t.ToSymDense()
	chk.Deep2(tst, "s", 1e-17, denseToSlice(s), [][]float64{
		{3, 3, 0},
		{3, 4, -1},
		{0, -1, 5},
	})

	// restart
	t.Start()
	t.Put(2, 0, 7)
	chk.Deep2(tst, "a", 1e-17, denseToSlice(t.ToDense()), [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{7, 0, 0},
	})
}

func Test_factorize01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factorize01. Cholesky, QR fallback and singular matrices")

	// SPD
	k := mat.NewSymDense(2, []float64{4, 1, 1, 3})
	fac, status := Factorize(k, 0)
	if status != FactorSPD {
		tst.Errorf("status should be %v; got %v\n", FactorSPD, status)
		return
	}
	x, err := fac.Solve(mat.NewVecDense(2, []float64{1, 2}))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "x(spd)", 1e-15, x.RawVector().Data, []float64{1.0 / 11.0, 7.0 / 11.0})

	// indefinite
	k = mat.NewSymDense(2, []float64{0, 1, 1, 0})
	fac, status = Factorize(k, 0)
	if status != FactorGeneral {
		tst.Errorf("status should be %v; got %v\n", FactorGeneral, status)
		return
	}
	x, err = fac.Solve(mat.NewVecDense(2, []float64{1, 2}))
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	chk.Array(tst, "x(qr)", 1e-15, x.RawVector().Data, []float64{2, 1})

	// singular
	k = mat.NewSymDense(2, nil)
	fac, status = Factorize(k, 0)
	if status != FactorSingular {
		tst.Errorf("status should be %v; got %v\n", FactorSingular, status)
		return
	}
	if _, err = fac.Solve(mat.NewVecDense(2, []float64{1, 2})); err == nil {
		tst.Errorf("Solve should have failed\n")
	}
	chk.String(tst, FactorSingular.String(), "singular")

	// positive definite but ill-conditioned
	k = mat.NewSymDense(2, []float64{1, 0, 0, 1e-12})
	if _, status = Factorize(k, 1e13); status != FactorSPD {
		tst.Errorf("status should be %v; got %v\n", FactorSPD, status)
		return
	}
	fac, status = Factorize(k, 1e10)
	io.Pforan("cond = %g\n", fac.Cond)
	if status != FactorSingular {
		tst.Errorf("status should be %v; got %v\n", FactorSingular, status)
		return
	}
	chk.Float64(tst, "cond", 1e-3, fac.Cond/1e12, 1)
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. errors")

	// no load cases
	o, _ := beam(tst, 1, "ux uy", "uy", unitSection(), ele.NoRelease)
	err := o.Solve()
	io.Pforan("%v\n", err)
	if err == nil {
		tst.Errorf("Solve should have failed without load cases\n")
		return
	}

	// isolated node
	lc := ele.NewLoadCase("D", ele.Dead)
	o.AddCase(lc)
	o.AddCase(lc)
	chk.IntAssert(len(o.Cases), 1)
	o.AddNode(7, 5, 5)
	err = o.Solve()
	io.Pforan("%v\n", err)
	if err == nil {
		tst.Errorf("Solve should have failed with isolated node\n")
		return
	}

	// all DOFs restrained
	o, _ = beam(tst, 1, "ux uy rz", "ux uy rz", unitSection(), ele.NoRelease)
	o.AddCase(lc)
	err = o.Solve()
	io.Pforan("%v\n", err)
	if err == nil {
		tst.Errorf("Solve should have failed without free DOFs\n")
		return
	}
	if o.Solved(lc) {
		tst.Errorf("results should not be recorded after failure\n")
		return
	}

	// mechanism
	o, _ = beam(tst, 1, "", "", unitSection(), ele.NoRelease)
	o.Cfg.CondMax = 1e10
	o.AddCase(lc)
	err = o.Solve()
	io.Pforan("%v\n", err)
	if err == nil {
		tst.Errorf("Solve should have failed with unsupported structure\n")
		return
	}

	// duplicates
	o, e := beam(tst, 1, "ux uy", "uy", unitSection(), ele.NoRelease)
	if _, err = o.AddNode(0, 3, 3); err == nil {
		tst.Errorf("AddNode should have failed with repeated id\n")
		return
	}
	a, b := e.Nodes()
	if _, err = o.AddFrame(0, a, b, unitSection(), ele.NoRelease); err == nil {
		tst.Errorf("AddFrame should have failed with repeated id\n")
		return
	}
	if _, err = o.AddFrame(1, a, b, nil, ele.NoRelease); err == nil {
		tst.Errorf("AddFrame should have failed without section\n")
		return
	}
	if _, err = o.AddSpring(1, a, ele.NewNode(9, 0, 0), 1, 0); err == nil {
		tst.Errorf("AddSpring should have failed with foreign node\n")
		return
	}

	// queries before solution
	if _, err = o.NodeDisplacement(a, lc); err == nil {
		tst.Errorf("NodeDisplacement should have failed before Solve\n")
		return
	}
	if _, _, err = o.ForceAt(e, lc, 0.5); err == nil {
		tst.Errorf("ForceAt should have failed before Solve\n")
		return
	}

	// unknown case after solution
	o.AddCase(lc)
	e.AddLoad(&ele.UniformLoad{Wy: -1, Case: lc})
	solve(tst, o)
	other := ele.NewLoadCase("L", ele.Live)
	if _, err = o.NodeReaction(a, other); err == nil {
		tst.Errorf("NodeReaction should have failed with unsolved case\n")
		return
	}
	if _, err = o.Segments(e, other); err == nil {
		tst.Errorf("Segments should have failed with unsolved case\n")
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. load case without loads and repeated solutions")

	o, e := beam(tst, 2, "ux uy rz", "", steelSection(), ele.NoRelease)
	empty := ele.NewLoadCase("empty", ele.Other)
	dead := ele.NewLoadCase("D", ele.Dead)
	o.AddCase(empty)
	o.AddCase(dead)
	e.AddLoad(&ele.UniformLoad{Wy: -1, Case: dead})
	solve(tst, o)

	// zero response
	segs, _ := o.Segments(e, empty)
	for _, s := range segs {
		chk.Array(tst, "F1", 1e-17, s.F1[:], nil)
		chk.Array(tst, "U2", 1e-17, s.U2[:], nil)
	}

	// solving again gives the same results
	d1, _ := o.NodeDisplacement(o.Nodes[1], dead)
	solve(tst, o)
	d2, _ := o.NodeDisplacement(o.Nodes[1], dead)
	chk.Array(tst, "d", 1e-17, d2[:], d1[:])
	chk.Float64(tst, "δ", 1e-12, d1[1], -1*16/(8*steelSection().EI()))
}

// denseToSlice converts a matrix to [][]float64
func denseToSlice(a mat.Matrix) (res [][]float64) {
	m, n := a.Dims()
	res = make([][]float64, m)
	for i := 0; i < m; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = a.At(i, j)
		}
	}
	return
}
