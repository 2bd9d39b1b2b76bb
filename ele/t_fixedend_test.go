// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fef01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fef01. fixed-end forces of horizontal frame")

	e := testFrame(tst, 0, 0, 4, 0, NoRelease)
	lc := NewLoadCase("dead", Dead)
	w, l, P := 10.0, 4.0, 8.0

	check := func(msg string, ld Load, correct []float64) {
		f, err := GlobalFixedEndForces(ld, e, lc)
		if err != nil {
			tst.Errorf("%s: GlobalFixedEndForces failed:\n%v", msg, err)
			return
		}
		io.Pforan("%s: f = %v\n", msg, f.RawVector().Data)
		chk.Array(tst, msg, 1e-12, f.RawVector().Data, correct)
	}

	// uniform: closed form and quadrature
	udl := []float64{0, w * l / 2, w * l * l / 12, 0, w * l / 2, -w * l * l / 12}
	check("uniform", &UniformLoad{Wy: -w, Case: lc}, udl)
	check("trapezoidal", &TrapezoidalLoad{Wy1: -w, Wy2: -w, Case: lc}, udl)

	// uniform split in two pieces
	f1, _ := GlobalFixedEndForces(&UniformLoad{Wy: -w, End: 2, Case: lc}, e, lc)
	f2, _ := GlobalFixedEndForces(&UniformLoad{Wy: -w, Start: 2, Case: lc}, e, lc)
	f1.AddVec(f1, f2)
	chk.Array(tst, "split", 1e-12, f1.RawVector().Data, udl)

	// axial
	check("axial", &UniformLoad{Wx: w, Case: lc}, []float64{-w * l / 2, 0, 0, -w * l / 2, 0, 0})

	// triangular
	check("triangular", &TrapezoidalLoad{Wy2: -w, Case: lc},
		[]float64{0, 3 * w * l / 20, w * l * l / 30, 0, 7 * w * l / 20, -w * l * l / 20})

	// point load at midspan
	check("point", &PointLoad{Fy: -P, X: 2, Case: lc},
		[]float64{0, P / 2, P * l / 8, 0, P / 2, -P * l / 8})

	// point load at a=1
	a, b := 1.0, 3.0
	check("point(a=1)", &PointLoad{Fy: -P, X: a, Case: lc},
		[]float64{0, P * b * b * (3*a + b) / (l * l * l), P * a * b * b / (l * l), 0, P * a * a * (a + 3*b) / (l * l * l), -P * a * a * b / (l * l)})

	// point moment at midspan
	M := 6.0
	check("moment", &PointLoad{Mz: M, X: 2, Case: lc},
		[]float64{0, 1.5 * M / l, M / 4, 0, -1.5 * M / l, M / 4})

	// other load case
	check("other case", &UniformLoad{Wy: -w, Case: NewLoadCase("live", Live)}, make([]float64, 6))

	// out of bounds
	_, err := GlobalFixedEndForces(&UniformLoad{Wy: -w, Start: 3, End: 2, Case: lc}, e, lc)
	if err == nil {
		tst.Errorf("out-of-bounds load should have failed\n")
	}
	_, err = GlobalFixedEndForces(&PointLoad{Fy: -w, X: 4.5, Case: lc}, e, lc)
	if err == nil {
		tst.Errorf("out-of-bounds point load should have failed\n")
	}
}

func Test_fef02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fef02. fixed-end forces with releases")

	lc := NewLoadCase("dead", Dead)
	w, l := 10.0, 4.0
	ld := &UniformLoad{Wy: -w, Case: lc}

	// propped cantilever
	e := testFrame(tst, 0, 0, l, 0, EndRelease)
	f, err := GlobalFixedEndForces(ld, e, lc)
	if err != nil {
		tst.Errorf("GlobalFixedEndForces failed:\n%v", err)
		return
	}
	chk.Array(tst, "end released", 1e-12, f.RawVector().Data, []float64{0, 5 * w * l / 8, w * l * l / 8, 0, 3 * w * l / 8, 0})

	// mirrored
	e = testFrame(tst, 0, 0, l, 0, StartRelease)
	f, _ = GlobalFixedEndForces(ld, e, lc)
	chk.Array(tst, "start released", 1e-12, f.RawVector().Data, []float64{0, 3 * w * l / 8, 0, 0, 5 * w * l / 8, -w * l * l / 8})

	// simply supported
	e = testFrame(tst, 0, 0, l, 0, BothReleased)
	f, _ = GlobalFixedEndForces(ld, e, lc)
	chk.Array(tst, "both released", 1e-12, f.RawVector().Data, []float64{0, w * l / 2, 0, 0, w * l / 2, 0})
}

func Test_fef03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fef03. global loads on vertical frame")

	lc := NewLoadCase("wind", Wind)
	w, l := 3.0, 6.0
	e := testFrame(tst, 0, 0, 0, l, NoRelease)

	// horizontal load in global axes
	f, err := GlobalFixedEndForces(&UniformLoad{Wx: w, Case: lc}, e, lc)
	if err != nil {
		tst.Errorf("GlobalFixedEndForces failed:\n%v", err)
		return
	}
	chk.Array(tst, "global", 1e-12, f.RawVector().Data, []float64{-w * l / 2, 0, w * l * l / 12, -w * l / 2, 0, -w * l * l / 12})

	// same load in local axes: local -y points towards global +x
	g, _ := GlobalFixedEndForces(&UniformLoad{Wy: -w, Dir: Local, Case: lc}, e, lc)
	chk.Array(tst, "local", 1e-12, g.RawVector().Data, f.RawVector().Data)
}

func Test_fef04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fef04. equilibrium of fixed-end forces")

	lc := NewLoadCase("live", Live)
	loads := []Load{
		&PointLoad{Fx: 2, Fy: -5, Mz: 1.5, X: 1.2, Case: lc},
		&PointLoad{Fx: 1, Fy: -3, Dir: Local, X: 4.1, Case: lc},
		&UniformLoad{Wx: 1, Wy: -2, Start: 0.5, End: 1.5, Case: lc},
		&UniformLoad{Wy: -4, Dir: Local, Case: lc},
		&TrapezoidalLoad{Wx1: 0.5, Wy1: -1, Wx2: 2, Wy2: -6, Start: 1, End: 0.25, Case: lc},
		&TrapezoidalLoad{Wy1: 3, Wy2: -3, Dir: Local, Case: lc},
	}

	for _, rel := range []Release{NoRelease, StartRelease, EndRelease, BothReleased} {
		e := testFrame(tst, 1, 2, 4, 6, rel)
		c, s, l := 0.6, 0.8, 5.0
		for k, ld := range loads {
			f, err := GlobalFixedEndForces(ld, e, lc)
			if err != nil {
				tst.Errorf("GlobalFixedEndForces failed:\n%v", err)
				return
			}
			tot, err := TotalLoad(ld, e)
			if err != nil {
				tst.Errorf("TotalLoad failed:\n%v", err)
				return
			}
			q := f.RawVector().Data
			mom := q[2] + q[5] + l*c*q[4] - l*s*q[3]
			msg := io.Sf("%v: load %d", rel, k)
			chk.Float64(tst, msg+": Fx", 1e-11, q[0]+q[3], -tot[0])
			chk.Float64(tst, msg+": Fy", 1e-11, q[1]+q[4], -tot[1])
			chk.Float64(tst, msg+": Mz", 1e-11, mom, -tot[2])
		}
	}
}

func Test_fef05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fef05. ValueAt and spans")

	lc := NewLoadCase("dead", Dead)
	e := testFrame(tst, 0, 0, 10, 0, NoRelease)

	// point load matches only at its position
	p := &PointLoad{Fy: -5, X: 3, Case: lc}
	if _, found := ValueAt(p, e, 2.9999); found {
		tst.Errorf("point load should not be found at 2.9999\n")
		return
	}
	v, found := ValueAt(p, e, 3)
	if !found {
		tst.Errorf("point load should be found at 3\n")
		return
	}
	chk.Array(tst, "point", 1e-17, v[:], []float64{0, -5, 0})

	// uniform load boundaries are inclusive
	u := &UniformLoad{Wy: -2, Start: 2, End: 3, Case: lc}
	for _, x := range []float64{2, 5, 7} {
		v, found = ValueAt(u, e, x)
		if !found {
			tst.Errorf("uniform load should be found at %g\n", x)
			return
		}
		chk.Array(tst, "uniform", 1e-17, v[:], []float64{0, -2, 0})
	}
	if _, found = ValueAt(u, e, 7.0001); found {
		tst.Errorf("uniform load should not be found at 7.0001\n")
		return
	}

	// trapezoidal load is interpolated
	t := &TrapezoidalLoad{Wy1: -1, Wy2: -3, Start: 2, End: 2, Case: lc}
	v, _ = ValueAt(t, e, 5)
	chk.Float64(tst, "wy(5)", 1e-15, v[1], -2)

	// spans
	xa, xb, found := Span(t, 10)
	chk.Float64(tst, "xa", 1e-17, xa, 2)
	chk.Float64(tst, "xb", 1e-17, xb, 8)
	if !found {
		tst.Errorf("span should be found\n")
	}
	if _, _, found = Span(&NodalLoad{}, 10); found {
		tst.Errorf("nodal loads have no span\n")
	}
}
