// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// boundaries returns X1 of all segments followed by X2 of the last one
func boundaries(segs []*Segment) (xs []float64) {
	for _, s := range segs {
		xs = append(xs, s.X1)
	}
	if len(segs) > 0 {
		xs = append(xs, segs[len(segs)-1].X2)
	}
	return
}

func Test_mesher01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesher01. segments of frames")

	lc := NewLoadCase("dead", Dead)
	e := testFrame(tst, 0, 0, 10, 0, NoRelease)
	e.AddLoad(&PointLoad{Fy: -1, X: 2.5, Case: lc})
	e.AddLoad(&UniformLoad{Wy: -1, Start: 3, End: 1, Case: lc})
	e.AddMeshPoint(8.2)

	err := SetupSegments(e, 4, 0)
	if err != nil {
		tst.Errorf("SetupSegments failed:\n%v", err)
		return
	}
	xs := boundaries(e.Segments())
	io.Pforan("xs = %v\n", xs)
	chk.Array(tst, "xs", 1e-15, xs, []float64{0, 2.5, 3, 5, 7.5, 8.2, 9, 10})

	// rigidities
	for _, s := range e.Segments() {
		chk.Float64(tst, "EA", 1e-8, s.EA, 200e6*0.01)
		chk.Float64(tst, "EI", 1e-8, s.EI, 200e6*1e-4)
		if s.Linear {
			tst.Errorf("frame segments must not be linear\n")
			return
		}
	}

	// minimum length
	err = SetupSegments(e, 1, 2)
	if err != nil {
		tst.Errorf("SetupSegments failed:\n%v", err)
		return
	}
	chk.Array(tst, "xs", 1e-15, boundaries(e.Segments()), []float64{0, 2, 2.5, 3, 4, 6, 8, 8.2, 9, 10})

	// last boundary is exactly L
	f := testFrame(tst, 0, 0, 0.3, 0.4, NoRelease)
	err = SetupSegments(f, 3, 0)
	if err != nil {
		tst.Errorf("SetupSegments failed:\n%v", err)
		return
	}
	segs := f.Segments()
	chk.IntAssert(len(segs), 3)
	if segs[2].X2 != f.Length() {
		tst.Errorf("last boundary must be exactly L: %v != %v\n", segs[2].X2, f.Length())
	}
}

func Test_mesher02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mesher02. springs and errors")

	// springs are not subdivided
	s := NewSpring(0, NewNode(0, 0, 0), NewNode(1, 3, 4), 1, 1)
	s.Recompute()
	err := SetupSegments(s, 10, 0.1)
	if err != nil {
		tst.Errorf("SetupSegments failed:\n%v", err)
		return
	}
	chk.IntAssert(len(s.Segments()), 1)
	if !s.Segments()[0].Linear {
		tst.Errorf("spring segments must be linear\n")
		return
	}

	// zero-length springs have no segments
	z := NewSpring(1, NewNode(0, 0, 0), NewNode(1, 0, 0), 1, 1)
	z.Recompute()
	SetupSegments(z, 10, 0)
	chk.IntAssert(len(z.Segments()), 0)

	// out-of-bounds mesh point
	e := testFrame(tst, 0, 0, 10, 0, NoRelease)
	e.AddMeshPoint(11)
	if SetupSegments(e, 2, 0) == nil {
		tst.Errorf("out-of-bounds mesh point should have failed\n")
		return
	}

	// out-of-bounds load
	e = testFrame(tst, 0, 0, 10, 0, NoRelease)
	e.AddLoad(&UniformLoad{Wy: -1, Start: 6, End: 6, Case: NewLoadCase("dead", Dead)})
	if SetupSegments(e, 2, 0) == nil {
		tst.Errorf("out-of-bounds load should have failed\n")
	}
}

func Test_segment01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("segment01. simply supported beam with uniform load")

	// L=1, EI=1, w=-1, F(0) = start end-forces, rotation at start = -wL³/24EI
	s := &Segment{X1: 0, X2: 1, EA: 1, EI: 1, Wy1: -1, Wy2: -1}
	s.F1 = [3]float64{0, 0.5, 0}
	s.U1 = [3]float64{0, 0, -1.0 / 24.0}

	f := s.ForceAt(0.5)
	chk.Float64(tst, "V(L/2)", 1e-15, f[1], 0)
	chk.Float64(tst, "M(L/2)", 1e-15, f[2], -0.125)

	u := s.DispAt(0.5)
	chk.Float64(tst, "uy(L/2)", 1e-15, u[1], -5.0/384.0)
	chk.Float64(tst, "rz(L/2)", 1e-15, u[2], 0)

	s.Close()
	chk.Array(tst, "F(L)", 1e-15, s.F2[:], []float64{0, -0.5, 0})
	chk.Array(tst, "U(L)", 1e-15, s.U2[:], []float64{0, 0, 1.0 / 24.0})

	// contains
	if !s.Contains(0, false) || s.Contains(1, false) || !s.Contains(1, true) {
		tst.Errorf("Contains failed\n")
	}
}

func Test_segment02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("segment02. cantilever with triangular load")

	// cantilever fixed at x=L; load grows from 0 at the tip (x=0) to -w at the support
	// tip deflection: -wL⁴/30EI ; tip rotation: wL³/24EI (counterclockwise)
	w, l, ei := 2.0, 3.0, 5.0
	s := &Segment{X1: 0, X2: l, EA: 1, EI: ei, Wy1: 0, Wy2: -w}
	θ0 := w * l * l * l / (24 * ei)
	s.U1 = [3]float64{0, -w * l * l * l * l / (30 * ei), θ0}
	s.Close()
	chk.Float64(tst, "V(L)", 1e-14, s.F2[1], -w*l/2)
	chk.Float64(tst, "M(L)", 1e-14, s.F2[2], w*l*l/6)
	chk.Float64(tst, "uy(L)", 1e-14, s.U2[1], 0)
	chk.Float64(tst, "rz(L)", 1e-14, s.U2[2], 0)

	// linear segments
	sp := &Segment{X1: 0, X2: 2, Linear: true, U1: [3]float64{1, 2, 3}, U2: [3]float64{3, 2, 1}}
	chk.Array(tst, "u(1)", 1e-15, func() []float64 { u := sp.DispAt(1); return u[:] }(), []float64{2, 2, 2})
}
