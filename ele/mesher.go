// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// SetupSegments splits an element into segments
//  Input:
//   minCount  -- minimum number of equally spaced segments (frames)
//   minLength -- frames are also split at every minLength; zero => ignored
//  Note: segment boundaries include both ends, all additional mesh points and the
//        start/end positions of every load applied on the element
func SetupSegments(e Element, minCount int, minLength float64) (err error) {
	l := e.Length()
	if l <= 0 {
		e.SetSegments(nil)
		return
	}

	// boundaries
	xs := []float64{0, l}
	for _, x := range e.MeshPoints() {
		if x < 0 || x > l {
			return chk.Err("element %d: mesh point %g is outside [0, %g]", e.Id(), x, l)
		}
		xs = append(xs, x)
	}
	for _, ld := range e.Loads() {
		err = CheckSpan(ld, l)
		if err != nil {
			return chk.Err("element %d: %v", e.Id(), err)
		}
		xa, xb, _ := Span(ld, l)
		xs = append(xs, xa, xb)
	}

	// equally spaced points
	frm, isFrame := e.(*Frame)
	if isFrame {
		n := minCount
		if minLength > 0 {
			n = max(n, int(math.Floor(l/minLength)))
		}
		if n > 1 {
			xs = append(xs, utl.LinSpace(0, l, n+1)...)
		}
	}

	// sort and remove duplicates
	sort.Float64s(xs)
	tol := 1e-10 * math.Max(l, 1)
	pts := []float64{xs[0]}
	for _, x := range xs[1:] {
		if x-pts[len(pts)-1] > tol {
			pts = append(pts, x)
		}
	}
	pts[0] = 0
	if l-pts[len(pts)-1] <= tol {
		pts[len(pts)-1] = l
	} else {
		pts = append(pts, l)
	}

	// segments
	segs := make([]*Segment, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		s := &Segment{X1: pts[i], X2: pts[i+1]}
		if isFrame {
			s.EA, s.EI = frm.Sec.EA(), frm.Sec.EI()
		} else {
			s.Linear = true
		}
		segs[i] = s
	}
	e.SetSegments(segs)
	return
}
