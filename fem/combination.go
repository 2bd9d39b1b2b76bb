// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/ele"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Factor holds the multiplier of one load case in a combination
type Factor struct {
	Case  ele.LoadCase
	Value float64
}

// Combination is a linear combination of load cases; results are summed in the order of Factors
type Combination struct {
	Name    string
	Factors []Factor
}

// NewCombination returns a new combination
func NewCombination(name string, factors ...Factor) *Combination {
	return &Combination{Name: name, Factors: factors}
}

// String returns the name of the combination
func (o *Combination) String() string { return o.Name }

// strength combinations with factors per category
var strengthTemplates = []struct {
	name    string
	factors map[ele.Category]float64
}{
	{"1.4D", map[ele.Category]float64{ele.Dead: 1.4}},
	{"1.2D+1.6L", map[ele.Category]float64{ele.Dead: 1.2, ele.Live: 1.6}},
	{"1.2D+1.0W+1.0L", map[ele.Category]float64{ele.Dead: 1.2, ele.Wind: 1.0, ele.Live: 1.0}},
	{"0.9D+1.0W", map[ele.Category]float64{ele.Dead: 0.9, ele.Wind: 1.0}},
	{"1.2D+1.0E+1.0L", map[ele.Category]float64{ele.Dead: 1.2, ele.Seismic: 1.0, ele.Live: 1.0}},
	{"0.9D+1.0E", map[ele.Category]float64{ele.Dead: 0.9, ele.Seismic: 1.0}},
}

// StrengthCombinations returns the standard factored combinations that can be built from cases.
// Each factor applies to all cases of its category; combinations requiring a category
// without cases are skipped
func StrengthCombinations(cases []ele.LoadCase) (combos []*Combination) {
	count := make(map[ele.Category]int)
	for _, lc := range cases {
		count[lc.Category]++
	}
	for _, t := range strengthTemplates {
		ok := true
		for cat := range t.factors {
			if count[cat] == 0 {
				ok = false
			}
		}
		if !ok {
			continue
		}
		c := &Combination{Name: t.name}
		for _, lc := range cases {
			if v, found := t.factors[lc.Category]; found {
				c.Factors = append(c.Factors, Factor{lc, v})
			}
		}
		combos = append(combos, c)
	}
	return
}

// CombinedNodeDisplacement returns the combined global displacements of node n
func (o *Structure) CombinedNodeDisplacement(n *ele.Node, c *Combination) (d [3]float64, err error) {
	for _, f := range c.Factors {
		v, err := o.NodeDisplacement(n, f.Case)
		if err != nil {
			return d, chk.Err("combination %q: %v", c.Name, err)
		}
		for i := 0; i < 3; i++ {
			d[i] += f.Value * v[i]
		}
	}
	return
}

// CombinedReaction returns the combined global reactions at node n
func (o *Structure) CombinedReaction(n *ele.Node, c *Combination) (r [3]float64, err error) {
	for _, f := range c.Factors {
		v, err := o.NodeReaction(n, f.Case)
		if err != nil {
			return r, chk.Err("combination %q: %v", c.Name, err)
		}
		for i := 0; i < 3; i++ {
			r[i] += f.Value * v[i]
		}
	}
	return
}

// CombinedSegments returns the segments of e with combined internal forces and displacements
func (o *Structure) CombinedSegments(e ele.Element, c *Combination) (segs []*ele.Segment, err error) {
	if len(c.Factors) == 0 {
		return nil, chk.Err("combination %q has no factors", c.Name)
	}
	for _, f := range c.Factors {
		ss, err := o.Segments(e, f.Case)
		if err != nil {
			return nil, chk.Err("combination %q: %v", c.Name, err)
		}
		if segs == nil {
			segs = make([]*ele.Segment, len(ss))
			for i, s := range ss {
				segs[i] = s.Clone()
			}
		}
		for i, s := range ss {
			r := segs[i]
			r.Wx1 += f.Value * s.Wx1
			r.Wx2 += f.Value * s.Wx2
			r.Wy1 += f.Value * s.Wy1
			r.Wy2 += f.Value * s.Wy2
			for k := 0; k < 3; k++ {
				r.F1[k] += f.Value * s.F1[k]
				r.F2[k] += f.Value * s.F2[k]
				r.U1[k] += f.Value * s.U1[k]
				r.U2[k] += f.Value * s.U2[k]
			}
		}
	}
	return
}

// CombinedForceAt returns the combined local internal forces of e at x
//  found -- false if x is outside [0, L]
func (o *Structure) CombinedForceAt(e ele.Element, c *Combination, x float64) (f [3]float64, found bool, err error) {
	for _, fc := range c.Factors {
		v, ok, err := o.ForceAt(e, fc.Case, x)
		if err != nil {
			return f, false, chk.Err("combination %q: %v", c.Name, err)
		}
		if !ok {
			return f, false, nil
		}
		for i := 0; i < 3; i++ {
			f[i] += fc.Value * v[i]
		}
		found = true
	}
	return
}

// extremes ////////////////////////////////////////////////////////////////////////////////////////

// Extreme holds the minimum and maximum internal forces [Fx, Fy, Mz] along an element
type Extreme struct {
	Min, Max   [3]float64 // values
	Xmin, Xmax [3]float64 // locations
}

// String returns a short description
func (o Extreme) String() string {
	l := ""
	for i, key := range []string{"Fx", "Fy", "Mz"} {
		l += io.Sf("%s ∈ [%g (x=%g), %g (x=%g)] ", key, o.Min[i], o.Xmin[i], o.Max[i], o.Xmax[i])
	}
	return l
}

// Extremes finds the minimum and maximum internal forces over all segments. Besides both ends,
// each segment is evaluated where the derivative of each polynomial vanishes
func Extremes(segs []*ele.Segment) (res Extreme) {
	for i := 0; i < 3; i++ {
		res.Min[i], res.Max[i] = math.Inf(1), math.Inf(-1)
	}
	update := func(x float64, f [3]float64) {
		for i := 0; i < 3; i++ {
			if f[i] < res.Min[i] {
				res.Min[i], res.Xmin[i] = f[i], x
			}
			if f[i] > res.Max[i] {
				res.Max[i], res.Xmax[i] = f[i], x
			}
		}
	}
	for _, s := range segs {
		ℓ := s.Length()
		update(s.X1, s.F1)
		update(s.X2, s.F2)
		if ℓ <= 0 {
			continue
		}
		dwx, dwy := (s.Wx2-s.Wx1)/ℓ, (s.Wy2-s.Wy1)/ℓ
		var cands []float64
		if dwx != 0 {
			cands = append(cands, -s.Wx1/dwx) // dFx/dξ = 0
		}
		if dwy != 0 {
			cands = append(cands, -s.Wy1/dwy) // dFy/dξ = 0
		}
		cands = append(cands, roots(dwy/2, s.Wy1, s.F1[1])...) // dMz/dξ = -Fy = 0
		for _, ξ := range cands {
			if ξ > 0 && ξ < ℓ {
				update(s.X1+ξ, s.ForceAt(ξ))
			}
		}
	}
	return
}

// roots returns the real roots of a·x² + b·x + c = 0
func roots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}
