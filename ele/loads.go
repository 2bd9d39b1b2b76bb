// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
)

// Direction tells whether load components are given in global or local axes
type Direction int

// load directions
const (
	Global Direction = iota // components along global X-Y
	Local                   // components along the element's local x-y
)

// ParseDirection converts "global" or "local" to Direction. Empty means global
func ParseDirection(s string) (d Direction, err error) {
	switch s {
	case "", "global", "g":
		return Global, nil
	case "local", "l":
		return Local, nil
	}
	return Global, chk.Err("cannot handle load direction %q", s)
}

// Load is one of: *PointLoad, *UniformLoad, *TrapezoidalLoad, *NodalLoad or *SupportDisplacement
type Load interface {
	LoadCase() LoadCase // load case of this load
	load()              // seals the set of variants
}

// PointLoad is a concentrated force/moment applied on a frame element
type PointLoad struct {
	Fx, Fy, Mz float64   // components
	X          float64   // position measured from the start node
	Dir        Direction // direction of Fx and Fy
	Case       LoadCase  // load case
}

// UniformLoad is a constant distributed load over [Start, L-End]
type UniformLoad struct {
	Wx, Wy     float64   // intensities (force per unit length)
	Start, End float64   // offsets from start and end nodes
	Dir        Direction // direction of Wx and Wy
	Case       LoadCase  // load case
}

// TrapezoidalLoad is a linearly varying distributed load over [Start, L-End]
type TrapezoidalLoad struct {
	Wx1, Wy1   float64   // intensities at Start
	Wx2, Wy2   float64   // intensities at L-End
	Start, End float64   // offsets from start and end nodes
	Dir        Direction // direction of the intensities
	Case       LoadCase  // load case
}

// NodalLoad is a force/moment applied directly on a node (global axes)
type NodalLoad struct {
	Fx, Fy, Mz float64
	Case       LoadCase
}

// SupportDisplacement is a prescribed displacement of a restrained node (global axes)
type SupportDisplacement struct {
	Ux, Uy, Rz float64
	Case       LoadCase
}

func (o *PointLoad) load()           {}
func (o *UniformLoad) load()         {}
func (o *TrapezoidalLoad) load()     {}
func (o *NodalLoad) load()           {}
func (o *SupportDisplacement) load() {}

// LoadCase returns the load case
func (o *PointLoad) LoadCase() LoadCase { return o.Case }

// LoadCase returns the load case
func (o *UniformLoad) LoadCase() LoadCase { return o.Case }

// LoadCase returns the load case
func (o *TrapezoidalLoad) LoadCase() LoadCase { return o.Case }

// LoadCase returns the load case
func (o *NodalLoad) LoadCase() LoadCase { return o.Case }

// LoadCase returns the load case
func (o *SupportDisplacement) LoadCase() LoadCase { return o.Case }

// Values returns [Ux, Uy, Rz]
func (o *SupportDisplacement) Values() [3]float64 { return [3]float64{o.Ux, o.Uy, o.Rz} }

// Span returns the start and end positions of a frame load along an element of length l.
// Point loads have xa == xb. Nodal and support loads return found=false
func Span(ld Load, l float64) (xa, xb float64, found bool) {
	switch ld := ld.(type) {
	case *PointLoad:
		return ld.X, ld.X, true
	case *UniformLoad:
		return ld.Start, l - ld.End, true
	case *TrapezoidalLoad:
		return ld.Start, l - ld.End, true
	}
	return 0, 0, false
}

// CheckSpan checks that 0 ≤ start ≤ l - end ≤ l
func CheckSpan(ld Load, l float64) (err error) {
	xa, xb, found := Span(ld, l)
	if !found {
		return
	}
	tol := 1e-12 * (1.0 + l)
	if xa < -tol || xb > l+tol || xa > xb+tol {
		return chk.Err("load of case %v is out of bounds: span [%g, %g] is not within [0, %g]", ld.LoadCase(), xa, xb, l)
	}
	return
}

// ValueAt returns the local intensity of a frame load at x
//  Output:
//   v     -- point loads: [Fx, Fy, Mz]; distributed loads: [wx, wy, 0]; in local axes
//   found -- false if x is outside of the loaded span or the load is not a frame load
//  Note: a point load matches only at x == position; distributed loads match for start ≤ x ≤ L-end
func ValueAt(ld Load, e Element, x float64) (v [3]float64, found bool) {
	l := e.Length()
	switch ld := ld.(type) {
	case *PointLoad:
		if x != ld.X {
			return
		}
		fx, fy := toLocal(e, ld.Dir, ld.Fx, ld.Fy)
		return [3]float64{fx, fy, ld.Mz}, true
	case *UniformLoad:
		if x < ld.Start || x > l-ld.End {
			return
		}
		wx, wy := toLocal(e, ld.Dir, ld.Wx, ld.Wy)
		return [3]float64{wx, wy, 0}, true
	case *TrapezoidalLoad:
		xa, xb := ld.Start, l-ld.End
		if x < xa || x > xb {
			return
		}
		wx1, wy1, wx2, wy2 := ld.localIntensities(e)
		ξ := 0.0
		if xb > xa {
			ξ = (x - xa) / (xb - xa)
		}
		return [3]float64{wx1 + ξ*(wx2-wx1), wy1 + ξ*(wy2-wy1), 0}, true
	}
	return
}

// localIntensities returns the end intensities in local axes
func (o *TrapezoidalLoad) localIntensities(e Element) (wx1, wy1, wx2, wy2 float64) {
	wx1, wy1 = toLocal(e, o.Dir, o.Wx1, o.Wy1)
	wx2, wy2 = toLocal(e, o.Dir, o.Wx2, o.Wy2)
	return
}

// toLocal rotates force components into the local axes of e if dir is Global
func toLocal(e Element, dir Direction, fx, fy float64) (float64, float64) {
	if dir == Local {
		return fx, fy
	}
	r := e.R()
	return r.At(0, 0)*fx + r.At(0, 1)*fy, r.At(1, 0)*fx + r.At(1, 1)*fy
}
