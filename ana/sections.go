// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/goframe/inp"

	"github.com/cpmech/gosl/chk"
)

// CrossSection computes cross-sectional properties of typical 2D frame sections
//
//   y
//   ^    typ : rectangle
//   |          circle                             tw
//   +---> x    I-beam                         -->| |<--
//                                         ___    | |     ___
//   bending   +-------+                 tf |   ########   |
//   about z   |       |                   ---  ########   |
//             |       |                           ##      |
//             |       | h = hei                   ##      | h = hei
//             |       |                           ##      |
//             |       |                   ---  ########   |
//             +-------+                 tf_|_  ########  ---
//              b = wid                         b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A   float64 // cross-sectional area
	Ay  float64 // shear area along the height
	Ix  float64 // moment of inertia for in-plane bending (major)
	Iy  float64 // moment of inertia for out-of-plane bending (minor)
	Jtt float64 // torsional constant
}

// NewCrossSection computes the properties of a cross-section
func NewCrossSection(typ string, wid, hei, tf, tw, rad float64) (o *CrossSection, err error) {

	// input data
	o = &CrossSection{Type: typ, Wid: wid, Hei: hei, Tf: tf, Tw: tw, R: rad}

	// derived
	switch typ {
	case "rectangle":
		b, h := wid, hei
		if b <= 0 || h <= 0 {
			return nil, chk.Err("rectangle: width and height must be positive. b=%g h=%g", b, h)
		}
		b3, h3 := b*b*b, h*h*h
		o.A = b * h
		o.Ay = 5.0 * o.A / 6.0
		o.Ix = b * h3 / 12.0
		o.Iy = b3 * h / 12.0
		if b == h {
			o.Jtt = 9.0 * b3 * b / 64.0
		} else {
			if b > h {
				b, h = h, b
			}
			o.Jtt = h * b * b * b * (1.0/3.0 - 0.21*(b/h)*(1.0-b*b*b*b/(12.0*h*h*h*h))) // approximate
		}

	case "I-beam":
		b, h := wid, hei
		if b <= 0 || h <= 0 || tf <= 0 || tw <= 0 || 2*tf >= h || tw >= b {
			return nil, chk.Err("I-beam: invalid dimensions. b=%g h=%g tf=%g tw=%g", b, h, tf, tw)
		}
		l := h - 2.0*tf
		o.A = b*h - l*(b-tw)
		o.Ay = h * tw
		o.Ix = b*h*h*h/12.0 - (b-tw)*l*l*l/12.0
		o.Iy = l*tw*tw*tw/12.0 + tf*b*b*b/6.0
		o.Jtt = (2.0*b*tf*tf*tf + l*tw*tw*tw) / 3.0

	case "circle":
		if rad <= 0 {
			return nil, chk.Err("circle: radius must be positive. r=%g", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.Ay = 0.9 * o.A
		o.Ix = math.Pi * r2 * r2 / 4.0
		o.Iy = o.Ix
		o.Jtt = o.Ix + o.Iy

	default:
		return nil, chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// Section returns the frame section corresponding to this cross-section
func (o *CrossSection) Section(name string, mat *inp.Material) *inp.Section {
	return &inp.Section{
		Name:     name,
		Material: mat.Name,
		A:        o.A,
		Ax:       o.A,
		Ay:       o.Ay,
		Ix:       o.Ix,
		Iy:       o.Iy,
		J:        o.Jtt,
		Mat:      mat,
	}
}

// ReferenceMaterial returns the parameters of some reference materials
//  Input:
//   typ      -- "steel", "aluminum", "concrete-low", "concrete-high" or "wood-douglas-fir"
//   unitPres -- "kPa", "MPa" or "GPa"
func ReferenceMaterial(typ, unitPres string) (m *inp.Material, err error) {

	// data in MPa
	var E, ν float64
	switch typ {
	case "steel":
		E, ν = 200000.0, 0.32 // structural A36
	case "aluminum":
		E, ν = 73100.0, 0.35 // 2014-T6
	case "concrete-low":
		E, ν = 22100.0, 0.15
	case "concrete-high":
		E, ν = 30000.0, 0.15
	case "wood-douglas-fir":
		E, ν = 13100.0, 0.29
	default:
		return nil, chk.Err("material type %q is unavailable", typ)
	}

	// units
	switch unitPres {
	case "kPa":
		E *= 1e3
	case "MPa":
	case "GPa":
		E *= 1e-3
	default:
		return nil, chk.Err("unit of pressure %q is unavailable", unitPres)
	}
	return &inp.Material{Name: typ, E: E, G: E / (2.0 * (1.0 + ν))}, nil
}
