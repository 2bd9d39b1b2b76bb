// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
)

// Spring is a two-node spring with axial and rotational stiffness
//
//  Local stiffness:
//    Ka   0   0  -Ka   0   0
//     0   0   0    0   0   0
//     0   0  Kr    0   0 -Kr
//   -Ka   0   0   Ka   0   0
//     0   0   0    0   0   0
//     0   0 -Kr    0   0  Kr
//
//  Note: zero-length springs use the global axes as local axes
type Spring struct {
	base
	Ka float64 // axial stiffness
	Kr float64 // rotational stiffness
}

// NewSpring returns a new spring element
func NewSpring(id int, a, b *Node, ka, kr float64) *Spring {
	return &Spring{base: newBase(id, a, b), Ka: ka, Kr: kr}
}

func (o *Spring) element() {}

// Recompute computes R, T, Kl and K
func (o *Spring) Recompute() (err error) {
	if o.Ka < 0 || o.Kr < 0 {
		return chk.Err("spring %d: stiffness coefficients must be non-negative. Ka=%g Kr=%g", o.id, o.Ka, o.Kr)
	}
	o.geometry()
	o.kl.Zero()
	o.kl.Set(0, 0, o.Ka)
	o.kl.Set(0, 3, -o.Ka)
	o.kl.Set(3, 0, -o.Ka)
	o.kl.Set(3, 3, o.Ka)
	o.kl.Set(2, 2, o.Kr)
	o.kl.Set(2, 5, -o.Kr)
	o.kl.Set(5, 2, -o.Kr)
	o.kl.Set(5, 5, o.Kr)
	o.globalK()
	return
}

// AddLoad returns an error: springs do not carry span loads
func (o *Spring) AddLoad(ld Load) (err error) {
	return chk.Err("spring %d: cannot add load of type %T", o.id, ld)
}

// SetFixedEndForces sets zero fixed-end forces for all load cases
func (o *Spring) SetFixedEndForces(cases []LoadCase) (err error) {
	return o.setFixedEndForces(o, cases)
}
