// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/goframe/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Release tells which rotational DOFs of a frame are released (pinned)
type Release int

// end releases
const (
	NoRelease    Release = iota // moments are transferred at both ends
	StartRelease                // no moment at the start node
	EndRelease                  // no moment at the end node
	BothReleased                // no moment at both ends
)

// ParseRelease converts "", "none", "start", "end" or "both" to Release
func ParseRelease(s string) (r Release, err error) {
	switch s {
	case "", "none":
		return NoRelease, nil
	case "start":
		return StartRelease, nil
	case "end":
		return EndRelease, nil
	case "both":
		return BothReleased, nil
	}
	return NoRelease, chk.Err("cannot handle end release %q", s)
}

// Released returns the local indices of the released rotational DOFs
func (o Release) Released() []int {
	switch o {
	case StartRelease:
		return []int{2}
	case EndRelease:
		return []int{5}
	case BothReleased:
		return []int{2, 5}
	}
	return nil
}

// String returns the name of the release
func (o Release) String() string {
	switch o {
	case StartRelease:
		return "start"
	case EndRelease:
		return "end"
	case BothReleased:
		return "both"
	}
	return "none"
}

// Frame is a 2D Euler-Bernoulli frame element with optional end releases
//
//  Props:       Local stiffness (no releases):
//   E, A, Ix     EA/L     0         0      -EA/L     0         0
//                 0    12EI/L³   6EI/L²      0   -12EI/L³   6EI/L²
//                 0     6EI/L²   4EI/L       0    -6EI/L²   2EI/L
//                ...                                          ...
//
type Frame struct {
	base
	Sec     *inp.Section // cross-section with material
	Release Release      // end releases
	klFull  *mat.Dense   // local stiffness without releases; used to condense fixed-end forces
}

// NewFrame returns a new frame element
func NewFrame(id int, a, b *Node, sec *inp.Section, release Release) *Frame {
	if sec == nil {
		chk.Panic("frame %d: section must not be nil", id)
	}
	o := &Frame{base: newBase(id, a, b), Sec: sec, Release: release}
	o.klFull = mat.NewDense(6, 6, nil)
	return o
}

func (o *Frame) element() {}

// Recompute computes R, T, Kl and K
func (o *Frame) Recompute() (err error) {
	err = o.Sec.Check()
	if err != nil {
		return chk.Err("frame %d: %v", o.id, err)
	}
	o.geometry()
	if o.length <= 0 {
		return chk.Err("frame %d: length must be positive", o.id)
	}
	fullStiffness(o.klFull, o.Sec.EA(), o.Sec.EI(), o.length)
	o.kl.Zero()
	switch o.Release {
	case NoRelease:
		o.kl.Copy(o.klFull)
	case StartRelease:
		startReleasedStiffness(o.kl, o.Sec.EA(), o.Sec.EI(), o.length)
	case EndRelease:
		endReleasedStiffness(o.kl, o.Sec.EA(), o.Sec.EI(), o.length)
	case BothReleased:
		axialStiffness(o.kl, o.Sec.EA(), o.length)
	}
	o.globalK()
	return
}

// AddLoad adds a frame load (point, uniform or trapezoidal)
func (o *Frame) AddLoad(ld Load) (err error) {
	switch ld.(type) {
	case *PointLoad, *UniformLoad, *TrapezoidalLoad:
	default:
		return chk.Err("frame %d: cannot add load of type %T", o.id, ld)
	}
	o.loads = append(o.loads, ld)
	return
}

// SetFixedEndForces computes the fixed-end forces of all load cases
func (o *Frame) SetFixedEndForces(cases []LoadCase) (err error) {
	return o.setFixedEndForces(o, cases)
}

// KlFull returns the local stiffness matrix without releases
func (o *Frame) KlFull() *mat.Dense { return o.klFull }

// stiffness matrices ///////////////////////////////////////////////////////////////////////////////

// axialStiffness sets the axial terms of kl
func axialStiffness(kl *mat.Dense, ea, l float64) {
	m := ea / l
	kl.Set(0, 0, m)
	kl.Set(0, 3, -m)
	kl.Set(3, 0, -m)
	kl.Set(3, 3, m)
}

// fullStiffness sets kl for a frame without releases
func fullStiffness(kl *mat.Dense, ea, ei, l float64) {
	kl.Zero()
	axialStiffness(kl, ea, l)
	ll := l * l
	n := ei / (ll * l)
	kl.Set(1, 1, 12*n)
	kl.Set(1, 2, 6*l*n)
	kl.Set(1, 4, -12*n)
	kl.Set(1, 5, 6*l*n)
	kl.Set(2, 1, 6*l*n)
	kl.Set(2, 2, 4*ll*n)
	kl.Set(2, 4, -6*l*n)
	kl.Set(2, 5, 2*ll*n)
	kl.Set(4, 1, -12*n)
	kl.Set(4, 2, -6*l*n)
	kl.Set(4, 4, 12*n)
	kl.Set(4, 5, -6*l*n)
	kl.Set(5, 1, 6*l*n)
	kl.Set(5, 2, 2*ll*n)
	kl.Set(5, 4, -6*l*n)
	kl.Set(5, 5, 4*ll*n)
}

// startReleasedStiffness sets kl for a frame with its start rotation released
func startReleasedStiffness(kl *mat.Dense, ea, ei, l float64) {
	axialStiffness(kl, ea, l)
	ll := l * l
	n := ei / (ll * l)
	kl.Set(1, 1, 3*n)
	kl.Set(1, 4, -3*n)
	kl.Set(1, 5, 3*l*n)
	kl.Set(4, 1, -3*n)
	kl.Set(4, 4, 3*n)
	kl.Set(4, 5, -3*l*n)
	kl.Set(5, 1, 3*l*n)
	kl.Set(5, 4, -3*l*n)
	kl.Set(5, 5, 3*ll*n)
}

// endReleasedStiffness sets kl for a frame with its end rotation released
func endReleasedStiffness(kl *mat.Dense, ea, ei, l float64) {
	axialStiffness(kl, ea, l)
	ll := l * l
	n := ei / (ll * l)
	kl.Set(1, 1, 3*n)
	kl.Set(1, 2, 3*l*n)
	kl.Set(1, 4, -3*n)
	kl.Set(2, 1, 3*l*n)
	kl.Set(2, 2, 3*ll*n)
	kl.Set(2, 4, -3*l*n)
	kl.Set(4, 1, -3*n)
	kl.Set(4, 2, -3*l*n)
	kl.Set(4, 4, 3*n)
}

// static condensation ///////////////////////////////////////////////////////////////////////////////

// Condense performs the static condensation of the released DOFs
//  Input:
//   kfull    -- [6][6] stiffness matrix without releases
//   q        -- [6] fixed-end forces without releases; may be nil
//   released -- indices of released DOFs
//  Output:
//   kc -- [6][6] condensed stiffness: K_ff - K_fr·K_rr⁻¹·K_rf (released rows/columns are zero)
//   qc -- [6] condensed fixed-end forces: q_f - K_fr·K_rr⁻¹·q_r (released entries are zero)
func Condense(kfull *mat.Dense, q *mat.VecDense, released []int) (kc *mat.Dense, qc *mat.VecDense, err error) {
	kc = mat.DenseCopyOf(kfull)
	if q != nil {
		qc = mat.VecDenseCopyOf(q)
	}
	nr := len(released)
	if nr == 0 {
		return
	}

	// K_rr⁻¹
	krr := mat.NewDense(nr, nr, nil)
	for i, I := range released {
		for j, J := range released {
			krr.Set(i, j, kfull.At(I, J))
		}
	}
	var inv mat.Dense
	err = inv.Inverse(krr)
	if err != nil {
		return nil, nil, chk.Err("cannot condense released DOFs %v: %v", released, err)
	}

	// K_·r·K_rr⁻¹
	kr := mat.NewDense(6, nr, nil)
	for i := 0; i < 6; i++ {
		for j, J := range released {
			kr.Set(i, j, kfull.At(i, J))
		}
	}
	var g mat.Dense
	g.Mul(kr, &inv)

	// condensed matrix
	var corr mat.Dense
	corr.Mul(&g, kr.T())
	kc.Sub(kc, &corr)

	// condensed vector
	if qc != nil {
		qr := mat.NewVecDense(nr, nil)
		for i, I := range released {
			qr.SetVec(i, q.AtVec(I))
		}
		var dq mat.VecDense
		dq.MulVec(&g, qr)
		qc.SubVec(qc, &dq)
	}

	// released entries are exactly zero
	for _, I := range released {
		for j := 0; j < 6; j++ {
			kc.Set(I, j, 0)
			kc.Set(j, I, 0)
		}
		if qc != nil {
			qc.SetVec(I, 0)
		}
	}
	return
}
