// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Segment holds a piece [X1, X2) of an element over which the applied
// distributed loads vary linearly
//
//  F = [Fx, Fy, Mz] is the resultant of all forces acting on the free body [0, x],
//  reduced to the section at x, in local axes. Thus F(0) equals the local force
//  at the start node and F(L) equals minus the local force at the end node.
//
//  U = [ux, uy, rz] are the local displacements obtained from
//   EA·ux' = -Fx   and   EI·uy'' = -Mz
//
type Segment struct {
	X1, X2   float64    // boundaries measured from the start node
	EA, EI   float64    // rigidities (frames)
	Linear   bool       // displacements vary linearly between U1 and U2 (springs)
	Wx1, Wx2 float64    // local axial intensities at X1 and X2
	Wy1, Wy2 float64    // local transverse intensities at X1 and X2
	F1, F2   [3]float64 // internal forces at X1 and X2
	U1, U2   [3]float64 // displacements at X1 and X2
}

// Length returns X2 - X1
func (o *Segment) Length() float64 { return o.X2 - o.X1 }

// Contains tells whether x is in [X1, X2), or [X1, X2] if closed==true
func (o *Segment) Contains(x float64, closed bool) bool {
	if closed {
		return x >= o.X1 && x <= o.X2
	}
	return x >= o.X1 && x < o.X2
}

// Clone returns a copy without results
func (o *Segment) Clone() *Segment {
	return &Segment{X1: o.X1, X2: o.X2, EA: o.EA, EI: o.EI, Linear: o.Linear}
}

// ForceAt returns the internal forces at ξ = x - X1
func (o *Segment) ForceAt(ξ float64) (f [3]float64) {
	ℓ := o.Length()
	ξ2 := ξ * ξ
	dwx, dwy := 0.0, 0.0
	if ℓ > 0 {
		dwx, dwy = (o.Wx2-o.Wx1)/ℓ, (o.Wy2-o.Wy1)/ℓ
	}
	f[0] = o.F1[0] + o.Wx1*ξ + dwx*ξ2/2
	f[1] = o.F1[1] + o.Wy1*ξ + dwy*ξ2/2
	f[2] = o.F1[2] - o.F1[1]*ξ - o.Wy1*ξ2/2 - dwy*ξ2*ξ/6
	return
}

// DispAt returns the displacements at ξ = x - X1
func (o *Segment) DispAt(ξ float64) (u [3]float64) {
	ℓ := o.Length()
	if o.Linear {
		s := 0.0
		if ℓ > 0 {
			s = ξ / ℓ
		}
		for i := 0; i < 3; i++ {
			u[i] = (1-s)*o.U1[i] + s*o.U2[i]
		}
		return
	}
	ξ2 := ξ * ξ
	ξ3 := ξ2 * ξ
	ξ4 := ξ3 * ξ
	dwx, dwy := 0.0, 0.0
	if ℓ > 0 {
		dwx, dwy = (o.Wx2-o.Wx1)/ℓ, (o.Wy2-o.Wy1)/ℓ
	}
	u = o.U1
	if o.EA > 0 {
		u[0] -= (o.F1[0]*ξ + o.Wx1*ξ2/2 + dwx*ξ3/6) / o.EA
	}
	u[1] += o.U1[2] * ξ
	if o.EI > 0 {
		u[2] -= (o.F1[2]*ξ - o.F1[1]*ξ2/2 - o.Wy1*ξ3/6 - dwy*ξ4/24) / o.EI
		u[1] -= (o.F1[2]*ξ2/2 - o.F1[1]*ξ3/6 - o.Wy1*ξ4/24 - dwy*ξ4*ξ/120) / o.EI
	}
	return
}

// Close sets F2 and U2 by evaluating the polynomials at X2
func (o *Segment) Close() {
	ℓ := o.Length()
	o.F2 = o.ForceAt(ℓ)
	if !o.Linear {
		o.U2 = o.DispAt(ℓ)
	}
}
