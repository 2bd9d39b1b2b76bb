// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions of beams and cross-section formulae
package ana

// Sign convention: loads and deflections are positive upwards; sagging moments are positive.

// SimpleBeamUDL implements the solution of a simply supported beam under uniform load
//
//    w ↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓↓
//      o==================o
//      ^                  o
//      |<------- L ------>|
//
type SimpleBeamUDL struct {
	L  float64 // length
	W  float64 // downward load per unit length
	EI float64 // flexural rigidity
}

// Reaction returns the vertical reaction at each support
func (o SimpleBeamUDL) Reaction() float64 { return o.W * o.L / 2.0 }

// Shear returns the shear force V(x) = dM/dx
func (o SimpleBeamUDL) Shear(x float64) float64 { return o.W * (o.L/2.0 - x) }

// Moment returns the sagging moment M(x)
func (o SimpleBeamUDL) Moment(x float64) float64 { return o.W * x * (o.L - x) / 2.0 }

// Deflection returns the upward deflection v(x)
func (o SimpleBeamUDL) Deflection(x float64) float64 {
	return -o.W * x * (o.L*o.L*o.L - 2.0*o.L*x*x + x*x*x) / (24.0 * o.EI)
}

// Rotation returns the counterclockwise rotation at the left support
func (o SimpleBeamUDL) Rotation() float64 { return -o.W * o.L * o.L * o.L / (24.0 * o.EI) }

// SimpleBeamPartialUDL implements the solution of a simply supported beam with a uniform
// load over [a, b]
//
//             w ↓↓↓↓↓↓↓↓
//      o==================o
//      ^      a        b  o
//      |<------- L ------>|
//
type SimpleBeamPartialUDL struct {
	L, A, B float64 // length and loaded span
	W       float64 // downward load per unit length
}

// Reactions returns the left and right reactions
func (o SimpleBeamPartialUDL) Reactions() (r1, r2 float64) {
	p := o.W * (o.B - o.A)
	xc := (o.A + o.B) / 2.0
	r2 = p * xc / o.L
	return p - r2, r2
}

// MaxMoment returns the maximum sagging moment and its location
//  M = R1·(a + R1/(2w)) at x = a + R1/w
func (o SimpleBeamPartialUDL) MaxMoment() (m, x float64) {
	r1, _ := o.Reactions()
	x = o.A + r1/o.W
	return r1 * (o.A + r1/(2.0*o.W)), x
}

// Cantilever implements the solution of a cantilever with a tip load
//
//      |                 P ↓
//      |==================o
//      |<------- L ------>|
//
type Cantilever struct {
	L  float64 // length
	P  float64 // downward tip load
	EI float64 // flexural rigidity
}

// TipDeflection returns the upward deflection of the tip
func (o Cantilever) TipDeflection() float64 { return -o.P * o.L * o.L * o.L / (3.0 * o.EI) }

// TipRotation returns the counterclockwise rotation of the tip
func (o Cantilever) TipRotation() float64 { return -o.P * o.L * o.L / (2.0 * o.EI) }

// FixedMoment returns the hogging moment at the clamped end
func (o Cantilever) FixedMoment() float64 { return -o.P * o.L }

// FixedSettlement implements the solution of a fixed-fixed beam with a vertical settlement
// Δ of the right support
type FixedSettlement struct {
	L     float64 // length
	Delta float64 // downward settlement
	EI    float64 // flexural rigidity
}

// Shear returns the magnitude of the end shear forces 12EIΔ/L³
func (o FixedSettlement) Shear() float64 { return 12.0 * o.EI * o.Delta / (o.L * o.L * o.L) }

// Moment returns the magnitude of the end moments 6EIΔ/L²
func (o FixedSettlement) Moment() float64 { return 6.0 * o.EI * o.Delta / (o.L * o.L) }

// ProppedCantilever implements the solution of a beam clamped at the left end and simply
// supported at the right end under uniform load
type ProppedCantilever struct {
	L float64 // length
	W float64 // downward load per unit length
}

// Reactions returns the reactions at the clamped and propped ends
func (o ProppedCantilever) Reactions() (r1, r2 float64) {
	return 5.0 * o.W * o.L / 8.0, 3.0 * o.W * o.L / 8.0
}

// FixedMoment returns the hogging moment at the clamped end
func (o ProppedCantilever) FixedMoment() float64 { return -o.W * o.L * o.L / 8.0 }

// MaxMoment returns the maximum sagging moment 9wL²/128 at x = 5L/8
func (o ProppedCantilever) MaxMoment() (m, x float64) {
	return 9.0 * o.W * o.L * o.L / 128.0, 5.0 * o.L / 8.0
}
