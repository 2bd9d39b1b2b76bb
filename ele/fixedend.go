// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// number of Gauss-Legendre points for partial distributed loads
const (
	NgaussUniform     = 5
	NgaussTrapezoidal = 7
)

// GlobalFixedEndForces computes the [6] fixed-end forces of a load in global axes.
// Fixed-end forces are the forces exerted by the (clamped) end nodes on the element.
// The result is zero if the load does not belong to load case lc or is not a frame load.
// End releases of frames are accounted for by static condensation.
func GlobalFixedEndForces(ld Load, e Element, lc LoadCase) (f *mat.VecDense, err error) {
	f = mat.NewVecDense(6, nil)
	if ld.LoadCase() != lc {
		return
	}
	frm, ok := e.(*Frame)
	if !ok {
		return
	}
	err = CheckSpan(ld, e.Length())
	if err != nil {
		return nil, err
	}
	ql := LocalFixedEndForces(ld, e)
	if frm.Release != NoRelease {
		_, ql, err = Condense(frm.klFull, ql, frm.Release.Released())
		if err != nil {
			return nil, err
		}
	}
	f.MulVec(e.T().T(), ql)
	return
}

// LocalFixedEndForces computes the [6] fixed-end forces in local axes of an element
// clamped at both ends (releases are not considered)
func LocalFixedEndForces(ld Load, e Element) (q *mat.VecDense) {
	l := e.Length()
	q = mat.NewVecDense(6, nil)
	switch ld := ld.(type) {

	// closed-form with a = x/L and b = 1 - a
	case *PointLoad:
		px, py := toLocal(e, ld.Dir, ld.Fx, ld.Fy)
		mz := ld.Mz
		a := ld.X / l
		b := 1.0 - a
		n1, n2, n3, n4 := b*b*(1+2*a), l*a*b*b, a*a*(1+2*b), -l*a*a*b
		d1, d2, d3, d4 := -6*a*b/l, b*(b-2*a), 6*a*b/l, a*(a-2*b)
		q.SetVec(0, -px*b)
		q.SetVec(1, -py*n1-mz*d1)
		q.SetVec(2, -py*n2-mz*d2)
		q.SetVec(3, -px*a)
		q.SetVec(4, -py*n3-mz*d3)
		q.SetVec(5, -py*n4-mz*d4)

	// closed-form if full span; otherwise, Gauss-Legendre quadrature
	case *UniformLoad:
		wx, wy := toLocal(e, ld.Dir, ld.Wx, ld.Wy)
		if ld.Start == 0 && ld.End == 0 {
			ll := l * l
			q.SetVec(0, -wx*l/2)
			q.SetVec(1, -wy*l/2)
			q.SetVec(2, -wy*ll/12)
			q.SetVec(3, -wx*l/2)
			q.SetVec(4, -wy*l/2)
			q.SetVec(5, wy*ll/12)
			return
		}
		integrateShapes(q, ld.Start, l-ld.End, l, NgaussUniform, func(x float64) (float64, float64) {
			return wx, wy
		})

	// Gauss-Legendre quadrature
	case *TrapezoidalLoad:
		xa, xb := ld.Start, l-ld.End
		wx1, wy1, wx2, wy2 := ld.localIntensities(e)
		integrateShapes(q, xa, xb, l, NgaussTrapezoidal, func(x float64) (float64, float64) {
			ξ := (x - xa) / (xb - xa)
			return wx1 + ξ*(wx2-wx1), wy1 + ξ*(wy2-wy1)
		})
	}
	return
}

// integrateShapes computes q_i = -∫ N_i(x)·w(x) dx over [xa, xb]
func integrateShapes(q *mat.VecDense, xa, xb, l float64, npts int, w func(x float64) (wx, wy float64)) {
	if xb <= xa {
		return
	}
	xs := make([]float64, npts)
	ws := make([]float64, npts)
	quad.Legendre{}.FixedLocations(xs, ws, xa, xb)
	var sum [6]float64
	for k, x := range xs {
		wx, wy := w(x)
		na := ShapeAxial(x, l)
		nb := ShapeBending(x, l)
		sum[0] += ws[k] * na[0] * wx
		sum[3] += ws[k] * na[1] * wx
		sum[1] += ws[k] * nb[0] * wy
		sum[2] += ws[k] * nb[1] * wy
		sum[4] += ws[k] * nb[2] * wy
		sum[5] += ws[k] * nb[3] * wy
	}
	for i := 0; i < 6; i++ {
		q.SetVec(i, -sum[i])
	}
}

// ShapeAxial returns the linear shape functions [N0, N1] at x
func ShapeAxial(x, l float64) [2]float64 {
	ξ := x / l
	return [2]float64{1 - ξ, ξ}
}

// ShapeBending returns the Hermite shape functions [N1, N2, N3, N4] at x
// corresponding to [uy0, rz0, uy1, rz1]
func ShapeBending(x, l float64) [4]float64 {
	ξ := x / l
	ξ2 := ξ * ξ
	ξ3 := ξ2 * ξ
	return [4]float64{
		1 - 3*ξ2 + 2*ξ3,
		l * (ξ - 2*ξ2 + ξ3),
		3*ξ2 - 2*ξ3,
		l * (ξ3 - ξ2),
	}
}

// TotalLoad returns the resultant [Fx, Fy, Mz] in global axes of a frame load, with
// moments taken about the start node of e
//  Note: the moment of a force located at x along the axis equals x times its local y component
func TotalLoad(ld Load, e Element) (f [3]float64, err error) {
	r := e.R()
	toGlobal := func(fx, fy float64) (float64, float64) {
		return r.At(0, 0)*fx + r.At(1, 0)*fy, r.At(0, 1)*fx + r.At(1, 1)*fy
	}
	l := e.Length()
	switch ld := ld.(type) {
	case *PointLoad:
		fx, fy := toLocal(e, ld.Dir, ld.Fx, ld.Fy)
		gx, gy := toGlobal(fx, fy)
		return [3]float64{gx, gy, ld.Mz + ld.X*fy}, nil
	case *UniformLoad:
		wx, wy := toLocal(e, ld.Dir, ld.Wx, ld.Wy)
		s := l - ld.End - ld.Start
		gx, gy := toGlobal(wx*s, wy*s)
		return [3]float64{gx, gy, wy * s * (ld.Start + s/2)}, nil
	case *TrapezoidalLoad:
		wx1, wy1, wx2, wy2 := ld.localIntensities(e)
		s := l - ld.End - ld.Start
		fy := (wy1 + wy2) * s / 2
		gx, gy := toGlobal((wx1+wx2)*s/2, fy)
		return [3]float64{gx, gy, ld.Start*fy + s*s*(wy1+2*wy2)/6}, nil
	}
	return f, chk.Err("load of type %T has no span", ld)
}
