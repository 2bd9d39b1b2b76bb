// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/ele"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// results /////////////////////////////////////////////////////////////////////////////////////////

// NodeDisplacement returns the global displacements [ux, uy, rz] of node n
//  Restrained DOFs take the prescribed support displacement of lc, if any, or zero
func (o *Structure) NodeDisplacement(n *ele.Node, lc ele.LoadCase) (d [3]float64, err error) {
	u, err := o.solution(lc)
	if err != nil {
		return
	}
	pres, _ := n.PrescribedDisp(lc)
	for i := 0; i < 3; i++ {
		if n.Eqs[i] < o.Ndof {
			d[i] = u.AtVec(n.Eqs[i])
		} else {
			d[i] = pres[i]
		}
	}
	return
}

// NodeReaction returns the global reactions [Rx, Ry, Mz] at node n
//  Rigid supports: reactions at restrained DOFs only, computed from equilibrium with the connected elements
//  Elastic supports: R = -k·u
//  Free nodes: zero
func (o *Structure) NodeReaction(n *ele.Node, lc ele.LoadCase) (r [3]float64, err error) {
	if _, err = o.solution(lc); err != nil {
		return
	}
	if n.Spring != nil {
		d, err := o.NodeDisplacement(n, lc)
		if err != nil {
			return r, err
		}
		r[0], r[1], r[2] = -n.Spring.Kx*d[0], -n.Spring.Ky*d[1], -n.Spring.Cz*d[2]
		return r, nil
	}
	if n.Support == nil {
		return
	}
	var sum [3]float64
	for _, e := range o.conn[n] {
		fg, err := o.ElemGlobalForces(e, lc)
		if err != nil {
			return r, err
		}
		a, b := e.Nodes()
		if a == n {
			sum[0], sum[1], sum[2] = sum[0]+fg.AtVec(0), sum[1]+fg.AtVec(1), sum[2]+fg.AtVec(2)
		}
		if b == n {
			sum[0], sum[1], sum[2] = sum[0]+fg.AtVec(3), sum[1]+fg.AtVec(4), sum[2]+fg.AtVec(5)
		}
	}
	p := n.ExternalLoads(lc)
	for i := 0; i < 3; i++ {
		if n.Restrained(i) {
			r[i] = sum[i] - p[i]
		}
	}
	return
}

// ElemLocalDisplacements returns the [6] end displacements of e in local axes
func (o *Structure) ElemLocalDisplacements(e ele.Element, lc ele.LoadCase) (ul *mat.VecDense, err error) {
	a, b := e.Nodes()
	da, err := o.NodeDisplacement(a, lc)
	if err != nil {
		return
	}
	db, err := o.NodeDisplacement(b, lc)
	if err != nil {
		return
	}
	ug := mat.NewVecDense(6, []float64{da[0], da[1], da[2], db[0], db[1], db[2]})
	return ele.ToLocal(e, ug), nil
}

// ElemLocalForces returns the [6] end forces of e in local axes: fl = Kl·ul + T·fef
//  These are the forces exerted by the nodes on the element
func (o *Structure) ElemLocalForces(e ele.Element, lc ele.LoadCase) (fl *mat.VecDense, err error) {
	ul, err := o.ElemLocalDisplacements(e, lc)
	if err != nil {
		return
	}
	fef, found := e.FixedEndForces(lc)
	if !found {
		return nil, chk.Err("element %d: fixed-end forces of load case %v are not available", e.Id(), lc)
	}
	fl = mat.NewVecDense(6, nil)
	fl.MulVec(e.Kl(), ul)
	fl.AddVec(fl, ele.ToLocal(e, fef))
	return
}

// ElemGlobalForces returns the [6] end forces of e in global axes
func (o *Structure) ElemGlobalForces(e ele.Element, lc ele.LoadCase) (fg *mat.VecDense, err error) {
	fl, err := o.ElemLocalForces(e, lc)
	if err != nil {
		return
	}
	return ele.ToGlobal(e, fl), nil
}

// segments ////////////////////////////////////////////////////////////////////////////////////////

// Segments returns the segments of e with internal forces and displacements of load case lc
//  The internal forces of segment i start from the state at the end of segment i-1, plus the
//  steps caused by point loads located at X1. Point loads located at L are added to F2 of the
//  last segment; thus F2 of the last segment equals minus the local force at the end node.
func (o *Structure) Segments(e ele.Element, lc ele.LoadCase) (segs []*ele.Segment, err error) {
	fl, err := o.ElemLocalForces(e, lc)
	if err != nil {
		return
	}
	ul, err := o.ElemLocalDisplacements(e, lc)
	if err != nil {
		return
	}
	mesh := e.Segments()
	if len(mesh) == 0 {
		return
	}
	f0 := [3]float64{fl.AtVec(0), fl.AtVec(1), fl.AtVec(2)}
	u0 := [3]float64{ul.AtVec(0), ul.AtVec(1), ul.AtVec(2)}
	u1 := [3]float64{ul.AtVec(3), ul.AtVec(4), ul.AtVec(5)}

	// springs
	if _, ok := e.(*ele.Spring); ok {
		l := e.Length()
		segs = make([]*ele.Segment, len(mesh))
		for i, m := range mesh {
			s := m.Clone()
			s.F1 = f0
			for k := 0; k < 3; k++ {
				s.U1[k] = u0[k] + (u1[k]-u0[k])*s.X1/l
				s.U2[k] = u0[k] + (u1[k]-u0[k])*s.X2/l
			}
			s.Close()
			segs[i] = s
		}
		return
	}

	// frames: the rotation at a released start is unknown => find it from the deflection at L
	segs = o.sweep(e, lc, mesh, f0, u0)
	if e.(*ele.Frame).Release == ele.StartRelease || e.(*ele.Frame).Release == ele.BothReleased {
		last := segs[len(segs)-1]
		u0[2] += (u1[1] - last.U2[1]) / e.Length()
		segs = o.sweep(e, lc, mesh, f0, u0)
	}
	return
}

// sweep computes the state of each segment from left to right
func (o *Structure) sweep(e ele.Element, lc ele.LoadCase, mesh []*ele.Segment, f0, u0 [3]float64) (segs []*ele.Segment) {
	l := e.Length()
	tol := 1e-10 * math.Max(l, 1)
	var points, distributed []ele.Load
	for _, ld := range e.Loads() {
		if ld.LoadCase() != lc {
			continue
		}
		if _, ok := ld.(*ele.PointLoad); ok {
			points = append(points, ld)
		} else {
			distributed = append(distributed, ld)
		}
	}
	used := make([]bool, len(points))
	segs = make([]*ele.Segment, len(mesh))
	f, u := f0, u0
	for i, m := range mesh {
		s := m.Clone()

		// steps due to point loads
		for k, ld := range points {
			p := ld.(*ele.PointLoad)
			if !used[k] && math.Abs(p.X-s.X1) <= tol {
				v, _ := ele.ValueAt(p, e, p.X)
				f[0], f[1], f[2] = f[0]+v[0], f[1]+v[1], f[2]+v[2]
				used[k] = true
			}
		}

		// intensities of distributed loads covering this segment
		xm := (s.X1 + s.X2) / 2
		for _, ld := range distributed {
			xa, xb, _ := ele.Span(ld, l)
			if xm < xa || xm > xb {
				continue
			}
			v1, _ := ele.ValueAt(ld, e, math.Min(math.Max(s.X1, xa), xb))
			v2, _ := ele.ValueAt(ld, e, math.Min(math.Max(s.X2, xa), xb))
			s.Wx1, s.Wy1 = s.Wx1+v1[0], s.Wy1+v1[1]
			s.Wx2, s.Wy2 = s.Wx2+v2[0], s.Wy2+v2[1]
		}

		// state
		s.F1, s.U1 = f, u
		s.Close()
		f, u = s.F2, s.U2
		segs[i] = s
	}

	// point loads at the end node
	last := segs[len(segs)-1]
	for k, ld := range points {
		if !used[k] {
			v, _ := ele.ValueAt(ld, e, ld.(*ele.PointLoad).X)
			last.F2[0], last.F2[1], last.F2[2] = last.F2[0]+v[0], last.F2[1]+v[1], last.F2[2]+v[2]
		}
	}
	return
}

// point queries ///////////////////////////////////////////////////////////////////////////////////

// ForceAt returns the local internal forces [Fx, Fy, Mz] of e at x
//  found -- false if x is outside [0, L]
func (o *Structure) ForceAt(e ele.Element, lc ele.LoadCase, x float64) (f [3]float64, found bool, err error) {
	segs, err := o.Segments(e, lc)
	if err != nil {
		return
	}
	s, ξ, found := Locate(segs, x)
	if !found {
		return
	}
	if ξ == s.Length() {
		return s.F2, true, nil
	}
	return s.ForceAt(ξ), true, nil
}

// DisplacementAt returns the local displacements [ux, uy, rz] of e at x
//  found -- false if x is outside [0, L]
func (o *Structure) DisplacementAt(e ele.Element, lc ele.LoadCase, x float64) (u [3]float64, found bool, err error) {
	segs, err := o.Segments(e, lc)
	if err != nil {
		return
	}
	s, ξ, found := Locate(segs, x)
	if !found {
		return
	}
	return s.DispAt(ξ), true, nil
}

// Locate finds the segment containing x in [X1, X2); the last segment also contains its X2
//  ξ -- local offset x - X1
func Locate(segs []*ele.Segment, x float64) (s *ele.Segment, ξ float64, found bool) {
	for i, s := range segs {
		if s.Contains(x, i == len(segs)-1) {
			return s, x - s.X1, true
		}
	}
	return
}

// solution returns the free-DOF displacements of load case lc
func (o *Structure) solution(lc ele.LoadCase) (u *mat.VecDense, err error) {
	u, ok := o.U[lc]
	if !ok {
		return nil, chk.Err("load case %v has not been solved", lc)
	}
	return
}
