// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of frame analyses: result collection, text tables,
// diagrams and reports
package out

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
)

// constants
var (
	Npts = 4 // number of sub-divisions per segment when sampling results along elements
)

// NodeRes holds the results at a node
type NodeRes struct {
	Id        int        // node id
	X, Y      float64    // coordinates
	Supported bool       // has a rigid or elastic support
	U         [3]float64 // global displacements [ux, uy, rz]
	R         [3]float64 // reactions [Rx, Ry, Mz]
}

// ElemRes holds the results of an element
type ElemRes struct {
	Id     int          // element id
	Kind   string       // "frame" or "spring"
	Xa, Ya float64      // coordinates of start node
	Xb, Yb float64      // coordinates of end node
	L      float64      // length
	Fl     [6]float64   // local end forces
	X      []float64    // stations measured from the start node
	F      [][3]float64 // [len(X)] local internal forces [Fx, Fy, Mz]
	U      [][3]float64 // [len(X)] local displacements [ux, uy, rz]
	Ext    fem.Extreme  // extreme internal forces
}

// Results holds the results of a load case or combination
type Results struct {
	Label string     // e.g. "D(dead)" or "1.2D+1.6L"
	Nodes []*NodeRes // results at nodes
	Elems []*ElemRes // results along elements
}

// source gives access to the results of a load case or combination
type source struct {
	disp func(n *ele.Node) ([3]float64, error)
	reac func(n *ele.Node) ([3]float64, error)
	segs func(e ele.Element) ([]*ele.Segment, error)
	endf func(e ele.Element) ([6]float64, error)
}

// Collect collects the results of load case lc
func Collect(o *fem.Structure, lc ele.LoadCase) (res *Results, err error) {
	src := source{
		disp: func(n *ele.Node) ([3]float64, error) { return o.NodeDisplacement(n, lc) },
		reac: func(n *ele.Node) ([3]float64, error) { return o.NodeReaction(n, lc) },
		segs: func(e ele.Element) ([]*ele.Segment, error) { return o.Segments(e, lc) },
		endf: func(e ele.Element) (f [6]float64, err error) {
			fl, err := o.ElemLocalForces(e, lc)
			if err != nil {
				return
			}
			copy(f[:], fl.RawVector().Data)
			return
		},
	}
	return collect(o, lc.String(), src)
}

// CollectCombination collects the results of combination c
func CollectCombination(o *fem.Structure, c *fem.Combination) (res *Results, err error) {
	src := source{
		disp: func(n *ele.Node) ([3]float64, error) { return o.CombinedNodeDisplacement(n, c) },
		reac: func(n *ele.Node) ([3]float64, error) { return o.CombinedReaction(n, c) },
		segs: func(e ele.Element) ([]*ele.Segment, error) { return o.CombinedSegments(e, c) },
		endf: func(e ele.Element) (f [6]float64, err error) {
			for _, fc := range c.Factors {
				fl, err := o.ElemLocalForces(e, fc.Case)
				if err != nil {
					return f, err
				}
				for i := 0; i < 6; i++ {
					f[i] += fc.Value * fl.AtVec(i)
				}
			}
			return
		},
	}
	return collect(o, c.Name, src)
}

// collect collects results from src
func collect(o *fem.Structure, label string, src source) (res *Results, err error) {
	res = &Results{Label: label}
	for _, n := range o.Nodes {
		r := &NodeRes{Id: n.Id, X: n.X, Y: n.Y, Supported: n.Support != nil || n.Spring != nil}
		r.U, err = src.disp(n)
		if err != nil {
			return nil, chk.Err("cannot collect results of %q:\n%v", label, err)
		}
		r.R, err = src.reac(n)
		if err != nil {
			return nil, chk.Err("cannot collect results of %q:\n%v", label, err)
		}
		res.Nodes = append(res.Nodes, r)
	}
	for _, e := range o.Elems {
		a, b := e.Nodes()
		r := &ElemRes{Id: e.Id(), Kind: "frame", Xa: a.X, Ya: a.Y, Xb: b.X, Yb: b.Y, L: e.Length()}
		if _, ok := e.(*ele.Spring); ok {
			r.Kind = "spring"
		}
		r.Fl, err = src.endf(e)
		if err != nil {
			return nil, chk.Err("cannot collect results of %q:\n%v", label, err)
		}
		segs, err := src.segs(e)
		if err != nil {
			return nil, chk.Err("cannot collect results of %q:\n%v", label, err)
		}
		r.X, r.F, r.U = Sample(segs, Npts)
		r.Ext = fem.Extremes(segs)
		res.Elems = append(res.Elems, r)
	}
	return
}

// Sample evaluates internal forces and displacements at npts+1 stations of each segment
//  Note: both sides of segment boundaries are included; thus steps due to point loads
//        appear as repeated stations
func Sample(segs []*ele.Segment, npts int) (x []float64, f, u [][3]float64) {
	if npts < 1 {
		npts = 1
	}
	for _, s := range segs {
		ℓ := s.Length()
		for k := 0; k <= npts; k++ {
			ξ := ℓ * float64(k) / float64(npts)
			fk := s.ForceAt(ξ)
			if k == npts {
				fk = s.F2
			}
			x = append(x, s.X1+ξ)
			f = append(f, fk)
			u = append(u, s.DispAt(ξ))
		}
	}
	return
}
