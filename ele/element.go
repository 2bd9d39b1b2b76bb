// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements 2D frame and spring elements, their loads and the
// load-driven linear mesher
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Element is one of: *Frame or *Spring
//
//  Local DOFs:  0   1   2     3   4   5
//              ux0 uy0 rz0   ux1 uy1 rz1
//
//        y ^
//          |
//         (0)------------------------(1)----> x
//
type Element interface {

	// information
	Id() int                  // identifier
	Nodes() (a, b *Node)      // start and end nodes
	Length() float64          // length
	Eqs() []int               // [6] global DOF indices of both ends
	MeshPoints() []float64    // additional mesh points
	AddMeshPoint(x float64)   // adds mesh point located at x from the start node
	Segments() []*Segment     // mesh segments (without results)
	SetSegments(s []*Segment) // set mesh segments

	// matrices
	Recompute() (err error) // computes R, T, Kl and K
	Kl() *mat.Dense         // [6][6] local stiffness matrix
	K() *mat.Dense          // [6][6] global stiffness matrix K = Tᵗ·Kl·T
	T() *mat.Dense          // [6][6] global-to-local transformation matrix
	R() *mat.Dense          // [3][3] global-to-local rotation matrix

	// loads
	Loads() []Load                                    // loads applied on this element
	AddLoad(ld Load) (err error)                      // adds load
	SetFixedEndForces(cases []LoadCase) (err error)   // computes fixed-end forces of all load cases
	FixedEndForces(lc LoadCase) (*mat.VecDense, bool) // [6] global fixed-end forces of load case lc

	element() // seals the set of variants
}

// base holds data shared by all elements
type base struct {
	id         int
	nodeA      *Node
	nodeB      *Node
	length     float64
	c, s       float64
	kl, k      *mat.Dense
	t, r       *mat.Dense
	loads      []Load
	fef        map[LoadCase]*mat.VecDense
	segs       []*Segment
	meshPoints []float64
}

// newBase allocates a base element
func newBase(id int, a, b *Node) base {
	if a == nil || b == nil {
		chk.Panic("element %d: nodes must not be nil", id)
	}
	return base{
		id:    id,
		nodeA: a,
		nodeB: b,
		kl:    mat.NewDense(6, 6, nil),
		k:     mat.NewDense(6, 6, nil),
		t:     mat.NewDense(6, 6, nil),
		r:     mat.NewDense(3, 3, nil),
		fef:   make(map[LoadCase]*mat.VecDense),
	}
}

// Id returns the identifier
func (o *base) Id() int { return o.id }

// Nodes returns the start and end nodes
func (o *base) Nodes() (a, b *Node) { return o.nodeA, o.nodeB }

// Length returns the length
func (o *base) Length() float64 { return o.length }

// Kl returns the local stiffness matrix
func (o *base) Kl() *mat.Dense { return o.kl }

// K returns the global stiffness matrix
func (o *base) K() *mat.Dense { return o.k }

// T returns the transformation matrix
func (o *base) T() *mat.Dense { return o.t }

// R returns the rotation matrix
func (o *base) R() *mat.Dense { return o.r }

// Loads returns the loads
func (o *base) Loads() []Load { return o.loads }

// MeshPoints returns the additional mesh points
func (o *base) MeshPoints() []float64 { return o.meshPoints }

// AddMeshPoint adds a mesh point located at x from the start node
func (o *base) AddMeshPoint(x float64) { o.meshPoints = append(o.meshPoints, x) }

// Segments returns the mesh segments
func (o *base) Segments() []*Segment { return o.segs }

// SetSegments sets the mesh segments
func (o *base) SetSegments(s []*Segment) { o.segs = s }

// Eqs returns the global DOF indices of both ends
func (o *base) Eqs() []int {
	return []int{o.nodeA.Eqs[0], o.nodeA.Eqs[1], o.nodeA.Eqs[2], o.nodeB.Eqs[0], o.nodeB.Eqs[1], o.nodeB.Eqs[2]}
}

// FixedEndForces returns the global fixed-end forces of load case lc
func (o *base) FixedEndForces(lc LoadCase) (f *mat.VecDense, found bool) {
	f, found = o.fef[lc]
	return
}

// geometry computes length, direction cosines, R and T
func (o *base) geometry() {
	dx := o.nodeB.X - o.nodeA.X
	dy := o.nodeB.Y - o.nodeA.Y
	o.length = math.Sqrt(dx*dx + dy*dy)
	o.c, o.s = 1, 0
	if o.length > 0 {
		o.c, o.s = dx/o.length, dy/o.length
	}
	o.r.Zero()
	o.r.Set(0, 0, o.c)
	o.r.Set(0, 1, o.s)
	o.r.Set(1, 0, -o.s)
	o.r.Set(1, 1, o.c)
	o.r.Set(2, 2, 1)
	o.t.Zero()
	for m := 0; m < 2; m++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.t.Set(3*m+i, 3*m+j, o.r.At(i, j))
			}
		}
	}
}

// globalK computes K := Tᵗ·Kl·T
func (o *base) globalK() {
	var tmp mat.Dense
	tmp.Mul(o.kl, o.t)
	o.k.Mul(o.t.T(), &tmp)
}

// setFixedEndForces sums the fixed-end forces of all loads of each case
func (o *base) setFixedEndForces(e Element, cases []LoadCase) (err error) {
	o.fef = make(map[LoadCase]*mat.VecDense)
	for _, lc := range cases {
		sum := mat.NewVecDense(6, nil)
		for _, ld := range o.loads {
			if ld.LoadCase() != lc {
				continue
			}
			f, err := GlobalFixedEndForces(ld, e, lc)
			if err != nil {
				return chk.Err("element %d: cannot compute fixed-end forces:\n%v", o.id, err)
			}
			sum.AddVec(sum, f)
		}
		o.fef[lc] = sum
	}
	return
}

// ToLocal returns T·v
func ToLocal(e Element, v mat.Vector) *mat.VecDense {
	var r mat.VecDense
	r.MulVec(e.T(), v)
	return &r
}

// ToGlobal returns Tᵗ·v
func ToGlobal(e Element, v mat.Vector) *mat.VecDense {
	var r mat.VecDense
	r.MulVec(e.T().T(), v)
	return &r
}
