// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DofKeys holds the keys of the degrees of freedom of each node
var DofKeys = []string{"ux", "uy", "rz"}

// Support holds a rigid support; true means restrained
type Support struct {
	Ux, Uy, Rz bool
}

// Restrained returns whether dof i (0=ux, 1=uy, 2=rz) is restrained
func (o *Support) Restrained(i int) bool {
	switch i {
	case 0:
		return o.Ux
	case 1:
		return o.Uy
	}
	return o.Rz
}

// NewSupport returns a support from keys such as "ux uy rz"
func NewSupport(keys string) (o *Support, err error) {
	o = new(Support)
	for _, key := range splitKeys(keys) {
		switch key {
		case "ux":
			o.Ux = true
		case "uy":
			o.Uy = true
		case "rz":
			o.Rz = true
		default:
			return nil, chk.Err("cannot handle support key %q", key)
		}
	}
	return
}

// ElasticSupport holds the stiffness coefficients of an elastic (spring) support
type ElasticSupport struct {
	Kx, Ky, Cz float64
}

// Node holds nodal data
type Node struct {

	// input
	Id      int             // identifier
	X, Y    float64         // coordinates
	Support *Support        // rigid support; nil => none
	Spring  *ElasticSupport // elastic support; nil => none

	// loads by load case
	NodalLoads   map[LoadCase][]*NodalLoad
	SupportDisps map[LoadCase][]*SupportDisplacement

	// derived
	Eqs [3]int // global DOF indices of ux, uy, rz; -1 => not numbered yet
}

// NewNode returns a new free node
func NewNode(id int, x, y float64) *Node {
	return &Node{
		Id:           id,
		X:            x,
		Y:            y,
		NodalLoads:   make(map[LoadCase][]*NodalLoad),
		SupportDisps: make(map[LoadCase][]*SupportDisplacement),
		Eqs:          [3]int{-1, -1, -1},
	}
}

// SetSupport sets a rigid support
func (o *Node) SetSupport(s *Support) (err error) {
	if o.Spring != nil {
		return chk.Err("node %d: cannot set rigid support because an elastic support is already set", o.Id)
	}
	o.Support = s
	return
}

// SetSpring sets an elastic support
func (o *Node) SetSpring(s *ElasticSupport) (err error) {
	if o.Support != nil {
		return chk.Err("node %d: cannot set elastic support because a rigid support is already set", o.Id)
	}
	if s.Kx < 0 || s.Ky < 0 || s.Cz < 0 {
		return chk.Err("node %d: spring coefficients must be non-negative", o.Id)
	}
	o.Spring = s
	return
}

// Restrained returns whether dof i (0=ux, 1=uy, 2=rz) is rigidly restrained
func (o *Node) Restrained(i int) bool {
	if o.Support == nil {
		return false
	}
	return o.Support.Restrained(i)
}

// Nfree returns the number of free dofs. Elastic supports do not restrain dofs
func (o *Node) Nfree() (n int) {
	for i := 0; i < 3; i++ {
		if !o.Restrained(i) {
			n++
		}
	}
	return
}

// AddNodalLoad adds a nodal load
func (o *Node) AddNodalLoad(l *NodalLoad) {
	o.NodalLoads[l.Case] = append(o.NodalLoads[l.Case], l)
}

// AddSupportDisp adds a prescribed support displacement. Only restrained dofs may be displaced
func (o *Node) AddSupportDisp(l *SupportDisplacement) (err error) {
	for i, v := range l.Values() {
		if v != 0 && !o.Restrained(i) {
			return chk.Err("node %d: cannot prescribe %s=%g on a dof that is not restrained", o.Id, DofKeys[i], v)
		}
	}
	o.SupportDisps[l.Case] = append(o.SupportDisps[l.Case], l)
	return
}

// ExternalLoads returns the sum of nodal loads of load case lc
func (o *Node) ExternalLoads(lc LoadCase) (f [3]float64) {
	for _, l := range o.NodalLoads[lc] {
		f[0] += l.Fx
		f[1] += l.Fy
		f[2] += l.Mz
	}
	return
}

// PrescribedDisp returns the sum of prescribed support displacements of load case lc
func (o *Node) PrescribedDisp(lc LoadCase) (u [3]float64, found bool) {
	for _, l := range o.SupportDisps[lc] {
		found = true
		u[0] += l.Ux
		u[1] += l.Uy
		u[2] += l.Rz
	}
	return
}

// String returns a short description
func (o *Node) String() string {
	return io.Sf("node %d (%g, %g)", o.Id, o.X, o.Y)
}

// splitKeys splits keys separated by spaces or commas
func splitKeys(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
}
