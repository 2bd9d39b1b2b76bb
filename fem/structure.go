// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct stiffness method for 2D frames: DOF numbering,
// assembly, solution and post-processing
package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Structure holds all nodes, elements and load cases of a frame model in addition to
// the results of the last call to Solve
type Structure struct {

	// input
	Cfg   *inp.SolverData // solver settings
	Log   *zap.Logger     // logger
	Nodes []*ele.Node     // nodes in insertion order
	Elems []ele.Element   // elements in insertion order
	Cases []ele.LoadCase  // load cases to be analysed

	// auxiliary maps
	Vid2node map[int]*ele.Node   // node id => node
	Cid2elem map[int]ele.Element // element id => element

	// derived: set by Solve
	Ndof int                            // number of free DOFs
	Kg   *mat.SymDense                  // [Ndof][Ndof] global stiffness matrix
	Fac  *Factorization                 // factorization of Kg
	F    map[ele.LoadCase]*mat.VecDense // [Ndof] load vectors
	U    map[ele.LoadCase]*mat.VecDense // [Ndof] displacements of free DOFs
	conn map[*ele.Node][]ele.Element    // node => connected elements
}

// NewStructure returns a new structure
//  cfg -- solver settings; nil => default values
//  log -- logger; nil => no logging
func NewStructure(cfg *inp.SolverData, log *zap.Logger) (o *Structure) {
	if cfg == nil {
		cfg = new(inp.SolverData)
		cfg.SetDefault()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Structure{
		Cfg:      cfg,
		Log:      log,
		Vid2node: make(map[int]*ele.Node),
		Cid2elem: make(map[int]ele.Element),
	}
}

// AddNode adds a new free node
func (o *Structure) AddNode(id int, x, y float64) (n *ele.Node, err error) {
	if _, ok := o.Vid2node[id]; ok {
		return nil, chk.Err("node %d is already defined", id)
	}
	n = ele.NewNode(id, x, y)
	o.Nodes = append(o.Nodes, n)
	o.Vid2node[id] = n
	return
}

// AddFrame adds a new frame element connecting nodes a and b
func (o *Structure) AddFrame(id int, a, b *ele.Node, sec *inp.Section, release ele.Release) (e *ele.Frame, err error) {
	err = o.checkNewElem(id, a, b)
	if err != nil {
		return
	}
	if sec == nil {
		return nil, chk.Err("frame %d: section is not set", id)
	}
	e = ele.NewFrame(id, a, b, sec, release)
	o.addElem(e)
	return
}

// AddSpring adds a new spring element connecting nodes a and b
func (o *Structure) AddSpring(id int, a, b *ele.Node, ka, kr float64) (e *ele.Spring, err error) {
	err = o.checkNewElem(id, a, b)
	if err != nil {
		return
	}
	e = ele.NewSpring(id, a, b, ka, kr)
	o.addElem(e)
	return
}

// AddCase adds a load case to be analysed. Repeated cases are ignored
func (o *Structure) AddCase(lc ele.LoadCase) {
	for _, c := range o.Cases {
		if c == lc {
			return
		}
	}
	o.Cases = append(o.Cases, lc)
}

// Solved tells whether load case lc has been solved
func (o *Structure) Solved(lc ele.LoadCase) bool {
	_, ok := o.U[lc]
	return ok
}

// checkNewElem checks id and nodes of a new element
func (o *Structure) checkNewElem(id int, a, b *ele.Node) (err error) {
	if _, ok := o.Cid2elem[id]; ok {
		return chk.Err("element %d is already defined", id)
	}
	if a == nil || b == nil {
		return chk.Err("element %d: nodes must not be nil", id)
	}
	if o.Vid2node[a.Id] != a || o.Vid2node[b.Id] != b {
		return chk.Err("element %d: nodes must belong to this structure", id)
	}
	return
}

// addElem records a new element
func (o *Structure) addElem(e ele.Element) {
	o.Elems = append(o.Elems, e)
	o.Cid2elem[e.Id()] = e
}

// connectivity finds the elements connected to each node
func (o *Structure) connectivity() (err error) {
	o.conn = make(map[*ele.Node][]ele.Element)
	for _, e := range o.Elems {
		a, b := e.Nodes()
		o.conn[a] = append(o.conn[a], e)
		if b != a {
			o.conn[b] = append(o.conn[b], e)
		}
	}
	for _, n := range o.Nodes {
		if len(o.conn[n]) == 0 {
			return chk.Err("node %d is isolated: no element is connected to it", n.Id)
		}
	}
	return
}
