// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
)

// NewStructureFromModel builds a structure from model data
//  Output:
//   o      -- structure ready to be solved
//   combos -- load combinations defined in the model
func NewStructureFromModel(m *inp.Model, log *zap.Logger) (o *Structure, combos []*Combination, err error) {

	// structure
	cfg := m.Solver
	o = NewStructure(&cfg, log)

	// nodes
	for _, nd := range m.Nodes {
		n, err := o.AddNode(nd.Id, nd.X, nd.Y)
		if err != nil {
			return nil, nil, err
		}
		if nd.Fix != "" {
			sup, err := ele.NewSupport(nd.Fix)
			if err != nil {
				return nil, nil, chk.Err("node %d: %v", nd.Id, err)
			}
			err = n.SetSupport(sup)
			if err != nil {
				return nil, nil, err
			}
		}
		if len(nd.Spring) == 3 {
			err = n.SetSpring(&ele.ElasticSupport{Kx: nd.Spring[0], Ky: nd.Spring[1], Cz: nd.Spring[2]})
			if err != nil {
				return nil, nil, err
			}
		}
	}

	// elements
	for _, ed := range m.Elems {
		if len(ed.Verts) != 2 {
			return nil, nil, chk.Err("element %d must have exactly 2 vertices", ed.Id)
		}
		a, b := o.Vid2node[ed.Verts[0]], o.Vid2node[ed.Verts[1]]
		var e ele.Element
		switch ed.Type {
		case "", "frame":
			rel, err := ele.ParseRelease(ed.Release)
			if err != nil {
				return nil, nil, chk.Err("element %d: %v", ed.Id, err)
			}
			e, err = o.AddFrame(ed.Id, a, b, m.GetSection(ed.Section), rel)
			if err != nil {
				return nil, nil, err
			}
		case "spring":
			e, err = o.AddSpring(ed.Id, a, b, ed.K, ed.R)
			if err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, chk.Err("element %d: cannot handle element type %q", ed.Id, ed.Type)
		}
		for _, x := range ed.MeshPts {
			e.AddMeshPoint(x)
		}
	}

	// load cases
	cases := make(map[string]ele.LoadCase)
	for _, cd := range m.Cases {
		cases[cd.Label] = ele.NewLoadCase(cd.Label, ele.ParseCategory(cd.Category))
	}
	if len(m.Solver.Cases) == 0 {
		for _, cd := range m.Cases {
			o.AddCase(cases[cd.Label])
		}
	} else {
		for _, label := range m.Solver.Cases {
			lc, ok := cases[label]
			if !ok {
				return nil, nil, chk.Err("cannot find load case %q", label)
			}
			o.AddCase(lc)
		}
	}

	// loads
	for i, ld := range m.Loads {
		lc, ok := cases[ld.Case]
		if !ok {
			return nil, nil, chk.Err("load %d: cannot find load case %q", i, ld.Case)
		}
		err = o.addLoad(ld, lc)
		if err != nil {
			return nil, nil, chk.Err("load %d: %v", i, err)
		}
	}

	// combinations
	for _, cd := range m.Combos {
		c := &Combination{Name: cd.Name}
		for _, label := range cd.Labels() {
			lc, ok := cases[label]
			if !ok {
				return nil, nil, chk.Err("combination %q: cannot find load case %q", cd.Name, label)
			}
			c.Factors = append(c.Factors, Factor{lc, cd.Factors[label]})
		}
		combos = append(combos, c)
	}
	o.Log.Debug("structure built", zap.Int("nnodes", len(o.Nodes)), zap.Int("nelems", len(o.Elems)), zap.Int("ncases", len(o.Cases)))
	return
}

// addLoad converts load data and adds it to its node or element
func (o *Structure) addLoad(ld *inp.LoadData, lc ele.LoadCase) (err error) {

	// values
	nv := map[string]int{"point": 3, "uniform": 2, "trapezoidal": 4, "nodal": 3, "support": 3}
	n, ok := nv[ld.Type]
	if !ok {
		return chk.Err("cannot handle load type %q", ld.Type)
	}
	if len(ld.Values) != n {
		return chk.Err("%s load requires %d values; %d given", ld.Type, n, len(ld.Values))
	}
	v := ld.Values

	// node loads
	if ld.Type == "nodal" || ld.Type == "support" {
		nod, ok := o.Vid2node[ld.Node]
		if !ok {
			return chk.Err("cannot find node %d", ld.Node)
		}
		if ld.Type == "nodal" {
			nod.AddNodalLoad(&ele.NodalLoad{Fx: v[0], Fy: v[1], Mz: v[2], Case: lc})
			return
		}
		return nod.AddSupportDisp(&ele.SupportDisplacement{Ux: v[0], Uy: v[1], Rz: v[2], Case: lc})
	}

	// element loads
	e, ok := o.Cid2elem[ld.Elem]
	if !ok {
		return chk.Err("cannot find element %d", ld.Elem)
	}
	dir, err := ele.ParseDirection(ld.Dir)
	if err != nil {
		return
	}
	switch ld.Type {
	case "point":
		return e.AddLoad(&ele.PointLoad{Fx: v[0], Fy: v[1], Mz: v[2], X: ld.Start, Dir: dir, Case: lc})
	case "uniform":
		return e.AddLoad(&ele.UniformLoad{Wx: v[0], Wy: v[1], Start: ld.Start, End: ld.End, Dir: dir, Case: lc})
	}
	return e.AddLoad(&ele.TrapezoidalLoad{Wx1: v[0], Wy1: v[1], Wx2: v[2], Wy2: v[3], Start: ld.Start, End: ld.End, Dir: dir, Case: lc})
}
