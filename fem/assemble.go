// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// AssembleK assembles the global stiffness matrix of free DOFs
//  Note: Renumber must be called first
func (o *Structure) AssembleK() (err error) {
	if o.Ndof < 1 {
		return chk.Err("cannot assemble stiffness matrix: DOFs are not numbered")
	}

	// element matrices
	var kb Triplet
	kb.Init(o.Ndof, o.Ndof, 36*len(o.Elems)+3*len(o.Nodes))
	for _, e := range o.Elems {
		k := e.K()
		eqs := e.Eqs()
		for i, I := range eqs {
			if I >= o.Ndof {
				continue
			}
			for j, J := range eqs {
				if J >= o.Ndof {
					continue
				}
				kb.Put(I, J, k.At(i, j))
			}
		}
	}

	// elastic supports
	for _, n := range o.Nodes {
		if n.Spring == nil {
			continue
		}
		for i, kk := range []float64{n.Spring.Kx, n.Spring.Ky, n.Spring.Cz} {
			if n.Eqs[i] < o.Ndof {
				kb.Put(n.Eqs[i], n.Eqs[i], kk)
			}
		}
	}
	o.Kg = kb.ToSymDense()
	o.Log.Debug("stiffness matrix assembled", zap.Int("ndof", o.Ndof), zap.Int("nnz", kb.Len()))
	return
}

// AssembleF assembles the load vector of free DOFs for load case lc
//  F = nodal loads - Σ fixed-end forces - Σ K_e·u_e(prescribed support displacements)
//  Note: Renumber and SetFixedEndForces must be called first
func (o *Structure) AssembleF(lc ele.LoadCase) (f *mat.VecDense, err error) {
	if o.Ndof < 1 {
		return nil, chk.Err("cannot assemble load vector: DOFs are not numbered")
	}
	f = mat.NewVecDense(o.Ndof, nil)

	// nodal loads
	for _, n := range o.Nodes {
		p := n.ExternalLoads(lc)
		for i := 0; i < 3; i++ {
			if n.Eqs[i] < o.Ndof {
				f.SetVec(n.Eqs[i], f.AtVec(n.Eqs[i])+p[i])
			}
		}
	}

	// elements
	for _, e := range o.Elems {
		eqs := e.Eqs()

		// fixed-end forces
		fef, found := e.FixedEndForces(lc)
		if !found {
			return nil, chk.Err("element %d: fixed-end forces of load case %v have not been computed", e.Id(), lc)
		}
		for i, I := range eqs {
			if I < o.Ndof {
				f.SetVec(I, f.AtVec(I)-fef.AtVec(i))
			}
		}

		// prescribed support displacements
		a, b := e.Nodes()
		ua, hasA := a.PrescribedDisp(lc)
		ub, hasB := b.PrescribedDisp(lc)
		if !hasA && !hasB {
			continue
		}
		ue := mat.NewVecDense(6, []float64{ua[0], ua[1], ua[2], ub[0], ub[1], ub[2]})
		var fe mat.VecDense
		fe.MulVec(e.K(), ue)
		for i, I := range eqs {
			if I < o.Ndof {
				f.SetVec(I, f.AtVec(I)-fe.AtVec(i))
			}
		}
	}
	return
}
