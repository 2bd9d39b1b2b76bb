// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/goframe/ele"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
)

// Renumber assigns global DOF indices to all nodes
//  Free DOFs are numbered first, in [0, Ndof), followed by restrained DOFs in [Ndof, 3·nnodes).
//  Nodes are visited in ascending order of restrained DOFs (stable), i.e. fully restrained
//  nodes are numbered last. Within each node the order is ux, uy, rz.
func (o *Structure) Renumber() (err error) {

	// order
	order := make([]*ele.Node, len(o.Nodes))
	copy(order, o.Nodes)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Nfree() > order[j].Nfree()
	})

	// free DOFs
	eq := 0
	for _, n := range order {
		for i := 0; i < 3; i++ {
			n.Eqs[i] = -1
			if !n.Restrained(i) {
				n.Eqs[i] = eq
				eq++
			}
		}
	}
	o.Ndof = eq
	if o.Ndof == 0 {
		return chk.Err("structure has no free DOFs: all nodes are fully restrained")
	}

	// restrained DOFs
	for _, n := range order {
		for i := 0; i < 3; i++ {
			if n.Restrained(i) {
				n.Eqs[i] = eq
				eq++
			}
		}
	}
	o.Log.Debug("DOFs numbered", zap.Int("nnodes", len(o.Nodes)), zap.Int("ndof", o.Ndof), zap.Int("nrestrained", eq-o.Ndof))
	return
}
