// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"time"

	"github.com/cpmech/goframe/ele"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// FactorStatus tells which factorization succeeded
type FactorStatus int

// factorization results
const (
	FactorSPD      FactorStatus = iota // Cholesky factorization; matrix is symmetric positive-definite
	FactorGeneral                      // QR factorization; Cholesky failed
	FactorSingular                     // both factorizations failed or the matrix is ill-conditioned
)

// String returns the name of the status
func (o FactorStatus) String() string {
	switch o {
	case FactorSPD:
		return "cholesky"
	case FactorGeneral:
		return "qr"
	}
	return "singular"
}

// Factorization holds the factorization of the global stiffness matrix
type Factorization struct {
	Status FactorStatus // which factorization is available
	Cond   float64      // estimated condition number
	chol   *mat.Cholesky
	qr     *mat.QR
}

// Factorize factorizes a symmetric matrix. Cholesky is tried first; QR is used if Cholesky fails
// or if the Cholesky condition number exceeds condMax. QR above condMax gives FactorSingular
//  condMax -- largest acceptable condition number; ≤ 0 => 1e15
func Factorize(k *mat.SymDense, condMax float64) (o *Factorization, status FactorStatus) {
	if condMax <= 0 {
		condMax = 1e15
	}
	o = new(Factorization)

	// Cholesky
	var chol mat.Cholesky
	if chol.Factorize(k) {
		o.Cond = chol.Cond()
		if o.Cond <= condMax {
			o.Status, o.chol = FactorSPD, &chol
			return o, o.Status
		}
	}

	// QR
	var qr mat.QR
	qr.Factorize(k)
	o.Cond = qr.Cond()
	if math.IsNaN(o.Cond) || o.Cond > condMax {
		o.Status = FactorSingular
		return o, o.Status
	}
	o.Status, o.qr = FactorGeneral, &qr
	return o, o.Status
}

// Solve solves K·x = b
func (o *Factorization) Solve(b *mat.VecDense) (x *mat.VecDense, err error) {
	x = mat.NewVecDense(b.Len(), nil)
	switch o.Status {
	case FactorSPD:
		err = o.chol.SolveVecTo(x, b)
	case FactorGeneral:
		err = o.qr.SolveVecTo(x, false, b)
	default:
		return nil, chk.Err("cannot solve system: matrix is singular (cond = %g)", o.Cond)
	}
	if err != nil {
		return nil, chk.Err("cannot solve system with %v factorization:\n%v", o.Status, err)
	}
	return
}

// Solve runs the analysis of all load cases
//  1. check model and compute element matrices
//  2. compute fixed-end forces
//  3. number DOFs
//  4. assemble and factorize stiffness matrix
//  5. assemble load vectors and solve each load case (concurrently if Cfg.Parallel)
//  6. mesh elements
//  Note: results of previous calls are discarded; no results are recorded if an error occurs
func (o *Structure) Solve() (err error) {

	// clear results
	cputime := time.Now()
	o.F, o.U, o.Fac, o.Kg = nil, nil, nil, nil

	// check
	if len(o.Cases) == 0 {
		return chk.Err("no load cases have been selected for analysis")
	}
	if len(o.Elems) == 0 {
		return chk.Err("structure has no elements")
	}
	err = o.connectivity()
	if err != nil {
		return
	}
	for _, e := range o.Elems {
		err = e.Recompute()
		if err != nil {
			return chk.Err("cannot compute element matrices:\n%v", err)
		}
	}

	// fixed-end forces
	for _, e := range o.Elems {
		err = e.SetFixedEndForces(o.Cases)
		if err != nil {
			return
		}
	}

	// numbering and stiffness matrix
	err = o.Renumber()
	if err != nil {
		return
	}
	err = o.AssembleK()
	if err != nil {
		return
	}

	// factorization
	fac, status := Factorize(o.Kg, o.Cfg.CondMax)
	switch status {
	case FactorSPD:
		o.Log.Info("stiffness matrix factorized", zap.Stringer("method", status), zap.Float64("cond", fac.Cond))
	case FactorGeneral:
		o.Log.Warn("Cholesky factorization failed; using QR", zap.Float64("cond", fac.Cond))
	default:
		o.Kg = nil
		return chk.Err("stiffness matrix is singular (cond = %g): the structure may be a mechanism", fac.Cond)
	}

	// load cases
	fs := make([]*mat.VecDense, len(o.Cases))
	us := make([]*mat.VecDense, len(o.Cases))
	solveCase := func(i int) (err error) {
		lc := o.Cases[i]
		fs[i], err = o.AssembleF(lc)
		if err != nil {
			return
		}
		us[i], err = fac.Solve(fs[i])
		if err != nil {
			return chk.Err("load case %v: %v", lc, err)
		}
		o.Log.Debug("load case solved", zap.Stringer("case", lc))
		return
	}
	if o.Cfg.Parallel {
		var g errgroup.Group
		for i := range o.Cases {
			g.Go(func() error { return solveCase(i) })
		}
		err = g.Wait()
	} else {
		for i := range o.Cases {
			err = solveCase(i)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		o.Kg = nil
		return
	}

	// mesh
	for _, e := range o.Elems {
		err = ele.SetupSegments(e, o.Cfg.MinSegCount, o.Cfg.MinSegLength)
		if err != nil {
			o.Kg = nil
			return
		}
	}

	// results
	o.Fac = fac
	o.F = make(map[ele.LoadCase]*mat.VecDense)
	o.U = make(map[ele.LoadCase]*mat.VecDense)
	for i, lc := range o.Cases {
		o.F[lc], o.U[lc] = fs[i], us[i]
	}
	o.Log.Info("analysis completed", zap.Int("ncases", len(o.Cases)), zap.Int("ndof", o.Ndof), zap.Duration("cputime", time.Since(cputime)))
	return
}
