// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Keys of quantities that can be plotted along elements
var Keys = []string{"Fx", "Fy", "Mz", "ux", "uy", "rz"}

// Style holds the drawing style of a quantity
type Style struct {
	Name  string      // descriptive name
	Color color.Color // line color
}

// styles maps keys to styles
var styles = map[string]Style{
	"Fx": {"axial force", color.RGBA{R: 0, G: 0, B: 200, A: 255}},
	"Fy": {"shear force", color.RGBA{R: 0, G: 140, B: 0, A: 255}},
	"Mz": {"bending moment", color.RGBA{R: 200, G: 0, B: 0, A: 255}},
	"ux": {"axial displacement", color.RGBA{R: 120, G: 0, B: 160, A: 255}},
	"uy": {"deflection", color.RGBA{R: 160, G: 0, B: 160, A: 255}},
	"rz": {"rotation", color.RGBA{R: 200, G: 100, B: 0, A: 255}},
}

// GetStyle returns the style of key
func GetStyle(key string) (s Style, err error) {
	s, ok := styles[key]
	if !ok {
		return s, chk.Err("cannot find style for key %q. valid keys are %v", key, Keys)
	}
	return
}

// GetLabel returns the axis label of key; e.g. "Mz [kN·m]"
func GetLabel(key, unit string) string {
	if unit == "" {
		return key
	}
	return io.Sf("%s [%s]", key, unit)
}

// index returns the position of key in [Fx, Fy, Mz] or [ux, uy, rz] and whether
// key refers to displacements
func index(key string) (i int, isDisp bool, err error) {
	for j, k := range Keys {
		if k == key {
			return j % 3, j >= 3, nil
		}
	}
	return 0, false, chk.Err("cannot handle key %q. valid keys are %v", key, Keys)
}

// values returns the values of key at all stations of r
func (r *ElemRes) values(key string) (v []float64, err error) {
	i, isDisp, err := index(key)
	if err != nil {
		return
	}
	v = make([]float64, len(r.X))
	for k := range r.X {
		if isDisp {
			v[k] = r.U[k][i]
		} else {
			v[k] = r.F[k][i]
		}
	}
	return
}
