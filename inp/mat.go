// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds the elastic constants of a material
type Material struct {
	Name string  `json:"name" yaml:"name"` // label; e.g. "steel"
	E    float64 `json:"E" yaml:"E"`       // Young's modulus
	G    float64 `json:"G" yaml:"G"`       // shear modulus
}

// Section holds cross-section properties
//  Note: Ix is the moment of inertia about the out-of-plane axis; i.e. the one
//        that resists in-plane bending of 2D frames
type Section struct {
	Name     string    `json:"name" yaml:"name"`         // label; e.g. "IPE300"
	Material string    `json:"material" yaml:"material"` // material name
	A        float64   `json:"A" yaml:"A"`               // cross-sectional area
	Ax       float64   `json:"Ax" yaml:"Ax"`             // shear area along local x
	Ay       float64   `json:"Ay" yaml:"Ay"`             // shear area along local y
	Ix       float64   `json:"Ix" yaml:"Ix"`             // moment of inertia (in-plane bending)
	Iy       float64   `json:"Iy" yaml:"Iy"`             // moment of inertia (out-of-plane bending)
	J        float64   `json:"J" yaml:"J"`               // torsional constant
	Mat      *Material `json:"-" yaml:"-"`               // (derived) material
}

// Check checks material constants
func (o *Material) Check() (err error) {
	if o.E < 0 || o.G < 0 {
		return chk.Err("material %q: E and G must be non-negative. E=%g G=%g", o.Name, o.E, o.G)
	}
	return
}

// Check checks section properties
func (o *Section) Check() (err error) {
	if o.A < 0 || o.Ax < 0 || o.Ay < 0 || o.Ix < 0 || o.Iy < 0 || o.J < 0 {
		return chk.Err("section %q: properties must be non-negative. A=%g Ax=%g Ay=%g Ix=%g Iy=%g J=%g",
			o.Name, o.A, o.Ax, o.Ay, o.Ix, o.Iy, o.J)
	}
	if o.Mat == nil {
		return chk.Err("section %q: material is not set", o.Name)
	}
	return o.Mat.Check()
}

// EA returns the axial rigidity
func (o *Section) EA() float64 { return o.Mat.E * o.A }

// EI returns the flexural rigidity for in-plane bending
func (o *Section) EI() float64 { return o.Mat.E * o.Ix }

// String returns a short description
func (o *Section) String() string {
	mat := "<nil>"
	if o.Mat != nil {
		mat = o.Mat.Name
	}
	return io.Sf("%s{A=%g Ix=%g mat=%s}", o.Name, o.A, o.Ix, mat)
}

// MatDb holds materials and sections by name
type MatDb struct {
	Materials []*Material `json:"materials" yaml:"materials"`
	Sections  []*Section  `json:"sections" yaml:"sections"`
}

// Connect links sections to their materials and checks all data
func (o *MatDb) Connect() (err error) {
	mats := make(map[string]*Material)
	for _, m := range o.Materials {
		if _, ok := mats[m.Name]; ok {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		mats[m.Name] = m
	}
	for _, s := range o.Sections {
		m, ok := mats[s.Material]
		if !ok {
			return chk.Err("cannot find material %q for section %q", s.Material, s.Name)
		}
		s.Mat = m
		err = s.Check()
		if err != nil {
			return
		}
	}
	return
}

// GetSection returns the section named 'name' or nil
func (o *MatDb) GetSection(name string) *Section {
	for _, s := range o.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}
