// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of frame analyses: materials, sections,
// solver settings and model files (.json or .yaml)
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// SolverData holds solver and post-processing settings
type SolverData struct {

	// meshing
	MinSegCount  int     `json:"minsegcount" yaml:"minsegcount"`   // minimum number of segments per frame element
	MinSegLength float64 `json:"minseglength" yaml:"minseglength"` // target segment length; 0 => disabled

	// solution
	Parallel bool     `json:"parallel" yaml:"parallel"` // solve load cases concurrently
	CondMax  float64  `json:"condmax" yaml:"condmax"`   // largest acceptable condition number of the stiffness matrix
	Cases    []string `json:"cases" yaml:"cases"`       // labels of load cases to run; empty => all
}

// SetDefault sets defaults values
func (o *SolverData) SetDefault() {
	o.MinSegCount = 10
	o.MinSegLength = 0
	o.CondMax = 1e15
}

// PostProcess fixes values after reading
func (o *SolverData) PostProcess() {
	if o.MinSegCount < 1 {
		o.MinSegCount = 1
	}
	if o.MinSegLength < 0 {
		o.MinSegLength = 0
	}
	if o.CondMax <= 0 {
		o.CondMax = 1e15
	}
}

// NodeData holds node data
type NodeData struct {
	Id     int       `json:"id" yaml:"id"`         // identifier
	X      float64   `json:"x" yaml:"x"`           // x-coordinate
	Y      float64   `json:"y" yaml:"y"`           // y-coordinate
	Fix    string    `json:"fix" yaml:"fix"`       // restrained dofs; e.g. "ux uy rz", "ux uy", "uy"
	Spring []float64 `json:"spring" yaml:"spring"` // elastic support [Kx, Ky, Cz]
}

// ElemData holds element data
type ElemData struct {
	Id      int       `json:"id" yaml:"id"`           // identifier
	Type    string    `json:"type" yaml:"type"`       // "frame" or "spring"
	Verts   []int     `json:"verts" yaml:"verts"`     // ids of start and end nodes
	Section string    `json:"section" yaml:"section"` // frame: section name
	Release string    `json:"release" yaml:"release"` // frame: "", "none", "start", "end" or "both"
	K       float64   `json:"k" yaml:"k"`             // spring: axial stiffness
	R       float64   `json:"r" yaml:"r"`             // spring: rotational stiffness
	MeshPts []float64 `json:"meshpts" yaml:"meshpts"` // additional mesh points
}

// CaseData holds load case data
type CaseData struct {
	Label    string `json:"label" yaml:"label"`       // e.g. "D1"
	Category string `json:"category" yaml:"category"` // e.g. "dead", "live"
}

// LoadData holds load data
//  Values:
//   point       -- [Fx, Fy, Mz]
//   uniform     -- [Wx, Wy]
//   trapezoidal -- [Wx1, Wy1, Wx2, Wy2]
//   nodal       -- [Fx, Fy, Mz]
//   support     -- [Ux, Uy, Rz]
type LoadData struct {
	Type   string    `json:"type" yaml:"type"`     // "point", "uniform", "trapezoidal", "nodal" or "support"
	Case   string    `json:"case" yaml:"case"`     // load case label
	Elem   int       `json:"elem" yaml:"elem"`     // element id (frame loads)
	Node   int       `json:"node" yaml:"node"`     // node id (nodal and support loads)
	Dir    string    `json:"dir" yaml:"dir"`       // "global" or "local"; default = "global"
	Values []float64 `json:"values" yaml:"values"` // intensities
	Start  float64   `json:"start" yaml:"start"`   // offset from start node; position of point loads
	End    float64   `json:"end" yaml:"end"`       // offset from end node
}

// CombData holds a load combination
type CombData struct {
	Name    string             `json:"name" yaml:"name"`       // e.g. "1.2D+1.6L"
	Factors map[string]float64 `json:"factors" yaml:"factors"` // case label => factor
}

// Labels returns the case labels of the combination in sorted order
func (o *CombData) Labels() (labels []string) {
	for l := range o.Factors {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return
}

// Model holds all data of a frame model
type Model struct {
	Desc   string      `json:"desc" yaml:"desc"`     // description
	Solver SolverData  `json:"solver" yaml:"solver"` // solver settings
	MatDb  `yaml:",inline"`                          // materials and sections
	Nodes  []*NodeData `json:"nodes" yaml:"nodes"`   // nodes
	Elems  []*ElemData `json:"elems" yaml:"elems"`   // elements
	Cases  []*CaseData `json:"cases" yaml:"cases"`   // load cases
	Loads  []*LoadData `json:"loads" yaml:"loads"`   // loads
	Combos []*CombData `json:"combos" yaml:"combos"` // load combinations

	// derived
	Key string `json:"-" yaml:"-"` // filename key; e.g. "portal" for "portal.yaml"
}

// ReadModel reads a model file; the format is selected by the extension: .json, .yaml or .yml
func ReadModel(fnpath string) (o *Model, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnpath, err)
	}
	ext := strings.ToLower(filepath.Ext(fnpath))
	o, err = ParseModel(b, ext)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fnpath, err)
	}
	o.Key = strings.TrimSuffix(filepath.Base(fnpath), filepath.Ext(fnpath))
	return
}

// ParseModel decodes and checks model data
//  ext -- ".json", ".yaml" or ".yml"
func ParseModel(b []byte, ext string) (o *Model, err error) {

	// set default values
	o = new(Model)
	o.Solver.SetDefault()

	// decode
	switch ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("model format %q is not available", ext)
	}
	if err != nil {
		return nil, err
	}

	// derived data
	o.Solver.PostProcess()
	err = o.MatDb.Connect()
	if err != nil {
		return nil, err
	}
	return o, o.Check()
}

// Check checks references between model data
func (o *Model) Check() (err error) {
	nodes := make(map[int]bool)
	for _, n := range o.Nodes {
		if nodes[n.Id] {
			return chk.Err("node %d is defined more than once", n.Id)
		}
		nodes[n.Id] = true
		if n.Spring != nil && len(n.Spring) != 3 {
			return chk.Err("node %d: spring support requires [Kx, Ky, Cz]", n.Id)
		}
	}
	elems := make(map[int]bool)
	for _, e := range o.Elems {
		if elems[e.Id] {
			return chk.Err("element %d is defined more than once", e.Id)
		}
		elems[e.Id] = true
		if len(e.Verts) != 2 {
			return chk.Err("element %d must have exactly 2 vertices", e.Id)
		}
		for _, v := range e.Verts {
			if !nodes[v] {
				return chk.Err("element %d: cannot find node %d", e.Id, v)
			}
		}
		if (e.Type == "" || e.Type == "frame") && o.GetSection(e.Section) == nil {
			return chk.Err("element %d: cannot find section %q", e.Id, e.Section)
		}
	}
	cases := make(map[string]bool)
	for _, c := range o.Cases {
		if cases[c.Label] {
			return chk.Err("load case %q is defined more than once", c.Label)
		}
		cases[c.Label] = true
	}
	for i, l := range o.Loads {
		if !cases[l.Case] {
			return chk.Err("load %d: cannot find load case %q", i, l.Case)
		}
	}
	for _, c := range o.Combos {
		for l := range c.Factors {
			if !cases[l] {
				return chk.Err("combination %q: cannot find load case %q", c.Name, l)
			}
		}
	}
	for _, l := range o.Solver.Cases {
		if !cases[l] {
			return chk.Err("solver: cannot find load case %q", l)
		}
	}
	return
}
