// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. sections and materials")

	db := MatDb{
		Materials: []*Material{{Name: "steel", E: 200e6, G: 80e6}, {Name: "wood", E: 12e6}},
		Sections:  []*Section{{Name: "S1", Material: "steel", A: 0.01, Ix: 1e-4}, {Name: "W1", Material: "wood", A: 0.02, Ix: 2e-4}},
	}
	err := db.Connect()
	if err != nil {
		tst.Errorf("Connect failed:\n%v", err)
		return
	}
	s := db.GetSection("S1")
	io.Pforan("%v\n", s)
	chk.String(tst, s.Mat.Name, "steel")
	chk.Float64(tst, "EA", 1e-8, s.EA(), 2e6)
	chk.Float64(tst, "EI", 1e-10, s.EI(), 2e4)
	chk.Float64(tst, "EI(W1)", 1e-10, db.GetSection("W1").EI(), 2400)
	chk.String(tst, s.String(), "S1{A=0.01 Ix=0.0001 mat=steel}")
	if db.GetSection("S2") != nil {
		tst.Errorf("S2 should not exist\n")
		return
	}
	chk.String(tst, (&Section{Name: "X"}).String(), "X{A=0 Ix=0 mat=<nil>}")
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. errors in sections and materials")

	for i, db := range []MatDb{
		{Materials: []*Material{{Name: "a"}, {Name: "a"}}},
		{Sections: []*Section{{Name: "S1", Material: "steel"}}},
		{Materials: []*Material{{Name: "a", E: -1}}, Sections: []*Section{{Name: "S1", Material: "a"}}},
		{Materials: []*Material{{Name: "a", E: 1}}, Sections: []*Section{{Name: "S1", Material: "a", Ix: -1}}},
	} {
		err := db.Connect()
		io.Pforan("%d: %v\n", i, err)
		if err == nil {
			tst.Errorf("%d: Connect should have failed\n", i)
			return
		}
	}
	if err := (&Section{Name: "S"}).Check(); err == nil {
		tst.Errorf("Check should have failed without material\n")
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read yaml and json models")

	m, err := ReadModel("../fem/data/portal.yaml")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	chk.String(tst, m.Key, "portal")
	chk.IntAssert(len(m.Materials), 1)
	chk.IntAssert(len(m.Sections), 1)
	chk.IntAssert(len(m.Nodes), 4)
	chk.IntAssert(len(m.Elems), 3)
	chk.IntAssert(len(m.Cases), 3)
	chk.IntAssert(len(m.Loads), 7)
	chk.IntAssert(len(m.Combos), 2)
	chk.IntAssert(m.Solver.MinSegCount, 10)
	chk.Float64(tst, "CondMax", 1e-17, m.Solver.CondMax/1e15, 1)
	if !m.Solver.Parallel {
		tst.Errorf("parallel flag should be set\n")
		return
	}
	chk.String(tst, m.Nodes[0].Fix, "ux uy rz")
	chk.Float64(tst, "meshpt", 1e-17, m.Elems[1].MeshPts[0], 4.5)
	chk.String(tst, m.Loads[0].Dir, "local")
	chk.Array(tst, "trapezoidal", 1e-17, m.Loads[1].Values, []float64{0, -10, 0, -20})
	chk.Float64(tst, "point: start", 1e-17, m.Loads[2].Start, 3)
	chk.Strings(tst, "combo labels", m.Combos[0].Labels(), []string{"D", "L"})
	chk.Float64(tst, "factor", 1e-17, m.Combos[0].Factors["L"], 1.6)
	if m.Sections[0].Mat == nil || m.Sections[0].Mat.G != 80e6 {
		tst.Errorf("section should be connected to material\n")
		return
	}

	m, err = ReadModel("../fem/data/beam.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	chk.String(tst, m.Key, "beam")
	chk.String(tst, m.Desc, "simply supported beam with uniform load")
	chk.Ints(tst, "verts", m.Elems[0].Verts, []int{1, 2})
	chk.String(tst, m.Elems[0].Type, "frame")
	chk.String(tst, m.Cases[0].Category, "dead")
	chk.IntAssert(m.Solver.MinSegCount, 10)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. solver settings and errors")

	m, err := ParseModel([]byte("solver: { minsegcount: -3, minseglength: -1, condmax: -2 }"), ".yml")
	if err != nil {
		tst.Errorf("ParseModel failed:\n%v", err)
		return
	}
	chk.IntAssert(m.Solver.MinSegCount, 1)
	chk.Float64(tst, "MinSegLength", 1e-17, m.Solver.MinSegLength, 0)
	chk.Float64(tst, "CondMax", 1e-17, m.Solver.CondMax/1e15, 1)

	for _, fn := range []string{"missing.yaml", "/tmp/goframe/does-not-exist.json"} {
		_, err = ReadModel(fn)
		io.Pforan("%v\n", err)
		if err == nil {
			tst.Errorf("ReadModel should have failed with missing file %q\n", fn)
			return
		}
	}
	for i, txt := range []string{
		"nodes: [ { id: 0 }, { id: 0 } ]",
		"nodes: [ { id: 0, spring: [1, 2] } ]",
		"nodes: [ { id: 0 } ]\nelems: [ { id: 0, type: spring, verts: [0] } ]",
		"nodes: [ { id: 0 }, { id: 1 } ]\nelems: [ { id: 0, type: spring, verts: [0, 1] }, { id: 0, type: spring, verts: [0, 1] } ]",
		"nodes: [ { id: 0 } ]\nelems: [ { id: 0, type: spring, verts: [0, 5] } ]",
		"nodes: [ { id: 0 }, { id: 1 } ]\nelems: [ { id: 0, verts: [0, 1], section: S9 } ]",
		"cases: [ { label: D }, { label: D } ]",
		"cases: [ { label: D } ]\nloads: [ { type: nodal, case: L } ]",
		"cases: [ { label: D } ]\ncombos: [ { name: c, factors: { L: 1 } } ]",
		"cases: [ { label: D } ]\nsolver: { cases: [L] }",
		"sections: [ { name: S, material: steel } ]",
		"nodes: {",
	} {
		_, err = ParseModel([]byte(txt), ".yaml")
		io.Pforan("%2d: %v\n", i, err)
		if err == nil {
			tst.Errorf("%d: ParseModel should have failed\n", i)
			return
		}
	}
	if _, err = ParseModel([]byte("{}"), ".toml"); err == nil {
		tst.Errorf("ParseModel should have failed with unknown format\n")
		return
	}
	if _, err = ParseModel([]byte(`{"nodes": 1}`), ".json"); err == nil {
		tst.Errorf("ParseModel should have failed with bad json\n")
	}
}
