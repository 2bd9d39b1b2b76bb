// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// maximum length of sheet names
const maxSheetName = 31

// WriteXlsx writes results to a spreadsheet. Each results set gives three sheets:
// "<label> nodes", "<label> elems" and "<label> stations"
func WriteXlsx(fn string, res ...*Results) (err error) {
	if len(res) == 0 {
		return chk.Err("cannot write spreadsheet without results")
	}
	f := excelize.NewFile()
	defer f.Close()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return chk.Err("cannot create style:\n%v", err)
	}
	used := make(map[string]bool)
	first := -1
	for _, r := range res {
		base := sheetBase(r.Label)

		// nodes
		rows := [][]interface{}{{"node", "x", "y", "ux", "uy", "rz", "Rx", "Ry", "Mz"}}
		for _, n := range r.Nodes {
			rows = append(rows, []interface{}{n.Id, n.X, n.Y, n.U[0], n.U[1], n.U[2], n.R[0], n.R[1], n.R[2]})
		}
		idx, err := addSheet(f, uniqueName(base+" nodes", used), rows, bold)
		if err != nil {
			return err
		}
		if first < 0 {
			first = idx
		}

		// elements
		rows = [][]interface{}{{"elem", "kind", "L", "Fxa", "Fya", "Mza", "Fxb", "Fyb", "Mzb",
			"min Fx", "max Fx", "min Fy", "max Fy", "min Mz", "x(min Mz)", "max Mz", "x(max Mz)"}}
		for _, e := range r.Elems {
			row := []interface{}{e.Id, e.Kind, e.L}
			for _, v := range e.Fl {
				row = append(row, v)
			}
			row = append(row, e.Ext.Min[0], e.Ext.Max[0], e.Ext.Min[1], e.Ext.Max[1],
				e.Ext.Min[2], e.Ext.Xmin[2], e.Ext.Max[2], e.Ext.Xmax[2])
			rows = append(rows, row)
		}
		if _, err = addSheet(f, uniqueName(base+" elems", used), rows, bold); err != nil {
			return err
		}

		// stations
		rows = [][]interface{}{{"elem", "x", "Fx", "Fy", "Mz", "ux", "uy", "rz"}}
		for _, e := range r.Elems {
			for k, x := range e.X {
				rows = append(rows, []interface{}{e.Id, x, e.F[k][0], e.F[k][1], e.F[k][2], e.U[k][0], e.U[k][1], e.U[k][2]})
			}
		}
		if _, err = addSheet(f, uniqueName(base+" stations", used), rows, bold); err != nil {
			return err
		}
	}
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return chk.Err("cannot delete default sheet:\n%v", err)
	}
	f.SetActiveSheet(0)
	dir := filepath.Dir(fn)
	if dir != "" && dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	if err = f.SaveAs(fn); err != nil {
		return chk.Err("cannot save spreadsheet %q:\n%v", fn, err)
	}
	return
}

// addSheet adds a sheet filled with rows. The first row is the header
func addSheet(f *excelize.File, name string, rows [][]interface{}, header int) (idx int, err error) {
	idx, err = f.NewSheet(name)
	if err != nil {
		return 0, chk.Err("cannot create sheet %q:\n%v", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return 0, err
		}
		if err = f.SetSheetRow(name, cell, &row); err != nil {
			return 0, chk.Err("cannot write row %d of sheet %q:\n%v", i+1, name, err)
		}
	}
	if len(rows) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err = f.SetCellStyle(name, "A1", last, header); err != nil {
			return 0, chk.Err("cannot set style of sheet %q:\n%v", name, err)
		}
	}
	return
}

// sheetBase returns a label without characters that are invalid in sheet names
func sheetBase(label string) string {
	base := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, label)
	if len(base) > 20 {
		base = base[:20]
	}
	return base
}

// uniqueName truncates name and makes it unique
func uniqueName(name string, used map[string]bool) string {
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	res := name
	for i := 2; used[strings.ToLower(res)]; i++ {
		suffix := io.Sf("~%d", i)
		res = name
		if len(res)+len(suffix) > maxSheetName {
			res = res[:maxSheetName-len(suffix)]
		}
		res += suffix
	}
	used[strings.ToLower(res)] = true
	return res
}
