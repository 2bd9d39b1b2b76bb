// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
)

// WritePdf writes a report with tables of results followed by figures
//  Input:
//   fn     -- file name; e.g. "/tmp/portal.pdf"
//   title  -- title of report
//   images -- png files to include; may be nil
//   res    -- results of load cases and/or combinations
func WritePdf(fn, title string, images []string, res ...*Results) (err error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.SetCreator("goframe", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, r := range res {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, io.Sf("Results of %s", r.Label), "", 1, "L", false, 0, "")

		// nodes
		table(pdf, []string{"node", "ux", "uy", "rz", "Rx", "Ry", "Mz"}, []float64{14, 26, 26, 26, 26, 26, 26},
			len(r.Nodes), func(i int) []string {
				n := r.Nodes[i]
				row := []string{io.Sf("%d", n.Id), num(n.U[0]), num(n.U[1]), num(n.U[2]), "-", "-", "-"}
				if n.Supported {
					row[4], row[5], row[6] = num(n.R[0]), num(n.R[1]), num(n.R[2])
				}
				return row
			})
		pdf.Ln(3)

		// extremes
		table(pdf, []string{"elem", "key", "min", "x(min)", "max", "x(max)"}, []float64{14, 14, 30, 20, 30, 20},
			3*len(r.Elems), func(i int) []string {
				e, k := r.Elems[i/3], i%3
				return []string{io.Sf("%d", e.Id), Keys[k], num(e.Ext.Min[k]), io.Sf("%.4f", e.Ext.Xmin[k]),
					num(e.Ext.Max[k]), io.Sf("%.4f", e.Ext.Xmax[k])}
			})
		pdf.Ln(5)
	}

	// figures
	for _, img := range images {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, filepath.Base(img), "", 1, "L", false, 0, "")
		pdf.Image(img, 10, pdf.GetY(), 190, 0, false, "PNG", 0, "")
	}
	if pdf.Err() {
		return chk.Err("cannot generate pdf report:\n%v", pdf.Error())
	}

	dir := filepath.Dir(fn)
	if dir != "" && dir != "." {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	if err = pdf.OutputFileAndClose(fn); err != nil {
		return chk.Err("cannot save pdf report %q:\n%v", fn, err)
	}
	return
}

// table draws a table with header and nrows rows given by row
func table(pdf *gofpdf.Fpdf, header []string, widths []float64, nrows int, row func(i int) []string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	for j, h := range header {
		pdf.CellFormat(widths[j], 5, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Courier", "", 8)
	for i := 0; i < nrows; i++ {
		for j, txt := range row(i) {
			pdf.CellFormat(widths[j], 5, txt, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// num formats numbers in tables
func num(v float64) string {
	return io.Sf("%.4e", v)
}
