// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// figure size
var (
	FigWidth  = 6 * vg.Inch // width of figures
	FigHeight = 2 * vg.Inch // height of each subplot
)

// PlotElementDiagrams plots diagrams of internal forces and displacements along each element.
// One png file is saved for each element with one subplot per key
//  Input:
//   res    -- results
//   dirout -- directory to save figures
//   fnkey  -- filename key; e.g. "portal" => "portal_e0.png", "portal_e1.png", ...
//   keys   -- quantities; e.g. []string{"Fx", "Fy", "Mz", "uy"}. nil => Fy, Mz, uy
//  Output:
//   files  -- paths of saved files
func PlotElementDiagrams(res *Results, dirout, fnkey string, keys []string) (files []string, err error) {
	if len(keys) == 0 {
		keys = []string{"Fy", "Mz", "uy"}
	}
	err = os.MkdirAll(dirout, 0755)
	if err != nil {
		return nil, chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	for _, r := range res.Elems {
		plots := make([][]*plot.Plot, len(keys))
		for i, key := range keys {
			p, err := splot(r, key, res.Label)
			if err != nil {
				return nil, err
			}
			plots[i] = []*plot.Plot{p}
		}
		fn := filepath.Join(dirout, io.Sf("%s_e%d.png", fnkey, r.Id))
		err = savefig(plots, fn)
		if err != nil {
			return nil, err
		}
		files = append(files, fn)
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// splot returns the subplot of key along element r
func splot(r *ElemRes, key, label string) (p *plot.Plot, err error) {
	sty, err := GetStyle(key)
	if err != nil {
		return
	}
	v, err := r.values(key)
	if err != nil {
		return
	}
	xys := make(plotter.XYs, len(r.X))
	for k, x := range r.X {
		xys[k].X, xys[k].Y = x, v[k]
	}
	p = plot.New()
	p.Title.Text = io.Sf("%s %d: %s (%s)", r.Kind, r.Id, sty.Name, label)
	p.X.Label.Text = "x"
	p.Y.Label.Text = GetLabel(key, "")
	p.Add(plotter.NewGrid())
	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: r.L, Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(0.5)
	p.Add(zero)
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = sty.Color
	l.LineStyle.Width = vg.Points(1.5)
	p.Add(l)
	return
}

// savefig saves aligned subplots in one png file
func savefig(plots [][]*plot.Plot, fn string) (err error) {
	rows := len(plots)
	img := vgimg.New(FigWidth, FigHeight*vg.Length(rows))
	dc := draw.New(img)
	t := draw.Tiles{
		Rows:      rows,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      3 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	w, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	if err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}
