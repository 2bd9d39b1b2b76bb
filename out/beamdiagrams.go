// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotFrameDiagram draws a diagram of key over the geometry of the frame; e.g. bending moments.
// Values are drawn along the local y axis of each element. Key "def" draws the deformed shape
//  Input:
//   res      -- results
//   key      -- "Fx", "Fy", "Mz" or "def"
//   fn       -- file name; e.g. "/tmp/portal_M.png". The format is given by the extension
//   withtext -- show extreme values of each element
//   numfmt   -- number format for values. use "" for default
//   tol      -- tolerance to clip absolute values
//   coef     -- coefficient to scale max(dimension) divided by max(|value|); e.g. 0.1
func PlotFrameDiagram(res *Results, key, fn string, withtext bool, numfmt string, tol, coef float64) (err error) {

	if len(res.Elems) == 0 {
		return chk.Err("cannot draw frame diagram without elements")
	}

	// values and scaling factor
	vals := make([][]float64, len(res.Elems))
	xmin, xmax, ymin, ymax := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	maxAbs := 0.0
	for i, r := range res.Elems {
		if key == "def" {
			vals[i] = make([]float64, len(r.X))
			for k, u := range r.U {
				vals[i][k] = math.Hypot(u[0], u[1])
			}
		} else {
			if key != "Fx" && key != "Fy" && key != "Mz" {
				return chk.Err("cannot draw frame diagram of key %q", key)
			}
			vals[i], err = r.values(key)
			if err != nil {
				return
			}
		}
		for _, v := range vals[i] {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
		xmin, xmax = math.Min(xmin, math.Min(r.Xa, r.Xb)), math.Max(xmax, math.Max(r.Xa, r.Xb))
		ymin, ymax = math.Min(ymin, math.Min(r.Ya, r.Yb)), math.Max(ymax, math.Max(r.Ya, r.Yb))
	}
	dist := math.Max(xmax-xmin, ymax-ymin)
	sf := 1.0
	if maxAbs > 1e-7 {
		sf = coef * dist / maxAbs
	}
	if numfmt == "" {
		numfmt = "%.3g"
	}

	// plot
	p := plot.New()
	p.Title.Text = io.Sf("%s: %s", res.Label, key)
	p.HideAxes()
	clr := diagramColor(key)
	for i, r := range res.Elems {

		// geometry
		c, s := (r.Xb-r.Xa)/r.L, (r.Yb-r.Ya)/r.L
		if r.L <= 0 {
			c, s = 1, 0
		}
		axis, err := plotter.NewLine(plotter.XYs{{X: r.Xa, Y: r.Ya}, {X: r.Xb, Y: r.Yb}})
		if err != nil {
			return err
		}
		axis.LineStyle.Width = vg.Points(2)
		p.Add(axis)

		// diagram
		pts := make(plotter.XYs, 0, len(r.X)+2)
		if key != "def" {
			pts = append(pts, plotter.XY{X: r.Xa, Y: r.Ya})
		}
		imax := 0
		for k, x := range r.X {
			var dx, dy float64
			if key == "def" {
				u := r.U[k]
				dx, dy = sf*(u[0]*c-u[1]*s), sf*(u[0]*s+u[1]*c)
			} else {
				dx, dy = -sf*vals[i][k]*s, sf*vals[i][k]*c
			}
			pts = append(pts, plotter.XY{X: r.Xa + x*c + dx, Y: r.Ya + x*s + dy})
			if math.Abs(vals[i][k]) > math.Abs(vals[i][imax]) {
				imax = k
			}
		}
		if key != "def" {
			pts = append(pts, plotter.XY{X: r.Xb, Y: r.Yb})
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = clr
		l.LineStyle.Width = vg.Points(1)
		if key == "def" {
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(l)

		// text
		if withtext && len(r.X) > 0 && math.Abs(vals[i][imax]) > tol {
			lbl, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    []plotter.XY{pts[imax+1-b2i(key == "def")]},
				Labels: []string{io.Sf(numfmt, vals[i][imax])},
			})
			if err != nil {
				return err
			}
			p.Add(lbl)
		}
	}

	// margins
	δ := 0.1*dist + coef*dist
	p.X.Min, p.X.Max = xmin-δ, xmax+δ
	p.Y.Min, p.Y.Max = ymin-δ, ymax+δ

	// save
	dir := filepath.Dir(fn)
	if dir != "" && dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return chk.Err("cannot create directory %q:\n%v", dir, err)
		}
	}
	w := vg.Length(8) * vg.Inch
	h := w * vg.Length((ymax-ymin+2*δ)/(xmax-xmin+2*δ))
	h = vg.Length(math.Min(math.Max(float64(h), float64(3*vg.Inch)), float64(10*vg.Inch)))
	err = p.Save(w, h, fn)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", fn, err)
	}
	return
}

// diagramColor returns the color of frame diagrams
func diagramColor(key string) color.Color {
	if key == "def" {
		key = "uy"
	}
	if s, err := GetStyle(key); err == nil {
		return s.Color
	}
	return color.Black
}

// b2i converts bool to int
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
