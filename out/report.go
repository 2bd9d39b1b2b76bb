// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Summary returns text tables with nodal results, element end forces and extreme internal forces
func Summary(res *Results) string {
	var b bytes.Buffer
	line := strings.Repeat("=", 96) + "\n"
	b.WriteString(line)
	b.WriteString(io.Sf("results of %s\n", res.Label))
	b.WriteString(line)

	// nodes
	b.WriteString(io.Sf("%6s%14s%14s%14s%14s%14s%14s\n", "node", "ux", "uy", "rz", "Rx", "Ry", "Mz"))
	for _, n := range res.Nodes {
		b.WriteString(io.Sf("%6d%14.6e%14.6e%14.6e", n.Id, n.U[0], n.U[1], n.U[2]))
		if n.Supported {
			b.WriteString(io.Sf("%14.6e%14.6e%14.6e\n", n.R[0], n.R[1], n.R[2]))
		} else {
			b.WriteString(io.Sf("%14s%14s%14s\n", "-", "-", "-"))
		}
	}

	// end forces
	b.WriteString(line)
	b.WriteString(io.Sf("%6s%8s%14s%14s%14s%14s%14s%14s\n", "elem", "kind", "Fxa", "Fya", "Mza", "Fxb", "Fyb", "Mzb"))
	for _, e := range res.Elems {
		b.WriteString(io.Sf("%6d%8s", e.Id, e.Kind))
		for _, v := range e.Fl {
			b.WriteString(io.Sf("%14.6e", v))
		}
		b.WriteString("\n")
	}

	// extremes
	b.WriteString(line)
	b.WriteString(io.Sf("%6s%6s%14s%10s%14s%10s\n", "elem", "key", "min", "x", "max", "x"))
	for _, e := range res.Elems {
		for i, key := range Keys[:3] {
			b.WriteString(io.Sf("%6d%6s%14.6e%10.4f%14.6e%10.4f\n", e.Id, key, e.Ext.Min[i], e.Ext.Xmin[i], e.Ext.Max[i], e.Ext.Xmax[i]))
		}
	}
	b.WriteString(line)
	return b.String()
}
