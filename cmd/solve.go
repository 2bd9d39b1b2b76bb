// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/out"
	"github.com/cpmech/gosl/chk"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SolveOptions holds the options of the solve command
type SolveOptions struct {
	Out     string // output directory
	Xlsx    bool   // write spreadsheet
	Pdf     bool   // write pdf report
	Png     bool   // save diagrams
	Combos  bool   // add strength combinations
	Verbose bool   // show debug messages
}

func newSolveCmd() *cobra.Command {
	opts := new(SolveOptions)
	cmd := &cobra.Command{
		Use:   "solve <model>",
		Short: "Solve a frame model and report results",
		Long: `Solve all load cases of a frame model given as .yaml or .json file
and print tables of displacements, reactions and internal forces.

Examples:
  # print results
  goframe solve portal.yaml

  # save diagrams, spreadsheet and pdf report, including strength combinations
  goframe solve portal.yaml --out /tmp/portal --png --xlsx --pdf --combos`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSolve(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&opts.Xlsx, "xlsx", false, "write results to spreadsheet")
	cmd.Flags().BoolVar(&opts.Pdf, "pdf", false, "write pdf report")
	cmd.Flags().BoolVar(&opts.Png, "png", false, "save diagrams of internal forces and deformed shape")
	cmd.Flags().BoolVar(&opts.Combos, "combos", false, "add strength combinations of load cases")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "show debug messages")
	return cmd
}

// RunSolve reads, solves and reports the model in file fn
func RunSolve(w io.Writer, fn string, opts *SolveOptions) (err error) {

	// logger
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return chk.Err("cannot create logger:\n%v", err)
	}
	defer log.Sync()

	// model
	m, err := inp.ReadModel(fn)
	if err != nil {
		return
	}
	o, combos, err := fem.NewStructureFromModel(m, log)
	if err != nil {
		return
	}
	if opts.Combos {
		combos = append(combos, fem.StrengthCombinations(o.Cases)...)
	}

	// solve
	err = o.Solve()
	if err != nil {
		return
	}

	// results
	var all []*out.Results
	for _, lc := range o.Cases {
		res, err := out.Collect(o, lc)
		if err != nil {
			return err
		}
		all = append(all, res)
	}
	for _, c := range combos {
		res, err := out.CollectCombination(o, c)
		if err != nil {
			return err
		}
		all = append(all, res)
	}
	for _, res := range all {
		fmt.Fprint(w, out.Summary(res))
	}

	// diagrams
	var images []string
	if opts.Png || opts.Pdf {
		for _, res := range all {
			key := m.Key + "_" + fnkey(res.Label)
			for _, q := range []string{"Mz", "Fy", "Fx", "def"} {
				fnfig := filepath.Join(opts.Out, key+"_"+q+".png")
				err = out.PlotFrameDiagram(res, q, fnfig, true, "", 1e-10, 0.1)
				if err != nil {
					return
				}
				images = append(images, fnfig)
			}
			if !opts.Png {
				continue
			}
			files, err := out.PlotElementDiagrams(res, opts.Out, key, nil)
			if err != nil {
				return err
			}
			log.Debug("element diagrams saved", zap.String("results", res.Label), zap.Int("nfiles", len(files)))
		}
		log.Info("diagrams saved", zap.Int("nframe", len(images)), zap.String("dir", opts.Out))
	}

	// spreadsheet
	if opts.Xlsx {
		fnx := filepath.Join(opts.Out, m.Key+".xlsx")
		err = out.WriteXlsx(fnx, all...)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "file <%s> written\n", fnx)
	}

	// report
	if opts.Pdf {
		title := m.Desc
		if title == "" {
			title = m.Key
		}
		fnp := filepath.Join(opts.Out, m.Key+".pdf")
		err = out.WritePdf(fnp, title, images, all...)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "file <%s> written\n", fnp)
	}
	return
}

// fnkey converts a label into a filename key; e.g. "D(dead)" => "D_dead_"
func fnkey(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '+' || r == '-' {
			return r
		}
		return '_'
	}, label)
}
