// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface of goframe
package cmd

import (
	"fmt"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRootCmd returns the root command with all subcommands
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goframe",
		Short: "Linear elastic analysis of plane frames",
		Long: `goframe - Go Frame Analysis

Linear elastic analysis of 2D frames by the direct stiffness method.
Models are given as .yaml or .json files with materials, sections,
nodes, elements, load cases, loads and load combinations.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "\ngoframe v%s -- Go Frame Analysis\n", Version)
			fmt.Fprintf(w, "Copyright 2016 The Gofem Authors. All rights reserved.\n")
			fmt.Fprintf(w, "Use of this source code is governed by a BSD-style\n")
			fmt.Fprintf(w, "license that can be found in the LICENSE file.\n\n")
			fmt.Fprintf(w, "Use 'goframe --help' to see available commands.\n")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newSolveCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command with the arguments of the process
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// newLogger returns a production logger writing to stderr. verbose enables debug messages
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
