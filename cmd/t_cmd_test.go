// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// run executes the root command with args and returns its output
func run(args ...string) (string, error) {
	var b bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&b)
	root.SetErr(&b)
	root.SetArgs(args)
	err := root.Execute()
	return b.String(), err
}

func Test_cmd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd01. version and banner")

	res, err := run("version")
	require.NoError(tst, err)
	require.Equal(tst, "goframe v"+Version+"\n", res)

	res, err = run()
	require.NoError(tst, err)
	require.Contains(tst, res, "Go Frame Analysis")

	_, err = run("version", "extra")
	require.Error(tst, err)
	_, err = run("solve")
	require.Error(tst, err)
}

func Test_cmd02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd02. solve beam")

	res, err := run("solve", filepath.Join("..", "fem", "data", "beam.json"))
	require.NoError(tst, err)
	require.Contains(tst, res, "results of D(dead)")
	require.Equal(tst, 1, strings.Count(res, "results of"))

	dir := tst.TempDir()
	res, err = run("solve", filepath.Join("..", "fem", "data", "beam.json"), "--combos", "--out", dir)
	require.NoError(tst, err)
	require.Contains(tst, res, "results of 1.4D")

	_, err = run("solve", filepath.Join(dir, "missing.yaml"))
	require.Error(tst, err)
}

func Test_cmd03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmd03. solve portal and write files")

	dir := tst.TempDir()
	var b bytes.Buffer
	opts := &SolveOptions{Out: dir, Xlsx: true, Pdf: true, Png: true}
	err := RunSolve(&b, filepath.Join("..", "fem", "data", "portal.yaml"), opts)
	require.NoError(tst, err)
	require.Contains(tst, b.String(), "results of 1.2D+1.6L")
	require.Contains(tst, b.String(), "results of D+W")

	// figures
	for _, fn := range []string{"portal_D_dead__Mz.png", "portal_D_dead__def.png", "portal_D+W_Fx.png", "portal_L_live__e1.png"} {
		_, err = os.Stat(filepath.Join(dir, fn))
		require.NoError(tst, err, fn)
	}

	// spreadsheet
	f, err := excelize.OpenFile(filepath.Join(dir, "portal.xlsx"))
	require.NoError(tst, err)
	defer f.Close()
	require.Len(tst, f.GetSheetList(), 3*5)
	rows, err := f.GetRows("D+W elems")
	require.NoError(tst, err)
	require.Len(tst, rows, 4)

	// report
	pdf, err := os.ReadFile(filepath.Join(dir, "portal.pdf"))
	require.NoError(tst, err)
	require.True(tst, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func Test_fnkey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fnkey01. file name keys")

	require.Equal(tst, "D_dead_", fnkey("D(dead)"))
	require.Equal(tst, "1.2D+1.6L", fnkey("1.2D+1.6L"))
	require.Equal(tst, "a_b", fnkey("a/b"))
}
