// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const datadir = "../../inp/data/"

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func execute(args ...string) (string, error) {
	var buf bytes.Buffer
	root := newRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	if chk.Verbose {
		io.Pf("%s", buf.String())
	}
	return buf.String(), err
}

func Test_matdrv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdrv01")

	// large deformations
	out, err := execute("run", "--mat", datadir+"rubber.mat", "--name", "nearly-incompressible", "--path", datadir+"uniaxial.json", "--check")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	chk.Int(tst, "number of lines", len(lines), 8)
	chk.String(tst, strings.Fields(lines[1])[1], "1.000000")

	// small strains with plasticity
	out, err = execute("run", "--mat", datadir+"rubber.mat", "--name", "steel", "--path", datadir+"strain.json", "--check")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !strings.Contains(out, "consistent tangent OK in 6 steps") {
		tst.Errorf("tangent check message is missing:\n%s\n", out)
	}

	// errors
	if _, err = execute("run", "--mat", datadir+"rubber.mat", "--name", "wood", "--path", datadir+"strain.json"); err == nil {
		tst.Errorf("run should have failed with a missing material\n")
	}
	if _, err = execute("run", "--mat", datadir+"rubber.mat", "--name", "steel"); err == nil {
		tst.Errorf("run should have failed without path\n")
	}
}

func Test_matdrv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matdrv02")

	out, err := execute("view", "--mat", datadir+"rubber.mat", "--name", "rubber", "--lmax", "2", "--n", "3")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, kind := range []string{"uniaxial", "planar", "biaxial"} {
		if !strings.Contains(out, "# "+kind) {
			tst.Errorf("curve %q is missing\n", kind)
		}
	}
	if _, err = execute("view", "--mat", datadir+"rubber.mat", "--name", "rubber", "--n", "1"); err == nil {
		tst.Errorf("view should have failed with one stretch\n")
	}

	// lists
	out, err = execute("models")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !strings.Contains(out, "neo-hooke\n") || !strings.Contains(out, "dp\n") {
		tst.Errorf("models are missing:\n%s\n", out)
	}
	out, err = execute("list", datadir+"rubber.mat")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of materials", len(strings.Split(strings.TrimSpace(out), "\n")), 4)
}
