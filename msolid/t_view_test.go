// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

func Test_view01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("view01")

	μ := 0.8
	mdl, err := New("neo-hooke", newParams(tst, []string{"mu"}, []float64{μ}))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	stretches := linspace(0.8, 3, 12)
	view := NewViewIncompressible(mdl, stretches)
	curves, err := view.Evaluate()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if chk.Verbose {
		view.Print(curves)
	}
	chk.Int(tst, "number of curves", len(curves), 3)

	// analytical solutions
	exponents := map[string]float64{"uniaxial": -2, "planar": -3, "biaxial": -5}
	for _, c := range curves {
		correct := make([]float64, len(stretches))
		for k, λ := range stretches {
			correct[k] = μ * (λ - math.Pow(λ, exponents[c.Kind]))
		}
		chk.Array(tst, c.Kind, 1e-13, c.Force, correct)
		chk.Array(tst, c.Kind+": λ", 1e-17, c.Stretch, stretches)
	}

	// skipped curves and errors
	view.Planar, view.Biaxial = nil, nil
	curves, _ = view.Evaluate()
	chk.Int(tst, "number of curves", len(curves), 1)
	view.Uniaxial = []float64{1, 0}
	if _, err = view.Evaluate(); err == nil {
		tst.Errorf("Evaluate should have failed with a zero stretch\n")
	}
}

func Test_path01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("path01")

	dir := tst.TempDir()
	write := func(fn, data string) string {
		path := filepath.Join(dir, fn)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			tst.Fatalf("cannot write file: %v\n", err)
		}
		return path
	}

	var pth Path
	err := pth.ReadJSON(write("biaxial.json", `{"kind": "biaxial", "values": [1, 1.5], "incompressible": true}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of steps", len(pth.F), 2)
	correct := tsr.Ten2{{1.5, 0, 0}, {0, 1.5, 0}, {0, 0, 1.0 / 2.25}}
	tsr.CheckTen2(tst, "F1", 1e-15, &pth.F[1], &correct)

	err = pth.ReadJSON(write("strain.json", `{"kind": "strain", "values": [0.001, 0.002]}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "F11", 1e-15, pth.F[1][0][0], 1.002)

	err = pth.ReadJSON(write("F.json", `{"kind": "F", "F": [[[1, 0.1, 0], [0, 1, 0], [0, 0, 1]]]}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "F12", 1e-15, pth.F[0][0][1], 0.1)

	// errors
	if err = pth.ReadJSON(write("bad.json", `{"kind": "torsion"}`)); err == nil {
		tst.Errorf("ReadJSON should have failed with an invalid kind\n")
	}
	if err = pth.ReadJSON(filepath.Join(dir, "missing.json")); err == nil {
		tst.Errorf("ReadJSON should have failed with a missing file\n")
	}
}
