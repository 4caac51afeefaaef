// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// deformation gradient used in tests
var tstF = tsr.Ten2{
	{1.1, 0.2, -0.1},
	{0.05, 0.9, 0.15},
	{0.1, -0.2, 1.2},
}

func newParams(tst *testing.T, names []string, values []float64) Params {
	prms, err := MakeParams(names, values)
	if err != nil {
		tst.Fatalf("cannot make parameters: %v\n", err)
	}
	return prms
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01")

	prms := NewParams(dbf.Params{
		&dbf.P{N: "mu", V: 1.0},
		&dbf.P{N: "K", V: 10.0},
	})
	chk.Int(tst, "len", prms.Len(), 2)
	chk.Array(tst, "values", 1e-17, prms.Values(), []float64{1, 10})
	chk.String(tst, prms.Names()[1], "K")

	// new versions do not modify the original list
	trial, err := prms.With([]float64{2, 20})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "original", 1e-17, prms.Values(), []float64{1, 10})
	chk.Array(tst, "trial", 1e-17, trial.Values(), []float64{2, 20})
	chk.Int(tst, "version", trial.Version(), 1)

	trial, err = trial.Set("K", 30)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "version", trial.Version(), 2)
	K, _ := trial.Get("K")
	chk.Float64(tst, "K", 1e-17, K, 30)

	// errors
	if _, err = prms.With([]float64{1}); err == nil {
		tst.Errorf("With should have failed with a wrong number of values\n")
	}
	if _, err = prms.Set("lam", 1); err == nil {
		tst.Errorf("Set should have failed with an unknown name\n")
	}

	// merge: values of the receiver win
	other := newParams(tst, []string{"K", "G"}, []float64{99, 3})
	merged, collisions := prms.Merge(other)
	chk.Array(tst, "merged", 1e-17, merged.Values(), []float64{1, 10, 3})
	chk.Int(tst, "number of collisions", len(collisions), 1)
	chk.String(tst, collisions[0], "K")
	io.Pforan("merged = %v\n", merged)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	for _, c := range []struct {
		name   string
		names  []string
		values []float64
	}{
		{"neo-hooke", []string{"mu"}, []float64{1}},
		{"mooney-rivlin", []string{"C10", "C01"}, []float64{0.4, 0.1}},
		{"yeoh", []string{"C10", "C20", "C30"}, []float64{0.5, -0.01, 0.001}},
		{"ogden", []string{"mu1", "alpha1", "mu2", "alpha2"}, []float64{0.6, 2, -0.1, -2}},
		{"volumetric", []string{"K"}, []float64{10}},
		{"linear-elastic", []string{"E", "nu"}, []float64{1000, 0.25}},
		{"elastoplastic", []string{"l", "G", "sy", "H"}, []float64{2, 1, 0.01, 0.5}},
		{"dp", []string{"E", "nu", "M", "Mb", "qy0", "H"}, []float64{1000, 0.25, 0.5, 0.5, 1, 0}},
		{"hyp-elast1", []string{"kap", "kapb", "G0", "pr", "pt"}, []float64{0.05, 20, 10000, 2, 10}},
	} {
		prms := newParams(tst, c.names, c.values)
		mdl, err := New(c.name, prms)
		if err != nil {
			tst.Errorf("%s: %v\n", c.name, err)
			continue
		}
		io.Pforan("%-15s: %T {%v}\n", c.name, mdl, mdl.Params())
		if _, ok := mdl.(Fittable); !ok {
			tst.Errorf("%s: model should accept parameters\n", c.name)
		}
	}
	chk.Int(tst, "number of models", len(Names()), 9)

	// errors
	if _, err := New("unknown", Params{}); err == nil {
		tst.Errorf("New should have failed with an unknown model\n")
	}
	if _, err := New("neo-hooke", newParams(tst, []string{"nu"}, []float64{0.3})); err == nil {
		tst.Errorf("New should have failed with an incorrect parameter\n")
	}
	if _, err := New("linear-elastic", newParams(tst, []string{"E"}, []float64{1000})); err == nil {
		tst.Errorf("New should have failed with incomplete parameters\n")
	}
	if _, err := New("ogden", newParams(tst, []string{"mu1", "alpha1"}, []float64{1, 0})); err == nil {
		tst.Errorf("New should have failed with a zero exponent\n")
	}
}

func Test_factory02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory02")

	mdl, err := New("neo-hooke", newParams(tst, []string{"mu"}, []float64{1}))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// trial parameters give a new instance
	trial, err := mdl.(Fittable).WithParams(newParams(tst, []string{"mu"}, []float64{3}))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	mu, _ := mdl.Params().Get("mu")
	chk.Float64(tst, "live mu", 1e-17, mu, 1)
	mu, _ = trial.Params().Get("mu")
	chk.Float64(tst, "trial mu", 1e-17, mu, 3)

	x, err := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, tstF), nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s1, err := mdl.Stress(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s3, err := trial.Stress(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s1x3 := tsr.Scale(3, &s1.V[0])
	tsr.CheckTen2(tst, "τ(3μ) = 3 τ(μ)", 1e-14, &s3.V[0], &s1x3)
}

func Test_input01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input01")

	batch := tsr.Batch{Npts: 2, Nele: 2}
	x, err := NewInput(tsr.Fill(batch, tstF), nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	b := tsr.DotT(&tstF, &tstF)
	CheckBatch(tst, "b", 1e-15, x.B, &b)
	for q := range x.J.V {
		chk.Float64(tst, "J", 1e-15, x.J.V[q], tsr.Det(&tstF))
	}
	if x.Key == 0 {
		tst.Errorf("key must not be zero\n")
	}
	if x.WithKey(0).Key != 0 || x.Key == 0 {
		tst.Errorf("WithKey must return a modified copy\n")
	}

	// inverted elements
	G := tstF
	G[0][0], G[0][1], G[0][2] = -G[0][0], -G[0][1], -G[0][2]
	if _, err = NewInput(tsr.Fill(batch, G), nil); err == nil {
		tst.Errorf("NewInput should have failed with det(F) < 0\n")
	}

	// state with other trailing dimensions
	layout, _ := NewLayout()
	if _, err = NewInput(tsr.Fill(batch, tstF), NewState(layout, tsr.Batch{Npts: 4, Nele: 1})); err == nil {
		tst.Errorf("NewInput should have failed with mismatched state\n")
	}
}
