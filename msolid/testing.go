// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/io"
)

// CheckTangent compares the tangent of mdl at F with central differences
//  tol -- tolerance relative to max |D|
func CheckTangent(tst *testing.T, msg string, mdl Model, F tsr.Ten2, state *State, small bool, tol float64, verbose bool) {
	x, err := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, F), state)
	if err != nil {
		tst.Errorf("%s: %v\n", msg, err)
		return
	}
	D, err := mdl.Elasticity(x)
	if err != nil {
		tst.Errorf("%s: %v\n", msg, err)
		return
	}
	Dnum, err := NumTangent(mdl, F, state, small, 1e-6)
	if err != nil {
		tst.Errorf("%s: %v\n", msg, err)
		return
	}
	diff := tsr.MaxDiff4(&D.V[0], &Dnum) / math.Max(1, tsr.MaxAbs4(&Dnum))
	if verbose {
		io.Pforan("%s: max relative difference of D = %v\n", msg, diff)
	}
	if diff > tol || math.IsNaN(diff) {
		tst.Errorf("%s: consistent tangent failed with max relative difference = %g\n", msg, diff)
	}
}

// CheckBatch checks that all entries of a field equal the entry computed for a single point
func CheckBatch(tst *testing.T, msg string, tol float64, res *tsr.Field2, correct *tsr.Ten2) {
	for q := range res.V {
		tsr.CheckTen2(tst, io.Sf("%s: entry %d", msg, q), tol, &res.V[q], correct)
	}
}
