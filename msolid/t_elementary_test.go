// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

func Test_elementary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elementary01")

	// linear elasticity in terms of the displacement gradient
	l, G := 2.0, 1.0
	mdl := NewMaterial(func(x *Input) (*tsr.Field2, error) {
		sig := tsr.NewField2(x.Batch())
		I := tsr.Eye()
		for q := range x.F.V {
			var H tsr.Ten2
			tsr.Add(&H, 1, &x.F.V[q], -1, &I)
			eps := tsr.Sym(&H)
			tsr.AddTo(&sig.V[q], 2*G, &eps)
			tsr.AddTo(&sig.V[q], l*tsr.Tr(&eps), &I)
		}
		return sig, nil
	}, func(x *Input) (*tsr.Field4, error) {
		D := tsr.NewField4(x.Batch())
		I := tsr.Eye()
		for q := range D.V {
			tsr.AddCdya(&D.V[q], 2*G, &I, &I)
			tsr.AddDya(&D.V[q], l, &I, &I)
		}
		return D, nil
	})
	mdl.Prms = newParams(tst, []string{"l", "G"}, []float64{l, G})
	chk.Int(tst, "number of parameters", mdl.Params().Len(), 2)
	CheckTangent(tst, "linear", mdl, tstF, nil, true, 1e-8, chk.Verbose)

	// errors pass through
	failing := NewMaterial(func(x *Input) (*tsr.Field2, error) {
		return nil, errEnergy
	}, func(x *Input) (*tsr.Field4, error) {
		return nil, errEnergy
	})
	x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, tstF), nil)
	if _, err := failing.Stress(x); err != errEnergy {
		tst.Errorf("Stress should have returned the error of the function. err = %v\n", err)
	}
	if _, err := failing.Elasticity(x); err != errEnergy {
		tst.Errorf("Elasticity should have returned the error of the function. err = %v\n", err)
	}
}
