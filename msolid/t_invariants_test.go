// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// polyEnergy is a polynomial energy with all couplings between invariants
//  W = c1 x + c2 y + c3 x y + c4 x² + c5 y² + c6 x z + c7 y z + c8 z²
//  with x = I1 - 3, y = I2 - 3, z = I3 - 1
func polyEnergy(c [8]float64) InvariantsFunc {
	return func(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
		x, y, z := I[0]-3, I[1]-3, I[2]-1
		Wa[0] = c[0] + c[2]*y + 2*c[3]*x + c[5]*z
		Wa[1] = c[1] + c[2]*x + 2*c[4]*y + c[6]*z
		Wa[2] = c[5]*x + c[6]*y + 2*c[7]*z
		*Wab = [3][3]float64{
			{2 * c[3], c[2], c[5]},
			{c[2], 2 * c[4], c[6]},
			{c[5], c[6], 2 * c[7]},
		}
		return nil
	}
}

// compressible neo-Hookean energy W = μ/2 (I1 - 3) - μ ln J + λ/2 (ln J)²
func neoHookeInvariants(μ, λ float64) InvariantsFunc {
	return func(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
		lnJ := math.Log(I[2]) / 2.0
		*Wa = [3]float64{μ / 2.0, 0, (-μ + λ*lnJ) / (2.0 * I[2])}
		*Wab = [3][3]float64{}
		Wab[2][2] = (λ/2.0 + μ - λ*lnJ) / (2.0 * I[2] * I[2])
		return nil
	}
}

// counter wraps an energy and counts evaluations
type counter struct {
	InvariantsEnergy
	n int
}

func (o *counter) Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
	o.n++
	return o.InvariantsEnergy.Derivs(Wa, Wab, I)
}

func Test_invariants01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants01")

	mdl := NewInvariantBased(polyEnergy([8]float64{0.5, 0.3, 0.1, 0.2, 0.05, 0.15, -0.1, 1.0}))
	for i, F := range []tsr.Ten2{
		tstF,
		{{1.3, 0, 0}, {0, 0.9, 0}, {0, 0, 0.8}},
		{{1, 0.4, 0}, {0, 1, 0}, {0, 0, 1}},
	} {
		msg := io.Sf("F%d", i)
		CheckTangent(tst, msg, mdl, F, nil, false, 1e-6, chk.Verbose)
		x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, F), nil)
		D, err := mdl.Elasticity(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		tsr.CheckMajorSym(tst, msg, 1e-13, &D.V[0], chk.Verbose)
		tsr.CheckMinorSym(tst, msg, 1e-13, &D.V[0], chk.Verbose)
		chk.Int(tst, "number of elasticity terms", len(mdl.active), 8)
	}
}

func Test_invariants02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants02")

	cnt := &counter{InvariantsEnergy: polyEnergy([8]float64{0.5, 0.3, 0.1, 0.2, 0.05, 0.15, -0.1, 1.0})}
	mdl := NewInvariantBased(cnt)
	batch := tsr.Batch{Npts: 2, Nele: 3}
	x, _ := NewInput(tsr.Fill(batch, tstF), nil)

	// stress and elasticity of the same input share one update
	if _, err := mdl.Stress(x); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err := mdl.Elasticity(x); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err := mdl.Stress(x); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "evaluations with same key", cnt.n, 6)

	// zero keys disable caching
	mdl.Stress(x.WithKey(0))
	chk.Int(tst, "evaluations with zero key", cnt.n, 12)

	// new input
	G := tsr.Eye()
	G[0][1] = 0.1
	y, _ := NewInput(tsr.Fill(batch, G), nil)
	mdl.Stress(y)
	chk.Int(tst, "evaluations with new input", cnt.n, 18)
	res, _ := mdl.Stress(x)
	chk.Int(tst, "evaluations after switching back", cnt.n, 24)

	// cached and recomputed results are identical
	ref, _ := NewInvariantBased(cnt.InvariantsEnergy).Stress(x)
	for q := range res.V {
		tsr.CheckTen2(tst, "τ", 1e-17, &res.V[q], &ref.V[q])
	}
}

func Test_invariants03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants03")

	// dilation: b = c I
	μ, c := 2.0, 1.7
	I := tsr.Eye()
	F := tsr.Scale(math.Sqrt(c), &I)
	x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 3, Nele: 1}, F), nil)

	mdl := NewInvariantBased(&NeoHooke{Mu: μ})
	tau, err := mdl.Stress(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	correct := tsr.Scale(μ*c, &I)
	CheckBatch(tst, "τ = μ c I", 1e-14, tau, &correct)
	chk.Int(tst, "number of stress terms", len(mdl.active), 1)
	chk.String(tst, mdl.active[0], "2W1·b")

	// all coefficients of the elasticity vanish
	D, err := mdl.Elasticity(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if !D.IsZero() {
		tst.Errorf("elasticity of neo-Hooke model without volumetric part must be zero\n")
	}
	chk.Int(tst, "number of elasticity terms", len(mdl.active), 0)

	// with a constant W11, only b⊗b remains and scales with c²
	k := 0.3
	mdl = NewInvariantBased(InvariantsFunc(func(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
		*Wa = [3]float64{μ / 2.0, 0, 0}
		*Wab = [3][3]float64{{k, 0, 0}}
		return nil
	}))
	D, err = mdl.Elasticity(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of elasticity terms", len(mdl.active), 1)
	chk.String(tst, mdl.active[0], "b⊗b")
	Dc := tsr.IdyI()
	correctD := tsr.Ten4{}
	tsr.AddTo4(&correctD, 4*k*c*c, &Dc)
	for q := range D.V {
		tsr.CheckFinite(tst, "D", &D.V[q])
		tsr.CheckTen4(tst, "D = 4 W11 c² I⊗I", 1e-14, &D.V[q], &correctD)
	}
}

func Test_invariants04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invariants04")

	// energy errors are returned unmodified
	mdl := NewInvariantBased(InvariantsFunc(func(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
		return errEnergy
	}))
	x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, tstF), nil)
	if _, err := mdl.Stress(x); err != errEnergy {
		tst.Errorf("energy error should have been returned. err = %v\n", err)
	}

	// failed updates are not cached
	if _, err := mdl.Stress(x); err != errEnergy {
		tst.Errorf("energy error should have been returned again. err = %v\n", err)
	}
}

var errEnergy = chk.Err("energy cannot be computed")
