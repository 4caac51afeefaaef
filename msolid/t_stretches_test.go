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

// compressible neo-Hookean energy in principal stretches
//  W = μ/2 (Σ λa² - 3) - μ ln J + λ/2 (ln J)²
func neoHookeStretches(μ, λ float64) StretchesFunc {
	return func(Wa *[3]float64, Wab *[3][3]float64, l [3]float64) error {
		lnJ := math.Log(l[0] * l[1] * l[2])
		for a := 0; a < 3; a++ {
			Wa[a] = μ*l[a] - μ/l[a] + λ*lnJ/l[a]
			for b := 0; b < 3; b++ {
				Wab[a][b] = λ / (l[a] * l[b])
			}
			Wab[a][a] += μ + μ/(l[a]*l[a]) - λ*lnJ/(l[a]*l[a])
		}
		return nil
	}
}

func Test_stretches01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stretches01")

	μ, λ := 1.5, 4.0
	str := NewPrincipalStretchBased(neoHookeStretches(μ, λ), 0)
	inv := NewInvariantBased(neoHookeInvariants(μ, λ))
	for i, F := range []tsr.Ten2{
		tstF,
		{{1.3, 0, 0}, {0, 0.9, 0}, {0, 0, 0.8}},
		{{1, 0.4, 0}, {0, 1, 0}, {0, 0, 1}},
	} {
		msg := io.Sf("F%d", i)
		x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 2}, F), nil)

		// same energy written in stretches and in invariants
		s1, err := str.Stress(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		s2, _ := inv.Stress(x)
		tsr.CheckTen2(tst, msg+": τ", 1e-13, &s1.V[1], &s2.V[1])
		D1, err := str.Elasticity(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		D2, _ := inv.Elasticity(x)
		tsr.CheckTen4(tst, msg+": Jc", 1e-7, &D1.V[1], &D2.V[1])
		tsr.CheckMajorSym(tst, msg, 1e-13, &D1.V[0], chk.Verbose)
		tsr.CheckMinorSym(tst, msg, 1e-13, &D1.V[0], chk.Verbose)

		// consistent tangent
		CheckTangent(tst, msg, str, F, nil, false, 1e-6, chk.Verbose)
	}
}

func Test_stretches02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stretches02")

	// repeated stretches
	μ, λ := 1.5, 4.0
	str := NewPrincipalStretchBased(neoHookeStretches(μ, λ), 0)
	lim := NewPrincipalStretchBased(neoHookeStretches(μ, λ), 0)
	lim.EvLimit = true
	inv := NewInvariantBased(neoHookeInvariants(μ, λ))
	for i, F := range []tsr.Ten2{
		tsr.Eye(),
		{{1.2, 0, 0}, {0, 1.2, 0}, {0, 0, 0.9}},
		{{1.1, 0, 0}, {0, 1.1, 0}, {0, 0, 1.1}},
		{{1.2, 0, 0}, {0, 1.2 + 1e-12, 0}, {0, 0, 0.9}},
	} {
		msg := io.Sf("F%d", i)
		x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, F), nil)
		D1, err := str.Elasticity(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		tsr.CheckFinite(tst, msg, &D1.V[0])
		tsr.CheckMajorSym(tst, msg, 1e-13, &D1.V[0], chk.Verbose)
		if tsr.MaxAbs4(&D1.V[0]) > 1e3 {
			tst.Errorf("%s: perturbed tangent must be bounded\n", msg)
		}

		// limit of shear terms
		D2, err := lim.Elasticity(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		D3, _ := inv.Elasticity(x)
		tsr.CheckFinite(tst, msg, &D2.V[0])
		tsr.CheckTen4(tst, msg+": Jc", 1e-6, &D2.V[0], &D3.V[0])
	}

	// gaps below the tolerance are widened, never narrowed
	for _, frac := range []float64{0.1, 0.5, 0.9, 0.99, 0.9999} {
		gap := frac * str.EvTol
		F := tsr.Ten2{{1.2, 0, 0}, {0, 1.2 + gap, 0}, {0, 0, 0.9}}
		msg := io.Sf("gap = %g", gap)
		x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 1, Nele: 1}, F), nil)
		D, err := str.Elasticity(x)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		io.Pforan("%s: Jc0101 = %v\n", msg, D.V[0][0][1][0][1])
		tsr.CheckFinite(tst, msg, &D.V[0])
		if tsr.MaxAbs4(&D.V[0]) > 1e3 {
			tst.Errorf("%s: perturbed tangent must be bounded. max |Jc| = %g\n", msg, tsr.MaxAbs4(&D.V[0]))
		}
	}
}

// stretchCounter wraps a stretch energy and counts evaluations
type stretchCounter struct {
	StretchesEnergy
	n int
}

func (o *stretchCounter) Derivs(Wa *[3]float64, Wab *[3][3]float64, λ [3]float64) error {
	o.n++
	return o.StretchesEnergy.Derivs(Wa, Wab, λ)
}

func Test_stretches04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stretches04")

	// stress and elasticity of the same input share one spectral decomposition
	cnt := &stretchCounter{StretchesEnergy: neoHookeStretches(1.5, 4.0)}
	mdl := NewPrincipalStretchBased(cnt, 0)
	batch := tsr.Batch{Npts: 2, Nele: 1}
	x, _ := NewInput(tsr.Fill(batch, tstF), nil)
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
	chk.Int(tst, "evaluations with same key", cnt.n, 2)

	// new input
	G := tsr.Eye()
	G[1][2] = 0.2
	y, _ := NewInput(tsr.Fill(batch, G), nil)
	mdl.Elasticity(y)
	chk.Int(tst, "evaluations with new input", cnt.n, 4)

	// zero keys disable caching
	mdl.Stress(y.WithKey(0))
	mdl.Elasticity(y.WithKey(0))
	chk.Int(tst, "evaluations with zero key", cnt.n, 8)
}

func Test_stretches03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stretches03")

	// Ogden with α = 2 equals neo-Hooke
	μ := 1.3
	ogden := NewPrincipalStretchBased(&Ogden{Mu: []float64{μ}, Alpha: []float64{2}}, 0)
	neo := NewInvariantBased(&NeoHooke{Mu: μ})
	x, _ := NewInput(tsr.Fill(tsr.Batch{Npts: 2, Nele: 1}, tstF), nil)
	s1, err := ogden.Stress(x)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s2, _ := neo.Stress(x)
	tsr.CheckTen2(tst, "τ", 1e-13, &s1.V[0], &s2.V[0])

	// consistent tangent with several terms
	ogden = NewPrincipalStretchBased(&Ogden{Mu: []float64{0.6, -0.1}, Alpha: []float64{2.5, -2}}, 0)
	CheckTangent(tst, "ogden", ogden, tstF, nil, false, 1e-6, chk.Verbose)
	iso := NewAsIsochoric(ogden)
	CheckTangent(tst, "isochoric ogden", iso, tstF, nil, false, 1e-6, chk.Verbose)

	// parameters
	prms := ogden.Params()
	chk.Strings(tst, "names", prms.Names(), []string{"mu1", "alpha1", "mu2", "alpha2"})
	trial, err := ogden.WithParams(newParams(tst, prms.Names(), []float64{1, 2, 0, 1}))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	s3, _ := trial.Stress(x)
	s2x := tsr.Scale(1.0/μ, &s2.V[1])
	tsr.CheckTen2(tst, "τ(μ=1, α=2)", 1e-13, &s3.V[1], &s2x)
}
