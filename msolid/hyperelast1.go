// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// HyperElast1 implements a nonlinear hyperelastic model for powders and porous media
//  Note: stresses depend on the total strain ε = εn + Δε only
type HyperElast1 struct {

	// constants
	EnoMin float64 // minimum value of ||dev(ε)||

	// parameters
	κ  float64 // κ
	κb float64 // \bar{κ}
	G0 float64 // G0
	pr float64 // pr
	pt float64 // pt
	le bool    // use linear elastic model
	K0 float64 // K0 (for linear model)

	// derived
	pa float64 // pa = pr + pt
	a  float64 // a = 1 / κ
}

// add model to factory
func init() {
	allocators["hyp-elast1"] = func(prms Params) (Model, error) {
		var o HyperElast1
		if err := o.Init(prms); err != nil {
			return nil, err
		}
		m, err := NewMaterialStrain(&o)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// Init initialises model
func (o *HyperElast1) Init(prms Params) (err error) {

	// constants
	o.EnoMin = 1e-14

	// parameters
	for _, p := range prms.list {
		switch p.N {
		case "kap":
			o.κ = p.V
		case "kapb":
			o.κb = p.V
		case "G0":
			o.G0 = p.V
		case "pr":
			o.pr = p.V
		case "pt":
			o.pt = p.V
		case "le":
			o.le = p.V > 0
		case "K0":
			o.K0 = p.V
		default:
			return chk.Err("hyp-elast1: parameter named %q is incorrect\n", p.N)
		}
	}
	if !o.le && o.κ <= 0 {
		return chk.Err("hyp-elast1: kap must be positive. kap = %g", o.κ)
	}

	// derived
	o.pa = o.pr + o.pt
	o.a = 1.0 / o.κ
	return
}

// Params returns the parameters
func (o *HyperElast1) Params() Params {
	le := 0.0
	if o.le {
		le = 1
	}
	prms, _ := MakeParams([]string{"kap", "kapb", "G0", "pr", "pt", "le", "K0"}, []float64{o.κ, o.κb, o.G0, o.pr, o.pt, le, o.K0})
	return prms
}

// WithParams returns a new model with another set of parameters
func (o *HyperElast1) WithParams(prms Params) (StrainModel, error) {
	var res HyperElast1
	if err := res.Init(prms); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update updates stresses for given strains
func (o *HyperElast1) Update(out *StrainOutput, in *StrainInput, tangent bool) error {
	var ε tsr.Ten2
	tsr.Add(&ε, 1, &in.Eps, 1, &in.Deps)
	e, eno, εv, εd := StrainInvs(&ε)
	p, q := o.Calc_pq(εv, εd)
	I := tsr.Eye()
	out.Sig = tsr.Scale(-p, &I)
	if eno > o.EnoMin {
		tsr.AddTo(&out.Sig, tsr.SQ2by3*q/eno, &e)
	}
	out.Alp = in.Alp
	if tangent {
		o.CalcD(&out.D, &ε)
	}
	return nil
}

// Calc_pq computes p and q for given elastic εv and εd
func (o HyperElast1) Calc_pq(εv, εd float64) (p, q float64) {
	if o.le {
		p = -o.K0 * εv
		q = 3.0 * o.G0 * εd
		return
	}
	pv := o.pa * math.Exp(-o.a*εv)
	p = (1.0+1.5*o.a*o.κb*εd*εd)*pv - o.pa
	q = 3.0 * (o.G0 + o.κb*pv) * εd
	return
}

// CalcD computes D = dσ/dε for given elastic strains
func (o HyperElast1) CalcD(D *tsr.Ten4, ε *tsr.Ten2) {

	// elastic modulus
	I, P := tsr.Eye(), tsr.Psd()
	*D = tsr.Ten4{}
	if o.le {
		tsr.AddDya(D, o.K0, &I, &I)
		tsr.AddTo4(D, 2.0*o.G0, &P)
		return
	}

	// invariants of strain and normalised deviatoric direction
	e, eno, εv, εd := StrainInvs(ε)
	if eno > o.EnoMin {
		e = tsr.Scale(1.0/eno, &e)
	} else {
		e = tsr.Ten2{}
	}

	// Dvv = ∂²ψ/(∂εve ∂εve)
	// Dvd = (∂²ψ/(∂εve ∂εde)) * sqrt(2/3)
	// Ddd2 = (∂²ψ/(∂εde ∂εde)) * 2 / 3
	pv := o.pa * math.Exp(-o.a*εv)
	Dvv := o.a * (1.0 + 1.5*o.a*o.κb*εd*εd) * pv
	DvdS := -3.0 * o.a * o.κb * εd * pv * tsr.SQ2by3
	Ddd2 := 2.0 * (o.G0 + o.κb*pv)
	tsr.AddDya(D, Dvv, &I, &I)
	tsr.AddTo4(D, Ddd2, &P)
	tsr.AddDya(D, DvdS, &I, &e)
	tsr.AddDya(D, DvdS, &e, &I)
}
