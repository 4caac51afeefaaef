// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// DruckerPrager implements Drucker-Prager plasticity model
//  f = q - M p - qy0 - H α
//  history variables: α [1]
type DruckerPrager struct {
	LinearElastic
	M   float64 // slope of fc line
	Mb  float64 // slope of fc line of plastic potential
	qy0 float64 // initial qy
	H   float64 // hardening variable
}

// add model to factory
func init() {
	allocators["dp"] = func(prms Params) (Model, error) {
		var o DruckerPrager
		if err := o.parse(prms); err != nil {
			return nil, err
		}
		m, err := NewMaterialStrain(&o, []int{1})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// parse parses parameters
func (o *DruckerPrager) parse(prms Params) (err error) {

	// elasticity
	err = o.LinearElastic.parse(prms, []string{"M", "Mb", "qy0", "H", "c", "phi", "typ"})
	if err != nil {
		return
	}

	// plasticity
	var c, φ float64
	var typ int
	o.M, o.Mb, o.qy0, o.H = 0, 0, 0, 0
	for _, p := range prms.list {
		switch p.N {
		case "M":
			o.M = p.V
		case "Mb":
			o.Mb = p.V
		case "qy0":
			o.qy0 = p.V
		case "H":
			o.H = p.V
		case "c":
			c = p.V
		case "phi":
			φ = p.V
		case "typ":
			typ = int(p.V)
		}
	}

	// compute M from φ
	//  typ == 0 : compression cone (outer)
	//      == 1 : extension cone (inner)
	//      == 2 : plane-strain
	if φ > 0 {
		o.M, o.qy0, err = Mmatch(c, φ, typ)
		if err != nil {
			return
		}
		o.Mb = o.M
	}
	return
}

// Params returns the parameters
func (o *DruckerPrager) Params() Params {
	prms, _ := MakeParams([]string{"l", "G", "M", "Mb", "qy0", "H"}, []float64{o.L, o.G, o.M, o.Mb, o.qy0, o.H})
	return prms
}

// WithParams returns a new model with another set of parameters
func (o *DruckerPrager) WithParams(prms Params) (StrainModel, error) {
	var res DruckerPrager
	if err := res.parse(prms); err != nil {
		return nil, err
	}
	return &res, nil
}

// YieldFunc computes the yield function
func (o *DruckerPrager) YieldFunc(σ *tsr.Ten2, α float64) float64 {
	p, q := StressInvs(σ)
	return q - o.M*p - o.qy0 - o.H*α
}

// Update updates stresses for given strain increment
func (o *DruckerPrager) Update(out *StrainOutput, in *StrainInput, tangent bool) error {

	// history variables
	if len(in.Alp) != 1 || len(in.Alp[0]) != 1 {
		return chk.Err("dp: model requires one history variable with shape (1,)")
	}
	α0 := in.Alp[0][0]

	// trial stress
	if err := o.LinearElastic.Update(out, in, false); err != nil {
		return err
	}
	σtr := out.Sig
	ptr, qtr := StressInvs(&σtr)

	// trial yield function
	ftr := qtr - o.M*ptr - o.qy0 - o.H*α0

	// elastic update
	if ftr <= 0.0 {
		out.Alp = [][]float64{{α0}}
		if tangent {
			o.CalcD(&out.D)
		}
		return nil
	}

	// elastoplastic update
	I := tsr.Eye()
	hp := 3.0*o.G + o.K*o.M*o.Mb + o.H
	Δγ := ftr / hp
	pnew := ptr + Δγ*o.K*o.Mb
	m := 1.0 - Δγ*3.0*o.G/qtr
	str := tsr.Dev(&σtr)
	tsr.Add(&out.Sig, m, &str, -pnew, &I)
	out.Alp = [][]float64{{α0 + Δγ}}

	// check for apex singularity
	if qtr-Δγ*3.0*o.G < 0 {
		Δγ = (-o.M*ptr - o.qy0 - o.H*α0) / (3.0*o.K*o.M + o.H)
		pnew = ptr + Δγ*3.0*o.K
		out.Sig = tsr.Scale(-pnew, &I)
		out.Alp[0][0] = α0 + Δγ
		if tangent {
			out.D = tsr.Ten4{}
			tsr.AddDya(&out.D, o.K*o.H/(3.0*o.K*o.M+o.H), &I, &I)
		}
		return nil
	}
	if !tangent {
		return nil
	}

	// consistent stiffness
	n := tsr.Scale(1.0/tsr.Norm(&str), &str)
	a1 := o.K - o.K*o.K*o.Mb*o.M/hp
	a2 := -2.0 * o.G * o.K * o.Mb * math.Sqrt(1.5) / hp
	b1 := -math.Sqrt(6.0) * o.G * o.M * o.K / hp
	b2 := 6.0 * o.G * o.G * (Δγ/qtr - 1.0/hp)
	P := tsr.Psd()
	out.D = tsr.Ten4{}
	tsr.AddTo4(&out.D, 2.0*o.G*m, &P)
	tsr.AddDya(&out.D, a1, &I, &I)
	tsr.AddDya(&out.D, a2, &I, &n)
	tsr.AddDya(&out.D, b1, &n, &I)
	tsr.AddDya(&out.D, b2, &n, &n)
	return nil
}
