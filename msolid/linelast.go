// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// LinearElastic implements linear isotropic elasticity in incremental form
//  σ = σn + 2 G Δε + l tr(Δε) I
//  D = 2 G I⊙I + l I⊗I
type LinearElastic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	L  float64 // Lamé's coefficient λ
	G  float64 // shear modulus (Lamé's μ)
	K  float64 // bulk modulus
}

// add model to factory
func init() {
	allocators["linear-elastic"] = func(prms Params) (Model, error) {
		var o LinearElastic
		if err := o.parse(prms, nil); err != nil {
			return nil, err
		}
		m, err := NewMaterialStrain(&o)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// NewLinearElastic returns a new linear elastic model from Lamé's coefficients
func NewLinearElastic(l, G float64) *LinearElastic {
	o := &LinearElastic{L: l, G: G}
	o.derive(false, true)
	return o
}

// parse parses elastic parameters; names in other are skipped
//  Note: two of E, nu, l, G and K must be given
func (o *LinearElastic) parse(prms Params, other []string) (err error) {
	*o = LinearElastic{}
	var hasE, hasNu, hasL, hasG, hasK bool
	for _, p := range prms.list {
		switch p.N {
		case "E":
			o.E, hasE = p.V, true
		case "nu":
			o.Nu, hasNu = p.V, true
		case "l", "lam":
			o.L, hasL = p.V, true
		case "G", "mu":
			o.G, hasG = p.V, true
		case "K":
			o.K, hasK = p.V, true
		default:
			if !contains(other, p.N) {
				return chk.Err("elasticity: parameter named %q is incorrect\n", p.N)
			}
		}
	}
	switch {
	case hasE && hasNu:
		o.derive(true, false)
	case hasL && hasG:
		o.derive(false, true)
	case hasK && hasG:
		o.L = o.K - 2.0*o.G/3.0
		o.derive(false, true)
	default:
		return chk.Err("elasticity: a pair of (E, nu), (l, G) or (K, G) must be given")
	}
	return
}

// derive computes the remaining moduli
func (o *LinearElastic) derive(fromENu, fromLG bool) {
	if fromENu {
		o.L = o.E * o.Nu / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	}
	if fromLG {
		o.E = o.G * (3.0*o.L + 2.0*o.G) / (o.L + o.G)
		o.Nu = o.L / (2.0 * (o.L + o.G))
	}
	o.K = o.L + 2.0*o.G/3.0
}

// Params returns the parameters
func (o *LinearElastic) Params() Params {
	prms, _ := MakeParams([]string{"l", "G"}, []float64{o.L, o.G})
	return prms
}

// WithParams returns a new model with another set of parameters
func (o *LinearElastic) WithParams(prms Params) (StrainModel, error) {
	var res LinearElastic
	if err := res.parse(prms, nil); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update computes the new stress
func (o *LinearElastic) Update(out *StrainOutput, in *StrainInput, tangent bool) error {
	I := tsr.Eye()
	trΔε := tsr.Tr(&in.Deps)
	out.Sig = in.Sig
	tsr.AddTo(&out.Sig, 2.0*o.G, &in.Deps)
	tsr.AddTo(&out.Sig, o.L*trΔε, &I)
	out.Alp = in.Alp
	if tangent {
		o.CalcD(&out.D)
	}
	return nil
}

// CalcD computes the elastic modulus D = 2 G I⊙I + l I⊗I
func (o *LinearElastic) CalcD(D *tsr.Ten4) {
	I := tsr.Eye()
	*D = tsr.Ten4{}
	tsr.AddCdya(D, 2.0*o.G, &I, &I)
	tsr.AddDya(D, o.L, &I, &I)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
