// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// VonMises implements von Mises plasticity with linear isotropic hardening
//  f = |dev(σ)| - √(2/3) (σy + H α)
//  history variables: εp [3][3] and α [1]
type VonMises struct {
	LinearElastic         // elasticity
	Sy            float64 // initial yield stress
	H             float64 // hardening modulus
}

// add model to factory
func init() {
	allocators["elastoplastic"] = func(prms Params) (Model, error) {
		var o VonMises
		if err := o.parse(prms); err != nil {
			return nil, err
		}
		m, err := NewMaterialStrain(&o, []int{3, 3}, []int{1})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// parse parses parameters
func (o *VonMises) parse(prms Params) (err error) {
	err = o.LinearElastic.parse(prms, []string{"sy", "H"})
	if err != nil {
		return
	}
	o.Sy, o.H = 0, 0
	for _, p := range prms.list {
		switch p.N {
		case "sy":
			o.Sy = p.V
		case "H":
			o.H = p.V
		}
	}
	return
}

// Params returns the parameters
func (o *VonMises) Params() Params {
	prms, _ := MakeParams([]string{"l", "G", "sy", "H"}, []float64{o.L, o.G, o.Sy, o.H})
	return prms
}

// WithParams returns a new model with another set of parameters
func (o *VonMises) WithParams(prms Params) (StrainModel, error) {
	var res VonMises
	if err := res.parse(prms); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update updates stresses by means of the radial return mapping
func (o *VonMises) Update(out *StrainOutput, in *StrainInput, tangent bool) error {

	// history variables
	if len(in.Alp) != 2 || len(in.Alp[0]) != 9 || len(in.Alp[1]) != 1 {
		return chk.Err("von Mises model requires history variables with shapes (3, 3) and (1,)")
	}
	εp, α := in.Alp[0], in.Alp[1][0]

	// trial stress
	if err := o.LinearElastic.Update(out, in, tangent); err != nil {
		return err
	}
	s := tsr.Dev(&out.Sig)
	sno := tsr.Norm(&s)

	// trial yield function
	ftr := sno - tsr.SQ2by3*(o.Sy+o.H*α)

	// elastic update
	out.Alp = [][]float64{append([]float64{}, εp...), {α}}
	if ftr <= 0 {
		return nil
	}

	// plastic corrector
	Δγ := ftr / (2.0*o.G + 2.0*o.H/3.0)
	n := tsr.Scale(1.0/sno, &s)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Alp[0][i*3+j] += Δγ * n[i][j]
		}
	}
	out.Alp[1][0] += tsr.SQ2by3 * Δγ
	tsr.AddTo(&out.Sig, -2.0*o.G*Δγ, &n)

	// consistent tangent
	if tangent {
		G2 := 2.0 * o.G
		P := tsr.Psd()
		tsr.AddDya(&out.D, -G2*G2/(G2+2.0*o.H/3.0), &n, &n)
		tsr.AddTo4(&out.D, -G2*G2*Δγ/sno, &P)
		tsr.AddDya(&out.D, G2*G2*Δγ/sno, &n, &n)
	}
	return nil
}
