// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// AsIsochoric evaluates a hyperelastic model on the distortional part of the deformation
//  b̄  = J^(-2/3) b
//  τ  = dev(τ̄)
//  Jc = P:Jc̄:P - 2/3 (τ̄⊗I + I⊗τ̄) + 2/9 tr(τ̄) I⊗I + 2/3 tr(τ̄) I⊙I
//  where τ̄ = τ(b̄), Jc̄ = Jc(b̄) and P = I⊙I - I⊗I/3
type AsIsochoric struct {
	Mdl Hyperelastic // model evaluated on b̄
	P   tsr.Ten4     // deviatoric projector
}

// NewAsIsochoric returns a new isochoric decorator of mdl
func NewAsIsochoric(mdl Hyperelastic) *AsIsochoric {
	return &AsIsochoric{mdl, tsr.Psd()}
}

// Stress computes τ = dev(τ̄)
func (o *AsIsochoric) Stress(x *Input) (*tsr.Field2, error) {
	bbar, key := o.distortional(x)
	taubar, err := o.Mdl.StressB(bbar, key)
	if err != nil {
		return nil, err
	}
	return tsr.DevField(taubar), nil
}

// Elasticity computes the isochoric tangent
func (o *AsIsochoric) Elasticity(x *Input) (*tsr.Field4, error) {
	bbar, key := o.distortional(x)
	taubar, err := o.Mdl.StressB(bbar, key)
	if err != nil {
		return nil, err
	}
	Dbar, err := o.Mdl.ElasticityB(bbar, key)
	if err != nil {
		return nil, err
	}
	D := tsr.NewField4(x.Batch())
	skip := Dbar.IsZero()
	I := tsr.Eye()
	for q := range D.V {
		if !skip {
			D.V[q] = tsr.Ddot444(&o.P, &Dbar.V[q], &o.P)
		}
		t := &taubar.V[q]
		trt := tsr.Tr(t)
		tsr.AddDya(&D.V[q], -2.0/3.0, t, &I)
		tsr.AddDya(&D.V[q], -2.0/3.0, &I, t)
		tsr.AddDya(&D.V[q], 2.0/9.0*trt, &I, &I)
		tsr.AddCdya(&D.V[q], 2.0/3.0*trt, &I, &I)
	}
	return D, nil
}

// Params returns the parameters of the wrapped model
func (o *AsIsochoric) Params() Params { return o.Mdl.Params() }

// WithParams returns a new decorator of the wrapped model with another set of parameters
func (o *AsIsochoric) WithParams(prms Params) (Model, error) {
	f, ok := o.Mdl.(Fittable)
	if !ok {
		return nil, chk.Err("model %T does not accept parameters", o.Mdl)
	}
	m, err := f.WithParams(prms)
	if err != nil {
		return nil, err
	}
	h, ok := m.(Hyperelastic)
	if !ok {
		return nil, chk.Err("model %T is not hyperelastic", m)
	}
	return NewAsIsochoric(h), nil
}

// distortional computes b̄ and its key
func (o *AsIsochoric) distortional(x *Input) (bbar *tsr.Field2, key uint64) {
	bbar = tsr.NewField2(x.Batch())
	for q, J := range x.J.V {
		bbar.V[q] = tsr.Scale(math.Pow(J, -2.0/3.0), &x.B.V[q])
	}
	return bbar, tsr.SubKey(x.Key, "isochoric")
}
