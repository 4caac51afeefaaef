// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// VolumetricEnergy defines volumetric strain energy functions U(J)
type VolumetricEnergy interface {
	DUdJ(J float64) float64   // dU/dJ
	D2UdJ2(J float64) float64 // d²U/dJ²
}

// LinearVolumetric implements U = K/2 (J-1)²
type LinearVolumetric struct {
	K float64 // bulk modulus
}

// DUdJ returns K (J-1)
func (o LinearVolumetric) DUdJ(J float64) float64 { return o.K * (J - 1) }

// D2UdJ2 returns K
func (o LinearVolumetric) D2UdJ2(J float64) float64 { return o.K }

// Hydrostatic implements the volumetric part of hyperelastic models
//  p  = dU/dJ
//  τ  = p J I
//  Jc = J [ (p + J d²U/dJ²) I⊗I - 2 p I⊙I ]
type Hydrostatic struct {
	U VolumetricEnergy // volumetric energy
}

// NewHydrostatic returns a new hydrostatic material with U = K/2 (J-1)²
func NewHydrostatic(bulk float64) *Hydrostatic {
	return &Hydrostatic{LinearVolumetric{bulk}}
}

// add model to factory
func init() {
	allocators["volumetric"] = func(prms Params) (Model, error) {
		var K float64
		for _, p := range prms.list {
			switch p.N {
			case "K", "bulk":
				K = p.V
			default:
				return nil, chk.Err("volumetric: parameter named %q is incorrect\n", p.N)
			}
		}
		return NewHydrostatic(K), nil
	}
}

// Stress computes τ = p J I
func (o *Hydrostatic) Stress(x *Input) (*tsr.Field2, error) {
	tau := tsr.NewField2(x.Batch())
	for q, J := range x.J.V {
		p := o.U.DUdJ(J)
		for i := 0; i < 3; i++ {
			tau.V[q][i][i] = p * J
		}
	}
	return tau, nil
}

// Elasticity computes Jc = J [ (p + J U'') I⊗I - 2 p I⊙I ]
func (o *Hydrostatic) Elasticity(x *Input) (*tsr.Field4, error) {
	D := tsr.NewField4(x.Batch())
	I := tsr.Eye()
	for q, J := range x.J.V {
		p := o.U.DUdJ(J)
		tsr.AddDya(&D.V[q], J*(p+J*o.U.D2UdJ2(J)), &I, &I)
		tsr.AddCdya(&D.V[q], -2*J*p, &I, &I)
	}
	return D, nil
}

// Params returns the parameters
func (o *Hydrostatic) Params() Params {
	if lin, ok := o.U.(LinearVolumetric); ok {
		prms, _ := MakeParams([]string{"K"}, []float64{lin.K})
		return prms
	}
	return energyParams(o.U)
}

// WithParams returns a new material with another bulk modulus
func (o *Hydrostatic) WithParams(prms Params) (Model, error) {
	if _, ok := o.U.(LinearVolumetric); !ok {
		return nil, chk.Err("volumetric energy %T does not accept parameters", o.U)
	}
	K, found := prms.Get("K")
	if !found {
		return nil, chk.Err("cannot find parameter %q", "K")
	}
	return NewHydrostatic(K), nil
}
