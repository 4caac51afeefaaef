// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Curve holds the force-stretch response of one homogeneous deformation
type Curve struct {
	Kind    string    // "uniaxial", "planar" or "biaxial"
	Stretch []float64 // stretches λ
	Force   []float64 // normal force per undeformed area P = (τ11 - τ33) / λ
}

// ViewIncompressible evaluates the response of incompressible models to homogeneous deformations
type ViewIncompressible struct {
	Mdl      Model     // model
	Uniaxial []float64 // stretches of uniaxial tension
	Planar   []float64 // stretches of planar shear
	Biaxial  []float64 // stretches of equi-biaxial tension
}

// NewViewIncompressible returns a new view with the same stretches for all deformations
func NewViewIncompressible(mdl Model, stretches []float64) *ViewIncompressible {
	return &ViewIncompressible{mdl, stretches, stretches, stretches}
}

// Evaluate computes the force-stretch curves
//  Note: curves with no stretches are skipped
func (o *ViewIncompressible) Evaluate() (curves []Curve, err error) {
	for _, c := range []struct {
		kind      string
		stretches []float64
	}{
		{"uniaxial", o.Uniaxial},
		{"planar", o.Planar},
		{"biaxial", o.Biaxial},
	} {
		if len(c.stretches) == 0 {
			continue
		}
		F := tsr.NewField2(tsr.Batch{Npts: len(c.stretches), Nele: 1})
		for k, λ := range c.stretches {
			if λ <= 0 {
				return nil, chk.Err("%s: stretches must be positive. λ = %g", c.kind, λ)
			}
			F.V[k], _ = StretchTensor(c.kind, λ, true)
		}
		x, err := NewInput(F, nil)
		if err != nil {
			return nil, chk.Err("%s: %v", c.kind, err)
		}
		tau, err := o.Mdl.Stress(x)
		if err != nil {
			return nil, chk.Err("%s: %v", c.kind, err)
		}
		curve := Curve{c.kind, append([]float64{}, c.stretches...), make([]float64, len(c.stretches))}
		for k, λ := range c.stretches {
			curve.Force[k] = (tau.V[k][0][0] - tau.V[k][2][2]) / λ
		}
		curves = append(curves, curve)
	}
	return
}

// Print prints the curves
func (o *ViewIncompressible) Print(curves []Curve) {
	for _, c := range curves {
		io.Pfyel("%s\n", c.Kind)
		io.Pf("%12s%16s\n", "λ", "P")
		for k, λ := range c.Stretch {
			io.Pf("%12.6f%16.8e\n", λ, c.Force[k])
		}
	}
}
