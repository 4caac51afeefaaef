// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"encoding/json"
	"math"
	"os"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// Path holds a sequence of deformation gradients applied to one material point
type Path struct {
	F []tsr.Ten2 // deformation gradients
}

// pathData holds the contents of path files
type pathData struct {
	Kind           string     `json:"kind"`           // "uniaxial", "planar", "biaxial", "strain" or "F"
	Values         []float64  `json:"values"`         // stretches or strains
	Incompressible bool       `json:"incompressible"` // isochoric lateral contraction
	F              []tsr.Ten2 `json:"F"`              // deformation gradients for kind "F"
}

// SetStretches sets a path of homogeneous deformations
//  kind -- "uniaxial", "planar" or "biaxial"
//  incompressible -- lateral stretches are computed such that det(F) = 1; otherwise they are one
func (o *Path) SetStretches(kind string, stretches []float64, incompressible bool) (err error) {
	o.F = make([]tsr.Ten2, len(stretches))
	for k, λ := range stretches {
		if λ <= 0 {
			return chk.Err("stretches must be positive. λ = %g", λ)
		}
		o.F[k], err = StretchTensor(kind, λ, incompressible)
		if err != nil {
			return
		}
	}
	return
}

// SetUniaxialStrains sets a path of uniaxial small strains ε11
func (o *Path) SetUniaxialStrains(strains []float64) {
	o.F = make([]tsr.Ten2, len(strains))
	for k, ε := range strains {
		o.F[k] = tsr.Eye()
		o.F[k][0][0] += ε
	}
}

// ReadJSON reads path from file
func (o *Path) ReadJSON(fn string) (err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return chk.Err("cannot open path file %q:\n%v", fn, err)
	}
	var dat pathData
	if err = json.Unmarshal(b, &dat); err != nil {
		return chk.Err("cannot unmarshal path file %q:\n%v", fn, err)
	}
	switch dat.Kind {
	case "uniaxial", "planar", "biaxial":
		return o.SetStretches(dat.Kind, dat.Values, dat.Incompressible)
	case "strain":
		o.SetUniaxialStrains(dat.Values)
	case "F":
		o.F = dat.F
	default:
		return chk.Err("path kind %q is invalid", dat.Kind)
	}
	return
}

// StretchTensor returns the deformation gradient of homogeneous stretching
func StretchTensor(kind string, λ float64, incompressible bool) (F tsr.Ten2, err error) {
	l2, l3 := 1.0, 1.0
	switch kind {
	case "uniaxial":
		if incompressible {
			l2, l3 = 1.0/math.Sqrt(λ), 1.0/math.Sqrt(λ)
		}
	case "planar":
		if incompressible {
			l3 = 1.0 / λ
		}
	case "biaxial":
		l2 = λ
		if incompressible {
			l3 = 1.0 / (λ * λ)
		}
	default:
		return F, chk.Err("deformation kind %q is invalid", kind)
	}
	F[0][0], F[1][1], F[2][2] = λ, l2, l3
	return
}

// Driver runs simulations of one material point along a path of deformation gradients
type Driver struct {

	// input
	CheckD bool    // check consistent matrix
	TolD   float64 // tolerance to check consistent matrix (relative to max |D|)
	VerD   bool    // verbose check of D
	Hstep  float64 // step of central differences
	Small  bool    // small strain model: D = dσ/dε; otherwise D = Jc

	// output
	Res    []tsr.Ten2 // stresses
	States []*State   // states after each step; nil entries for models without state
	Nfail  int        // number of failed tangent checks

	// internal
	mdl   Model  // model
	state *State // current state
}

// Init initialises driver
func (o *Driver) Init(mdl Model) (err error) {
	if mdl == nil {
		return chk.Err("driver requires a model")
	}
	o.mdl = mdl
	if o.TolD <= 0 {
		o.TolD = 1e-6
	}
	if o.Hstep <= 0 {
		o.Hstep = 1e-6
	}
	o.state = nil
	if sm, ok := mdl.(Stateful); ok {
		if layout := sm.Layout(); layout != nil {
			o.state = NewState(layout, tsr.Batch{Npts: 1, Nele: 1})
		}
	}
	o.Small = o.Small || isSmallStrain(mdl)
	return
}

// Run runs simulation
func (o *Driver) Run(pth *Path) (err error) {
	if o.mdl == nil {
		return chk.Err("driver must be initialised first")
	}
	o.Res = make([]tsr.Ten2, 0, len(pth.F))
	o.States = make([]*State, 0, len(pth.F))
	o.Nfail = 0
	b := tsr.Batch{Npts: 1, Nele: 1}
	for k, F := range pth.F {

		// update
		x, err := NewInput(tsr.Fill(b, F), o.state)
		if err != nil {
			return chk.Err("step %d: %v", k, err)
		}
		var stress *tsr.Field2
		newstate := o.state
		if sm, ok := o.mdl.(Stateful); ok {
			stress, newstate, err = sm.Gradient(x)
		} else {
			stress, err = o.mdl.Stress(x)
		}
		if err != nil {
			return chk.Err("step %d: stress update failed:\n%v", k, err)
		}

		// check consistent matrix
		if o.CheckD {
			D, err := o.mdl.Elasticity(x)
			if err != nil {
				return chk.Err("step %d: tangent failed:\n%v", k, err)
			}
			Dnum, err := NumTangent(o.mdl, F, o.state, o.Small, o.Hstep)
			if err != nil {
				return chk.Err("step %d: numerical tangent failed:\n%v", k, err)
			}
			diff := tsr.MaxDiff4(&D.V[0], &Dnum) / math.Max(1, tsr.MaxAbs4(&Dnum))
			if o.VerD {
				io.Pf("step %3d: max relative difference of D = %v\n", k, diff)
			}
			if diff > o.TolD || math.IsNaN(diff) {
				o.Nfail++
				io.Pfred("step %3d: consistent tangent check failed: %g > %g\n", k, diff, o.TolD)
			}
		}

		// results
		o.Res = append(o.Res, stress.V[0])
		if newstate != nil {
			o.state = newstate
			o.States = append(o.States, newstate.GetCopy())
		} else {
			o.States = append(o.States, nil)
		}
	}
	if o.Nfail > 0 {
		return chk.Err("consistent tangent check failed in %d steps", o.Nfail)
	}
	return
}

// NumTangent computes the tangent of mdl at one point by 5-point central differences
//  small -- D = dσ/dε with ε = sym(F - I); otherwise Jc, the push-forward of 2 ∂S/∂E with S = F⁻¹·τ·F⁻ᵀ
//  state -- old state of one point; may be nil
func NumTangent(mdl Model, F tsr.Ten2, state *State, small bool, h float64) (D tsr.Ten4, err error) {
	var Fi tsr.Ten2
	if _, err = tsr.Inv(&Fi, &F); err != nil {
		return
	}
	FiT := tsr.Transpose(&Fi)
	b := tsr.Batch{Npts: 1, Nele: 1}
	stress := func(G *tsr.Ten2) (s tsr.Ten2, err error) {
		x, err := NewInput(tsr.Fill(b, *G), state)
		if err != nil {
			return
		}
		tau, err := mdl.Stress(x)
		if err != nil {
			return
		}
		if small {
			return tau.V[0], nil
		}
		var Gi tsr.Ten2
		if _, err = tsr.Inv(&Gi, G); err != nil {
			return
		}
		ts := tsr.DotT(&tau.V[0], &Gi)
		s = tsr.Dot(&Gi, &ts)
		return
	}
	var C tsr.Ten4
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {

			// stress at F + t·dF/dE:(ek⊙el), memoised over t
			var e error
			memo := make(map[float64]tsr.Ten2)
			perturbed := func(t float64) tsr.Ten2 {
				if s, ok := memo[t]; ok {
					return s
				}
				var E tsr.Ten2
				E[k][l] += t / 2.0
				E[l][k] += t / 2.0
				dF := E
				if !small {
					dF = tsr.Dot(&FiT, &E)
				}
				var G tsr.Ten2
				tsr.Add(&G, 1, &F, 1, &dF)
				s, err := stress(&G)
				if err != nil && e == nil {
					e = err
				}
				memo[t] = s
				return s
			}
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					C[i][j][k][l] = num.DerivCen5(0, h, func(t float64) float64 {
						s := perturbed(t)
						return s[i][j]
					})
				}
			}
			if e != nil {
				return D, e
			}
		}
	}
	if small {
		return C, nil
	}
	return tsr.PushForward(&C, &F), nil
}

// isSmallStrain tells whether mdl is evaluated with small strains
func isSmallStrain(mdl Model) bool {
	switch m := mdl.(type) {
	case *MaterialStrain:
		return true
	case *Composite:
		return isSmallStrain(m.Models[0])
	}
	return false
}
