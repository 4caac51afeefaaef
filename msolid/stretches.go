// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// StretchesEnergy defines strain energy functions W(λ1, λ2, λ3) of the principal stretches
type StretchesEnergy interface {
	// Derivs computes Wa = ∂W/∂λa and Wab = ∂²W/∂λa∂λb (symmetric) at stretches λ
	Derivs(Wa *[3]float64, Wab *[3][3]float64, λ [3]float64) error
}

// StretchesFunc adapts a function to the StretchesEnergy interface
type StretchesFunc func(Wa *[3]float64, Wab *[3][3]float64, λ [3]float64) error

// Derivs implements StretchesEnergy
func (f StretchesFunc) Derivs(Wa *[3]float64, Wab *[3][3]float64, λ [3]float64) error {
	return f(Wa, Wab, λ)
}

// DefaultEvTol is the default tolerance to detect equal principal stretches
const DefaultEvTol = 1e-8

// PrincipalStretchBased implements isotropic hyperelastic models from an energy W(λ1, λ2, λ3)
//  τ  = Σa Wa λa Ma
//  Jc = Σab Wab λa λb Ma⊗Mb - Σa Wa λa Ma⊗Ma + Σa≠b Gab (Ma⊙Mb + Mb⊙Ma)
//  Gab = (Wa λa λb² - Wb λb λa²) / (λa² - λb²)
//  Note: if |λa-λb| < EvTol, λa is moved away from λb by EvTol when computing Gab, such that
//        |λa-λb| >= EvTol. This keeps Jc finite but drops the (Waa-Wab) λa²/2 contribution of
//        the limit. With EvLimit, the limit Gab = ((Waa-Wab) λa² - Wa λa) / 2 is used instead
type PrincipalStretchBased struct {
	Energy  StretchesEnergy // strain energy function
	EvTol   float64         // tolerance to detect equal stretches
	EvLimit bool            // use the limit of Gab for equal stretches instead of perturbing λa

	// auxiliary
	cache  strCache // results of the last update
	active []string // names of terms of the last evaluation
}

// strCache holds the spectral decomposition and energy derivatives of one batch
type strCache struct {
	batch tsr.Batch       // trailing dimensions of b
	id    uint64          // key of b
	ok    bool            // cache holds valid results
	λ     [][3]float64    // principal stretches
	M     [][3]tsr.Ten2   // eigenbases
	Wa    [][3]float64    // first derivatives
	Wab   [][3][3]float64 // second derivatives
}

// NewPrincipalStretchBased returns a new principal-stretch-based material
//  evtol -- tolerance to detect equal stretches; use zero to select DefaultEvTol
func NewPrincipalStretchBased(energy StretchesEnergy, evtol float64) *PrincipalStretchBased {
	if evtol <= 0 {
		evtol = DefaultEvTol
	}
	return &PrincipalStretchBased{Energy: energy, EvTol: evtol}
}

// add model to factory
func init() {
	allocators["ogden"] = func(prms Params) (Model, error) {
		e, err := new(Ogden).WithParams(prms)
		if err != nil {
			return nil, err
		}
		return NewAsIsochoric(NewPrincipalStretchBased(e, 0)), nil
	}
}

// Stress computes τ with b of the input
func (o *PrincipalStretchBased) Stress(x *Input) (*tsr.Field2, error) {
	return o.StressB(x.B, x.Key)
}

// Elasticity computes Jc with b of the input
func (o *PrincipalStretchBased) Elasticity(x *Input) (*tsr.Field4, error) {
	return o.ElasticityB(x.B, x.Key)
}

// Params returns the parameters of the energy function
func (o *PrincipalStretchBased) Params() Params { return energyParams(o.Energy) }

// WithParams returns a new material with another set of parameters
func (o *PrincipalStretchBased) WithParams(prms Params) (Model, error) {
	e, ok := o.Energy.(interface {
		WithParams(Params) (StretchesEnergy, error)
	})
	if !ok {
		return nil, chk.Err("energy function %T does not accept parameters", o.Energy)
	}
	energy, err := e.WithParams(prms)
	if err != nil {
		return nil, err
	}
	res := NewPrincipalStretchBased(energy, o.EvTol)
	res.EvLimit = o.EvLimit
	return res, nil
}

// StressB computes τ(b)
func (o *PrincipalStretchBased) StressB(b *tsr.Field2, key uint64) (tau *tsr.Field2, err error) {
	if err = o.update(b, key); err != nil {
		return
	}
	c := &o.cache
	terms := make([]term2, 3)
	for a := 0; a < 3; a++ {
		coef := make([]float64, len(c.λ))
		for q := range coef {
			coef[q] = c.Wa[q][a] * c.λ[q][a]
		}
		terms[a] = term2{stretchName("Wλ·M", a), coef, func(s *tsr.Ten2, α float64, q int) {
			tsr.AddTo(s, α, &c.M[q][a])
		}}
	}
	tau = tsr.NewField2(b.Batch)
	o.active = sumTerms2(tau, terms)
	return
}

// ElasticityB computes Jc(b)
func (o *PrincipalStretchBased) ElasticityB(b *tsr.Field2, key uint64) (D *tsr.Field4, err error) {
	if err = o.update(b, key); err != nil {
		return
	}
	c := &o.cache
	n := len(c.λ)
	var terms []term4

	// Σab Wab λa λb Ma⊗Mb - Σa Wa λa Ma⊗Ma
	for a := 0; a < 3; a++ {
		for bb := 0; bb < 3; bb++ {
			coef := make([]float64, n)
			for q := 0; q < n; q++ {
				coef[q] = c.Wab[q][a][bb] * c.λ[q][a] * c.λ[q][bb]
				if a == bb {
					coef[q] -= c.Wa[q][a] * c.λ[q][a]
				}
			}
			terms = append(terms, term4{pairName("M⊗M", a, bb), coef, func(D *tsr.Ten4, α float64, q int) {
				tsr.AddDya(D, α, &c.M[q][a], &c.M[q][bb])
			}})
		}
	}

	// Σa≠b Gab (Ma⊙Mb + Mb⊙Ma); with Gab == Gba, the pairs a < b are added twice
	for a := 0; a < 3; a++ {
		for bb := a + 1; bb < 3; bb++ {
			coef := make([]float64, n)
			for q := 0; q < n; q++ {
				coef[q] = 2 * o.gab(q, a, bb)
			}
			terms = append(terms, term4{pairName("M⊙M", a, bb), coef, func(D *tsr.Ten4, α float64, q int) {
				tsr.AddCdya(D, α, &c.M[q][a], &c.M[q][bb])
				tsr.AddCdya(D, α, &c.M[q][bb], &c.M[q][a])
			}})
		}
	}
	D = tsr.NewField4(b.Batch)
	o.active = sumTerms4(D, terms)
	return
}

// gab computes the coefficient of the shear terms of pair (a, b) at entry q
func (o *PrincipalStretchBased) gab(q, a, b int) float64 {
	c := &o.cache
	la, lb := c.λ[q][a], c.λ[q][b]
	if math.Abs(la-lb) < o.EvTol {
		if o.EvLimit {
			return ((c.Wab[q][a][a]-c.Wab[q][a][b])*la*la - c.Wa[q][a]*la) / 2.0
		}
		if la <= lb {
			la -= o.EvTol
		} else {
			la += o.EvTol
		}
	}
	return (c.Wa[q][a]*la*lb*lb - c.Wa[q][b]*lb*la*la) / (la*la - lb*lb)
}

// update computes stretches, eigenbases and energy derivatives unless key matches the last update
func (o *PrincipalStretchBased) update(b *tsr.Field2, key uint64) (err error) {
	c := &o.cache
	if key != 0 && c.ok && c.id == key && c.batch == b.Batch {
		return
	}
	c.ok = false
	n := len(b.V)
	c.λ = make([][3]float64, n)
	c.M = make([][3]tsr.Ten2, n)
	c.Wa = make([][3]float64, n)
	c.Wab = make([][3][3]float64, n)
	for q := 0; q < n; q++ {
		w, v, e := tsr.Eigh(&b.V[q])
		if e != nil {
			return chk.Err("entry %d: %v", q, e)
		}
		for k := 0; k < 3; k++ {
			if w[k] <= 0 {
				return chk.Err("entry %d: eigenvalues of b must be positive. w = %v", q, w)
			}
			c.λ[q][k] = math.Sqrt(w[k])
		}
		c.M[q] = tsr.Eigenbases(&v)
		if err = o.Energy.Derivs(&c.Wa[q], &c.Wab[q], c.λ[q]); err != nil {
			return
		}
	}
	c.batch, c.id, c.ok = b.Batch, key, true
	return
}

func stretchName(s string, a int) string {
	return s + string(rune('₁'+a))
}

func pairName(s string, a, b int) string {
	return s + string(rune('₁'+a)) + string(rune('₁'+b))
}
