// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// InvariantsEnergy defines strain energy functions W(I1, I2, I3) of the invariants of b
type InvariantsEnergy interface {
	// Derivs computes Wa = ∂W/∂Ia and Wab = ∂²W/∂Ia∂Ib (symmetric) at I = (I1, I2, I3)
	Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error
}

// InvariantsFunc adapts a function to the InvariantsEnergy interface
type InvariantsFunc func(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error

// Derivs implements InvariantsEnergy
func (f InvariantsFunc) Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
	return f(Wa, Wab, I)
}

// InvariantBased implements isotropic hyperelastic models from an energy W(I1, I2, I3)
//  τ  = 2 W1 b + 2 W2 (I1 b - b·b) + 2 W3 I3 I
//  Jc = 4 ( a00 b⊗b + a11 b²⊗b² + a22 I⊗I + a01 (b⊗b² + b²⊗b) + a02 (b⊗I + I⊗b)
//         + a12 (b²⊗I + I⊗b²) + b00 b⊙b + b22 I⊙I )
type InvariantBased struct {
	Energy InvariantsEnergy // strain energy function

	// auxiliary
	cache  invCache // results of the last update
	active []string // names of terms of the last evaluation
}

// invCache holds the invariants and energy derivatives of one batch
type invCache struct {
	batch tsr.Batch       // trailing dimensions of b
	id    uint64          // key of b
	ok    bool            // cache holds valid results
	b     []tsr.Ten2      // b
	bb    []tsr.Ten2      // b·b
	I     [][3]float64    // invariants
	Wa    [][3]float64    // first derivatives
	Wab   [][3][3]float64 // second derivatives
}

// NewInvariantBased returns a new invariant-based material
func NewInvariantBased(energy InvariantsEnergy) *InvariantBased {
	return &InvariantBased{Energy: energy}
}

// add models to factory
func init() {
	allocators["neo-hooke"] = func(prms Params) (Model, error) {
		return newIsochoricInvariants(new(NeoHooke), prms)
	}
	allocators["mooney-rivlin"] = func(prms Params) (Model, error) {
		return newIsochoricInvariants(new(MooneyRivlin), prms)
	}
	allocators["yeoh"] = func(prms Params) (Model, error) {
		return newIsochoricInvariants(new(Yeoh), prms)
	}
}

// Stress computes τ with b of the input
func (o *InvariantBased) Stress(x *Input) (*tsr.Field2, error) { return o.StressB(x.B, x.Key) }

// Elasticity computes Jc with b of the input
func (o *InvariantBased) Elasticity(x *Input) (*tsr.Field4, error) {
	return o.ElasticityB(x.B, x.Key)
}

// Params returns the parameters of the energy function
func (o *InvariantBased) Params() Params { return energyParams(o.Energy) }

// WithParams returns a new material with another set of parameters
func (o *InvariantBased) WithParams(prms Params) (Model, error) {
	e, ok := o.Energy.(interface {
		WithParams(Params) (InvariantsEnergy, error)
	})
	if !ok {
		return nil, chk.Err("energy function %T does not accept parameters", o.Energy)
	}
	energy, err := e.WithParams(prms)
	if err != nil {
		return nil, err
	}
	return NewInvariantBased(energy), nil
}

// StressB computes τ(b)
func (o *InvariantBased) StressB(b *tsr.Field2, key uint64) (tau *tsr.Field2, err error) {
	if err = o.update(b, key); err != nil {
		return
	}
	c := &o.cache
	n := len(c.b)
	w1, w2, w3 := make([]float64, n), make([]float64, n), make([]float64, n)
	for q := 0; q < n; q++ {
		w1[q] = 2 * c.Wa[q][0]
		w2[q] = 2 * c.Wa[q][1]
		w3[q] = 2 * c.Wa[q][2] * c.I[q][2]
	}
	I := tsr.Eye()
	terms := []term2{
		{"2W1·b", w1, func(s *tsr.Ten2, α float64, q int) {
			tsr.AddTo(s, α, &c.b[q])
		}},
		{"2W2·(I1·b-b·b)", w2, func(s *tsr.Ten2, α float64, q int) {
			tsr.AddTo(s, α*c.I[q][0], &c.b[q])
			tsr.AddTo(s, -α, &c.bb[q])
		}},
		{"2W3·I3·I", w3, func(s *tsr.Ten2, α float64, q int) {
			tsr.AddTo(s, α, &I)
		}},
	}
	tau = tsr.NewField2(b.Batch)
	o.active = sumTerms2(tau, terms)
	return
}

// ElasticityB computes Jc(b)
func (o *InvariantBased) ElasticityB(b *tsr.Field2, key uint64) (D *tsr.Field4, err error) {
	if err = o.update(b, key); err != nil {
		return
	}
	c := &o.cache
	n := len(c.b)
	a00, a11, a22 := make([]float64, n), make([]float64, n), make([]float64, n)
	a01, a02, a12 := make([]float64, n), make([]float64, n), make([]float64, n)
	b00, b22 := make([]float64, n), make([]float64, n)
	for q := 0; q < n; q++ {
		I1, I3 := c.I[q][0], c.I[q][2]
		W2, W3 := c.Wa[q][1], c.Wa[q][2]
		W11, W22, W33 := c.Wab[q][0][0], c.Wab[q][1][1], c.Wab[q][2][2]
		W12, W13, W23 := c.Wab[q][0][1], c.Wab[q][0][2], c.Wab[q][1][2]
		a00[q] = 4 * (W11 + 2*I1*W12 + I1*I1*W22 + W2)
		a11[q] = 4 * W22
		a22[q] = 4 * (W33*I3*I3 + W3*I3)
		a01[q] = -4 * (W12 + I1*W22)
		a02[q] = 4 * (W13*I3 + W23*I3*I1)
		a12[q] = -4 * W23 * I3
		b00[q] = -4 * W2
		b22[q] = -4 * W3 * I3
	}
	I := tsr.Eye()
	terms := []term4{
		{"b⊗b", a00, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &c.b[q], &c.b[q])
		}},
		{"b²⊗b²", a11, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &c.bb[q], &c.bb[q])
		}},
		{"I⊗I", a22, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &I, &I)
		}},
		{"b⊗b²+b²⊗b", a01, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &c.b[q], &c.bb[q])
			tsr.AddDya(D, α, &c.bb[q], &c.b[q])
		}},
		{"b⊗I+I⊗b", a02, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &c.b[q], &I)
			tsr.AddDya(D, α, &I, &c.b[q])
		}},
		{"b²⊗I+I⊗b²", a12, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddDya(D, α, &c.bb[q], &I)
			tsr.AddDya(D, α, &I, &c.bb[q])
		}},
		{"b⊙b", b00, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddCdya(D, α, &c.b[q], &c.b[q])
		}},
		{"I⊙I", b22, func(D *tsr.Ten4, α float64, q int) {
			tsr.AddCdya(D, α, &I, &I)
		}},
	}
	D = tsr.NewField4(b.Batch)
	o.active = sumTerms4(D, terms)
	return
}

// update computes invariants and energy derivatives unless key matches the last update
func (o *InvariantBased) update(b *tsr.Field2, key uint64) (err error) {
	c := &o.cache
	if key != 0 && c.ok && c.id == key && c.batch == b.Batch {
		return
	}
	c.ok = false
	n := len(b.V)
	c.b = make([]tsr.Ten2, n)
	c.bb = make([]tsr.Ten2, n)
	c.I = make([][3]float64, n)
	c.Wa = make([][3]float64, n)
	c.Wab = make([][3][3]float64, n)
	copy(c.b, b.V)
	for q := 0; q < n; q++ {
		c.bb[q] = tsr.Dot(&c.b[q], &c.b[q])
		I1 := tsr.Tr(&c.b[q])
		c.I[q] = [3]float64{I1, (I1*I1 - tsr.Tr(&c.bb[q])) / 2.0, tsr.Det(&c.b[q])}
		if err = o.Energy.Derivs(&c.Wa[q], &c.Wab[q], c.I[q]); err != nil {
			return
		}
	}
	c.batch, c.id, c.ok = b.Batch, key, true
	return
}

// newIsochoricInvariants allocates an isochoric invariant-based model with parameters
func newIsochoricInvariants(energy interface {
	WithParams(Params) (InvariantsEnergy, error)
}, prms Params) (Model, error) {
	e, err := energy.WithParams(prms)
	if err != nil {
		return nil, err
	}
	return NewAsIsochoric(NewInvariantBased(e)), nil
}
