// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// StrainInput holds the input of one incremental update
type StrainInput struct {
	Deps tsr.Ten2    // Δε: strain increment
	Eps  tsr.Ten2    // εn: old strain
	Sig  tsr.Ten2    // σn: old stress
	Alp  [][]float64 // αn: old history variables (copies; may be modified)
}

// StrainOutput holds the results of one incremental update
type StrainOutput struct {
	Sig tsr.Ten2    // σ: new stress
	Alp [][]float64 // α: new history variables
	D   tsr.Ten4    // consistent tangent; only when requested
}

// StrainModel defines small strain models updating stresses from strain increments
type StrainModel interface {
	Update(out *StrainOutput, in *StrainInput, tangent bool) error
}

// StrainFunc adapts a function to the StrainModel interface
type StrainFunc func(out *StrainOutput, in *StrainInput, tangent bool) error

// Update implements StrainModel
func (f StrainFunc) Update(out *StrainOutput, in *StrainInput, tangent bool) error {
	return f(out, in, tangent)
}

// MaterialStrain implements incremental small strain models with state variables
//  ε = sym(F - I); the state vector holds history variables, εn and σn (see Layout)
type MaterialStrain struct {
	Mdl    StrainModel // strain model
	layout *Layout     // layout of state vector
}

// NewMaterialStrain returns a new incremental small strain material
//  statevars -- shapes of history variables; e.g. {3, 3}, {1}
func NewMaterialStrain(mdl StrainModel, statevars ...[]int) (*MaterialStrain, error) {
	layout, err := NewLayout(statevars...)
	if err != nil {
		return nil, err
	}
	return &MaterialStrain{mdl, layout}, nil
}

// Layout returns the layout of the state vector
func (o *MaterialStrain) Layout() *Layout { return o.layout }

// NewState allocates a zero state for a batch
func (o *MaterialStrain) NewState(b tsr.Batch) *State { return NewState(o.layout, b) }

// Params returns the parameters of the strain model
func (o *MaterialStrain) Params() Params { return energyParams(o.Mdl) }

// WithParams returns a new material with another set of parameters
func (o *MaterialStrain) WithParams(prms Params) (Model, error) {
	m, ok := o.Mdl.(interface {
		WithParams(Params) (StrainModel, error)
	})
	if !ok {
		return nil, chk.Err("strain model %T does not accept parameters", o.Mdl)
	}
	mdl, err := m.WithParams(prms)
	if err != nil {
		return nil, err
	}
	return &MaterialStrain{mdl, o.layout}, nil
}

// Stress computes the new stress
func (o *MaterialStrain) Stress(x *Input) (*tsr.Field2, error) {
	sig, _, err := o.Gradient(x)
	return sig, err
}

// Elasticity computes the consistent tangent
func (o *MaterialStrain) Elasticity(x *Input) (*tsr.Field4, error) { return o.Hessian(x) }

// Gradient computes the new stress and the new state
func (o *MaterialStrain) Gradient(x *Input) (sig *tsr.Field2, state *State, err error) {
	inputs, err := o.extract(x)
	if err != nil {
		return
	}
	sig = tsr.NewField2(x.Batch())
	state = NewState(o.layout, x.Batch())
	var out StrainOutput
	for q, in := range inputs {
		out = StrainOutput{}
		if err = o.Mdl.Update(&out, in, false); err != nil {
			return nil, nil, err
		}
		sig.V[q] = out.Sig
		var eps tsr.Ten2
		tsr.Add(&eps, 1, &in.Eps, 1, &in.Deps)
		if err = o.layout.Pack(state.At(q), out.Alp, &eps, &out.Sig); err != nil {
			return nil, nil, err
		}
	}
	return
}

// Hessian computes the consistent tangent symmetrised over both minor index pairs
func (o *MaterialStrain) Hessian(x *Input) (D *tsr.Field4, err error) {
	inputs, err := o.extract(x)
	if err != nil {
		return
	}
	D = tsr.NewField4(x.Batch())
	var out StrainOutput
	for q, in := range inputs {
		out = StrainOutput{}
		if err = o.Mdl.Update(&out, in, true); err != nil {
			return nil, err
		}
		D.V[q] = tsr.SymMinor(&out.D)
	}
	return
}

// extract computes the strain increments and splits the state vectors
func (o *MaterialStrain) extract(x *Input) (inputs []*StrainInput, err error) {
	if x.State == nil {
		return nil, chk.Err("state variables are required by strain-based materials")
	}
	if err = x.State.Check(o.layout, x.Batch()); err != nil {
		return
	}
	I := tsr.Eye()
	inputs = make([]*StrainInput, len(x.F.V))
	for q := range x.F.V {
		in := new(StrainInput)
		in.Alp, in.Eps, in.Sig, err = o.layout.Extract(x.State.At(q))
		if err != nil {
			return nil, err
		}
		var H tsr.Ten2
		tsr.Add(&H, 1, &x.F.V[q], -1, &I)
		eps := tsr.Sym(&H)
		tsr.Add(&in.Deps, 1, &eps, -1, &in.Eps)
		inputs[q] = in
	}
	return
}
