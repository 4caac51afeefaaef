// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Input holds the kinematics of a batch of deformation gradients
type Input struct {
	F     *tsr.Field2 // deformation gradient
	J     *tsr.Scalar // J = det(F)
	B     *tsr.Field2 // left Cauchy-Green tensor b = F·Fᵗ
	State *State      // state variables; may be nil
	Key   uint64      // identifies F for memoisation; zero disables caching
}

// NewInput computes the kinematics of F
//  Note: state may be nil for models without state variables
func NewInput(F *tsr.Field2, state *State) (x *Input, err error) {
	if len(F.V) != F.Size() {
		return nil, &tsr.ShapeError{What: "deformation gradient", Expected: F.Batch.String(), Got: io.Sf("%d entries", len(F.V))}
	}
	if state != nil {
		if err = F.Check("state variables", state.Batch); err != nil {
			return
		}
	}
	J := tsr.DetField(F)
	for q, j := range J.V {
		if j <= 0 {
			return nil, chk.Err("det(F) must be positive. J = %g at entry %d", j, q)
		}
	}
	b, err := tsr.DotTField(F, F)
	if err != nil {
		return
	}
	return &Input{F: F, J: J, B: b, State: state, Key: tsr.Fingerprint(F)}, nil
}

// Batch returns the trailing dimensions of the input
func (o *Input) Batch() tsr.Batch { return o.F.Batch }

// WithKey returns a shallow copy of this input with another key
func (o *Input) WithKey(key uint64) *Input {
	c := *o
	c.Key = key
	return &c
}

// WithState returns a shallow copy of this input with another state
func (o *Input) WithState(state *State) *Input {
	c := *o
	c.State = state
	return &c
}
