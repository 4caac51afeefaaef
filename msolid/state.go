// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Layout describes how the state variables of one point are packed into a flat vector
//  The vector holds, in this order:
//   1) history variables α with the declared shapes, flattened in row-major order
//   2) the old strain εn [3][3]
//   3) the old stress σn [3][3]
type Layout struct {
	Shapes  [][]int // declared shapes of history variables
	Sizes   []int   // number of components of each history variable
	Offsets []int   // end offsets of each history variable (cumulative sizes)
	Nalp    int     // total number of history components
	N       int     // length of state vector: Nalp + 2 × 9
}

// NewLayout computes the layout for history variables with the given shapes
func NewLayout(shapes ...[]int) (o *Layout, err error) {
	o = new(Layout)
	for k, shape := range shapes {
		size := 1
		for _, d := range shape {
			if d < 0 {
				return nil, chk.Err("history variable %d has a negative dimension: %v", k, shape)
			}
			size *= d
		}
		o.Shapes = append(o.Shapes, append([]int{}, shape...))
		o.Sizes = append(o.Sizes, size)
		o.Nalp += size
		o.Offsets = append(o.Offsets, o.Nalp)
	}
	o.N = o.Nalp + 18
	return
}

// EpsOffset returns the position of εn in the state vector
func (o *Layout) EpsOffset() int { return o.Nalp }

// SigOffset returns the position of σn in the state vector
func (o *Layout) SigOffset() int { return o.Nalp + 9 }

// Extract splits the state vector v of one point
//  Note: alp holds copies of the history variables
func (o *Layout) Extract(v []float64) (alp [][]float64, eps, sig tsr.Ten2, err error) {
	if len(v) != o.N {
		err = &tsr.ShapeError{What: "state vector", Expected: io.Sf("%d components", o.N), Got: io.Sf("%d components", len(v))}
		return
	}
	alp = make([][]float64, len(o.Sizes))
	start := 0
	for k, end := range o.Offsets {
		alp[k] = make([]float64, o.Sizes[k])
		copy(alp[k], v[start:end])
		start = end
	}
	unflatten(&eps, v[o.EpsOffset():])
	unflatten(&sig, v[o.SigOffset():])
	return
}

// Pack writes history variables, strain and stress into the state vector v of one point
func (o *Layout) Pack(v []float64, alp [][]float64, eps, sig *tsr.Ten2) error {
	if len(v) != o.N {
		return &tsr.ShapeError{What: "state vector", Expected: io.Sf("%d components", o.N), Got: io.Sf("%d components", len(v))}
	}
	if len(alp) != len(o.Sizes) {
		return &tsr.ShapeError{What: "history variables", Expected: io.Sf("%d variables", len(o.Sizes)), Got: io.Sf("%d variables", len(alp))}
	}
	start := 0
	for k, end := range o.Offsets {
		if len(alp[k]) != o.Sizes[k] {
			return &tsr.ShapeError{What: io.Sf("history variable %d", k), Expected: io.Sf("shape %v", o.Shapes[k]), Got: io.Sf("%d components", len(alp[k]))}
		}
		copy(v[start:end], alp[k])
		start = end
	}
	flatten(v[o.EpsOffset():], eps)
	flatten(v[o.SigOffset():], sig)
	return nil
}

// State holds the state vectors of a batch of points
type State struct {
	tsr.Batch
	N int       // length of the state vector of each point
	V []float64 // all state vectors [Size() × N]
}

// NewState allocates a zero state for a batch of points
func NewState(layout *Layout, b tsr.Batch) *State {
	return &State{b, layout.N, make([]float64, layout.N*b.Size())}
}

// At returns the state vector of entry q
func (o *State) At(q int) []float64 {
	return o.V[q*o.N : (q+1)*o.N]
}

// Check returns a *ShapeError if this state does not match layout and batch
func (o *State) Check(layout *Layout, b tsr.Batch) error {
	if err := b.Check("state variables", o.Batch); err != nil {
		return err
	}
	if o.N != layout.N || len(o.V) != o.N*o.Size() {
		return &tsr.ShapeError{What: "state variables", Expected: io.Sf("%d components per point", layout.N), Got: io.Sf("%d components per point (%d in total)", o.N, len(o.V))}
	}
	return nil
}

// Set copies states
//  Note: this and other states must have been allocated with the same sizes
func (o *State) Set(other *State) error {
	if o.Batch != other.Batch || o.N != other.N {
		return chk.Err("cannot copy state with %d components per point %v into state with %d components per point %v", other.N, other.Batch, o.N, o.Batch)
	}
	copy(o.V, other.V)
	return nil
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := &State{o.Batch, o.N, make([]float64, len(o.V))}
	copy(other.V, o.V)
	return other
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func flatten(v []float64, a *tsr.Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v[i*3+j] = a[i][j]
		}
	}
}

func unflatten(a *tsr.Ten2, v []float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = v[i*3+j]
		}
	}
}
