// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements models for solids based on continuum mechanics
package msolid

import (
	"sort"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// Model defines constitutive models evaluated on batches of deformation gradients
type Model interface {
	Stress(x *Input) (*tsr.Field2, error)     // computes the Kirchhoff stress (or σ for small strains)
	Elasticity(x *Input) (*tsr.Field4, error) // computes the consistent tangent
	Params() Params                           // returns the material parameters
}

// Stateful defines models that update a vector of state variables
type Stateful interface {
	Model
	Gradient(x *Input) (stress *tsr.Field2, state *State, err error) // computes stress and new state
	Layout() *Layout                                                // returns the layout of the state vector; may be nil
}

// Fittable defines models that can be re-created with new parameter values
type Fittable interface {
	Model
	WithParams(prms Params) (Model, error) // returns a new instance; the receiver is not modified
}

// Hyperelastic defines isotropic models evaluated on the left Cauchy-Green tensor b
type Hyperelastic interface {
	StressB(b *tsr.Field2, key uint64) (*tsr.Field2, error)     // computes τ(b)
	ElasticityB(b *tsr.Field2, key uint64) (*tsr.Field4, error) // computes Jc(b)
	Params() Params                                             // returns the material parameters
}

// New returns a new model initialised with prms
func New(name string, prms Params) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	model, err = allocator(prms)
	if err != nil {
		return nil, chk.Err("cannot allocate model %q:\n%v", name, err)
	}
	return
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func(prms Params) (Model, error){}
