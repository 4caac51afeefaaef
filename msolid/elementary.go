// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/PaddySchmidt/gomat/tsr"

// StressFcn computes stresses of a batch
type StressFcn func(x *Input) (*tsr.Field2, error)

// ElasticityFcn computes tangents of a batch
type ElasticityFcn func(x *Input) (*tsr.Field4, error)

// Material wraps user supplied functions for stresses and tangents
type Material struct {
	StressF     StressFcn     // stress function
	ElasticityF ElasticityFcn // elasticity function
	Prms        Params        // parameters; informative only
}

// NewMaterial returns a new material from user functions
func NewMaterial(stress StressFcn, elasticity ElasticityFcn) *Material {
	return &Material{StressF: stress, ElasticityF: elasticity}
}

// Stress computes stresses
func (o *Material) Stress(x *Input) (*tsr.Field2, error) { return o.StressF(x) }

// Elasticity computes tangents
func (o *Material) Elasticity(x *Input) (*tsr.Field4, error) { return o.ElasticityF(x) }

// Params returns the parameters
func (o *Material) Params() Params { return o.Prms }
