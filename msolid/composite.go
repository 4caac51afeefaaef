// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"strings"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Composite implements the sum of models
//  Note: only the state variables of the first model are updated by Gradient
type Composite struct {
	Models  []Model // models
	Verbose bool    // print notes

	// derived
	prms       Params   // merged parameters
	collisions []string // names of parameters given by more than one model
}

// NewComposite returns the sum of models
func NewComposite(models ...Model) (o *Composite, err error) {
	if len(models) == 0 {
		return nil, chk.Err("composite material requires at least one model")
	}
	o = &Composite{Models: models}
	o.prms = models[0].Params()
	for _, m := range models[1:] {
		var c []string
		o.prms, c = o.prms.Merge(m.Params())
		o.collisions = append(o.collisions, c...)
	}
	return
}

// Compose returns the sum of two models
func Compose(a, b Model) (*Composite, error) {
	return NewComposite(a, b)
}

// Collisions returns the names of parameters given by more than one model
//  Note: the values of the first model giving a parameter are kept
func (o *Composite) Collisions() []string { return o.collisions }

// Params returns the merged parameters
func (o *Composite) Params() Params { return o.prms }

// Stress computes the sum of stresses
func (o *Composite) Stress(x *Input) (*tsr.Field2, error) {
	res := make([]*tsr.Field2, len(o.Models))
	for k, m := range o.Models {
		s, err := m.Stress(x)
		if err != nil {
			return nil, err
		}
		res[k] = s
	}
	return tsr.AddField2(res...)
}

// Elasticity computes the sum of tangents
func (o *Composite) Elasticity(x *Input) (*tsr.Field4, error) {
	res := make([]*tsr.Field4, len(o.Models))
	for k, m := range o.Models {
		D, err := m.Elasticity(x)
		if err != nil {
			return nil, err
		}
		res[k] = D
	}
	return tsr.AddField4(res...)
}

// Gradient computes the sum of stresses and the new state of the first model
//  Note: the state returned by other stateful models is discarded
func (o *Composite) Gradient(x *Input) (stress *tsr.Field2, state *State, err error) {
	res := make([]*tsr.Field2, len(o.Models))
	state = x.State
	for k, m := range o.Models {
		if sm, ok := m.(Stateful); ok {
			var st *State
			res[k], st, err = sm.Gradient(x)
			if err != nil {
				return
			}
			if k == 0 {
				state = st
			} else if o.Verbose {
				io.Pfyel("composite: state variables of model %d (%T) are discarded\n", k, m)
			}
			continue
		}
		res[k], err = m.Stress(x)
		if err != nil {
			return
		}
	}
	stress, err = tsr.AddField2(res...)
	return
}

// Layout returns the layout of the state variables of the first model
func (o *Composite) Layout() *Layout {
	if sm, ok := o.Models[0].(Stateful); ok {
		return sm.Layout()
	}
	return nil
}

// WithParams returns a new composite whose models take their values from prms
func (o *Composite) WithParams(prms Params) (Model, error) {
	models := make([]Model, len(o.Models))
	for k, m := range o.Models {
		sub := m.Params()
		if sub.Len() == 0 {
			models[k] = m
			continue
		}
		values := sub.Values()
		for i, name := range sub.Names() {
			if v, found := prms.Get(name); found {
				values[i] = v
			}
		}
		sub, err := sub.With(values)
		if err != nil {
			return nil, err
		}
		f, ok := m.(Fittable)
		if !ok {
			return nil, chk.Err("model %d (%T) does not accept parameters", k, m)
		}
		if models[k], err = f.WithParams(sub); err != nil {
			return nil, err
		}
	}
	c, err := NewComposite(models...)
	if err != nil {
		return nil, err
	}
	c.Verbose = o.Verbose
	return c, nil
}

// Note prints a summary of merged parameters and collisions
func (o *Composite) Note() {
	if !o.Verbose {
		return
	}
	io.Pf("composite: %d models; parameters: %v\n", len(o.Models), o.prms)
	if len(o.collisions) > 0 {
		io.Pfyel("composite: parameters given by more than one model (first wins): %s\n", strings.Join(o.collisions, ", "))
	}
}
