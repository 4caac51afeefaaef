// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Params holds an ordered list of material parameters
//  Note: Params is a value type; With, Set and Merge return new lists and never modify the receiver
type Params struct {
	list    dbf.Params // parameters
	version int        // incremented by each modification
}

// NewParams returns a copy of prms as Params
func NewParams(prms dbf.Params) Params {
	return Params{list: copyList(prms)}
}

// MakeParams returns Params from names and values
func MakeParams(names []string, values []float64) (Params, error) {
	if len(names) != len(values) {
		return Params{}, chk.Err("number of names (%d) and values (%d) must be equal", len(names), len(values))
	}
	list := make(dbf.Params, len(names))
	for i, n := range names {
		list[i] = &dbf.P{N: n, V: values[i]}
	}
	return Params{list: list}, nil
}

// Len returns the number of parameters
func (o Params) Len() int { return len(o.list) }

// Version returns the number of modifications applied to the original list
func (o Params) Version() int { return o.version }

// Names returns the names of parameters
func (o Params) Names() (names []string) {
	names = make([]string, len(o.list))
	for i, p := range o.list {
		names[i] = p.N
	}
	return
}

// Values returns the values of parameters
func (o Params) Values() (values []float64) {
	values = make([]float64, len(o.list))
	for i, p := range o.list {
		values[i] = p.V
	}
	return
}

// Get returns the value of parameter named name
func (o Params) Get(name string) (value float64, found bool) {
	for _, p := range o.list {
		if p.N == name {
			return p.V, true
		}
	}
	return
}

// List returns a copy of the underlying dbf.Params
func (o Params) List() dbf.Params { return copyList(o.list) }

// With returns a new version with all values replaced
func (o Params) With(values []float64) (Params, error) {
	if len(values) != len(o.list) {
		return Params{}, chk.Err("number of values (%d) must be equal to number of parameters (%d)", len(values), len(o.list))
	}
	res := Params{list: copyList(o.list), version: o.version + 1}
	for i, p := range res.list {
		p.V = values[i]
	}
	return res, nil
}

// Set returns a new version with the value of parameter named name replaced
func (o Params) Set(name string, value float64) (Params, error) {
	res := Params{list: copyList(o.list), version: o.version + 1}
	for _, p := range res.list {
		if p.N == name {
			p.V = value
			return res, nil
		}
	}
	return Params{}, chk.Err("cannot find parameter named %q", name)
}

// Merge appends the parameters in other that are not in this list
//  Note: values of this list win on collision; the names of collisions are returned
func (o Params) Merge(other Params) (res Params, collisions []string) {
	res = Params{list: copyList(o.list), version: o.version}
	for _, p := range other.list {
		if _, found := o.Get(p.N); found {
			collisions = append(collisions, p.N)
			continue
		}
		res.list = append(res.list, &dbf.P{N: p.N, V: p.V})
	}
	return
}

// String returns a representation of parameters
func (o Params) String() string {
	var b bytes.Buffer
	for i, p := range o.list {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(io.Sf("%s=%g", p.N, p.V))
	}
	return b.String()
}

// copyList returns a copy of names and values
func copyList(prms dbf.Params) dbf.Params {
	res := make(dbf.Params, len(prms))
	for i, p := range prms {
		res[i] = &dbf.P{N: p.N, V: p.V}
	}
	return res
}
