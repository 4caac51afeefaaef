// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.mat) JSON files
package inp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaddySchmidt/gomat/msolid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {
	Name  string     `json:"name"`  // name of material
	Desc  string     `json:"desc"`  // description of material
	Type  string     `json:"type"`  // "solid" or "group"
	Model string     `json:"model"` // name of model in 'msolid' database; unused by groups
	Extra string     `json:"extra"` // extra information; e.g. "!s:rubber !s:bulk" for groups
	Prms  dbf.Params `json:"prms"`  // parameters
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
//  Note: dir may contain environment variables
func ReadMat(dir, fn string) (o *MatDb, err error) {
	b, err := os.ReadFile(filepath.Join(os.ExpandEnv(dir), fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}
	o = new(MatDb)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}
	names := make(map[string]bool)
	for i, m := range o.Materials {
		if m == nil || m.Name == "" {
			return nil, chk.Err("material %d in %q has no name", i, fn)
		}
		if names[m.Name] {
			return nil, chk.Err("material %q is defined more than once in %q", m.Name, fn)
		}
		names[m.Name] = true
	}
	return
}

// Get returns a material; nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Names returns the names of all materials
func (o MatDb) Names() (names []string) {
	names = make([]string, len(o.Materials))
	for i, mat := range o.Materials {
		names[i] = mat.Name
	}
	return
}

// String prints materials
func (o MatDb) String() string {
	var buf bytes.Buffer
	for _, mat := range o.Materials {
		buf.WriteString(io.Sf("%-12s %-6s %-16s %v\n", mat.Name, mat.Type, mat.Model, msolid.NewParams(mat.Prms)))
	}
	return buf.String()
}

// Model allocates the model of material named name
//  Note: groups are composed of the "s" materials listed in Extra, in the given order
func (o MatDb) Model(name string) (msolid.Model, error) {
	return o.model(name, make(map[string]bool))
}

func (o MatDb) model(name string, visited map[string]bool) (msolid.Model, error) {
	mat := o.Get(name)
	if mat == nil {
		return nil, chk.Err("materials database failed on getting %q material", name)
	}
	if visited[name] {
		return nil, chk.Err("material %q is part of its own group", name)
	}
	visited[name] = true
	defer delete(visited, name)

	switch mat.Type {
	case "solid", "":
		mdl, err := msolid.New(mat.Model, msolid.NewParams(mat.Prms))
		if err != nil {
			return nil, chk.Err("cannot allocate model of material %q:\n%v", name, err)
		}
		return mdl, nil

	case "group":
		subs := keycodes(mat.Extra, "s")
		if len(subs) == 0 {
			return nil, chk.Err("cannot find solid models in grouped material %q. 's' subkeys needed in Extra field", name)
		}
		models := make([]msolid.Model, len(subs))
		for i, sub := range subs {
			mdl, err := o.model(sub, visited)
			if err != nil {
				return nil, chk.Err("group %q:\n%v", name, err)
			}
			models[i] = mdl
		}
		cmp, err := msolid.NewComposite(models...)
		if err != nil {
			return nil, chk.Err("cannot compose group %q:\n%v", name, err)
		}
		return cmp, nil
	}
	return nil, chk.Err("type %q of material %q is invalid", mat.Type, name)
}

// keycodes returns all values of key in strings like "!key:value !other:value"
func keycodes(extra, key string) (values []string) {
	for _, field := range strings.Fields(extra) {
		if !strings.HasPrefix(field, "!") {
			continue
		}
		k, v, found := strings.Cut(field[1:], ":")
		if found && k == key && v != "" {
			values = append(values, v)
		}
	}
	return
}
