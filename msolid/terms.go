// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/PaddySchmidt/gomat/tsr"

// term2 holds one named contribution Σ coef[q]·base[q] to a second order tensor field
type term2 struct {
	name string                              // name for reports
	coef []float64                           // coefficient at each entry
	add  func(s *tsr.Ten2, α float64, q int) // adds α·base[q] to s
}

// term4 holds one named contribution Σ coef[q]·base[q] to a fourth order tensor field
type term4 struct {
	name string                              // name for reports
	coef []float64                           // coefficient at each entry
	add  func(D *tsr.Ten4, α float64, q int) // adds α·base[q] to D
}

// sumTerms2 adds all terms with nonzero coefficients to res and returns their names
func sumTerms2(res *tsr.Field2, terms []term2) (active []string) {
	for _, t := range terms {
		if allZero(t.coef) {
			continue
		}
		active = append(active, t.name)
		for q := range res.V {
			t.add(&res.V[q], t.coef[q], q)
		}
	}
	return
}

// sumTerms4 adds all terms with nonzero coefficients to res and returns their names
func sumTerms4(res *tsr.Field4, terms []term4) (active []string) {
	for _, t := range terms {
		if allZero(t.coef) {
			continue
		}
		active = append(active, t.name)
		for q := range res.V {
			t.add(&res.V[q], t.coef[q], q)
		}
	}
	return
}

// allZero tells whether all values are exactly zero
func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// energyParams returns the parameters of energy functions or models carrying them
func energyParams(e interface{}) Params {
	if p, ok := e.(interface{ Params() Params }); ok {
		return p.Params()
	}
	return Params{}
}
