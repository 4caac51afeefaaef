// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NeoHooke implements W = μ/2 (I1 - 3)
type NeoHooke struct {
	Mu float64 // shear modulus
}

// Derivs implements InvariantsEnergy
func (o *NeoHooke) Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
	*Wa = [3]float64{o.Mu / 2.0, 0, 0}
	*Wab = [3][3]float64{}
	return nil
}

// Params returns the parameters
func (o *NeoHooke) Params() Params {
	prms, _ := MakeParams([]string{"mu"}, []float64{o.Mu})
	return prms
}

// WithParams returns a new energy with another set of parameters
func (o *NeoHooke) WithParams(prms Params) (InvariantsEnergy, error) {
	var res NeoHooke
	for _, p := range prms.list {
		switch p.N {
		case "mu", "G":
			res.Mu = p.V
		default:
			return nil, chk.Err("neo-hooke: parameter named %q is incorrect\n", p.N)
		}
	}
	return &res, nil
}

// MooneyRivlin implements W = C10 (I1 - 3) + C01 (I2 - 3)
type MooneyRivlin struct {
	C10 float64 // coefficient of I1
	C01 float64 // coefficient of I2
}

// Derivs implements InvariantsEnergy
func (o *MooneyRivlin) Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
	*Wa = [3]float64{o.C10, o.C01, 0}
	*Wab = [3][3]float64{}
	return nil
}

// Params returns the parameters
func (o *MooneyRivlin) Params() Params {
	prms, _ := MakeParams([]string{"C10", "C01"}, []float64{o.C10, o.C01})
	return prms
}

// WithParams returns a new energy with another set of parameters
func (o *MooneyRivlin) WithParams(prms Params) (InvariantsEnergy, error) {
	var res MooneyRivlin
	for _, p := range prms.list {
		switch p.N {
		case "C10":
			res.C10 = p.V
		case "C01":
			res.C01 = p.V
		default:
			return nil, chk.Err("mooney-rivlin: parameter named %q is incorrect\n", p.N)
		}
	}
	return &res, nil
}

// Yeoh implements W = C10 (I1 - 3) + C20 (I1 - 3)² + C30 (I1 - 3)³
type Yeoh struct {
	C10 float64
	C20 float64
	C30 float64
}

// Derivs implements InvariantsEnergy
func (o *Yeoh) Derivs(Wa *[3]float64, Wab *[3][3]float64, I [3]float64) error {
	x := I[0] - 3.0
	*Wa = [3]float64{o.C10 + 2.0*o.C20*x + 3.0*o.C30*x*x, 0, 0}
	*Wab = [3][3]float64{}
	Wab[0][0] = 2.0*o.C20 + 6.0*o.C30*x
	return nil
}

// Params returns the parameters
func (o *Yeoh) Params() Params {
	prms, _ := MakeParams([]string{"C10", "C20", "C30"}, []float64{o.C10, o.C20, o.C30})
	return prms
}

// WithParams returns a new energy with another set of parameters
func (o *Yeoh) WithParams(prms Params) (InvariantsEnergy, error) {
	var res Yeoh
	for _, p := range prms.list {
		switch p.N {
		case "C10":
			res.C10 = p.V
		case "C20":
			res.C20 = p.V
		case "C30":
			res.C30 = p.V
		default:
			return nil, chk.Err("yeoh: parameter named %q is incorrect\n", p.N)
		}
	}
	return &res, nil
}

// Ogden implements W = Σk μk/αk (λ1^αk + λ2^αk + λ3^αk - 3)
//  Note: parameters are named mu1, alpha1, mu2, alpha2, ...
type Ogden struct {
	Mu    []float64 // moduli μk
	Alpha []float64 // exponents αk
}

// Derivs implements StretchesEnergy
func (o *Ogden) Derivs(Wa *[3]float64, Wab *[3][3]float64, λ [3]float64) error {
	*Wa = [3]float64{}
	*Wab = [3][3]float64{}
	for k, μ := range o.Mu {
		α := o.Alpha[k]
		for a := 0; a < 3; a++ {
			la := math.Pow(λ[a], α-2.0)
			Wa[a] += μ * la * λ[a]
			Wab[a][a] += μ * (α - 1.0) * la
		}
	}
	return nil
}

// Params returns the parameters
func (o *Ogden) Params() Params {
	var names []string
	var values []float64
	for k := range o.Mu {
		names = append(names, io.Sf("mu%d", k+1), io.Sf("alpha%d", k+1))
		values = append(values, o.Mu[k], o.Alpha[k])
	}
	prms, _ := MakeParams(names, values)
	return prms
}

// WithParams returns a new energy with another set of parameters
func (o *Ogden) WithParams(prms Params) (StretchesEnergy, error) {
	var res Ogden
	for _, p := range prms.list {
		var k int
		var err error
		var isMu bool
		switch {
		case strings.HasPrefix(p.N, "mu"):
			k, err = strconv.Atoi(p.N[2:])
			isMu = true
		case strings.HasPrefix(p.N, "alpha"):
			k, err = strconv.Atoi(p.N[5:])
		default:
			return nil, chk.Err("ogden: parameter named %q is incorrect\n", p.N)
		}
		if err != nil || k < 1 {
			return nil, chk.Err("ogden: parameter named %q is incorrect\n", p.N)
		}
		for len(res.Mu) < k {
			res.Mu = append(res.Mu, 0)
			res.Alpha = append(res.Alpha, 0)
		}
		if isMu {
			res.Mu[k-1] = p.V
		} else {
			res.Alpha[k-1] = p.V
		}
	}
	for k, α := range res.Alpha {
		if α == 0 {
			return nil, chk.Err("ogden: alpha%d must be nonzero", k+1)
		}
	}
	return &res, nil
}
