// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
)

// Mmatch computes M=q/p and qy0 from c and φ corresponding to the strength that would
// be modelled by the Mohr-Coulomb model matching one of the following cones:
//  typ == 0 : compression cone (outer)
//      == 1 : extension cone (inner)
//      == 2 : plane-strain
func Mmatch(c, φ float64, typ int) (M, qy0 float64, err error) {
	φr := φ * math.Pi / 180.0
	si := math.Sin(φr)
	co := math.Cos(φr)
	var ξ float64
	switch typ {
	case 0:
		M = 6.0 * si / (3.0 - si)
		ξ = 6.0 * co / (3.0 - si)
	case 1:
		M = 6.0 * si / (3.0 + si)
		ξ = 6.0 * co / (3.0 + si)
	case 2:
		t := si / co
		d := math.Sqrt(3.0 + 4.0*t*t)
		M = 3.0 * t / d
		ξ = 3.0 / d
	default:
		return 0, 0, chk.Err("typ=%d is invalid", typ)
	}
	qy0 = ξ * c
	return
}

// StressInvs computes the mean pressure p = -tr(σ)/3 and the deviatoric stress q = √(3/2) |dev(σ)|
func StressInvs(σ *tsr.Ten2) (p, q float64) {
	s := tsr.Dev(σ)
	return -tsr.Tr(σ) / 3.0, math.Sqrt(1.5) * tsr.Norm(&s)
}

// StrainInvs computes the volumetric strain εv = tr(ε) and the deviatoric strain εd = √(2/3) |dev(ε)|
//  e   -- dev(ε)
//  eno -- |dev(ε)|
func StrainInvs(ε *tsr.Ten2) (e tsr.Ten2, eno, εv, εd float64) {
	e = tsr.Dev(ε)
	eno = tsr.Norm(&e)
	return e, eno, tsr.Tr(ε), tsr.SQ2by3 * eno
}
