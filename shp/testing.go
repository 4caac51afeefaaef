// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	rTmp := make([]float64, len(r))
	sTmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi := num.DerivCen5(r[i], 1e-3, func(t float64) float64 {
				copy(rTmp, r)
				rTmp[i] = t
				shape.Func(sTmp, nil, rTmp, false)
				return sTmp[n]
			})
			if verbose {
				io.Pfgrey2("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s: dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures at the real coordinates of r
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, r []float64, tol float64, verbose bool) {

	// real coordinates
	x := shape.IpRealCoords(xmat, r)

	// analytical
	if err := shape.CalcAtIp(xmat, r, true); err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := make([][]float64, shape.Nverts)
	for n := range G {
		G[n] = append([]float64{}, shape.G[n]...)
	}

	// numerical
	xTmp := make([]float64, len(x))
	rTmp := make([]float64, 3)
	sTmp := make([]float64, shape.Nverts)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			var err error
			dSnDxi := num.DerivCen5(x[i], 1e-3, func(t float64) float64 {
				copy(xTmp, x)
				xTmp[i] = t
				if e := shape.InvMap(rTmp, xTmp, xmat); e != nil {
					err = e
					return 0
				}
				shape.Func(sTmp, nil, rTmp, false)
				return sTmp[n]
			})
			if err != nil {
				tst.Errorf("InvMap failed:\n%v", err)
				return
			}
			if verbose {
				io.Pfgrey2("  dS%dDx%d @ %5.2f = %v (num: %v)\n", n, i, x, G[n][i], dSnDxi)
			}
			if math.Abs(G[n][i]-dSnDxi) > tol {
				tst.Errorf("%s: dS%dDx%d failed with err = %g\n", shape.Type, n, i, math.Abs(G[n][i]-dSnDxi))
				return
			}
		}
	}
}
