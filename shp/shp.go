// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"

	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "tet4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "tet4" => gnd == 3
	Nverts    int         // number of vertices in cell; e.g. "tet10" => 10
	VtkCode   int         // VTK code
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR tsr.Ten2    // derivatives of real coordinates w.r.t natural coordinates
	DRdx tsr.Ten2    // dRdx == inverse(dxdR)
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:      o.Type,
		Func:      o.Func,
		Gndim:     o.Gndim,
		Nverts:    o.Nverts,
		VtkCode:   o.VtkCode,
		NatCoords: o.NatCoords,
	}
	p.init_scratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}
	if len(x) != o.Gndim {
		return chk.Err("%s: coordinates matrix must have %d rows. %d is invalid", o.Type, o.Gndim, len(x))
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = tsr.Inv(&o.DRdx, &o.DxdR)
	if err != nil {
		return chk.Err("%s: cannot invert dxdR:\n%v", o.Type, err)
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}

// constants
const (
	INVMAP_TOL = 1.0e-10 // tolerance for inverse mapping function
	INVMAP_NIT = 25      // maximum number of iterations for inverse mapping
)

// InvMap computes the natural coordinates r, given the real coordinate y
//  Input:
//   y[ndim]         -- are the 'real' coordinates of a point
//   x[ndim][nverts] -- coordinates matrix of solid element
//  Output:
//   r[3] -- are the natural coordinates of given point
func (o *Shape) InvMap(r, y []float64, x [][]float64) (err error) {
	if len(x) != o.Gndim {
		return chk.Err("%s: coordinates matrix must have %d rows. %d is invalid", o.Type, o.Gndim, len(x))
	}
	e := make([]float64, o.Gndim)  // residual
	δr := make([]float64, o.Gndim) // corrector
	r[0], r[1], r[2] = 0, 0, 0     // first trial
	for it := 0; it < INVMAP_NIT; it++ {

		// dRdx at trial point
		if err = o.CalcAtIp(x, r, true); err != nil {
			return
		}

		// residual: e = y - x * S
		for i := 0; i < o.Gndim; i++ {
			e[i] = y[i]
			for n := 0; n < o.Nverts; n++ {
				e[i] -= x[i][n] * o.S[n]
			}
		}

		// corrector: dR = dRdx * e
		δRnorm := 0.0
		for i := 0; i < o.Gndim; i++ {
			δr[i] = 0.0
			for j := 0; j < o.Gndim; j++ {
				δr[i] += o.DRdx[i][j] * e[j]
			}
			r[i] += δr[i]
			δRnorm += δr[i] * δr[i]
		}
		if math.Sqrt(δRnorm) < INVMAP_TOL {
			return
		}
	}
	return chk.Err("%s: inverse mapping did not converge after %d iterations", o.Type, INVMAP_NIT)
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
}
