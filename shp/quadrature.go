// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "github.com/cpmech/gosl/chk"

// Ipoint holds the natural coordinates and the weight of an integration point: {r, s, t, w}
type Ipoint []float64

// Tetrahedron returns the integration points of tetrahedra
//  order -- polynomial order integrated exactly; 1, 2 or 3
//  Note: weights sum to 1/6, the volume of the reference tetrahedron
func Tetrahedron(order int) (ips []Ipoint, err error) {
	switch order {
	case 1:
		c := 1.0 / 4.0
		ips = []Ipoint{{c, c, c, 1}}
	case 2:
		a, b := 0.58541020, 0.13819660
		ips = []Ipoint{
			{b, b, b, 0.25},
			{a, b, b, 0.25},
			{b, a, b, 0.25},
			{b, b, a, 0.25},
		}
	case 3:
		a, b, c := 1.0/6.0, 1.0/2.0, 1.0/4.0
		ips = []Ipoint{
			{c, c, c, -4.0 / 5.0},
			{a, a, a, 9.0 / 20.0},
			{b, a, a, 9.0 / 20.0},
			{a, b, a, 9.0 / 20.0},
			{a, a, b, 9.0 / 20.0},
		}
	default:
		return nil, chk.Err("tetrahedron quadrature of order %d is not available", order)
	}
	for _, ip := range ips {
		ip[3] /= 6.0
	}
	return
}

// ipsfactory holds the quadrature rules of each shape
var ipsfactory = map[string]func(order int) ([]Ipoint, error){
	"tet4":  Tetrahedron,
	"tet10": Tetrahedron,
}

// GetIps returns the integration points of a shape
func GetIps(geoType string, order int) ([]Ipoint, error) {
	f, ok := ipsfactory[geoType]
	if !ok {
		return nil, chk.Err("cannot find integration points for shape %q", geoType)
	}
	return f(order)
}
