// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shapes
func init() {
	factory["tet4"] = newTet("tet4", 4, 10, Tet4)
	factory["tet10"] = newTet("tet10", 10, 24, Tet10)
}

func newTet(name string, nverts, vtk int, f ShpFunc) *Shape {
	o := &Shape{Type: name, Func: f, Gndim: 3, Nverts: nverts, VtkCode: vtk}
	o.NatCoords = [][]float64{
		{0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5, 0},
		{0, 0, 1, 0, 0, 0.5, 0.5, 0, 0, 0.5},
		{0, 0, 0, 1, 0, 0, 0, 0.5, 0.5, 0.5},
	}
	for i := range o.NatCoords {
		o.NatCoords[i] = o.NatCoords[i][:nverts]
	}
	o.init_scratchpad()
	return o
}

// volume coordinates and their derivatives w.r.t natural coordinates
func tetVolCoords(r []float64) (L [4]float64, dL [4][3]float64) {
	L = [4]float64{1.0 - r[0] - r[1] - r[2], r[0], r[1], r[2]}
	dL = [4][3]float64{{-1, -1, -1}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	return
}

// Tet4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//            t
//            |
//            3
//           /|`.
//           ||  `,
//          / |    ',
//          | |      \
//         /  |       `.
//         |  |         `,
//        /   |           `,
//        |   |             \
//       /    |              `.
//       |    0 ,             ',
//      /   ,'    - ,           `,
//      |  ,'          `- ,       `.
//      |,'                `- ,     \
//      1 - - - - - - - - - - - - - 2 -- s
//     /
//    r
func Tet4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	L, dL := tetVolCoords(r)
	copy(S, L[:])
	if !derivs {
		return
	}
	for m := 0; m < 4; m++ {
		copy(dSdR[m], dL[m][:])
	}
}

// edges of tet10: local vertices of mid nodes 4 to 9
var tet10edges = [6][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}}

// Tet10 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tet10
// elements at {r,s,t} natural coordinates. Nodes 4 to 9 are at the middle of edges
// 0-1, 1-2, 2-0, 0-3, 1-3 and 2-3
func Tet10(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	L, dL := tetVolCoords(r)
	for m := 0; m < 4; m++ {
		S[m] = L[m] * (2.0*L[m] - 1.0)
	}
	for k, e := range tet10edges {
		S[4+k] = 4.0 * L[e[0]] * L[e[1]]
	}
	if !derivs {
		return
	}
	for j := 0; j < 3; j++ {
		for m := 0; m < 4; m++ {
			dSdR[m][j] = (4.0*L[m] - 1.0) * dL[m][j]
		}
		for k, e := range tet10edges {
			a, b := e[0], e[1]
			dSdR[4+k][j] = 4.0 * (L[a]*dL[b][j] + L[b]*dL[a][j])
		}
	}
}
