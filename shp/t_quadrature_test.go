// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// integral of r^a s^b t^c over the reference tetrahedron: a! b! c! / (a+b+c+3)!
func monomialIntegral(a, b, c int) float64 {
	fact := func(n int) float64 {
		res := 1.0
		for i := 2; i <= n; i++ {
			res *= float64(i)
		}
		return res
	}
	return fact(a) * fact(b) * fact(c) / fact(a+b+c+3)
}

func Test_quadrature01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quadrature01")

	tols := []float64{1e-15, 1e-8, 1e-15}
	nips := []int{1, 4, 5}
	for order := 1; order <= 3; order++ {
		ips, err := Tetrahedron(order)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Int(tst, io.Sf("order %d: number of points", order), len(ips), nips[order-1])

		// monomials up to order
		for a := 0; a <= order; a++ {
			for b := 0; a+b <= order; b++ {
				for c := 0; a+b+c <= order; c++ {
					res := 0.0
					for _, ip := range ips {
						res += math.Pow(ip[0], float64(a)) * math.Pow(ip[1], float64(b)) * math.Pow(ip[2], float64(c)) * ip[3]
					}
					chk.Float64(tst, io.Sf("order %d: ∫ r^%d s^%d t^%d", order, a, b, c), tols[order-1], res, monomialIntegral(a, b, c))
				}
			}
		}
	}

	// errors
	for _, order := range []int{0, 4} {
		if _, err := Tetrahedron(order); err == nil {
			tst.Errorf("Tetrahedron should have failed with order %d\n", order)
		}
	}
	if _, err := GetIps("hex8", 2); err == nil {
		tst.Errorf("GetIps should have failed with an unknown shape\n")
	}
	ips, _ := GetIps("tet10", 2)
	chk.Int(tst, "tet10: number of points", len(ips), 4)
}
