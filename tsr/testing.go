// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// CheckTen2 checks that two second order tensors are equal within tol
func CheckTen2(tst *testing.T, msg string, tol float64, res, correct *Ten2) {
	var maxdiff float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			maxdiff = math.Max(maxdiff, math.Abs(res[i][j]-correct[i][j]))
		}
	}
	if maxdiff > tol || math.IsNaN(maxdiff) {
		tst.Errorf("%s failed with max difference = %g\n", msg, maxdiff)
	}
}

// CheckTen4 checks that two fourth order tensors are equal within tol
func CheckTen4(tst *testing.T, msg string, tol float64, res, correct *Ten4) {
	maxdiff := maxdiff4(res, correct)
	if maxdiff > tol || math.IsNaN(maxdiff) {
		tst.Errorf("%s failed with max difference = %g\n", msg, maxdiff)
	}
}

// CheckMajorSym checks D_ijkl == D_klij
func CheckMajorSym(tst *testing.T, msg string, tol float64, D *Ten4, verbose bool) {
	T := MajorTranspose(D)
	maxdiff := maxdiff4(D, &T)
	if verbose {
		io.Pforan("%s: major symmetry: max difference = %g\n", msg, maxdiff)
	}
	if maxdiff > tol || math.IsNaN(maxdiff) {
		tst.Errorf("%s: major symmetry failed with max difference = %g\n", msg, maxdiff)
	}
}

// CheckMinorSym checks D_ijkl == D_jikl == D_ijlk
func CheckMinorSym(tst *testing.T, msg string, tol float64, D *Ten4, verbose bool) {
	var maxdiff float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					maxdiff = math.Max(maxdiff, math.Abs(D[i][j][k][l]-D[j][i][k][l]))
					maxdiff = math.Max(maxdiff, math.Abs(D[i][j][k][l]-D[i][j][l][k]))
				}
			}
		}
	}
	if verbose {
		io.Pforan("%s: minor symmetry: max difference = %g\n", msg, maxdiff)
	}
	if maxdiff > tol || math.IsNaN(maxdiff) {
		tst.Errorf("%s: minor symmetry failed with max difference = %g\n", msg, maxdiff)
	}
}

// CheckFinite checks that D has no NaN or Inf components
func CheckFinite(tst *testing.T, msg string, D *Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					v := D[i][j][k][l]
					if math.IsNaN(v) || math.IsInf(v, 0) {
						tst.Errorf("%s: component [%d][%d][%d][%d] is not finite: %v\n", msg, i, j, k, l, v)
						return
					}
				}
			}
		}
	}
}

func maxdiff4(A, B *Ten4) (maxdiff float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					maxdiff = math.Max(maxdiff, math.Abs(A[i][j][k][l]-B[i][j][k][l]))
				}
			}
		}
	}
	return
}
