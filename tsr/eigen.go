// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Eigh computes the eigenvalues (ascending) and eigenvectors of the symmetric tensor a
//  λ -- eigenvalues
//  n -- eigenvectors [ncp][nvecs]; i.e. n[i][k] is the i-th component of the k-th vector
func Eigh(a *Ten2) (λ [3]float64, n [3][3]float64, err error) {
	s := mat.NewSymDense(3, []float64{
		a[0][0], (a[0][1] + a[1][0]) / 2.0, (a[0][2] + a[2][0]) / 2.0,
		(a[0][1] + a[1][0]) / 2.0, a[1][1], (a[1][2] + a[2][1]) / 2.0,
		(a[0][2] + a[2][0]) / 2.0, (a[1][2] + a[2][1]) / 2.0, a[2][2],
	})
	var es mat.EigenSym
	if ok := es.Factorize(s, true); !ok {
		err = chk.Err("symmetric eigen-decomposition failed for tensor %v", *a)
		return
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	for k := 0; k < 3; k++ {
		λ[k] = vals[k]
		for i := 0; i < 3; i++ {
			n[i][k] = vecs.At(i, k)
		}
	}
	return
}

// SpectralCompose recreates a tensor from its spectral decomposition
//  λ -- eigenvalues
//  n -- eigenvectors [ncp][nvecs]
func SpectralCompose(λ [3]float64, n *[3][3]float64) (m Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = λ[0]*n[i][0]*n[j][0] + λ[1]*n[i][1]*n[j][1] + λ[2]*n[i][2]*n[j][2]
		}
	}
	return
}

// Eigenbases computes the eigenbases M_k = n_k ⊗ n_k for given eigenvectors
//  n -- eigenvectors [ncp][nvecs]
func Eigenbases(n *[3][3]float64) (M [3]Ten2) {
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				M[k][i][j] = n[i][k] * n[j][k]
			}
		}
	}
	return
}
