// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements second- and fourth-order tensors in 3D and batches of them
// replicated over integration points and elements
package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// constants
const (
	SQ2by3 = 0.816496580927726032732428024901963797321982493552223376144 // sqrt(2/3)
	MINDET = 1.0e-14                                                    // minimum determinant allowed for Inv
)

// Ten2 is a second order tensor
type Ten2 [3][3]float64

// Ten4 is a fourth order tensor
type Ten4 [3][3][3][3]float64

// Eye returns the second order identity tensor
func Eye() (I Ten2) {
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// Tr returns the trace of a
func Tr(a *Ten2) float64 {
	return a[0][0] + a[1][1] + a[2][2]
}

// Det returns the determinant of a
func Det(a *Ten2) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// Inv computes the inverse of a and returns its determinant
func Inv(ai, a *Ten2) (det float64, err error) {
	det = Det(a)
	if math.Abs(det) < MINDET {
		return 0, chk.Err("cannot compute inverse because determinant is too small: det = %g", det)
	}
	ai[0][0] = (a[1][1]*a[2][2] - a[1][2]*a[2][1]) / det
	ai[0][1] = (a[0][2]*a[2][1] - a[0][1]*a[2][2]) / det
	ai[0][2] = (a[0][1]*a[1][2] - a[0][2]*a[1][1]) / det
	ai[1][0] = (a[1][2]*a[2][0] - a[1][0]*a[2][2]) / det
	ai[1][1] = (a[0][0]*a[2][2] - a[0][2]*a[2][0]) / det
	ai[1][2] = (a[0][2]*a[1][0] - a[0][0]*a[1][2]) / det
	ai[2][0] = (a[1][0]*a[2][1] - a[1][1]*a[2][0]) / det
	ai[2][1] = (a[0][1]*a[2][0] - a[0][0]*a[2][1]) / det
	ai[2][2] = (a[0][0]*a[1][1] - a[0][1]*a[1][0]) / det
	return
}

// Dot returns the single contraction c = a · b
func Dot(a, b *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// DotT returns c = a · bᵗ
func DotT(a, b *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[j][k]
			}
		}
	}
	return
}

// Ddot returns the double contraction a : b
func Ddot(a, b *Ten2) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// Norm returns the Frobenius norm of a
func Norm(a *Ten2) float64 {
	return math.Sqrt(Ddot(a, a))
}

// Transpose returns aᵗ
func Transpose(a *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[j][i]
		}
	}
	return
}

// Sym returns the symmetric part of a
func Sym(a *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = (a[i][j] + a[j][i]) / 2.0
		}
	}
	return
}

// Dev returns the deviatoric part of a
func Dev(a *Ten2) (c Ten2) {
	c = *a
	tr3 := Tr(a) / 3.0
	for i := 0; i < 3; i++ {
		c[i][i] -= tr3
	}
	return
}

// Add computes c := α⋅a + β⋅b
func Add(c *Ten2, α float64, a *Ten2, β float64, b *Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = α*a[i][j] + β*b[i][j]
		}
	}
}

// AddTo computes c += α⋅a
func AddTo(c *Ten2, α float64, a *Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] += α * a[i][j]
		}
	}
}

// Scale returns α⋅a
func Scale(α float64, a *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = α * a[i][j]
		}
	}
	return
}

// fourth order tensors ///////////////////////////////////////////////////////////////////////////

// Dya returns the dyadic product (a ⊗ b)_ijkl = a_ij b_kl
func Dya(a, b *Ten2) (D Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					D[i][j][k][l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return
}

// Cdya returns the symmetric crossed dyadic product
//  (a ⊙ b)_ijkl = (a_ik b_jl + a_il b_jk) / 2
func Cdya(a, b *Ten2) (D Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					D[i][j][k][l] = (a[i][k]*b[j][l] + a[i][l]*b[j][k]) / 2.0
				}
			}
		}
	}
	return
}

// AddDya computes D += α⋅(a ⊗ b)
func AddDya(D *Ten4, α float64, a, b *Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					D[i][j][k][l] += α * a[i][j] * b[k][l]
				}
			}
		}
	}
}

// AddCdya computes D += α⋅(a ⊙ b)
func AddCdya(D *Ten4, α float64, a, b *Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					D[i][j][k][l] += α * (a[i][k]*b[j][l] + a[i][l]*b[j][k]) / 2.0
				}
			}
		}
	}
}

// AddTo4 computes D += α⋅A
func AddTo4(D *Ten4, α float64, A *Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					D[i][j][k][l] += α * A[i][j][k][l]
				}
			}
		}
	}
}

// IsZero4 tells whether all components of D are zero
func IsZero4(D *Ten4) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					if D[i][j][k][l] != 0 {
						return false
					}
				}
			}
		}
	}
	return true
}

// Ddot42 returns c = D : a
func Ddot42(D *Ten4, a *Ten2) (c Ten2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j] += D[i][j][k][l] * a[k][l]
				}
			}
		}
	}
	return
}

// Ddot44 returns C = A : B
func Ddot44(A, B *Ten4) (C Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					for m := 0; m < 3; m++ {
						for n := 0; n < 3; n++ {
							C[i][j][k][l] += A[i][j][m][n] * B[m][n][k][l]
						}
					}
				}
			}
		}
	}
	return
}

// Ddot444 returns D = A : B : C
func Ddot444(A, B, C *Ten4) Ten4 {
	AB := Ddot44(A, B)
	return Ddot44(&AB, C)
}

// MajorTranspose returns Dᵗ with (Dᵗ)_ijkl = D_klij
func MajorTranspose(D *Ten4) (T Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					T[i][j][k][l] = D[k][l][i][j]
				}
			}
		}
	}
	return
}

// SymMinor returns the average of D and its three minor-transposed variants
//  (D_ijkl + D_jikl + D_ijlk + D_jilk) / 4
func SymMinor(D *Ten4) (S Ten4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					S[i][j][k][l] = (D[i][j][k][l] + D[j][i][k][l] + D[i][j][l][k] + D[j][i][l][k]) / 4.0
				}
			}
		}
	}
	return
}

// PushForward returns c_ijkl = F_iA F_jB F_kC F_lD C_ABCD
func PushForward(C *Ten4, F *Ten2) (c Ten4) {
	return transform4(C, F)
}

// PullBack returns C_ABCD = Fi_Ai Fi_Bj Fi_Ck Fi_Dl c_ijkl where Fi = F⁻¹
func PullBack(c *Ten4, F *Ten2) (C Ten4, err error) {
	var Fi Ten2
	_, err = Inv(&Fi, F)
	if err != nil {
		return
	}
	return transform4(c, &Fi), nil
}

// transform4 returns R_ijkl = Q_iA Q_jB Q_kC Q_lD T_ABCD, one index at a time
func transform4(T *Ten4, Q *Ten2) (R Ten4) {
	var tmp Ten4
	for i := 0; i < 3; i++ {
		for B := 0; B < 3; B++ {
			for C := 0; C < 3; C++ {
				for D := 0; D < 3; D++ {
					for A := 0; A < 3; A++ {
						tmp[i][B][C][D] += Q[i][A] * T[A][B][C][D]
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for C := 0; C < 3; C++ {
				for D := 0; D < 3; D++ {
					for B := 0; B < 3; B++ {
						R[i][j][C][D] += Q[j][B] * tmp[i][B][C][D]
					}
				}
			}
		}
	}
	tmp = Ten4{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for D := 0; D < 3; D++ {
					for C := 0; C < 3; C++ {
						tmp[i][j][k][D] += Q[k][C] * R[i][j][C][D]
					}
				}
			}
		}
	}
	R = Ten4{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					for D := 0; D < 3; D++ {
						R[i][j][k][l] += Q[l][D] * tmp[i][j][k][D]
					}
				}
			}
		}
	}
	return
}

// constant tensors ///////////////////////////////////////////////////////////////////////////////

// IdyI returns I ⊗ I
func IdyI() Ten4 {
	I := Eye()
	return Dya(&I, &I)
}

// IsymI returns the symmetric identity I ⊙ I
func IsymI() Ten4 {
	I := Eye()
	return Cdya(&I, &I)
}

// Psd returns the deviatoric projector P = I ⊙ I − (I ⊗ I) / 3
func Psd() (P Ten4) {
	I := Eye()
	P = Cdya(&I, &I)
	AddDya(&P, -1.0/3.0, &I, &I)
	return
}

// MaxDiff4 returns max |A_ijkl - B_ijkl|
func MaxDiff4(A, B *Ten4) float64 { return maxdiff4(A, B) }

// MaxAbs4 returns max |D_ijkl|
func MaxAbs4(D *Ten4) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res = math.Max(res, math.Abs(D[i][j][k][l]))
				}
			}
		}
	}
	return
}
