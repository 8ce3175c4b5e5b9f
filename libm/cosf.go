// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import "math"

// Minimax coefficients for cos(x) on [-pi/4, pi/4], evaluated in float64
// and rounded once; |cos(x) - c(x)| < 2**-34.1.
const (
	cosfC0 = -0x1ffffffd0c5e81p-54 // -0.499999997251031003120
	cosfC1 = 0x155553e1053a42p-57  //  0.0416666233237390631894
	cosfC2 = -0x16c087e80f1e27p-62 // -0.00138867637746099294692
	cosfC3 = 0x199342e0ee5069p-68  //  0.0000243904487962774090654
)

// kernelCosf evaluates the float32 cosine polynomial on the reduced range.
func kernelCosf(x float64) float32 {
	z := x * x
	w := z * z
	r := cosfC2 + z*cosfC3
	return float32(((1.0 + z*cosfC0) + w*cosfC1) + (w*z)*r)
}

// Cosf returns the cosine of x (in radians) for float32.
//
// Special cases:
//   - Cosf(±Inf) = NaN
//   - Cosf(NaN) = NaN
func Cosf(x float32) float32 {
	ix := math.Float32bits(x) & 0x7fffffff
	if ix <= 0x3f490fda { // |x| <= pi/4
		if ix < 0x39800000 { // |x| < 2**-12, cos(x) = 1
			return 1
		}
		return kernelCosf(float64(x))
	}
	if ix >= 0x7f800000 { // Inf or NaN
		return x - x
	}
	n, r := remPio2F(x)
	switch n & 3 {
	case 0:
		return kernelCosf(r)
	case 1:
		return kernelSinf(-r)
	case 2:
		return -kernelCosf(r)
	default:
		return kernelSinf(r)
	}
}
