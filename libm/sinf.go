// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import "math"

// Minimax coefficients for sin(x)/x on [-pi/4, pi/4], evaluated in
// float64 and rounded once; |sin(x)/x - s(x)| < 2**-37.5.
const (
	sinfS1 = -0x15555554cbac77p-55 // -0.166666666416265235595
	sinfS2 = 0x111110896efbb2p-59  //  0.0083333293858894631756
	sinfS3 = -0x1a00f9e2cae774p-65 // -0.000198393348360966317347
	sinfS4 = 0x16cd878c3b46a7p-71  //  0.0000027183114939898219064
)

// kernelSinf evaluates the float32 sine polynomial on the reduced range.
func kernelSinf(x float64) float32 {
	z := x * x
	w := z * z
	r := sinfS3 + z*sinfS4
	s := z * x
	return float32((x + s*(sinfS1+z*sinfS2)) + s*w*r)
}

// Sinf returns the sine of x (in radians) for float32.
//
// Special cases:
//   - Sinf(±0) = ±0
//   - Sinf(±Inf) = NaN
//   - Sinf(NaN) = NaN
func Sinf(x float32) float32 {
	ix := math.Float32bits(x) & 0x7fffffff
	if ix <= 0x3f490fda { // |x| <= pi/4
		if ix < 0x39800000 { // |x| < 2**-12, sin(x) = x
			return x
		}
		return kernelSinf(float64(x))
	}
	if ix >= 0x7f800000 { // Inf or NaN
		return x - x
	}
	n, r := remPio2F(x)
	switch n & 3 {
	case 0:
		return kernelSinf(r)
	case 1:
		return kernelCosf(r)
	case 2:
		return kernelSinf(-r)
	default:
		return -kernelCosf(r)
	}
}
