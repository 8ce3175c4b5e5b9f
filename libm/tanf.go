// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import "math"

// Minimax coefficients for tan(x)/x on [-pi/4, pi/4], evaluated in
// float64 and rounded once; |tan(x)/x - t(x)| < 2**-25.5.
var tanfT = [6]float64{
	0x15554d3418c99fp-54, // 0.333331395030791399758
	0x1112fd38999f72p-55, // 0.133392002712976742718
	0x1b54c91d865afep-57, // 0.0533812378445670393523
	0x191df3908c33cep-58, // 0.0245283181166547278873
	0x185dadfcecf44ep-61, // 0.00297435743359967304927
	0x1362b9bf971bcdp-59, // 0.00946564784943673166728
}

// kernelTanf evaluates the float32 tangent polynomial on the reduced
// range; odd selects the -1/tan branch for odd quadrant counts.
func kernelTanf(x float64, odd bool) float32 {
	z := x * x
	r := tanfT[4] + z*tanfT[5]
	t := tanfT[2] + z*tanfT[3]
	w := z * z
	s := z * x
	u := tanfT[0] + z*tanfT[1]
	r = (x + s*u) + (s*w)*(t+w*r)
	if odd {
		return float32(-1.0 / r)
	}
	return float32(r)
}

// Tanf returns the tangent of x (in radians) for float32.
//
// Special cases:
//   - Tanf(±0) = ±0
//   - Tanf(±Inf) = NaN
//   - Tanf(NaN) = NaN
func Tanf(x float32) float32 {
	ix := math.Float32bits(x) & 0x7fffffff
	if ix <= 0x3f490fda { // |x| <= pi/4
		if ix < 0x39800000 { // |x| < 2**-12, tan(x) = x
			return x
		}
		return kernelTanf(float64(x), false)
	}
	if ix >= 0x7f800000 { // Inf or NaN
		return x - x
	}
	n, r := remPio2F(x)
	return kernelTanf(r, n&1 == 1)
}
