// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's s_tan.c and k_tan.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

// Odd minimax coefficients for tan(x) on [0, 0.67434],
// |error| < 2**-59.2. Split into even/odd indexed halves during
// evaluation to shorten the dependency chain.
var tanT = [13]float64{
	3.33333333333334091986e-01,  // 0x3FD55555, 0x55555563
	1.33333333333201242699e-01,  // 0x3FC11111, 0x1110FE7A
	5.39682539762260521377e-02,  // 0x3FABA1BA, 0x1BB341FE
	2.18694882948595424599e-02,  // 0x3F9664F4, 0x8406D637
	8.86323982359930005737e-03,  // 0x3F8226E3, 0xE96E8493
	3.59207910759131235356e-03,  // 0x3F6D6D22, 0xC9560328
	1.45620945432529025516e-03,  // 0x3F57DBC8, 0xFEE08315
	5.88041240820264096874e-04,  // 0x3F4344D8, 0xF2F26501
	2.46463134818469906812e-04,  // 0x3F3026F7, 0x1A8D1068
	7.81794442939557092300e-05,  // 0x3F147E88, 0xA03792A6
	7.14072491382608190305e-05,  // 0x3F12B80F, 0x32F0A7E9
	-1.85586374855275456654e-05, // 0xBEF375CB, 0xDB605373
	2.59073051863633712884e-05,  // 0x3EFB2A70, 0x74BF7AD4
}

const (
	tanPio4  = 7.85398163397448278999e-01 // 0x3FE921FB, 0x54442D18
	tanPio4L = 3.06161699786838301793e-17 // 0x3C81A626, 0x33145C07
)

// kernelTan evaluates tan (iy == 1) or -1/tan (iy == -1) on the reduced
// range, with remainder head x and tail y. Inputs beyond ~pi/4*0.86 are
// reflected through pi/4 - x first. The -1/tan branch carries out the
// reciprocal in split precision, zeroing low mantissa bits so the
// correction terms are formed from exact differences.
func kernelTan(x, y float64, iy int) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	if ix < 0x3e300000 { // |x| < 2**-28
		if int(x) == 0 { // generate inexact
			if ix|lowWord(x) == 0 && iy == -1 {
				return 1.0 / fabs(x) // tan(0) requested as cotangent
			}
			if iy == 1 {
				return x
			}
			// -1/(x+y) carefully, x tiny but nonzero
			w := x + y
			z := setLowWord(w, 0)
			v := y - (z - x)
			a := -1.0 / w
			t := setLowWord(a, 0)
			s := 1.0 + t*z
			return t + a*(s+t*v)
		}
	}
	if ix >= 0x3fe59428 { // |x| >= 0.6744
		if int32(hx) < 0 {
			x = -x
			y = -y
		}
		z := tanPio4 - x
		w := tanPio4L - y
		x = z + w
		y = 0.0
	}
	z := x * x
	w := z * z
	// Break x^5*(T[1]+x^2*T[2]+...) into
	// x^5*(T[1]+x^4*T[3]+...) + x^7*(T[2]+x^4*T[4]+...).
	r := tanT[1] + w*(tanT[3]+w*(tanT[5]+w*(tanT[7]+w*(tanT[9]+w*tanT[11]))))
	v := z * (tanT[2] + w*(tanT[4]+w*(tanT[6]+w*(tanT[8]+w*(tanT[10]+w*tanT[12])))))
	s := z * x
	r = y + z*(s*(r+v)+y)
	r += tanT[0] * s
	w = x + r
	if ix >= 0x3fe59428 {
		v := float64(iy)
		return float64(1-int(hx>>30)&2) * (v - 2.0*(x-(w*w/(w+v)-r)))
	}
	if iy == 1 {
		return w
	}
	// Compute -1.0/(x+r) accurately.
	z = setLowWord(w, 0)
	v = r - (z - x) // z+v = r+x
	a := -1.0 / w
	t := setLowWord(a, 0)
	s = 1.0 + t*z
	return t + a*(s+t*v)
}

// Tan returns the tangent of x (in radians).
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix <= 0x3fe921fb { // |x| <= pi/4
		return kernelTan(x, 0, 1)
	}
	if ix >= 0x7ff00000 { // Inf or NaN
		return x - x
	}
	// tan(x) = tan(x - n*pi/2) for even n, -1/tan(...) for odd n.
	n, y0, y1 := remPio2(x)
	return kernelTan(y0, y1, 1-(n&1)<<1)
}
