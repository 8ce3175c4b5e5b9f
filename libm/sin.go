// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's s_sin.c and k_sin.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

// Minimax coefficients for sin(x) ~ x + x^3*(S1 + x^2*(S2 + ...)) on
// [-pi/4, pi/4], |error| < 2**-57.56.
const (
	sinS1 = -1.66666666666666324348e-01 // 0xBFC55555, 0x55555549
	sinS2 = 8.33333333332248946124e-03  // 0x3F811111, 0x1110F8A6
	sinS3 = -1.98412698298579493134e-04 // 0xBF2A01A0, 0x19C161D5
	sinS4 = 2.75573137070700676789e-06  // 0x3EC71DE3, 0x57B1FE7D
	sinS5 = -2.50507602534068634195e-08 // 0xBE5AE5E6, 0x8A2B9CEB
	sinS6 = 1.58969099521155010221e-10  // 0x3DE5D93A, 0x5ACFD57C
)

// kernelSin evaluates sin on the reduced range. x is the remainder head,
// y its tail; iy is 0 when the tail is known to be zero (direct small
// argument) and 1 after a reduction. The tail enters through the identity
// sin(x+y) ~ sin(x) + y*cos(x), folded into the polynomial so no
// cancellation occurs.
func kernelSin(x, y float64, iy int) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix < 0x3e400000 { // |x| < 2**-27, sin(x) = x to full precision
		if int(x) == 0 {
			return x
		}
	}
	z := x * x
	v := z * x
	r := sinS2 + z*(sinS3+z*(sinS4+z*(sinS5+z*sinS6)))
	if iy == 0 {
		return x + v*(sinS1+z*r)
	}
	return x - ((z*(0.5*y-v*r) - y) - v*sinS1)
}

// Sin returns the sine of x (in radians).
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix <= 0x3fe921fb { // |x| <= pi/4
		return kernelSin(x, 0, 0)
	}
	if ix >= 0x7ff00000 { // Inf or NaN
		return x - x
	}
	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelSin(y0, y1, 1)
	case 1:
		return kernelCos(y0, y1)
	case 2:
		return -kernelSin(y0, y1, 1)
	default:
		return -kernelCos(y0, y1)
	}
}

// Sincos returns Sin(x) and Cos(x) from a single argument reduction.
//
// Special cases:
//   - Sincos(±0) = ±0, 1
//   - Sincos(±Inf) = NaN, NaN
//   - Sincos(NaN) = NaN, NaN
func Sincos(x float64) (sin, cos float64) {
	ix := highWord(x) & 0x7fffffff
	if ix <= 0x3fe921fb {
		return kernelSin(x, 0, 0), kernelCos(x, 0)
	}
	if ix >= 0x7ff00000 {
		nan := x - x
		return nan, nan
	}
	n, y0, y1 := remPio2(x)
	s := kernelSin(y0, y1, 1)
	c := kernelCos(y0, y1)
	switch n & 3 {
	case 0:
		return s, c
	case 1:
		return c, -s
	case 2:
		return -s, -c
	default:
		return -c, s
	}
}
