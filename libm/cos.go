// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's s_cos.c and k_cos.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

// Minimax coefficients for cos(x) ~ 1 - x^2/2 + x^4*(C1 + x^2*(C2 + ...))
// on [-pi/4, pi/4], |error| < 2**-58.
const (
	cosC1 = 4.16666666666666019037e-02  // 0x3FA55555, 0x5555554C
	cosC2 = -1.38888888888741095749e-03 // 0xBF56C16C, 0x16C15177
	cosC3 = 2.48015872894767294178e-05  // 0x3EFA01A0, 0x19CB1590
	cosC4 = -2.75573143513906633035e-07 // 0xBE927E4F, 0x809C52AD
	cosC5 = 2.08757232129817482790e-09  // 0x3E21EE9E, 0xBDB4B1C4
	cosC6 = -1.13596475577881948265e-11 // 0xBDA8FAE9, 0xBE8838D4
)

// kernelCos evaluates cos on the reduced range with remainder head x and
// tail y. For |x| beyond 0.3 the constant 1 - x*x/2 loses leading bits to
// cancellation, so a quadrant-dependent exactly-representable piece qx is
// peeled off first and the subtraction rearranged around it.
func kernelCos(x, y float64) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix < 0x3e400000 { // |x| < 2**-27, cos(x) = 1 to full precision
		if int(x) == 0 {
			return 1.0
		}
	}
	z := x * x
	r := z * (cosC1 + z*(cosC2+z*(cosC3+z*(cosC4+z*(cosC5+z*cosC6)))))
	if ix < 0x3fd33333 { // |x| < 0.3
		return 1.0 - (0.5*z - (z*r - x*y))
	}
	var qx float64
	if ix > 0x3fe90000 { // |x| > 0.78125
		qx = 0.28125
	} else {
		// qx = |x|/4, exactly representable with an empty low word.
		qx = setLowWord(setHighWord(0, ix-0x00200000), 0)
	}
	hz := 0.5*z - qx
	a := 1.0 - qx
	return a - (hz - (z*r - x*y))
}

// Cos returns the cosine of x (in radians).
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos(x float64) float64 {
	ix := highWord(x) & 0x7fffffff
	if ix <= 0x3fe921fb { // |x| <= pi/4
		return kernelCos(x, 0)
	}
	if ix >= 0x7ff00000 { // Inf or NaN
		return x - x
	}
	n, y0, y1 := remPio2(x)
	switch n & 3 {
	case 0:
		return kernelCos(y0, y1)
	case 1:
		return -kernelSin(y0, y1, 1)
	case 2:
		return -kernelCos(y0, y1)
	default:
		return kernelSin(y0, y1, 1)
	}
}
