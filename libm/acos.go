// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's e_acos.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

import "math"

const acosPi = 3.14159265358979311600e+00 // 0x400921FB, 0x54442D18

// Acos returns the arccosine of x, in radians.
//
// Special cases:
//   - Acos(1) = 0
//   - Acos(-1) = π
//   - Acos(x) = NaN for |x| > 1
//   - Acos(NaN) = NaN
func Acos(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	if ix >= 0x3ff00000 { // |x| >= 1
		if (ix-0x3ff00000)|lowWord(x) == 0 {
			if int32(hx) > 0 {
				return 0.0 // acos(1) = 0
			}
			return acosPi + 2.0*pio2Lo // acos(-1) = pi
		}
		return (x - x) / (x - x) // NaN for |x| > 1
	}
	if ix < 0x3fe00000 { // |x| < 0.5
		if ix <= 0x3c600000 { // |x| < 2**-57
			return pio2Hi + pio2Lo
		}
		return pio2Hi - (x - (pio2Lo - x*asinR(x*x)))
	}
	if int32(hx) < 0 { // x <= -0.5
		z := (1.0 + x) * 0.5
		s := math.Sqrt(z)
		w := asinR(z)*s - pio2Lo
		return acosPi - 2.0*(s+w)
	}
	// x >= 0.5
	z := (1.0 - x) * 0.5
	s := math.Sqrt(z)
	df := setLowWord(s, 0)
	c := (z - df*df) / (s + df) // tail of sqrt
	w := asinR(z)*s + c
	return 2.0 * (df + w)
}
