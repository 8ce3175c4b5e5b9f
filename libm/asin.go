// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's e_asin.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

import "math"

const (
	pio2Hi = 1.57079632679489655800e+00 // 0x3FF921FB, 0x54442D18
	pio2Lo = 6.12323399573676603587e-17 // 0x3C91A626, 0x33145C07
	pio4Hi = 7.85398163397448278999e-01 // 0x3FE921FB, 0x54442D18
)

// Rational minimax approximation of (asin(x)-x)/x^3 on [0, 0.25],
// shared by Asin and Acos.
const (
	asinP0 = 1.66666666666666657415e-01  // 0x3FC55555, 0x55555555
	asinP1 = -3.25565818622400915405e-01 // 0xBFD4D612, 0x03EB6F7D
	asinP2 = 2.01212532134862925881e-01  // 0x3FC9C155, 0x0E884455
	asinP3 = -4.00555345006794114027e-02 // 0xBFA48228, 0xB5688F3B
	asinP4 = 7.91534994289814532176e-04  // 0x3F49EFE0, 0x7501B288
	asinP5 = 3.47933107596021167570e-05  // 0x3F023DE1, 0x0DFDF709
	asinQ1 = -2.40339491173441421878e+00 // 0xC0033A27, 0x1C8A2D4B
	asinQ2 = 2.02094576023350569471e+00  // 0x40002AE5, 0x9C598AC8
	asinQ3 = -6.88283971605453293030e-01 // 0xBFE6066C, 0x1B8D0159
	asinQ4 = 7.70381505559019352791e-02  // 0x3FB3B8C5, 0xB12E9282
)

// asinR evaluates the shared rational approximation at t = x*x (or the
// reflected (1-|x|)/2).
func asinR(t float64) float64 {
	p := t * (asinP0 + t*(asinP1+t*(asinP2+t*(asinP3+t*(asinP4+t*asinP5)))))
	q := 1.0 + t*(asinQ1+t*(asinQ2+t*(asinQ3+t*asinQ4)))
	return p / q
}

// Asin returns the arcsine of x, in radians.
//
// Special cases:
//   - Asin(±0) = ±0
//   - Asin(±1) = ±π/2
//   - Asin(x) = NaN for |x| > 1
//   - Asin(NaN) = NaN
func Asin(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	if ix >= 0x3ff00000 { // |x| >= 1
		if (ix-0x3ff00000)|lowWord(x) == 0 {
			return x*pio2Hi + x*pio2Lo // asin(±1) = ±pi/2, inexact
		}
		return (x - x) / (x - x) // NaN for |x| > 1
	}
	if ix < 0x3fe00000 { // |x| < 0.5
		if ix < 0x3e400000 { // |x| < 2**-27
			if huge+x > 1.0 {
				return x // inexact for x != 0
			}
		}
		return x + x*asinR(x*x)
	}
	// 0.5 <= |x| < 1: reflect through asin(x) = pi/2 - 2*asin(sqrt((1-x)/2)).
	t := (1.0 - fabs(x)) * 0.5
	s := math.Sqrt(t)
	if ix >= 0x3fef3333 { // |x| > 0.975
		t = pio2Hi - (2.0*(s+s*asinR(t)) - pio2Lo)
	} else {
		w := setLowWord(s, 0)
		c := (t - w*w) / (s + w) // tail of sqrt
		p := 2.0*s*asinR(t) - (pio2Lo - 2.0*c)
		q := pio4Hi - 2.0*w
		t = pio4Hi - (p - q)
	}
	if int32(hx) > 0 {
		return t
	}
	return -t
}
