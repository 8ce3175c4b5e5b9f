// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's e_atan2.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

import "math"

const (
	atan2Pi   = 3.14159265358979311600e+00 // 0x400921FB, 0x54442D18
	atan2PiLo = 1.22464679914735317720e-16 // 0x3CA1A626, 0x33145C07
	atan2PiO2 = 1.57079632679489655800e+00 // 0x3FF921FB, 0x54442D18
	atan2PiO4 = 7.85398163397448278999e-01 // 0x3FE921FB, 0x54442D18
)

// Atan2 returns the arctangent of y/x, using the signs of both arguments
// to determine the quadrant of the result.
//
// Special cases (in order):
//   - Atan2(y, NaN) = NaN; Atan2(NaN, x) = NaN
//   - Atan2(±0, x>=0) = ±0; Atan2(±0, x<0) = ±π
//   - Atan2(y>0, 0) = +π/2; Atan2(y<0, 0) = -π/2
//   - Atan2(±Inf, +Inf) = ±π/4; Atan2(±Inf, -Inf) = ±3π/4
//   - Atan2(y, +Inf) = ±0; Atan2(y>0, -Inf) = π; Atan2(y<0, -Inf) = -π
//   - Atan2(±Inf, x) = ±π/2 for finite x
func Atan2(y, x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	lx := lowWord(x)
	hy := highWord(y)
	iy := hy & 0x7fffffff
	ly := lowWord(y)
	if isNaNWords(ix, lx) || isNaNWords(iy, ly) {
		return x + y
	}
	if hx-0x3ff00000|lx == 0 { // x = 1.0, the common atan(y) case
		return Atan(y)
	}
	m := hy>>31&1 | hx>>30&2 // 2*sign(x) + sign(y)

	if iy|ly == 0 { // y = 0
		switch m {
		case 0, 1:
			return y // atan(±0, +anything) = ±0
		case 2:
			return atan2Pi + tiny // atan(+0, -anything) = pi
		default:
			return -atan2Pi - tiny // atan(-0, -anything) = -pi
		}
	}
	if ix|lx == 0 { // x = 0
		if int32(hy) < 0 {
			return -atan2PiO2 - tiny
		}
		return atan2PiO2 + tiny
	}
	if ix == 0x7ff00000 { // x is ±Inf
		if iy == 0x7ff00000 {
			switch m {
			case 0:
				return atan2PiO4 + tiny // atan(+Inf, +Inf)
			case 1:
				return -atan2PiO4 - tiny // atan(-Inf, +Inf)
			case 2:
				return 3.0*atan2PiO4 + tiny // atan(+Inf, -Inf)
			default:
				return -3.0*atan2PiO4 - tiny // atan(-Inf, -Inf)
			}
		}
		switch m {
		case 0:
			return 0.0 // atan(+..., +Inf)
		case 1:
			return math.Copysign(0, -1) // atan(-..., +Inf)
		case 2:
			return atan2Pi + tiny // atan(+..., -Inf)
		default:
			return -atan2Pi - tiny // atan(-..., -Inf)
		}
	}
	if iy == 0x7ff00000 { // y is ±Inf, x finite
		if int32(hy) < 0 {
			return -atan2PiO2 - tiny
		}
		return atan2PiO2 + tiny
	}

	var z float64
	k := (int32(iy) - int32(ix)) >> 20 // compare exponents
	switch {
	case k > 60: // |y/x| > 2**60, result saturates to ±pi/2
		z = atan2PiO2 + 0.5*atan2PiLo
	case int32(hx) < 0 && k < -60: // 0 > |y|/x > -2**-60
		z = 0.0
	default:
		z = Atan(fabs(y / x))
	}
	switch m {
	case 0:
		return z // atan(+, +)
	case 1:
		return -z // atan(-, +)
	case 2:
		return atan2Pi - (z - atan2PiLo) // atan(+, -)
	default:
		return (z - atan2PiLo) - atan2Pi // atan(-, -)
	}
}

// isNaNWords reports whether the (|hi|, lo) word pair encodes a NaN.
func isNaNWords(ihi, lo uint32) bool {
	return ihi > 0x7ff00000 || (ihi == 0x7ff00000 && lo != 0)
}
