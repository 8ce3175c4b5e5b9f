// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's s_atan.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

// Head/tail pairs of atan at the reduction anchors 0.5, 1, 1.5 and +Inf.
var (
	atanHi = [4]float64{
		4.63647609000806093515e-01, // atan(0.5)hi 0x3FDDAC67, 0x0561BB4F
		7.85398163397448278999e-01, // atan(1.0)hi 0x3FE921FB, 0x54442D18
		9.82793723247329054082e-01, // atan(1.5)hi 0x3FEF730B, 0xD281F69B
		1.57079632679489655800e+00, // atan(inf)hi 0x3FF921FB, 0x54442D18
	}
	atanLo = [4]float64{
		2.26987774529616870924e-17, // atan(0.5)lo 0x3C7A2B7F, 0x222F65E2
		3.06161699786838301793e-17, // atan(1.0)lo 0x3C81A626, 0x33145C07
		1.39033110312309984516e-17, // atan(1.5)lo 0x3C700788, 0x7AF0CBBD
		6.12323399573676603587e-17, // atan(inf)lo 0x3C91A626, 0x33145C07
	}
)

// Minimax coefficients for atan on the reduced interval, split into odd
// and even indexed halves during evaluation.
var atanT = [11]float64{
	3.33333333333329318027e-01,  // 0x3FD55555, 0x5555550D
	-1.99999999998764832476e-01, // 0xBFC99999, 0x9998EBC4
	1.42857142725034663711e-01,  // 0x3FC24924, 0x920083FF
	-1.11111104054623557880e-01, // 0xBFBC71C6, 0xFE231671
	9.09088713343650656196e-02,  // 0x3FB745CD, 0xC54C206E
	-7.69187620504482999495e-02, // 0xBFB3B0F2, 0xAF749A6D
	6.66107313738753120669e-02,  // 0x3FB10D66, 0xA0D03D51
	-5.83357013379057348645e-02, // 0xBFADDE2D, 0x52DEFD9A
	4.97687799461593236017e-02,  // 0x3FA97B4B, 0x24760DEB
	-3.65315727442169155270e-02, // 0xBFA2B444, 0x2C6A6C2F
	1.62858201153657823623e-02,  // 0x3F90AD3A, 0xE322DA11
}

// Atan returns the arctangent of x, in radians.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
func Atan(x float64) float64 {
	hx := highWord(x)
	ix := hx & 0x7fffffff
	if ix >= 0x44100000 { // |x| >= 2**66
		if ix > 0x7ff00000 || (ix == 0x7ff00000 && lowWord(x) != 0) {
			return x + x // NaN
		}
		if int32(hx) > 0 {
			return atanHi[3] + atanLo[3]
		}
		return -atanHi[3] - atanLo[3]
	}
	id := -1
	if ix < 0x3fdc0000 { // |x| < 0.4375
		if ix < 0x3e200000 { // |x| < 2**-29
			if huge+x > 1.0 {
				return x // inexact for x != 0
			}
		}
	} else {
		x = fabs(x)
		if ix < 0x3ff30000 { // |x| < 1.1875
			if ix < 0x3fe60000 { // 7/16 <= |x| < 11/16
				id = 0
				x = (2.0*x - 1.0) / (2.0 + x)
			} else { // 11/16 <= |x| < 19/16
				id = 1
				x = (x - 1.0) / (x + 1.0)
			}
		} else {
			if ix < 0x40038000 { // |x| < 2.4375
				id = 2
				x = (x - 1.5) / (1.0 + 1.5*x)
			} else { // 2.4375 <= |x| < 2**66
				id = 3
				x = -1.0 / x
			}
		}
	}
	z := x * x
	w := z * z
	// Break sum(aT[i]*z**(i+1)) into odd and even polynomials.
	s1 := z * (atanT[0] + w*(atanT[2]+w*(atanT[4]+w*(atanT[6]+w*(atanT[8]+w*atanT[10])))))
	s2 := w * (atanT[1] + w*(atanT[3]+w*(atanT[5]+w*(atanT[7]+w*atanT[9]))))
	if id < 0 {
		return x - x*(s1+s2)
	}
	z = atanHi[id] - ((x*(s1+s2) - atanLo[id]) - x)
	if int32(hx) < 0 {
		return -z
	}
	return z
}
