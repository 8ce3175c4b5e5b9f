// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's e_rem_pio2.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

const (
	two24   = 1.67772160000000000000e+07 // 0x41700000, 0x00000000
	invPio2 = 6.36619772367581382433e-01 // 0x3FE45F30, 0x6DC9C883  2/pi
	pio2v1  = 1.57079632673412561417e+00 // 0x3FF921FB, 0x54400000  first 33 bits of pi/2
	pio2v1t = 6.07710050650619224932e-11 // 0x3DD0B461, 0x1A626331  pi/2 - pio2v1
	pio2v2  = 6.07710050630396597660e-11 // 0x3DD0B461, 0x1A600000  second 33 bits of pi/2
	pio2v2t = 2.02226624879595063154e-21 // 0x3BA3198A, 0x2E037073  pi/2 - pio2v1 - pio2v2
	pio2v3  = 2.02226624871116645580e-21 // 0x3BA3198A, 0x2E000000  third 33 bits of pi/2
	pio2v3t = 8.47842766036889956997e-32 // 0x397B839A, 0x252049C1  pi/2 - pio2v1 - pio2v2 - pio2v3
)

// remPio2 reduces x into [-pi/4, pi/4] modulo pi/2. It returns the signed
// count n of pi/2 multiples removed and the remainder as a head/tail pair
// (y0, y1) with x = n*(pi/2) + y0 + y1 to well over double precision.
//
// Three regimes, selected by the exponent of |x|:
//   - |x| <= pi/4: no reduction.
//   - |x| <= 2**19*(pi/2): Cody-Waite subtraction of n*(pi/2) using a
//     three-term split of pi/2, escalating to finer terms only when the
//     exponent of the residual shows too much cancellation.
//   - larger finite x: exact fixed-point reduction via kernelRemPio2.
//
// NaN and ±Inf yield n = 0 with NaN remainders; callers special-case
// non-finite inputs before relying on the result.
func remPio2(x float64) (n int, y0, y1 float64) {
	hx := highWord(x)
	ix := hx & 0x7fffffff

	if ix <= 0x3fe921fb { // |x| <= pi/4, no reduction needed
		return 0, x, 0
	}

	if ix < 0x4002d97c { // |x| < 3pi/4, special case with n = +-1
		if int32(hx) > 0 {
			z := x - pio2v1
			if ix != 0x3ff921fb { // 33+53 bits of pi/2 are enough
				y0 = z - pio2v1t
				y1 = (z - y0) - pio2v1t
			} else { // x very close to pi/2, take 33+33+53 bits
				z -= pio2v2
				y0 = z - pio2v2t
				y1 = (z - y0) - pio2v2t
			}
			return 1, y0, y1
		}
		z := x + pio2v1
		if ix != 0x3ff921fb {
			y0 = z + pio2v1t
			y1 = (z - y0) + pio2v1t
		} else {
			z += pio2v2
			y0 = z + pio2v2t
			y1 = (z - y0) + pio2v2t
		}
		return -1, y0, y1
	}

	if ix <= 0x413921fb { // |x| <= 2**19*(pi/2), medium size
		t := fabs(x)
		m := int(t*invPio2 + 0.5)
		fn := float64(m)
		r := t - fn*pio2v1
		w := fn * pio2v1t // first round, good to 85 bits
		y0 = r - w
		j := int(ix >> 20)
		if j-int(highWord(y0)>>20&0x7ff) > 16 {
			// Second iteration needed, good to 118 bits. The exponent
			// gap means y0 lost more than 16 leading bits to
			// cancellation against n*(pi/2).
			t = r
			w = fn * pio2v2
			r = t - w
			w = fn*pio2v2t - ((t - r) - w)
			y0 = r - w
			if j-int(highWord(y0)>>20&0x7ff) > 49 {
				// Third iteration, 151 bits, covers all cases.
				t = r
				w = fn * pio2v3
				r = t - w
				w = fn*pio2v3t - ((t - r) - w)
				y0 = r - w
			}
		}
		y1 = (r - y0) - w
		if int32(hx) < 0 {
			return -m, -y0, -y1
		}
		return m, y0, y1
	}

	if ix >= 0x7ff00000 { // x is Inf or NaN
		y0 = x - x
		return 0, y0, y0
	}

	// Huge argument: break |x| into three 24-bit doubles and hand the
	// normalized digits to the multi-precision reducer.
	e0 := int(ix>>20) - 1046 // e0 = ilogb(|x|) - 23
	z := setHighWord(x, ix-uint32(e0<<20))
	var tx, ty [3]float64
	for i := 0; i < 2; i++ {
		tx[i] = float64(int32(z))
		z = (z - tx[i]) * two24
	}
	tx[2] = z
	nx := 3
	for tx[nx-1] == 0 {
		nx-- // skip zero terms, tx[0] is never zero
	}
	n = kernelRemPio2(tx[:], ty[:], e0, nx, 2)
	if int32(hx) < 0 {
		return -n, -ty[0], -ty[1]
	}
	return n, ty[0], ty[1]
}

// RemPio2 reduces x into [-pi/4, pi/4] modulo pi/2, returning the signed
// count n of pi/2 multiples removed and the remainder as a head/tail pair
// with x = n*(pi/2) + y0 + y1 to well over double precision. Only the low
// bits of n are meaningful for quadrant selection.
//
// RemPio2 exposes the internal reducer for callers that need the raw
// quadrant and remainder, such as accuracy tooling. For x = ±Inf or NaN
// it returns n = 0 with NaN remainders.
func RemPio2(x float64) (n int, y0, y1 float64) {
	return remPio2(x)
}

// fabs clears the sign bit directly; the reduction code stays free of
// calls into the functions it supports.
func fabs(x float64) float64 {
	return setHighWord(x, highWord(x)&0x7fffffff)
}
