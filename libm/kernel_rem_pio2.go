// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Ported from FDLIBM's k_rem_pio2.c, which came with the notice:
//
//   Copyright (C) 1993 by Sun Microsystems, Inc. All rights reserved.
//   Developed at SunSoft, a Sun Microsystems, Inc. business.
//   Permission to use, copy, modify, and distribute this software is
//   freely granted, provided that this notice is preserved.

package libm

// twoOverPi holds the binary expansion of 2/pi in 24-bit chunks,
// 66*24 = 1584 bits, enough to reduce any finite float64. The window of
// chunks actually multiplied is selected from the input exponent so that
// the product always resolves the quadrant and leaves >100 significant
// bits of fraction.
var twoOverPi = [66]int32{
	0xA2F983, 0x6E4E44, 0x1529FC, 0x2757D1, 0xF534DD, 0xC0DB62,
	0x95993C, 0x439041, 0xFE5163, 0xABDEBB, 0xC561B7, 0x246E3A,
	0x424DD2, 0xE00649, 0x2EEA09, 0xD1921C, 0xFE1DEB, 0x1CB129,
	0xA73EE8, 0x8235F5, 0x2EBB44, 0x84E99C, 0x7026B4, 0x5F7E41,
	0x3991D6, 0x398353, 0x39F49C, 0x845F8B, 0xBDF928, 0x3B1FF8,
	0x97FFDE, 0x05980F, 0xEF2F11, 0x8B5A0A, 0x6D1F6D, 0x367ECF,
	0x27CB09, 0xB74F46, 0x3F669E, 0x5FEA2D, 0x7527BA, 0xC7EBE5,
	0xF17B3D, 0x0739F7, 0x8A5292, 0xEA6BFB, 0x5FB11F, 0x8D5D08,
	0x560330, 0x46FC7B, 0x6BABF0, 0xCFBC20, 0x9AF436, 0x1DA9E3,
	0x91615E, 0xE61B08, 0x659985, 0x5F14A0, 0x68408D, 0xFFD880,
	0x4D7327, 0x310606, 0x1556CA, 0x73A8C9, 0x60E27B, 0xC08C6B,
}

// pio2Terms is pi/2 split into eight non-overlapping 24-bit pieces; the
// reconstructed digit value is multiplied against it to form the final
// remainder.
var pio2Terms = [8]float64{
	1.57079625129699707031e+00, // 0x3FF921FB, 0x40000000
	7.54978941586159635335e-08, // 0x3E74442D, 0x00000000
	5.39030252995776476554e-15, // 0x3CF84698, 0x80000000
	3.28200341580791294123e-22, // 0x3B78CC51, 0x60000000
	1.27065575308067607349e-29, // 0x39F01B83, 0x80000000
	1.22933308981111328932e-36, // 0x387A2520, 0x40000000
	2.73370053816464559624e-44, // 0x36E38222, 0x80000000
	2.16741683877804819444e-51, // 0x3569F31D, 0x00000000
}

// initJK[prec] is the initial number of 2/pi chunks carried beyond the
// input digits for each requested precision level (0: one float64,
// 1 and 2: head/tail pair, 3: three-term expansion).
var initJK = [4]int{2, 3, 4, 6}

const twom24 = 5.96046447753906250000e-08 // 2**-24, 0x3E700000, 0x00000000

// kernelRemPio2 performs Payne-Hanek reduction for huge arguments.
//
// x[0..nx-1] are the input magnitude's 24-bit digits as float64 values,
// most significant first, scaled so that the true value is
// x[0]+x[1]+x[2] (each a multiple of the next's weight) times 2**e0 with
// e0 the binary exponent of x[0]. y receives the remainder of
// (sum x[i]*2**e0) modulo pi/2 as 1-3 float64 terms depending on prec.
// The return value is the quadrant count n modulo 8.
//
// The digits are multiplied against a window of twoOverPi sized by e0,
// accumulated into 24-bit integer digits iq[], and the quadrant is read
// off the integer bits above the binary point. A fraction of exactly zero
// at the carried precision forces a recompute with a wider window; the
// widening is bounded by the table length, so the loop always terminates.
func kernelRemPio2(x, y []float64, e0, nx, prec int) int {
	var iq [20]int32
	var f, q, fq [20]float64

	jk := initJK[prec]
	jp := jk

	// Window position: q0 is the exponent of q[0] after the multiply.
	jx := nx - 1
	jv := (e0 - 3) / 24
	if jv < 0 {
		jv = 0
	}
	q0 := e0 - 24*(jv+1)

	// f[i] covers the table window plus leading zeros for alignment.
	j := jv - jx
	m := jx + jk
	for i := 0; i <= m; i, j = i+1, j+1 {
		if j < 0 {
			f[i] = 0
		} else {
			f[i] = float64(twoOverPi[j])
		}
	}

	// Schoolbook product of the input digits against the window. Each
	// partial sum stays below 2**45, exact in float64.
	for i := 0; i <= jk; i++ {
		fw := 0.0
		for j := 0; j <= jx; j++ {
			fw += x[j] * f[jx+i-j]
		}
		q[i] = fw
	}

	jz := jk
	var z float64
	var n, ih int
	for {
		// Distill q[] into 24-bit integer digits iq[], least
		// significant first, propagating carries exactly.
		z = q[jz]
		for i, j := 0, jz; j > 0; i, j = i+1, j-1 {
			fw := float64(int32(twom24 * z))
			iq[i] = int32(z - two24*fw)
			z = q[j-1] + fw
		}

		// Extract the integer quadrant from the bits above the binary
		// point implied by q0.
		z = Scalbn(z, q0)
		z -= 8.0 * floor64(z*0.125) // trim off integer >= 8
		n = int(z)
		z -= float64(n)
		ih = 0
		if q0 > 0 { // need iq[jz-1] to determine n
			i := int(iq[jz-1] >> uint(24-q0))
			n += i
			iq[jz-1] -= int32(i << uint(24-q0))
			ih = int(iq[jz-1] >> uint(23-q0))
		} else if q0 == 0 {
			ih = int(iq[jz-1] >> 23)
		} else if z >= 0.5 {
			ih = 2
		}

		if ih > 0 { // fraction >= 0.5: round the quadrant up, negate
			n++
			carry := int32(0)
			for i := 0; i < jz; i++ { // compute 1-q via complement
				j := iq[i]
				if carry == 0 {
					if j != 0 {
						carry = 1
						iq[i] = 0x1000000 - j
					}
				} else {
					iq[i] = 0xffffff - j
				}
			}
			if q0 > 0 { // rare case: chance is 1 in 12
				switch q0 {
				case 1:
					iq[jz-1] &= 0x7fffff
				case 2:
					iq[jz-1] &= 0x3fffff
				}
			}
			if ih == 2 {
				z = 1.0 - z
				if carry != 0 {
					z -= Scalbn(1.0, q0)
				}
			}
		}

		// If the carried fraction came out exactly zero, the input sat
		// too close to a multiple of pi/2 for this window: widen it by
		// however many chunks are needed and go again. jv+jz+k stays
		// within the table, so this retries at most a handful of times.
		if z == 0 {
			j := int32(0)
			for i := jz - 1; i >= jk; i-- {
				j |= iq[i]
			}
			if j == 0 { // need recomputation
				var k int
				for k = 1; iq[jk-k] == 0; k++ {
				}
				for i := jz + 1; i <= jz+k; i++ {
					f[jx+i] = float64(twoOverPi[jv+i])
					fw := 0.0
					for j := 0; j <= jx; j++ {
						fw += x[j] * f[jx+i-j]
					}
					q[i] = fw
				}
				jz += k
				continue
			}
		}
		break
	}

	// Chop off zero terms, or split an overgrown fraction back into
	// 24-bit digits.
	if z == 0 {
		jz--
		q0 -= 24
		for iq[jz] == 0 {
			jz--
			q0 -= 24
		}
	} else {
		z = Scalbn(z, -q0)
		if z >= two24 {
			fw := float64(int32(twom24 * z))
			iq[jz] = int32(z - two24*fw)
			jz++
			q0 += 24
			iq[jz] = int32(fw)
		} else {
			iq[jz] = int32(z)
		}
	}

	// Convert the integer digit chunks back to floating values.
	fw := Scalbn(1.0, q0)
	for i := jz; i >= 0; i-- {
		q[i] = fw * float64(iq[i])
		fw *= twom24
	}

	// Multiply against the pi/2 pieces, most significant products first.
	for i := jz; i >= 0; i-- {
		fw = 0.0
		for k := 0; k <= jp && k <= jz-i; k++ {
			fw += pio2Terms[k] * q[i+k]
		}
		fq[jz-i] = fw
	}

	// Compress fq[] into y[] with compensated summation.
	switch prec {
	case 0:
		fw = 0.0
		for i := jz; i >= 0; i-- {
			fw += fq[i]
		}
		if ih == 0 {
			y[0] = fw
		} else {
			y[0] = -fw
		}
	case 1, 2:
		fw = 0.0
		for i := jz; i >= 0; i-- {
			fw += fq[i]
		}
		if ih == 0 {
			y[0] = fw
		} else {
			y[0] = -fw
		}
		fw = fq[0] - fw
		for i := 1; i <= jz; i++ {
			fw += fq[i]
		}
		if ih == 0 {
			y[1] = fw
		} else {
			y[1] = -fw
		}
	case 3: // painful
		for i := jz; i > 0; i-- {
			fw = fq[i-1] + fq[i]
			fq[i] += fq[i-1] - fw
			fq[i-1] = fw
		}
		for i := jz; i > 1; i-- {
			fw = fq[i-1] + fq[i]
			fq[i] += fq[i-1] - fw
			fq[i-1] = fw
		}
		fw = 0.0
		for i := jz; i >= 2; i-- {
			fw += fq[i]
		}
		if ih == 0 {
			y[0] = fq[0]
			y[1] = fq[1]
			y[2] = fw
		} else {
			y[0] = -fq[0]
			y[1] = -fq[1]
			y[2] = -fw
		}
	}
	return n & 7
}

// floor64 is a branch-only floor sufficient for the small non-negative
// values produced during quadrant extraction.
func floor64(x float64) float64 {
	return float64(int64(x))
}
