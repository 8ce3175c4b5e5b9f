// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"math/bits"
)

// The single-precision track reduces through float64 arithmetic: a widened
// float32 carries its full 24-bit mantissa exactly, so a two-term
// Cody-Waite subtraction covers everything below 2**28, and a fixed-point
// multiply against uint64 digits of 4/pi covers the rest of the float32
// range. The fixed-point window is the 64-bit analog of the 24-bit chunk
// scheme used by kernelRemPio2, sized for the smaller float32 exponent
// range.

// mPi4F holds the binary digits of 4/pi as 64-bit words, 384 bits total:
// the first word is the integer part, enough fraction follows to reduce
// any finite float32.
var mPi4F = [6]uint64{
	0x0000000000000001,
	0x45f306dc9c882a53,
	0xf84eafa3ea69bb81,
	0xb6c52b3278872083,
	0xfca2c757bd778ac3,
	0x6e48dc74849ba5c0,
}

const reduceThresholdF = 0x4d800000 // float32 bits of 2**28

// 25+53 bit split of pi/2. The head carries only 25 significant bits so
// that fn*pio2f1 stays exact for every quadrant count fn below 2**28.
const (
	pio2f1  = 1.57079631090164184570e+00 // 0x3FF921FB, 0x50000000
	pio2f1t = 1.58932547735281966916e-08 // 0x3E5110b4, 0x611A6263
)

// remPio2F reduces a finite float32 into [-pi/4, pi/4] modulo pi/2,
// returning the quadrant count and the remainder in float64 (callers
// round once, inside the kernels).
func remPio2F(x float32) (n int, r float64) {
	ix := math.Float32bits(x) & 0x7fffffff
	if ix < reduceThresholdF {
		// Medium range: the head product is exact, so the remainder is
		// good to about 2**-51 absolute, plenty past the float32 target.
		fn := math.Round(float64(x) * invPio2)
		return int(fn), (float64(x) - fn*pio2f1) - fn*pio2f1t
	}
	j, z := trigReduceF(math.Abs(float64(x)))
	n = int(j >> 1) // octants of pi/4 to quadrants of pi/2
	if x < 0 {
		return -n, -z
	}
	return n, z
}

// trigReduceF implements Payne-Hanek reduction in 192-bit fixed point for
// x >= pi/4. It returns the number j of pi/4 intervals x spans, mod 8,
// and the fractional remainder scaled back by pi/4. j is always even on
// return: odd octants fold into the next even one with a negative
// fraction, so j>>1 is the pi/2 quadrant and |z| <= pi/4.
func trigReduceF(x float64) (j uint64, z float64) {
	const pi4 = math.Pi / 4
	if x < pi4 {
		return 0, x
	}
	// Split x into an integer mantissa and exponent, x = ix * 2**exp.
	ix := math.Float64bits(x)
	exp := int(ix>>52&0x7ff) - 1023 - 52
	ix &^= 0x7ff << 52
	ix |= 1 << 52
	// Select the three 64-bit digits of 4/pi whose product with the
	// mantissa puts the leading digit at exponent -61.
	digit, bitshift := uint(exp+61)/64, uint(exp+61)%64
	z0 := mPi4F[digit]<<bitshift | mPi4F[digit+1]>>(64-bitshift)
	z1 := mPi4F[digit+1]<<bitshift | mPi4F[digit+2]>>(64-bitshift)
	z2 := mPi4F[digit+2]<<bitshift | mPi4F[digit+3]>>(64-bitshift)
	// Multiply and keep the top two 64-bit digits of the product.
	z2hi, _ := bits.Mul64(z2, ix)
	z1hi, z1lo := bits.Mul64(z1, ix)
	z0lo := z0 * ix
	lo, c := bits.Add64(z1lo, z2hi, 0)
	hi, _ := bits.Add64(z0lo, z1hi, c)
	// The three bits above the binary point are the octant.
	j = hi >> 61
	// Normalize the fraction into a float64 mantissa.
	hi = hi<<3 | lo>>61
	lz := uint(bits.LeadingZeros64(hi))
	e := uint64(1023 - (lz + 1))
	hi = hi<<(lz+1) | lo<<3>>(63-lz)
	hi >>= 64 - 52
	z = math.Float64frombits(e<<52 | hi)
	// Fold odd octants into the next even one.
	if j&1 == 1 {
		j++
		j &= 7
		z--
	}
	return j, z * pi4
}
