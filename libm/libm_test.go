// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import "math"

// Comparison helpers. tolerance is relative when the reference is nonzero.
// Cross-checks against the standard library use close; checks where both
// sides run the same algorithm use veryclose or exact bit equality.

func tolerance(a, b, e float64) bool {
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	if b != 0 {
		e = e * b
		if e < 0 {
			e = -e
		}
	}
	return d < e
}

func close(a, b float64) bool     { return tolerance(a, b, 1e-14) }
func veryclose(a, b float64) bool { return tolerance(a, b, 4e-16) }

// alike reports exact agreement, treating NaNs as equal and
// distinguishing the sign of zero.
func alike(a, b float64) bool {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return true
	case a == b:
		return math.Signbit(a) == math.Signbit(b)
	}
	return false
}

// ulpDiff32 counts representable float32 values between a and b.
func ulpDiff32(a, b float32) uint32 {
	ua, ub := orderBits32(a), orderBits32(b)
	if ua >= ub {
		return ua - ub
	}
	return ub - ua
}

// orderBits32 maps float32 bit patterns to a totally ordered unsigned
// scale, so adjacent floats differ by one.
func orderBits32(x float32) uint32 {
	b := math.Float32bits(x)
	if b>>31 != 0 {
		return ^b
	}
	return b | 1<<31
}

// sweep is a shared set of arguments spanning the reduction regimes:
// trivial, near pi/2, medium Cody-Waite, and the fixed-point path.
var sweep = []float64{
	0,
	1e-300,
	0x1p-28,
	0.125,
	0.5,
	math.Pi / 4,
	1,
	math.Pi / 2,
	2,
	3,
	math.Pi,
	4.5,
	2 * math.Pi,
	10,
	100,
	1e3,
	123456.789,
	1e6,
	0x1.921fb54442d18p+19, // near 2**19 * pi/2, deep in the medium path
	0x1.921fb54442d18p+20, // high word equals the medium-path cutoff
	0x1.922p+20,           // first binade past the cutoff, fixed-point path
	1e8,
	1e10,
	1e16,
	1e22,
	0x1p60,
	0x1p100,
	0x1p300,
	1e300,
}
