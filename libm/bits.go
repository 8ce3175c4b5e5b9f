// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import "math"

// The reduction and kernel code manipulates float64 values through their
// 32-bit halves, the way the original C does through its HI()/LO() macros.
// All accessors are exact bit reinterpretations; no rounding is involved.

// highWord returns the sign, exponent and upper 20 mantissa bits of x.
func highWord(x float64) uint32 {
	return uint32(math.Float64bits(x) >> 32)
}

// lowWord returns the lower 32 mantissa bits of x.
func lowWord(x float64) uint32 {
	return uint32(math.Float64bits(x))
}

// setHighWord replaces the high 32 bits of x, keeping the low half.
func setHighWord(x float64, hi uint32) float64 {
	return math.Float64frombits(uint64(hi)<<32 | uint64(lowWord(x)))
}

// setLowWord replaces the low 32 bits of x, keeping the high half.
// The kernels use this to zero trailing mantissa bits so that a value
// splits exactly into a representable head and a computable tail.
func setLowWord(x float64, lo uint32) float64 {
	return math.Float64frombits(uint64(highWord(x))<<32 | uint64(lo))
}

const (
	two54  = 1.80143985094819840000e+16 // 0x43500000, 0x00000000
	twom54 = 5.55111512312578270212e-17 // 0x3C900000, 0x00000000
	huge   = 1.0e+300
	tiny   = 1.0e-300
)

// Scalbn returns x * 2**n computed by exponent manipulation rather than
// floating multiplication. It saturates: overflow yields ±Inf, underflow
// yields a subnormal or signed zero. NaN and ±Inf pass through.
func Scalbn(x float64, n int) float64 {
	hx := highWord(x)
	lx := lowWord(x)
	k := int(hx >> 20 & 0x7ff) // extract exponent
	if k == 0 {                // 0 or subnormal x
		if lx|hx&0x7fffffff == 0 {
			return x // +-0
		}
		x *= two54
		hx = highWord(x)
		k = int(hx>>20&0x7ff) - 54
		if n < -50000 {
			return tiny * x // underflow
		}
	}
	if k == 0x7ff {
		return x + x // NaN or Inf
	}
	k += n
	if k > 0x7fe {
		return huge * math.Copysign(huge, x) // overflow
	}
	if k > 0 { // normal result
		return setHighWord(x, hx&0x800fffff|uint32(k)<<20)
	}
	if k <= -54 {
		if n > 50000 { // in case integer overflow in n+k
			return huge * math.Copysign(huge, x) // overflow
		}
		return tiny * math.Copysign(tiny, x) // underflow
	}
	k += 54 // subnormal result
	x = setHighWord(x, hx&0x800fffff|uint32(k)<<20)
	return x * twom54
}
