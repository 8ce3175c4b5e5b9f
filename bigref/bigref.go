// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Package bigref computes arbitrary-precision reference values for the
// circular functions using math/big. It exists to measure the libm engine:
// tests and the libmref tool compare double-precision results against a
// Taylor evaluation carried out with enough guard bits that the reference
// itself contributes no observable error.
//
// Arguments must satisfy |x| < 2**500; the quadrant reduction carries 600
// guard bits to absorb the cancellation of subtracting a near-equal
// multiple of pi/2, which covers every float64 the engine accepts short
// of the last few hundred exponents. That is enough for testing since the
// engine's own huge-argument path is exercised well below that bound.
package bigref

import (
	"math"
	"math/big"
)

// piDigits is pi to 350 decimal digits, about 1160 bits.
const piDigits = "3.14159265358979323846264338327950288419716939937510" +
	"58209749445923078164062862089986280348253421170679" +
	"82148086513282306647093844609550582231725359408128" +
	"48111745028410270193852110555964462294895493038196" +
	"44288109756659334461284756482337867831652712019091" +
	"45648566923460348610454326648213393607260249141273" +
	"72458700660631558817488152092096282925409171536436"

// reduceGuard is the extra working precision, in bits, carried through
// quadrant reduction to absorb cancellation for |x| < 2**500.
const reduceGuard = 600

// Pi returns pi at the given precision in bits. prec must not exceed the
// roughly 1160 bits available from the stored digits.
func Pi(prec uint) *big.Float {
	pi, _, err := big.ParseFloat(piDigits, 10, prec, big.ToNearestEven)
	if err != nil {
		panic("bigref: bad pi literal: " + err.Error())
	}
	return pi
}

// Sin returns sin(x) with prec bits of precision.
func Sin(x float64, prec uint) *big.Float {
	q, r := reduce(x, prec)
	switch q {
	case 0:
		return sinTaylor(r, prec)
	case 1:
		return cosTaylor(r, prec)
	case 2:
		s := sinTaylor(r, prec)
		return s.Neg(s)
	default:
		c := cosTaylor(r, prec)
		return c.Neg(c)
	}
}

// Cos returns cos(x) with prec bits of precision.
func Cos(x float64, prec uint) *big.Float {
	q, r := reduce(x, prec)
	switch q {
	case 0:
		return cosTaylor(r, prec)
	case 1:
		s := sinTaylor(r, prec)
		return s.Neg(s)
	case 2:
		c := cosTaylor(r, prec)
		return c.Neg(c)
	default:
		return sinTaylor(r, prec)
	}
}

// Tan returns tan(x) with prec bits of precision.
func Tan(x float64, prec uint) *big.Float {
	s := Sin(x, prec+32)
	c := Cos(x, prec+32)
	return new(big.Float).SetPrec(prec).Quo(s, c)
}

// reduce returns the quadrant q in [0, 3] and the remainder r with
// x = k*(pi/2) + r, |r| <= pi/4 and q = k mod 4, carried at prec plus the
// reduction guard bits.
func reduce(x float64, prec uint) (q int, r *big.Float) {
	wp := prec + reduceGuard
	bx := new(big.Float).SetPrec(wp).SetFloat64(x)
	halfPi := Pi(wp)
	halfPi.Quo(halfPi, big.NewFloat(2))

	// k = nearest integer to x / (pi/2), as floor(x/(pi/2) + 1/2).
	t := new(big.Float).SetPrec(wp).Quo(bx, halfPi)
	t.Add(t, big.NewFloat(0.5))
	k, acc := t.Int(nil)
	if t.Sign() < 0 && acc != big.Exact {
		k.Sub(k, big.NewInt(1))
	}

	r = new(big.Float).SetPrec(wp).SetInt(k)
	r.Mul(r, halfPi)
	r.Sub(bx, r)
	q = int(new(big.Int).Mod(k, big.NewInt(4)).Int64())
	return q, r
}

// sinTaylor sums the sine series at x, |x| <= pi/4, to prec bits.
func sinTaylor(x *big.Float, prec uint) *big.Float {
	wp := prec + 32
	x2 := new(big.Float).SetPrec(wp).Mul(x, x)
	term := new(big.Float).SetPrec(wp).Set(x)
	sum := new(big.Float).SetPrec(wp).Set(x)
	for n := 1; ; n++ {
		term.Mul(term, x2)
		term.Quo(term, big.NewFloat(float64(2*n*(2*n+1))))
		term.Neg(term)
		if converged(term, sum, wp) {
			break
		}
		sum.Add(sum, term)
	}
	return sum.SetPrec(prec)
}

// cosTaylor sums the cosine series at x, |x| <= pi/4, to prec bits.
func cosTaylor(x *big.Float, prec uint) *big.Float {
	wp := prec + 32
	x2 := new(big.Float).SetPrec(wp).Mul(x, x)
	term := new(big.Float).SetPrec(wp).SetInt64(1)
	sum := new(big.Float).SetPrec(wp).SetInt64(1)
	for n := 1; ; n++ {
		term.Mul(term, x2)
		term.Quo(term, big.NewFloat(float64(2*n*(2*n-1))))
		term.Neg(term)
		if converged(term, sum, wp) {
			break
		}
		sum.Add(sum, term)
	}
	return sum.SetPrec(prec)
}

// converged reports whether term is too small to move sum at wp bits.
func converged(term, sum *big.Float, wp uint) bool {
	if term.Sign() == 0 {
		return true
	}
	sumExp := 0
	if sum.Sign() != 0 {
		sumExp = sum.MantExp(nil)
	}
	return term.MantExp(nil) < sumExp-int(wp)-4
}

// UlpDiff returns |got - want| measured in units in the last place of
// want rounded to float64. A correctly rounded result scores at most 0.5.
// It returns +Inf when exactly one of the two is NaN or infinite, and 0
// when got is NaN and want rounds to NaN.
func UlpDiff(got float64, want *big.Float) float64 {
	w, _ := want.Float64()
	if math.IsNaN(got) || math.IsNaN(w) {
		if math.IsNaN(got) && math.IsNaN(w) {
			return 0
		}
		return math.Inf(1)
	}
	if math.IsInf(got, 0) || math.IsInf(w, 0) {
		if got == w {
			return 0
		}
		return math.Inf(1)
	}
	ulp := math.Nextafter(math.Abs(w), math.Inf(1)) - math.Abs(w)
	diff := new(big.Float).SetPrec(want.Prec()).SetFloat64(got)
	diff.Sub(diff, want)
	d, _ := diff.Float64()
	return math.Abs(d) / ulp
}
