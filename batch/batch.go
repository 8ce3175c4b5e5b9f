// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Package batch evaluates the libm trigonometric functions over slices.
//
// The engine itself is scalar by design; batch evaluation is built on top
// of it by independent per-element calls, optionally chunked across a
// workerpool.Pool. Both float32 and float64 slices are supported through
// one generic implementation; every lane is evaluated by the
// double-precision engine, so float32 batches get the correctly-reduced
// double result rounded once per element.
package batch

import (
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-fdlibm/libm"
	"github.com/ajroetker/go-fdlibm/workerpool"
)

// apply maps fn over in into out, in parallel when pool is non-nil.
// Excess elements of the longer slice are left untouched.
func apply[T constraints.Float](pool *workerpool.Pool, in, out []T, fn func(float64) float64) {
	n := min(len(in), len(out))
	run := func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = T(fn(float64(in[i])))
		}
	}
	if pool == nil {
		run(0, n)
		return
	}
	pool.ParallelFor(n, run)
}

// Sin fills out with the sine of each element of in.
func Sin[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Sin)
}

// Cos fills out with the cosine of each element of in.
func Cos[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Cos)
}

// Tan fills out with the tangent of each element of in.
func Tan[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Tan)
}

// Asin fills out with the arcsine of each element of in.
func Asin[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Asin)
}

// Acos fills out with the arccosine of each element of in.
func Acos[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Acos)
}

// Atan fills out with the arctangent of each element of in.
func Atan[T constraints.Float](pool *workerpool.Pool, in, out []T) {
	apply(pool, in, out, libm.Atan)
}

// Sincos fills sinOut and cosOut from one reduction per element.
func Sincos[T constraints.Float](pool *workerpool.Pool, in, sinOut, cosOut []T) {
	n := min(len(in), len(sinOut), len(cosOut))
	run := func(start, end int) {
		for i := start; i < end; i++ {
			s, c := libm.Sincos(float64(in[i]))
			sinOut[i] = T(s)
			cosOut[i] = T(c)
		}
	}
	if pool == nil {
		run(0, n)
		return
	}
	pool.ParallelFor(n, run)
}

// Atan2 fills out with Atan2(y[i], x[i]) for each element pair.
func Atan2[T constraints.Float](pool *workerpool.Pool, y, x, out []T) {
	n := min(len(y), len(x), len(out))
	run := func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = T(libm.Atan2(float64(y[i]), float64(x[i])))
		}
	}
	if pool == nil {
		run(0, n)
		return
	}
	pool.ParallelFor(n, run)
}
