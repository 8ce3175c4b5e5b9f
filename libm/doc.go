// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Package libm is a pure-Go port of the FDLIBM (netlib "Freely
// Distributable LIBM") trigonometric functions.
//
// It provides Sin, Cos, Tan, Asin, Acos, Atan and Atan2 for float64, and
// Sinf, Cosf, Tanf for float32, accurate over the entire finite domain.
// Unlike naive implementations, the argument reduction stays accurate for
// inputs many orders of magnitude larger than 2π: huge arguments are
// reduced modulo π/2 with a fixed-point multiplication against a multi-word
// table of 2/π, resolving well over 100 bits of the product before the
// polynomial kernels ever see the remainder.
//
// # Accuracy
//
// The float64 functions follow the established numerical-libraries
// convention of at most 1-2 ulp of error; the float32 track is sized for
// a looser single-precision bound (a few float32 ulp). None of the
// functions promise correctly-rounded (0.5 ulp) results.
//
// # Special values
//
// Every function is total: NaN propagates, ±Inf maps to NaN for the
// periodic functions and to the limiting direction for Atan/Atan2, and
// signed zeros are preserved (Sin(-0) = -0). No function panics or
// allocates.
//
// # Concurrency
//
// All state is read-only constant tables; every call works on its own
// stack. The package is safe for concurrent use without synchronization.
package libm
