// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"testing"
)

func TestTanSpecials(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"tan(+0)", 0, 0},
		{"tan(-0)", math.Copysign(0, -1), math.Copysign(0, -1)},
		{"tan(+Inf)", math.Inf(1), math.NaN()},
		{"tan(-Inf)", math.Inf(-1), math.NaN()},
		{"tan(NaN)", math.NaN(), math.NaN()},
		{"tan(tiny)", 1e-300, 1e-300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tan(tt.in); !alike(got, tt.want) {
				t.Errorf("Tan(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTanSweep(t *testing.T) {
	for _, x := range sweep {
		for _, x := range []float64{x, -x} {
			got := Tan(x)
			want := math.Tan(x)
			if !close(got, want) {
				t.Errorf("Tan(%v) = %v, want %v", x, got, want)
			}
		}
	}
}

// tan is finite at the float64 closest to pi/2; the true pi/2 falls
// between representable values, so the pole is never hit.
func TestTanNearHalfPi(t *testing.T) {
	const halfPi = 0x1.921fb54442d18p+0
	got := Tan(halfPi)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("Tan(pi/2) = %v, want finite", got)
	}
	want := math.Tan(halfPi)
	if !close(got, want) {
		t.Errorf("Tan(pi/2) = %v, want %v", got, want)
	}
	if got < 1e15 {
		t.Errorf("Tan(pi/2) = %v, want > 1e15", got)
	}
}

func TestTanSymmetry(t *testing.T) {
	for _, x := range sweep {
		got := Tan(-x)
		want := -Tan(x)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("Tan(-%v) = %v, want exact negation %v", x, got, want)
		}
	}
}

// Tan must track Sin/Cos: the quotient identity holds to a couple of
// ulps everywhere the cosine is not tiny.
func TestTanQuotient(t *testing.T) {
	for _, x := range sweep {
		c := Cos(x)
		if math.Abs(c) < 0x1p-10 {
			continue
		}
		got := Tan(x)
		want := Sin(x) / c
		if !close(got, want) {
			t.Errorf("Tan(%v) = %v, Sin/Cos = %v", x, got, want)
		}
	}
}
