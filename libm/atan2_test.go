// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"testing"
)

func TestAtan2Specials(t *testing.T) {
	negZero := math.Copysign(0, -1)
	inf := math.Inf(1)
	tests := []struct {
		name string
		y, x float64
		want float64
	}{
		{"atan2(+0, +1)", 0, 1, 0},
		{"atan2(-0, +1)", negZero, 1, negZero},
		{"atan2(+0, -1)", 0, -1, math.Pi},
		{"atan2(-0, -1)", negZero, -1, -math.Pi},
		{"atan2(+0, +0)", 0, 0, 0},
		{"atan2(-0, +0)", negZero, 0, negZero},
		{"atan2(+0, -0)", 0, negZero, math.Pi},
		{"atan2(-0, -0)", negZero, negZero, -math.Pi},
		{"atan2(+1, 0)", 1, 0, math.Pi / 2},
		{"atan2(-1, 0)", -1, 0, -math.Pi / 2},
		{"atan2(+1, +Inf)", 1, inf, 0},
		{"atan2(-1, +Inf)", -1, inf, negZero},
		{"atan2(+1, -Inf)", 1, -inf, math.Pi},
		{"atan2(-1, -Inf)", -1, -inf, -math.Pi},
		{"atan2(+Inf, 1)", inf, 1, math.Pi / 2},
		{"atan2(-Inf, 1)", -inf, 1, -math.Pi / 2},
		{"atan2(+Inf, +Inf)", inf, inf, math.Pi / 4},
		{"atan2(-Inf, +Inf)", -inf, inf, -math.Pi / 4},
		{"atan2(+Inf, -Inf)", inf, -inf, 3 * math.Pi / 4},
		{"atan2(-Inf, -Inf)", -inf, -inf, -3 * math.Pi / 4},
		{"atan2(NaN, 1)", math.NaN(), 1, math.NaN()},
		{"atan2(1, NaN)", 1, math.NaN(), math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Atan2(tt.y, tt.x); !alike(got, tt.want) {
				t.Errorf("Atan2(%v, %v) = %v, want %v", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

func TestAtan2Sweep(t *testing.T) {
	args := []float64{-1e10, -100, -3, -1, -0.5, -1e-10, 1e-10, 0.5, 1, 3, 100, 1e10}
	for _, y := range args {
		for _, x := range args {
			got := Atan2(y, x)
			want := math.Atan2(y, x)
			if !close(got, want) {
				t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
			}
		}
	}
}

// x = 1 short-circuits to Atan(y); the two entry points must agree
// exactly.
func TestAtan2UnitX(t *testing.T) {
	for _, y := range atanArgs {
		for _, y := range []float64{y, -y} {
			got := Atan2(y, 1)
			want := Atan(y)
			if math.Float64bits(got) != math.Float64bits(want) {
				t.Errorf("Atan2(%v, 1) = %v, Atan = %v", y, got, want)
			}
		}
	}
}

// Exponent gaps beyond 60 skip the division entirely; the saturated
// results still have to match the general formula's limit.
func TestAtan2Saturation(t *testing.T) {
	if got := Atan2(1e300, 1); !veryclose(got, math.Pi/2) {
		t.Errorf("Atan2(1e300, 1) = %v, want pi/2", got)
	}
	if got := Atan2(1e-300, -1); !veryclose(got, math.Pi) {
		t.Errorf("Atan2(1e-300, -1) = %v, want pi", got)
	}
	if got := Atan2(1e-300, 1); got > 2e-300 || got <= 0 {
		t.Errorf("Atan2(1e-300, 1) = %v, want about 1e-300", got)
	}
}
