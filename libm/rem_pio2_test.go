// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"testing"
)

// The reducer must land every argument in [-pi/4, pi/4] with the right
// quadrant. The small slack covers remainders that legitimately sit a
// tail's width past the boundary on exact-tie neighborhoods.
func TestRemPio2Range(t *testing.T) {
	for _, x := range sweep {
		for _, x := range []float64{x, -x} {
			_, y0, y1 := RemPio2(x)
			if math.Abs(y0) > math.Pi/4+1e-9 {
				t.Errorf("RemPio2(%v) remainder %v outside [-pi/4, pi/4]", x, y0)
			}
			if math.Abs(y1) > 0x1p-40 {
				t.Errorf("RemPio2(%v) tail %v too large for a tail", x, y1)
			}
		}
	}
}

func TestRemPio2Quadrant(t *testing.T) {
	// x = k*(pi/2) + 0.1 sits firmly inside quadrant k.
	for k := 1; k <= 40; k++ {
		x := float64(k)*(math.Pi/2) + 0.1
		n, y0, _ := RemPio2(x)
		if n != k {
			t.Errorf("RemPio2(%v) n = %d, want %d", x, n, k)
		}
		// The argument itself carries k rounding errors of pi/2, so the
		// remainder drifts from 0.1 by a few ulps per multiple.
		if !tolerance(y0, 0.1, 1e-12) {
			t.Errorf("RemPio2(%v) y0 = %v, want about 0.1", x, y0)
		}
	}
}

func TestRemPio2Symmetry(t *testing.T) {
	for _, x := range sweep {
		if x == 0 {
			continue
		}
		n, y0, y1 := RemPio2(x)
		nn, z0, z1 := RemPio2(-x)
		if nn != -n || math.Float64bits(z0) != math.Float64bits(-y0) {
			t.Errorf("RemPio2(-%v) = (%d, %v, _), want exact negation of (%d, %v, _)",
				x, nn, z0, n, y0)
			continue
		}
		// The trivial regime returns a +0 tail for either sign; a zero
		// tail carries no sign to mirror.
		if y1 == 0 {
			if z1 != 0 {
				t.Errorf("RemPio2(-%v) tail = %v, want zero like RemPio2(%v)", x, z1, x)
			}
			continue
		}
		if math.Float64bits(z1) != math.Float64bits(-y1) {
			t.Errorf("RemPio2(-%v) tail = %v, want exact negation of %v", x, z1, y1)
		}
	}
}

func TestRemPio2NonFinite(t *testing.T) {
	for _, x := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		n, y0, y1 := RemPio2(x)
		if n != 0 || !math.IsNaN(y0) || !math.IsNaN(y1) {
			t.Errorf("RemPio2(%v) = (%d, %v, %v), want (0, NaN, NaN)", x, n, y0, y1)
		}
	}
}

// Near an exact multiple of pi/2 the head alone carries no information;
// the reduction is only correct if the tail survives. sin(x) for x close
// to pi/2 must come out as cos of the tiny residual, which is nearly 1.
func TestRemPio2NearMultiples(t *testing.T) {
	const halfPi = 0x1.921fb54442d18p+0
	for k := 1; k <= 8; k++ {
		x := float64(k) * halfPi
		n, y0, _ := RemPio2(x)
		if n != k {
			t.Errorf("RemPio2(%d*pi/2) n = %d, want %d", k, n, k)
		}
		if math.Abs(y0) > float64(k)*1e-15 {
			t.Errorf("RemPio2(%d*pi/2) y0 = %v, want near 0", k, y0)
		}
	}
}
