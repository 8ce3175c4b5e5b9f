// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"testing"
)

// sweepF spans the float32 regimes: tiny, the pi/4 fast path, medium
// Cody-Waite, and the fixed-point path past 2**28.
var sweepF = []float32{
	0x1p-20, 0.1, 0.5, math.Pi / 4, 1, math.Pi / 2, 2, math.Pi,
	10, 100, 1e4, 1e6, 0x1p27, 0x1p28, 0x1p29, 1e9, 1e20, 1e30,
	math.MaxFloat32,
}

func TestRemPio2FRange(t *testing.T) {
	for _, x := range sweepF {
		for _, x := range []float32{x, -x} {
			_, r := remPio2F(x)
			if math.Abs(r) > math.Pi/4+1e-9 {
				t.Errorf("remPio2F(%v) remainder %v outside [-pi/4, pi/4]", x, r)
			}
		}
	}
}

// The float64 engine reduces the same (exactly representable) arguments.
// The counts are only comparable modulo 4: the float32 medium path keeps
// the full multiple, the fixed-point paths return it reduced (mod 4 and
// mod 8 respectively). Within a quadrant the two may still legitimately
// pick adjacent multiples at a boundary, so the residue reconciles a
// one-off before comparing remainders.
func TestRemPio2FMatchesDouble(t *testing.T) {
	for _, x := range sweepF {
		for _, x := range []float32{x, -x} {
			n, r := remPio2F(x)
			nd, y0, y1 := RemPio2(float64(x))
			k := (nd - n) & 3
			if k == 3 {
				k = -1
			}
			if k < -1 || k > 1 {
				t.Errorf("remPio2F(%v) n = %d, float64 reducer got %d", x, n, nd)
				continue
			}
			want := y0 + y1 + float64(k)*(math.Pi/2)
			if math.Abs(r-want) > 1e-9 {
				t.Errorf("remPio2F(%v) = %v, float64 reducer implies %v", x, r, want)
			}
		}
	}
}

func TestTrigReduceFOctants(t *testing.T) {
	// Values past the fixed-point threshold, stepped by pi/4 to walk the
	// octants. Odd octants fold, so j is always even and the fraction may
	// be negative.
	const twoPi = 2 * math.Pi
	for k := 0; k < 8; k++ {
		x := 0x1p28*twoPi + float64(k)*(math.Pi/4) + 0.3
		j, z := trigReduceF(x)
		if j&1 != 0 || j > 7 {
			t.Errorf("trigReduceF(%v) j = %d, want even in [0, 7]", x, j)
		}
		if math.Abs(z) > math.Pi/4+1e-9 {
			t.Errorf("trigReduceF(%v) z = %v outside [-pi/4, pi/4]", x, z)
		}
		want := math.Mod(x, twoPi)
		got := math.Mod(float64(j)*(math.Pi/4)+z+twoPi, twoPi)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("trigReduceF(%v) reconstructs %v, want %v", x, got, want)
		}
	}
}
