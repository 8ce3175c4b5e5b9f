// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package libm

import (
	"math"
	"testing"
)

// digits24 splits |x| into the normalized 24-bit double digits the
// fixed-point reducer consumes, the same way the huge path of remPio2
// does.
func digits24(x float64) (tx [3]float64, e0, nx int) {
	ix := highWord(x) & 0x7fffffff
	e0 = int(ix>>20) - 1046
	z := setHighWord(x, ix-uint32(e0<<20))
	for i := 0; i < 2; i++ {
		tx[i] = float64(int32(z))
		z = (z - tx[i]) * two24
	}
	tx[2] = z
	nx = 3
	for tx[nx-1] == 0 {
		nx--
	}
	return tx, e0, nx
}

// Higher output precision must refine, not change, the reduction: the
// quadrant and leading term agree with prec 2, and the third term of
// prec 3 is below the tail of the second.
func TestKernelRemPio2Precisions(t *testing.T) {
	for _, x := range []float64{0x1.5p+30, 0x1p+60, 1e22, 0x1p+100, 0x1p+300, 1e300} {
		tx, e0, nx := digits24(x)

		var y2 [2]float64
		n2 := kernelRemPio2(tx[:], y2[:], e0, nx, 2)

		var y3 [3]float64
		n3 := kernelRemPio2(tx[:], y3[:], e0, nx, 3)

		if n2 != n3 {
			t.Errorf("x=%v: quadrant differs between prec 2 (%d) and prec 3 (%d)", x, n2, n3)
		}
		if math.Float64bits(y2[0]) != math.Float64bits(y3[0]) {
			t.Errorf("x=%v: leading term differs: %v vs %v", x, y2[0], y3[0])
		}
		if math.Abs(y3[2]) > math.Abs(y2[1])*0x1p-40+0x1p-200 {
			t.Errorf("x=%v: third term %v not below tail %v", x, y3[2], y2[1])
		}
	}
}

// prec 0 and 1 compress the same reduction into fewer terms and run with
// a narrower digit window (initJK 2 and 3), sized for single and extended
// precision. They must agree with the two-term result to within what that
// window supports, not to double-double accuracy.
func TestKernelRemPio2Compressed(t *testing.T) {
	for _, x := range []float64{0x1p+60, 1e22, 0x1p+200} {
		tx, e0, nx := digits24(x)

		var y0 [1]float64
		n0 := kernelRemPio2(tx[:], y0[:], e0, nx, 0)

		var y1 [2]float64
		n1 := kernelRemPio2(tx[:], y1[:], e0, nx, 1)

		var y2 [2]float64
		n2 := kernelRemPio2(tx[:], y2[:], e0, nx, 2)

		if n0 != n2 || n1 != n2 {
			t.Fatalf("x=%v: quadrants %d, %d, %d disagree", x, n0, n1, n2)
		}
		sum := y2[0] + y2[1]
		if d := math.Abs(y0[0] - sum); d > 1e-8 {
			t.Errorf("x=%v: prec 0 head %v, want about %v (off %g)", x, y0[0], sum, d)
		}
		if d := math.Abs(y1[0]+y1[1]-sum); d > 1e-12 {
			t.Errorf("x=%v: prec 1 sum %v, want about %v (off %g)", x, y1[0]+y1[1], sum, d)
		}
	}
}

// The reducer's quadrant must match the driver's on the huge path.
func TestKernelRemPio2MatchesDriver(t *testing.T) {
	for _, x := range []float64{0x1.922p+20, 1e22, 0x1p+100, 1e300} {
		tx, e0, nx := digits24(x)
		var y [2]float64
		n := kernelRemPio2(tx[:], y[:], e0, nx, 2)

		nd, y0, y1 := RemPio2(x)
		if n != nd || math.Float64bits(y[0]) != math.Float64bits(y0) || math.Float64bits(y[1]) != math.Float64bits(y1) {
			t.Errorf("x=%v: kernel (%d, %v, %v) != driver (%d, %v, %v)", x, n, y[0], y[1], nd, y0, y1)
		}
	}
}
