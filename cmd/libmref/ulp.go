// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fdlibm/bigref"
)

func newUlpCmd() *cobra.Command {
	var (
		samples int
		minArg  float64
		maxArg  float64
		prec    uint
		logDist bool
		bound   float64
	)
	cmd := &cobra.Command{
		Use:   "ulp <fn>",
		Short: "Measure observed ulp error over random samples",
		Long: `Measure observed ulp error of sin, cos or tan over random samples
drawn from [min, max], against an arbitrary-precision reference. With
--log the magnitudes are drawn log-uniformly, which exercises every
binade instead of concentrating samples at the top of the range. The
command fails when any sample exceeds --bound ulps (0 disables the
check).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUlp(cmd, args[0], samples, minArg, maxArg, prec, logDist, bound)
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 10000, "number of sample points")
	cmd.Flags().Float64Var(&minArg, "min", -2*math.Pi, "lower bound of the sample range")
	cmd.Flags().Float64Var(&maxArg, "max", 2*math.Pi, "upper bound of the sample range")
	cmd.Flags().UintVar(&prec, "prec", 96, "reference precision in bits")
	cmd.Flags().BoolVar(&logDist, "log", false, "sample magnitudes log-uniformly")
	cmd.Flags().Float64Var(&bound, "bound", 2, "fail if any sample exceeds this many ulps (0 disables)")
	return cmd
}

func runUlp(cmd *cobra.Command, name string, samples int, minArg, maxArg float64, prec uint, logDist bool, bound float64) error {
	fn, ok := scalarFns[name]
	if !ok {
		return fmt.Errorf("unknown function %q", name)
	}
	if reference(name, minArg, prec) == nil || reference(name, maxArg, prec) == nil {
		return fmt.Errorf("no reference for %q over [%v, %v]", name, minArg, maxArg)
	}
	if !(minArg < maxArg) {
		return fmt.Errorf("empty range [%v, %v]", minArg, maxArg)
	}

	var (
		worst    float64
		worstArg float64
		sum      float64
	)
	for i := 0; i < samples; i++ {
		x := sample(minArg, maxArg, logDist)
		d := bigref.UlpDiff(fn(x), reference(name, x, prec))
		sum += d
		if d > worst {
			worst, worstArg = d, x
		}
	}
	cmd.Printf("%s over [%v, %v], %d samples\n", name, minArg, maxArg, samples)
	cmd.Printf("  max ulp  = %.3f at x = %v (%#016x)\n", worst, worstArg, mathBits(worstArg))
	cmd.Printf("  mean ulp = %.4f\n", sum/float64(samples))
	if bound > 0 && worst > bound {
		return fmt.Errorf("max ulp %.3f at x = %v exceeds bound %g", worst, worstArg, bound)
	}
	return nil
}

// sample draws one argument from [min, max]. In log mode the magnitude is
// drawn log-uniformly between the smallest nonzero bound magnitude and the
// largest, with a sign chosen by which bounds are reachable.
func sample(min, max float64, logDist bool) float64 {
	if !logDist {
		return min + rand.Float64()*(max-min)
	}
	hi := math.Max(math.Abs(min), math.Abs(max))
	lo := math.Min(math.Abs(min), math.Abs(max))
	if lo == 0 || min < 0 && max > 0 {
		lo = 0x1p-30 * hi
	}
	m := lo * math.Exp(rand.Float64()*math.Log(hi/lo))
	if min >= 0 {
		return m
	}
	if max <= 0 {
		return -m
	}
	if rand.IntN(2) == 0 {
		return -m
	}
	return m
}

// mathBits returns the IEEE-754 bit pattern of x for diagnostic printing.
func mathBits(x float64) uint64 {
	return math.Float64bits(x)
}
