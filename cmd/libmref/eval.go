// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fdlibm/bigref"
	"github.com/ajroetker/go-fdlibm/libm"
)

// scalarFns maps function names to the engine's double-precision entry
// points. sincos and atan2 are handled separately in runEval because of
// their arity.
var scalarFns = map[string]func(float64) float64{
	"sin":  libm.Sin,
	"cos":  libm.Cos,
	"tan":  libm.Tan,
	"asin": libm.Asin,
	"acos": libm.Acos,
	"atan": libm.Atan,
}

// singleFns maps names to the float32 track.
var singleFns = map[string]func(float32) float32{
	"sinf": libm.Sinf,
	"cosf": libm.Cosf,
	"tanf": libm.Tanf,
}

// reference returns the arbitrary-precision value of fn at x, or nil when
// no big reference exists for the function or |x| is out of the reference
// reducer's range.
func reference(name string, x float64, prec uint) *big.Float {
	if x > 1e150 || x < -1e150 {
		return nil
	}
	switch name {
	case "sin":
		return bigref.Sin(x, prec)
	case "cos":
		return bigref.Cos(x, prec)
	case "tan":
		return bigref.Tan(x, prec)
	}
	return nil
}

func newEvalCmd() *cobra.Command {
	var prec uint
	cmd := &cobra.Command{
		Use:   "eval <fn> <x> [y]",
		Short: "Evaluate an engine function at the given argument(s)",
		Long: `Evaluate an engine function at the given argument(s).

Functions: sin, cos, tan, asin, acos, atan, atan2, sincos, sinf, cosf, tanf.
atan2 takes two arguments (y then x). For sin, cos and tan the result is
also compared against an arbitrary-precision reference and the error is
reported in ulps.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, prec)
		},
	}
	cmd.Flags().UintVar(&prec, "prec", 96, "reference precision in bits")
	return cmd
}

func runEval(cmd *cobra.Command, args []string, prec uint) error {
	name := args[0]
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", args[1], err)
	}

	switch name {
	case "atan2":
		if len(args) != 3 {
			return fmt.Errorf("atan2 needs two arguments")
		}
		x2, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", args[2], err)
		}
		cmd.Printf("atan2(%v, %v) = %v\n", x, x2, libm.Atan2(x, x2))
		return nil
	case "sincos":
		s, c := libm.Sincos(x)
		cmd.Printf("sin(%v) = %v\ncos(%v) = %v\n", x, s, x, c)
		return nil
	}

	if fn, ok := singleFns[name]; ok {
		cmd.Printf("%s(%v) = %v\n", name, float32(x), fn(float32(x)))
		return nil
	}

	fn, ok := scalarFns[name]
	if !ok {
		return fmt.Errorf("unknown function %q", name)
	}
	got := fn(x)
	cmd.Printf("%s(%v) = %v\n", name, x, got)

	if ref := reference(name, x, prec); ref != nil {
		want, _ := ref.Float64()
		cmd.Printf("reference  = %v\nulp error  = %.3f\n", want, bigref.UlpDiff(got, ref))
	}
	return nil
}
