// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fdlibm/libm"
)

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce <x>...",
		Short: "Show the pi/2 reduction of each argument",
		Long: `Show the pi/2 reduction of each argument: the quadrant n mod 4,
the count of pi/2 multiples removed, and the remainder head/tail pair
(y0, y1) with x = n*(pi/2) + y0 + y1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parsing %q: %w", arg, err)
				}
				n, y0, y1 := libm.RemPio2(x)
				cmd.Printf("x = %-24v quadrant = %d  n = %d\n", x, n&3, n)
				cmd.Printf("  y0 = %-24v (%#016x)\n", y0, mathBits(y0))
				cmd.Printf("  y1 = %-24v (%#016x)\n", y1, mathBits(y1))
			}
			return nil
		},
	}
}
