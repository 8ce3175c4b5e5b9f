// Copyright 2025 The go-fdlibm Authors. SPDX-License-Identifier: Apache-2.0

// Command libmref inspects the trigonometric engine from the command line.
//
// Usage:
//
//	libmref eval sin 1e22               # evaluate and compare against a reference
//	libmref reduce 1.5707963267948966   # show quadrant and remainder pair
//	libmref ulp sin --samples 100000 --min -1e6 --max 1e6
//
// Arguments accept any Go float syntax, including hex floats like 0x1p100.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "libmref:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libmref",
		Short:         "Inspect and measure the go-fdlibm trigonometric engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEvalCmd(), newReduceCmd(), newUlpCmd())
	return root
}
