// File: complement.go
// Role: "fst complement" — drives the complement package end to end.

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfst/complement"
	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
)

var complementCmd = &cobra.Command{
	Use:   "complement in-path [out-path]",
	Short: "Complement an unweighted, epsilon-free, deterministic acceptor",
	Args:  cobra.RangeArgs(1, 2),
	Run:   runComplement,
}

func runComplement(cmd *cobra.Command, args []string) {
	src, err := readMachine(args[0])
	if err != nil {
		fail("reading input", err)
	}

	comp := complement.New(src, semiring.TropicalZero, semiring.TropicalOne)
	if comp.Properties(core.Error, true).Has(core.Error) {
		fail("input violates complement's precondition (must be unweighted, epsilon-free, and deterministic)", nil)
	}

	dst := materialize(comp)

	outPath := ""
	if len(args) == 2 {
		outPath = args[1]
	}
	if err := writeMachine(outPath, dst); err != nil {
		fail("writing output", err)
	}
}
