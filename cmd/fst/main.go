// Copyright header intentionally omitted: the teacher's cmd/aleutian main
// carries no license header of its own, and this file follows suit.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes, exactly per the CLI's external-interface contract: 0
// success, 1 any usage error, unreadable input, mismatched arc types,
// unknown enum value, or write failure.
const (
	exitSuccess = 0
	exitFailure = 1
)

var rootCmd = &cobra.Command{
	Use:   "fst",
	Short: "Inspect and transform weighted finite-state transducers",
	Long: `fst operates on the on-disk machine format this module's vector
package reads and writes: complement, encode, decode, and copy are each a
thin driver over the corresponding library package.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func init() {
	rootCmd.AddCommand(complementCmd, encodeCmd, decodeCmd, copyCmd)
}

// fail prints msg (wrapping err, if non-nil) to stderr and exits 1. It
// never returns, matching the teacher's os.Exit-from-Run command style
// rather than cobra's RunE error plumbing, since every failure here maps
// to the single documented exit code 1.
func fail(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "fst: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "fst: %s\n", msg)
	}
	os.Exit(exitFailure)
}
