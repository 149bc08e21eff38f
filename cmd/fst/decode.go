// File: decode.go
// Role: "fst decode" — the inverse of "fst encode": reads back an
//       EncodeTable and undoes the folding EncodeFst performed.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfst/encode"
	"github.com/katalvlaran/wfst/semiring"
)

var decodeCmd = &cobra.Command{
	Use:   "decode in-path table-path out-path",
	Short: "Undo an EncodeTable folding, restoring original labels/weights",
	Args:  cobra.ExactArgs(3),
	Run:   runDecode,
}

func runDecode(cmd *cobra.Command, args []string) {
	src, err := readMachine(args[0])
	if err != nil {
		fail("reading input", err)
	}

	tableFile, err := os.Open(args[1])
	if err != nil {
		fail("opening table file", err)
	}
	defer tableFile.Close()

	table, err := encode.ReadTable(tableFile, semiring.TropicalZero)
	if err != nil {
		fail("reading table", err)
	}

	mapper := encode.NewMapperFromTable(table, encode.ModeDecode)
	dec := encode.NewDecodeFst(src, mapper)
	dst := materialize(dec)

	if mapper.Error() {
		fail("decoding observed an inconsistent encoded arc", nil)
	}

	if err := writeMachine(args[2], dst); err != nil {
		fail("writing output", err)
	}
}
