// File: encode.go
// Role: "fst encode" — drives the encode package's EncodeFst end to end,
//       writing both the transformed machine and the EncodeTable a later
//       decode needs.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wfst/config"
	"github.com/katalvlaran/wfst/encode"
	"github.com/katalvlaran/wfst/semiring"
)

var (
	encodeLabels  bool
	encodeWeights bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode in-path table-path out-path",
	Short: "Fold arc labels and/or weights into an EncodeTable",
	Args:  cobra.ExactArgs(3),
	Run:   runEncode,
}

func init() {
	defaults := config.EncodeDefaults{Labels: true, Weights: true}
	if cfg, err := config.Load(); err == nil {
		defaults = cfg.Encode
	}

	encodeCmd.Flags().BoolVar(&encodeLabels, "labels", defaults.Labels, "fold ilabel/olabel into one encoded label")
	encodeCmd.Flags().BoolVar(&encodeWeights, "weights", defaults.Weights, "fold arc and final weights into the encoded label")
}

func runEncode(cmd *cobra.Command, args []string) {
	src, err := readMachine(args[0])
	if err != nil {
		fail("reading input", err)
	}

	var flags uint32
	if encodeLabels {
		flags |= encode.FlagLabels
	}
	if encodeWeights {
		flags |= encode.FlagWeights
	}
	if flags == 0 {
		fail("at least one of --labels or --weights must be set", nil)
	}

	mapper := encode.NewMapper(flags, encode.ModeEncode, semiring.TropicalZero)
	enc := encode.New(src, mapper)
	dst := materialize(enc)

	tableFile, err := os.Create(args[1])
	if err != nil {
		fail("creating table file", err)
	}
	defer tableFile.Close()
	if err := mapper.Table().Write(tableFile); err != nil {
		fail("writing table", err)
	}

	if err := writeMachine(args[2], dst); err != nil {
		fail("writing output", err)
	}
}
