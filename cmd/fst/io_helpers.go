// File: io_helpers.go
// Role: shared in-path/out-path plumbing every subcommand uses to read a
//       machine from disk, write one back (or to stdout when out-path is
//       omitted), and materialize a delayed core.Fst into a concrete
//       vector.Fst via the visit package's CopyVisitor.

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/vector"
	"github.com/katalvlaran/wfst/visit"
)

// readMachine opens path and decodes a vector.Fst from it. The only
// semiring this module ships is tropical, so that's the weight type every
// stream is assumed to carry.
func readMachine(path string) (*vector.Fst, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	fst, err := vector.ReadFst(f, semiring.TropicalZero)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return fst, nil
}

// writeMachine encodes f to path, or to stdout if path is empty.
func writeMachine(path string, f *vector.Fst) error {
	if path == "" {
		return vector.WriteFst(os.Stdout, f)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := vector.WriteFst(out, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// materialize drives a full copy of src (which may be a delayed,
// on-the-fly machine such as complement.Fst or encode.Fst) into a fresh
// vector.Fst, forcing every state and arc to be computed exactly once.
func materialize(src core.Fst) *vector.Fst {
	dst := vector.New(src.ArcType(), semiring.TropicalZero)
	visit.Visit(src, visit.NewCopyVisitor(dst), visit.NewFIFOQueue(), visit.AnyArcFilter, false)

	return dst
}
