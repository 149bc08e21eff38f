// File: tropical.go
// Role: TropicalWeight — the (min, +) semiring over float64, with +Inf as
//       Zero, 0 as One, and NaN as the failure sentinel.
// AI-HINT (file):
//   - *TropicalWeight, not TropicalWeight, satisfies core.Weight: Read
//     mutates the receiver, so every method here uses a pointer receiver
//     for consistency even where the method itself does not mutate.
//   - Two NaN tropical weights compare Equal to each other (failure
//     sentinel identity) and unequal to every other value — this mirrors
//     core.Weight's "failure sentinel" contract, not IEEE-754 NaN
//     comparison semantics.

package semiring

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/wfst/core"
)

// TropicalWeight is a core.Weight over the tropical (min, +) semiring.
// Use *TropicalWeight wherever a core.Weight is expected; New and the
// package-level constants below already return the pointer form.
type TropicalWeight float64

// New returns a *TropicalWeight wrapping v.
func New(v float64) *TropicalWeight {
	w := TropicalWeight(v)
	return &w
}

// TropicalZero and TropicalOne are the semiring's identities, ready to use
// without a type assertion.
var (
	TropicalZero = New(math.Inf(1))
	TropicalOne  = New(0)
)

// Plus is the semiring ⊕ operation: min.
func Plus(a, b *TropicalWeight) *TropicalWeight {
	if *a < *b {
		return New(float64(*a))
	}
	return New(float64(*b))
}

// Times is the semiring ⊗ operation: +.
func Times(a, b *TropicalWeight) *TropicalWeight {
	return New(float64(*a) + float64(*b))
}

// Zero returns the additive identity (+Inf), absorbing for Times.
func (*TropicalWeight) Zero() core.Weight { return New(math.Inf(1)) }

// One returns the multiplicative identity (0).
func (*TropicalWeight) One() core.Weight { return New(0) }

// NoWeight returns the failure sentinel (NaN).
func (*TropicalWeight) NoWeight() core.Weight { return New(math.NaN()) }

// Equal reports whether w and other denote the same tropical value, with
// NaN treated as a single failure-sentinel identity rather than under
// IEEE-754 comparison rules.
func (w *TropicalWeight) Equal(other core.Weight) bool {
	o, ok := other.(*TropicalWeight)
	if !ok || o == nil {
		return false
	}
	if math.IsNaN(float64(*w)) || math.IsNaN(float64(*o)) {
		return math.IsNaN(float64(*w)) && math.IsNaN(float64(*o))
	}
	return float64(*w) == float64(*o)
}

// Hash agrees with Equal: every NaN hashes the same, +0 and -0 hash the
// same, every other value hashes by its IEEE-754 bit pattern.
func (w *TropicalWeight) Hash() uint64 {
	if math.IsNaN(float64(*w)) {
		return math.Float64bits(math.NaN())
	}
	if *w == 0 {
		return 0
	}
	return math.Float64bits(float64(*w))
}

// Write serializes w as 8 little-endian bytes of its IEEE-754 bit pattern.
func (w *TropicalWeight) Write(out io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(*w)))
	_, err := out.Write(buf[:])
	return err
}

// Read replaces *w with the value serialized by Write.
func (w *TropicalWeight) Read(in io.Reader) error {
	var buf [8]byte
	if _, err := io.ReadFull(in, buf[:]); err != nil {
		return err
	}
	*w = TropicalWeight(math.Float64frombits(binary.LittleEndian.Uint64(buf[:])))
	return nil
}

// String renders w with fmt's %g verb, or "Inf"/"NaN" for the
// semiring's Zero and failure sentinel.
func (w *TropicalWeight) String() string {
	switch {
	case math.IsInf(float64(*w), 1):
		return "Inf"
	case math.IsNaN(float64(*w)):
		return "NaN"
	default:
		return fmt.Sprintf("%g", float64(*w))
	}
}
