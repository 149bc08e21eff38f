// File: flags.go
// Role: the flag and direction constants encode.h defines, kept at the
//       same numeric values for format compatibility with the original
//       stream layout.

package encode

// Flags selects which arc fields Table folds into its encoded labels.
const (
	FlagLabels  uint32 = 0x0001
	FlagWeights uint32 = 0x0002
	FlagAll     uint32 = FlagLabels | FlagWeights

	flagHasISymbols uint32 = 0x0004
	flagHasOSymbols uint32 = 0x0008
)

// MagicNumber identifies an encode table stream, and its endianness: the
// reader rejects any stream that does not begin with exactly this value.
const MagicNumber int32 = 2129983209

// Type selects a Mapper's direction.
type Type int

const (
	ModeEncode Type = 1
	ModeDecode Type = 2
)

// FinalAction tells a traversal how to dispose of a machine's final
// weights once a Mapper has processed its arcs.
type FinalAction int

const (
	// MapNoSuperFinal leaves final weights as ordinary final weights.
	MapNoSuperFinal FinalAction = iota
	// MapRequireSuperFinal means every non-zero final weight must be
	// folded into an arc leading to a single new super-final state.
	MapRequireSuperFinal
)
