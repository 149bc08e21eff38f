// File: mapper.go
// Role: Mapper — EncodeMapper<A>::operator(), ported arc by arc.
// AI-HINT (file):
//   - NextState == core.NoStateId is the traversal's convention for "this
//     Arc actually represents a state's final weight"; Map honors that
//     convention on both directions rather than special-casing finals
//     itself, exactly as the original operator() does.

package encode

import "github.com/katalvlaran/wfst/core"

// Mapper applies a Table in one direction. A decoder built from an
// encoder (NewDecodeMapper) shares the same Table: labels minted during a
// later traversal stage stay decodable.
type Mapper struct {
	table *Table
	typ   Type
	flags uint32
	err   bool
}

// NewMapper returns a fresh ENCODE- or DECODE-direction mapper over a new
// Table. zero is a sample Weight of the arcs' semiring.
func NewMapper(flags uint32, typ Type, zero core.Weight) *Mapper {
	return &Mapper{table: NewTable(flags, zero), typ: typ, flags: flags & FlagAll}
}

// NewMapperFromTable returns a mapper of the given direction sharing an
// already-built table, grounded on encode.h's private
// EncodeMapper(flags, type, table) constructor used when a table has been
// read back from disk rather than built fresh by an encoding pass.
func NewMapperFromTable(table *Table, typ Type) *Mapper {
	return &Mapper{table: table, typ: typ, flags: table.Flags()}
}

// NewDecodeMapper returns a DECODE-direction mapper sharing m's table.
func NewDecodeMapper(m *Mapper) *Mapper {
	return &Mapper{table: m.table, typ: ModeDecode, flags: m.flags, err: m.err}
}

func (m *Mapper) Table() *Table { return m.table }
func (m *Mapper) Type() Type    { return m.typ }
func (m *Mapper) Flags() uint32 { return m.flags }
func (m *Mapper) Error() bool   { return m.err }

// FinalAction reports whether encoding weights requires materializing a
// super-final state for non-zero final weights.
func (m *Mapper) FinalAction() FinalAction {
	if m.typ == ModeEncode && m.flags&FlagWeights != 0 {
		return MapRequireSuperFinal
	}
	return MapNoSuperFinal
}

func (m *Mapper) InputSymbols() core.SymbolTable  { return m.table.InputSymbols() }
func (m *Mapper) OutputSymbols() core.SymbolTable { return m.table.OutputSymbols() }

func (m *Mapper) SetInputSymbols(s core.SymbolTable)  { m.table.SetInputSymbols(s) }
func (m *Mapper) SetOutputSymbols(s core.SymbolTable) { m.table.SetOutputSymbols(s) }

// Map transforms one arc. a.NextState == core.NoStateId signals that a is
// really a final weight being routed through the same encoding; the
// NextState field of the result is always a's NextState unchanged, so
// callers that need to redirect a folded final-weight arc to a real
// super-final state must do so themselves after calling Map.
func (m *Mapper) Map(a core.Arc) core.Arc {
	if m.typ == ModeEncode {
		return m.mapEncode(a)
	}
	return m.mapDecode(a)
}

func (m *Mapper) mapEncode(a core.Arc) core.Arc {
	isFinal := a.NextState == core.NoStateId
	if isFinal && (m.flags&FlagWeights == 0 || a.Weight.Equal(a.Weight.Zero())) {
		return a
	}
	label := m.table.Encode(a)
	olabel := a.OLabel
	weight := a.Weight
	if m.flags&FlagLabels != 0 {
		olabel = label
	}
	if m.flags&FlagWeights != 0 {
		weight = a.Weight.One()
	}
	return core.Arc{ILabel: label, OLabel: olabel, Weight: weight, NextState: a.NextState}
}

func (m *Mapper) mapDecode(a core.Arc) core.Arc {
	if a.NextState == core.NoStateId {
		return a
	}
	if a.ILabel == core.Epsilon {
		return a
	}
	if m.flags&FlagLabels != 0 && a.ILabel != a.OLabel {
		m.err = true
	}
	if m.flags&FlagWeights != 0 && !a.Weight.Equal(a.Weight.One()) {
		m.err = true
	}
	tup := m.table.Decode(a.ILabel)
	if tup == nil {
		m.err = true
		return core.Arc{ILabel: core.NoLabel, OLabel: core.NoLabel, Weight: a.Weight.NoWeight(), NextState: a.NextState}
	}
	olabel := a.OLabel
	weight := a.Weight
	if m.flags&FlagLabels != 0 {
		olabel = tup.OLabel
	}
	if m.flags&FlagWeights != 0 {
		weight = tup.Weight
	}
	return core.Arc{ILabel: tup.ILabel, OLabel: olabel, Weight: weight, NextState: a.NextState}
}
