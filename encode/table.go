// File: table.go
// Role: Table — the append-only, bidirectional (ilabel, olabel, weight)
//       <-> Label map, grounded line by line on encode.h's EncodeTable<A>.
// AI-HINT (file):
//   - Labels are 1-based; 0 is never a valid encoded label (kNoLabel-style
//     miss uses core.NoLabel, which is -1).
//   - The hash index uses xxhash in place of the original's bespoke
//     shift-xor combiner; collisions are resolved by a linear scan of the
//     bucket comparing full Tuples, exactly as the original's TupleEqual
//     comparator does after a hash bucket match.

package encode

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/wfst/core"
)

// Tuple is one encoded (ilabel, olabel, weight) triple. A field masked out
// by Table's flags holds its canonical placeholder (0 for olabel, One for
// weight) rather than the arc's real value.
type Tuple struct {
	ILabel core.Label
	OLabel core.Label
	Weight core.Weight
}

// Table is the shared structure an encoder mutates and a decoder built
// from the same Mapper only reads.
type Table struct {
	mu     sync.RWMutex
	flags  uint32
	tuples []*Tuple
	index  map[uint64][]core.Label // xxhash bucket -> 1-based labels

	iTable core.SymbolTable
	oTable core.SymbolTable

	zero core.Weight // semiring sample; the encoder takes its super-final One from it
}

// NewTable returns an empty table honoring flags&FlagAll. zero is a sample
// Weight of the semiring this table's arcs are drawn from; the encoder
// derives the super-final state's One weight from it.
func NewTable(flags uint32, zero core.Weight) *Table {
	return &Table{
		flags: flags & FlagAll,
		index: make(map[uint64][]core.Label),
		zero:  zero,
	}
}

func (t *Table) projectedTuple(a core.Arc) *Tuple {
	tup := &Tuple{ILabel: a.ILabel}
	if t.flags&FlagLabels != 0 {
		tup.OLabel = a.OLabel
	}
	if t.flags&FlagWeights != 0 {
		tup.Weight = a.Weight
	} else {
		tup.Weight = a.Weight.One()
	}
	return tup
}

func (t *Table) keyOf(tup *Tuple) uint64 {
	h := xxhash.New()
	var buf [8]byte
	putLabel := func(l core.Label) {
		buf[0] = byte(l)
		buf[1] = byte(l >> 8)
		buf[2] = byte(l >> 16)
		buf[3] = byte(l >> 24)
		buf[4] = byte(l >> 32)
		buf[5] = byte(l >> 40)
		buf[6] = byte(l >> 48)
		buf[7] = byte(l >> 56)
		_, _ = h.Write(buf[:])
	}
	putLabel(tup.ILabel)
	if t.flags&FlagLabels != 0 {
		putLabel(tup.OLabel)
	}
	if t.flags&FlagWeights != 0 {
		wh := tup.Weight.Hash()
		buf[0] = byte(wh)
		buf[1] = byte(wh >> 8)
		buf[2] = byte(wh >> 16)
		buf[3] = byte(wh >> 24)
		buf[4] = byte(wh >> 32)
		buf[5] = byte(wh >> 40)
		buf[6] = byte(wh >> 48)
		buf[7] = byte(wh >> 56)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

func tuplesEqual(a, b *Tuple) bool {
	if a.ILabel != b.ILabel || a.OLabel != b.OLabel {
		return false
	}
	if a.Weight == nil || b.Weight == nil {
		return a.Weight == nil && b.Weight == nil
	}
	return a.Weight.Equal(b.Weight)
}

// Encode returns the dense label bound to arc's flag-selected projection,
// minting a fresh one on first sight.
func (t *Table) Encode(a core.Arc) core.Label {
	tup := t.projectedTuple(a)
	key := t.keyOf(tup)

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range t.index[key] {
		if tuplesEqual(t.tuples[l-1], tup) {
			return l
		}
	}
	t.tuples = append(t.tuples, tup)
	l := core.Label(len(t.tuples))
	t.index[key] = append(t.index[key], l)
	return l
}

// GetLabel performs the same lookup as Encode without mutating the table,
// returning core.NoLabel on a miss.
func (t *Table) GetLabel(a core.Arc) core.Label {
	tup := t.projectedTuple(a)
	key := t.keyOf(tup)

	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, l := range t.index[key] {
		if tuplesEqual(t.tuples[l-1], tup) {
			return l
		}
	}
	return core.NoLabel
}

// Decode returns the Tuple bound to label, or nil if label is out of range.
func (t *Table) Decode(label core.Label) *Tuple {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if label < 1 || int(label) > len(t.tuples) {
		return nil
	}
	return t.tuples[label-1]
}

// Size returns the number of distinct tuples encoded so far.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.tuples)
}

// Flags returns the non-internal encode flags this table honors.
func (t *Table) Flags() uint32 { return t.flags & FlagAll }

func (t *Table) InputSymbols() core.SymbolTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.iTable
}

func (t *Table) OutputSymbols() core.SymbolTable {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.oTable
}

func (t *Table) SetInputSymbols(s core.SymbolTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.iTable = s
	if s != nil {
		t.flags |= flagHasISymbols
	} else {
		t.flags &^= flagHasISymbols
	}
}

func (t *Table) SetOutputSymbols(s core.SymbolTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.oTable = s
	if s != nil {
		t.flags |= flagHasOSymbols
	} else {
		t.flags &^= flagHasOSymbols
	}
}
