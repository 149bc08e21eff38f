// File: io.go
// Role: Table.Write/Read — the magic-number-prefixed, little-endian
//       stream format, grounded line by line on encode.h's
//       EncodeTable<A>::Write/Read.

package encode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/symtab"
)

// Write serializes t as: magic, flags, tuple count, each tuple
// (ilabel, olabel, weight), then the input and/or output symbol table if
// present. Symbol tables are written only when backed by *symtab.Table;
// any other core.SymbolTable implementation is silently not persisted,
// matching the "internal use" nature of the HAS_ISYMS/HAS_OSYMS bits.
func (t *Table) Write(out io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	flags := t.flags
	if _, ok := t.iTable.(*symtab.Table); !ok {
		flags &^= flagHasISymbols
	}
	if _, ok := t.oTable.(*symtab.Table); !ok {
		flags &^= flagHasOSymbols
	}

	var header [16]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(MagicNumber))
	binary.LittleEndian.PutUint32(header[4:8], flags)
	binary.LittleEndian.PutUint64(header[8:16], uint64(len(t.tuples)))
	if _, err := out.Write(header[:]); err != nil {
		return err
	}

	for _, tup := range t.tuples {
		var rec [16]byte
		binary.LittleEndian.PutUint64(rec[0:8], uint64(tup.ILabel))
		binary.LittleEndian.PutUint64(rec[8:16], uint64(tup.OLabel))
		if _, err := out.Write(rec[:]); err != nil {
			return err
		}
		if err := tup.Weight.Write(out); err != nil {
			return err
		}
	}

	if flags&flagHasISymbols != 0 {
		if st, ok := t.iTable.(*symtab.Table); ok {
			if err := st.Write(out); err != nil {
				return err
			}
		}
	}
	if flags&flagHasOSymbols != 0 {
		if st, ok := t.oTable.(*symtab.Table); ok {
			if err := st.Write(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadTable reconstructs a Table from the stream Write produced. zero is a
// sample Weight of the semiring this table's tuples were drawn from, used
// to mint a fresh decodable Weight per tuple.
func ReadTable(in io.Reader, zero core.Weight) (*Table, error) {
	var header [16]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return nil, err
	}
	if got := int32(binary.LittleEndian.Uint32(header[0:4])); got != MagicNumber {
		return nil, fmt.Errorf("encode: bad magic number %d", got)
	}
	flags := binary.LittleEndian.Uint32(header[4:8])
	count := binary.LittleEndian.Uint64(header[8:16])

	t := NewTable(flags, zero)
	t.flags = flags // preserve the internal HAS_*SYMBOLS bits NewTable masks off
	t.tuples = make([]*Tuple, 0, count)
	for i := uint64(0); i < count; i++ {
		var rec [16]byte
		if _, err := io.ReadFull(in, rec[:]); err != nil {
			return nil, err
		}
		tup := &Tuple{
			ILabel: core.Label(binary.LittleEndian.Uint64(rec[0:8])),
			OLabel: core.Label(binary.LittleEndian.Uint64(rec[8:16])),
		}
		w := zero.Zero()
		if err := w.Read(in); err != nil {
			return nil, err
		}
		tup.Weight = w

		label := core.Label(len(t.tuples) + 1)
		t.tuples = append(t.tuples, tup)
		key := t.keyOf(tup)
		t.index[key] = append(t.index[key], label)
	}

	if flags&flagHasISymbols != 0 {
		st := symtab.New("")
		if err := st.Read(in); err != nil {
			return nil, err
		}
		t.iTable = st
	}
	if flags&flagHasOSymbols != 0 {
		st := symtab.New("")
		if err := st.Read(in); err != nil {
			return nil, err
		}
		t.oTable = st
	}
	return t, nil
}
