// File: io.go
// Role: WriteFst/ReadFst — a magic-number-prefixed, little-endian stream
//       format for *Fst, following the same layout discipline as
//       encode.Table.Write/ReadTable: fixed-width header, then one record
//       per variable-length piece, symbol tables trailing only when
//       present. This is cmd/fst's on-disk machine format.

package vector

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/wfst/core"
	"github.com/katalvlaran/wfst/symtab"
)

// MagicNumber identifies a vector.Fst stream.
const MagicNumber uint32 = 0x77665374 // "wfSt"

const (
	flagHasISymbols uint32 = 0x0001
	flagHasOSymbols uint32 = 0x0002
)

// WriteFst serializes f as: magic, flags, arc-type string, state count,
// start state, then per state its final weight (a leading byte
// distinguishes "never final" from a Zero() final weight) and its arcs,
// then the input and/or output symbol table if backed by *symtab.Table.
func WriteFst(out io.Writer, f *Fst) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var flags uint32
	_, iOK := f.iTable.(*symtab.Table)
	_, oOK := f.oTable.(*symtab.Table)
	if f.iTable != nil && iOK {
		flags |= flagHasISymbols
	}
	if f.oTable != nil && oOK {
		flags |= flagHasOSymbols
	}

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], MagicNumber)
	binary.LittleEndian.PutUint32(header[4:8], flags)
	if _, err := out.Write(header[:]); err != nil {
		return err
	}

	if err := writeString(out, f.arcType); err != nil {
		return err
	}

	var counts [16]byte
	binary.LittleEndian.PutUint64(counts[0:8], uint64(len(f.states)))
	binary.LittleEndian.PutUint64(counts[8:16], uint64(f.start))
	if _, err := out.Write(counts[:]); err != nil {
		return err
	}

	for _, st := range f.states {
		if err := writeFinal(out, st.final); err != nil {
			return err
		}

		var n [8]byte
		binary.LittleEndian.PutUint64(n[:], uint64(len(st.arcs)))
		if _, err := out.Write(n[:]); err != nil {
			return err
		}

		for _, a := range st.arcs {
			if err := writeArc(out, a); err != nil {
				return err
			}
		}
	}

	if flags&flagHasISymbols != 0 {
		if err := f.iTable.(*symtab.Table).Write(out); err != nil {
			return err
		}
	}
	if flags&flagHasOSymbols != 0 {
		if err := f.oTable.(*symtab.Table).Write(out); err != nil {
			return err
		}
	}

	return nil
}

// ReadFst reconstructs an *Fst from the stream WriteFst produced. zero is
// a sample Weight of the semiring the machine was built over, used to mint
// fresh decodable Weight values.
func ReadFst(in io.Reader, zero core.Weight) (*Fst, error) {
	var header [8]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return nil, err
	}
	if got := binary.LittleEndian.Uint32(header[0:4]); got != MagicNumber {
		return nil, fmt.Errorf("vector: bad magic number %#x", got)
	}
	flags := binary.LittleEndian.Uint32(header[4:8])

	arcType, err := readString(in)
	if err != nil {
		return nil, err
	}

	var counts [16]byte
	if _, err := io.ReadFull(in, counts[:]); err != nil {
		return nil, err
	}
	numStates := binary.LittleEndian.Uint64(counts[0:8])
	start := core.StateId(binary.LittleEndian.Uint64(counts[8:16]))

	f := New(arcType, zero)
	f.start = start
	f.states = make([]*state, numStates)

	for i := range f.states {
		final, err := readFinal(in, zero)
		if err != nil {
			return nil, err
		}

		var n [8]byte
		if _, err := io.ReadFull(in, n[:]); err != nil {
			return nil, err
		}
		numArcs := binary.LittleEndian.Uint64(n[:])

		arcs := make([]core.Arc, numArcs)
		for j := range arcs {
			a, err := readArc(in, zero)
			if err != nil {
				return nil, err
			}
			arcs[j] = a
		}

		f.states[i] = &state{arcs: arcs, final: final}
	}

	if flags&flagHasISymbols != 0 {
		st := symtab.New("")
		if err := st.Read(in); err != nil {
			return nil, err
		}
		f.iTable = st
	}
	if flags&flagHasOSymbols != 0 {
		st := symtab.New("")
		if err := st.Read(in); err != nil {
			return nil, err
		}
		f.oTable = st
	}

	return f, nil
}

func writeString(out io.Writer, s string) error {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
	if _, err := out.Write(n[:]); err != nil {
		return err
	}
	_, err := out.Write([]byte(s))

	return err
}

func readString(in io.Reader) (string, error) {
	var n [8]byte
	if _, err := io.ReadFull(in, n[:]); err != nil {
		return "", err
	}
	length := binary.LittleEndian.Uint64(n[:])
	buf := make([]byte, length)
	if _, err := io.ReadFull(in, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// writeFinal writes a leading presence byte (0 = never final, i.e.
// state.final == nil; 1 = final weight follows) so ReadFst can
// distinguish an un-set final from an explicit Zero() final weight.
func writeFinal(out io.Writer, w core.Weight) error {
	if w == nil {
		_, err := out.Write([]byte{0})

		return err
	}
	if _, err := out.Write([]byte{1}); err != nil {
		return err
	}

	return w.Write(out)
}

func readFinal(in io.Reader, zero core.Weight) (core.Weight, error) {
	var present [1]byte
	if _, err := io.ReadFull(in, present[:]); err != nil {
		return nil, err
	}
	if present[0] == 0 {
		return nil, nil
	}

	w := zero.Zero()
	if err := w.Read(in); err != nil {
		return nil, err
	}

	return w, nil
}

func writeArc(out io.Writer, a core.Arc) error {
	var rec [24]byte
	binary.LittleEndian.PutUint64(rec[0:8], uint64(a.ILabel))
	binary.LittleEndian.PutUint64(rec[8:16], uint64(a.OLabel))
	binary.LittleEndian.PutUint64(rec[16:24], uint64(a.NextState))
	if _, err := out.Write(rec[:]); err != nil {
		return err
	}

	return a.Weight.Write(out)
}

func readArc(in io.Reader, zero core.Weight) (core.Arc, error) {
	var rec [24]byte
	if _, err := io.ReadFull(in, rec[:]); err != nil {
		return core.Arc{}, err
	}

	w := zero.Zero()
	if err := w.Read(in); err != nil {
		return core.Arc{}, err
	}

	return core.Arc{
		ILabel:    core.Label(binary.LittleEndian.Uint64(rec[0:8])),
		OLabel:    core.Label(binary.LittleEndian.Uint64(rec[8:16])),
		Weight:    w,
		NextState: core.StateId(binary.LittleEndian.Uint64(rec[16:24])),
	}, nil
}
