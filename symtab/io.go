// File: io.go
// Role: binary serialization for Table, mirroring encode.Table's
//       magic-number-then-count-then-records discipline.

package symtab

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/derekparker/trie"

	"github.com/katalvlaran/wfst/core"
)

// magicSymtab is "SYMT" packed into a uint32, read/written little-endian.
const magicSymtab uint32 = 0x53594D54

// Write serializes t as: magic (uint32), count (uint64), then count
// records of (label uint64, name-length uint32, name bytes).
func (t *Table) Write(out io.Writer) error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:4], magicSymtab)
	binary.LittleEndian.PutUint64(header[4:12], uint64(len(t.byLabel)))
	if _, err := out.Write(header[:]); err != nil {
		return err
	}
	for l, name := range t.byLabel {
		var rec [12]byte
		binary.LittleEndian.PutUint64(rec[0:8], uint64(l))
		binary.LittleEndian.PutUint32(rec[8:12], uint32(len(name)))
		if _, err := out.Write(rec[:]); err != nil {
			return err
		}
		if _, err := io.WriteString(out, name); err != nil {
			return err
		}
	}
	return nil
}

// Read replaces t's contents with the table serialized by Write. Epsilon
// is read from the stream and checked: Read rejects a stream whose
// record 0 does not bind "<eps>" to label 0.
func (t *Table) Read(in io.Reader) error {
	var header [12]byte
	if _, err := io.ReadFull(in, header[:]); err != nil {
		return err
	}
	if got := binary.LittleEndian.Uint32(header[0:4]); got != magicSymtab {
		return fmt.Errorf("symtab: bad magic number %#x", got)
	}
	count := binary.LittleEndian.Uint64(header[4:12])

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byName = make(map[string]core.Label, count)
	t.byLabel = make([]string, 0, count)
	t.prefix = trie.New()

	for i := uint64(0); i < count; i++ {
		var rec [12]byte
		if _, err := io.ReadFull(in, rec[:]); err != nil {
			return err
		}
		label := core.Label(binary.LittleEndian.Uint64(rec[0:8]))
		nameLen := binary.LittleEndian.Uint32(rec[8:12])
		nameBuf := make([]byte, nameLen)
		if _, err := io.ReadFull(in, nameBuf); err != nil {
			return err
		}
		name := string(nameBuf)
		if label != core.Label(i) {
			return fmt.Errorf("symtab: non-dense label %d at record %d", label, i)
		}
		if i == 0 && name != epsilonName {
			return fmt.Errorf("symtab: record 0 must bind %q, got %q", epsilonName, name)
		}
		t.byLabel = append(t.byLabel, name)
		t.byName[name] = label
		t.prefix.Add(name, label)
	}
	return nil
}
