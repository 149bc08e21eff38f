// File: table.go
// Role: Table — the append-only label/name bidirectional map.
// AI-HINT (file):
//   - AddSymbol is idempotent per name: re-adding an existing name returns
//     its existing label rather than allocating a new one.
//   - Labels are assigned densely starting at 1; label 0 is pre-bound to
//     "<eps>" by New and can never be rebound.

package symtab

import (
	"sync"

	"github.com/derekparker/trie"

	"github.com/katalvlaran/wfst/core"
)

const epsilonName = "<eps>"

// Table is core.SymbolTable's reference implementation.
type Table struct {
	mu      sync.RWMutex
	name    string
	byName  map[string]core.Label
	byLabel []string // byLabel[l] is the name bound to label l
	prefix  *trie.Trie
}

// New returns an empty Table with label 0 pre-bound to "<eps>".
func New(name string) *Table {
	t := &Table{
		name:    name,
		byName:  make(map[string]core.Label),
		byLabel: []string{epsilonName},
		prefix:  trie.New(),
	}
	t.byName[epsilonName] = core.Epsilon
	t.prefix.Add(epsilonName, core.Epsilon)
	return t
}

// Name returns the symbol table's name (e.g. "words", "phones").
func (t *Table) Name() string { return t.name }

// Find returns the label bound to name, if any.
func (t *Table) Find(name string) (core.Label, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	l, ok := t.byName[name]
	return l, ok
}

// FindLabel returns the name bound to l, if any.
func (t *Table) FindLabel(l core.Label) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if l < 0 || int(l) >= len(t.byLabel) {
		return "", false
	}
	return t.byLabel[l], true
}

// AddSymbol binds name to a fresh dense label if it is not already bound,
// and returns the bound label either way.
func (t *Table) AddSymbol(name string) core.Label {
	t.mu.Lock()
	defer t.mu.Unlock()
	if l, ok := t.byName[name]; ok {
		return l
	}
	l := core.Label(len(t.byLabel))
	t.byLabel = append(t.byLabel, name)
	t.byName[name] = l
	t.prefix.Add(name, l)
	return l
}

// Prefix returns every bound name with prefix p, in the trie's traversal
// order. Epsilon is included when p is empty or a prefix of "<eps>".
func (t *Table) Prefix(p string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.prefix.PrefixSearch(p)
}

// Len returns the number of bound symbols, including epsilon.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byLabel)
}
