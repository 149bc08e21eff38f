// Package symtab implements core.SymbolTable: an append-only,
// bidirectional mapping between a core.Label and a string name, backed by
// a dense slice for O(1) reverse lookup and a compressed trie
// (github.com/derekparker/trie) for prefix queries.
//
// Epsilon (label 0) is always pre-bound to the name "<eps>" and counts
// against no caller-visible budget: AddSymbol returns 0 only for "<eps>"
// itself and assigns every other new name a label of 1 or more.
package symtab
