// File: fst_class.go
// Role: FstClass / MutableFstClass — the scripting layer's type-erased
//       handles, ported from original_source's fst/script/fst-class.h.
//       core.Fst already carries ArcType() itself, so the erasure these add
//       is purely one of vocabulary: an operation's ArgPack
//       stores *FstClass / *MutableFstClass fields rather than a bare
//       core.Fst, so Apply's callers and the registered operation bodies
//       agree on a stable boxed shape instead of each defining their own.

package script

import "github.com/katalvlaran/wfst/core"

// FstClass boxes a core.Fst for passage through the dispatch layer.
type FstClass struct {
	fst core.Fst
}

// NewFstClass boxes fst. fst must not be nil.
func NewFstClass(fst core.Fst) *FstClass { return &FstClass{fst: fst} }

// Fst returns the boxed machine.
func (c *FstClass) Fst() core.Fst { return c.fst }

// ArcType returns the boxed machine's arc type tag.
func (c *FstClass) ArcType() string { return c.fst.ArcType() }

// MutableFstClass boxes a core.MutableFst for passage through the dispatch
// layer.
type MutableFstClass struct {
	fst core.MutableFst
}

// NewMutableFstClass boxes fst. fst must not be nil.
func NewMutableFstClass(fst core.MutableFst) *MutableFstClass { return &MutableFstClass{fst: fst} }

// MutableFst returns the boxed machine.
func (c *MutableFstClass) MutableFst() core.MutableFst { return c.fst }

// ArcType returns the boxed machine's arc type tag.
func (c *MutableFstClass) ArcType() string { return c.fst.ArcType() }
