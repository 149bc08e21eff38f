// File: filter.go
// Role: ArcFilter — grounded on original_source's fst/arcfilter.h
// AnyArcFilter/EpsilonArcFilter/InputEpsilonArcFilter family, narrowed to
// the one predicate shape this repository's traversal needs.

package visit

import "github.com/katalvlaran/wfst/core"

// ArcFilter reports whether Visit should consider a. Visit calls it once
// per arc examined, before the arc's destination is colored.
type ArcFilter func(a core.Arc) bool

// AnyArcFilter accepts every arc.
func AnyArcFilter(core.Arc) bool { return true }

// NoEpsilonArcFilter rejects arcs whose ILabel and OLabel are both
// epsilon.
func NoEpsilonArcFilter(a core.Arc) bool {
	return a.ILabel != core.Epsilon || a.OLabel != core.Epsilon
}

// NoInputEpsilonArcFilter rejects arcs whose ILabel is epsilon.
func NoInputEpsilonArcFilter(a core.Arc) bool { return a.ILabel != core.Epsilon }

// NoOutputEpsilonArcFilter rejects arcs whose OLabel is epsilon.
func NoOutputEpsilonArcFilter(a core.Arc) bool { return a.OLabel != core.Epsilon }
