// Package vector provides Fst, the one reference fully-materialized
// core.MutableFst in this repository: states and arcs held in plain Go
// slices, mutated and queried under a sync.RWMutex.
//
// Every delayed Fst (complement.Fst, encode.Fst, encode.DecodeFst)
// eventually bottoms out at a concrete Fst somewhere in its input chain;
// vector.Fst is that bottom.
package vector
