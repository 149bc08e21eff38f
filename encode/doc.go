// Package encode provides Table, Mapper, Fst (the encoder) and DecodeFst: the
// label/weight encoding scheme that turns a weighted transducer into an
// unweighted acceptor over synthetic labels (and back), so that
// acceptor-only algorithms such as determinization can be applied to
// arbitrary transducers.
//
// Table is the append-only (ilabel, olabel, weight) <-> Label map; Mapper
// applies it arc-by-arc in either direction. An encoder's Mapper and the
// decoder Mapper built from it share one Table.
package encode
