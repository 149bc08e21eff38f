// Package semiring provides TropicalWeight, the one reference
// implementation of core.Weight this repository carries. Additional
// semirings (log, boolean, …) are out of scope: any concrete Weight type
// satisfying core.Weight slots into every core/vector/complement/encode
// API unchanged.
package semiring
