// Package stylecs is a typed, heterogeneous attribute store: unrelated
// component types are stored together in a Style, retrieved by their
// static type, and combined through two composition operators: an
// unconditional override merge and a selective inheritance merge.
//
// Identifiers are interned process-wide, so every Name comparison reduces
// to integer comparisons on interned symbols. A Style keeps its components
// in an array sorted by that symbol-based storage order, which makes both
// point lookups and the two-way sorted merge used by MergedWith and
// InheritedFrom cheap.
//
// The package defines no concrete components itself; see the components
// and sheet packages for the standard set and the rule/selector layer.
package stylecs
