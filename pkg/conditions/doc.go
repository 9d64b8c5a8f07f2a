// Package conditions implements the boolean condition trees that gate
// bindle's transform rules. A tree is built once from leaf predicates over
// a candidate file's path and reference kind, combined with All/Any/Not,
// and is then evaluated against many candidates concurrently.
//
// Trees are immutable after construction and can only be built through the
// constructors in this package, so a malformed tree is not representable.
package conditions
