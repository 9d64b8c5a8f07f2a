package types

// PathResolver is the narrow filesystem capability rule selection depends
// on: joining a base directory with a textual segment, yielding a resolved
// path or a resolution failure. It is the selector's only side-effecting
// seam; everything downstream of it is pure.
//
// Implementations may consult a real or virtual filesystem. Predicates
// never call it; paths handed to predicates must already be resolved.
type PathResolver interface {
	// Join resolves name relative to base. The returned path must be
	// usable for byte-wise comparison against candidate resource paths.
	Join(base string, name string) (string, error)
}
