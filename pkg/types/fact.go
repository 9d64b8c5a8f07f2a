package types

// ReferenceKind classifies how a candidate file is reached from its importer.
type ReferenceKind string

const (
	// RefKindModule is an ordinary module import (static or dynamic).
	RefKindModule ReferenceKind = "module"

	// RefKindEntry marks a bundle entry point.
	RefKindEntry ReferenceKind = "entry"

	// RefKindURLUndefined is a URL-style resource reference with no more
	// specific sub-type. Files reached this way are resource loads, not
	// code module loads, and are excluded from code transforms.
	RefKindURLUndefined ReferenceKind = "url-undefined"
)

// ResourceFact holds the facts known about a candidate file at rule
// evaluation time. Instances are immutable; the bundling pipeline builds
// one per candidate file per evaluation.
type ResourceFact struct {
	// Path is the candidate's normalized resource path.
	Path string

	// Reference is how the candidate is imported.
	Reference ReferenceKind
}

// NewResourceFact creates a fact for a candidate file
func NewResourceFact(path string, ref ReferenceKind) ResourceFact {
	return ResourceFact{Path: path, Reference: ref}
}
