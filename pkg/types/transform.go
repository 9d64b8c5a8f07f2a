package types

// TransformSpec describes one content transformation to run on a matched
// file. Specs are opaque to the rule engine: it orders and attaches them
// but never interprets them. The transform executors downstream switch on
// Kind to pick an implementation.
type TransformSpec interface {
	// Kind returns a stable identifier for the transform family.
	Kind() string
}
