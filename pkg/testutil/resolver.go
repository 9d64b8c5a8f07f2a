package testutil

import (
	"fmt"
	"path"

	"github.com/bindle-build/bindle/pkg/types"
)

// JoinCall records one Join invocation on a RecordingResolver
type JoinCall struct {
	Base string
	Name string
}

// RecordingResolver is a PathResolver that joins lexically and records
// every call, optionally failing on configured segment names.
type RecordingResolver struct {
	// FailOn maps segment names to the error Join returns for them.
	FailOn map[string]error

	// Calls lists every Join invocation in order.
	Calls []JoinCall
}

// NewRecordingResolver creates a resolver that succeeds for every join
func NewRecordingResolver() *RecordingResolver {
	return &RecordingResolver{FailOn: make(map[string]error)}
}

// FailOnSegment makes Join fail whenever it is asked for the given segment
func (r *RecordingResolver) FailOnSegment(name string) *RecordingResolver {
	r.FailOn[name] = fmt.Errorf("resolution of %q failed", name)
	return r
}

// Join implements types.PathResolver
func (r *RecordingResolver) Join(base string, name string) (string, error) {
	r.Calls = append(r.Calls, JoinCall{Base: base, Name: name})
	if err, ok := r.FailOn[name]; ok {
		return "", err
	}
	return path.Join(base, name), nil
}

var _ types.PathResolver = (*RecordingResolver)(nil)
