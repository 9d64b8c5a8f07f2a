package filesystem

import (
	"fmt"

	"github.com/bindle-build/bindle/pkg/types"
	"github.com/spf13/afero"
)

// aferoResolver resolves joins against an afero filesystem. Unlike the
// lexical resolver it requires the base to be an existing directory, so a
// missing routing root surfaces as a resolution failure.
type aferoResolver struct {
	fs afero.Fs
}

// NewAferoResolver creates a PathResolver backed by the given afero filesystem
func NewAferoResolver(fs afero.Fs) types.PathResolver {
	return &aferoResolver{fs: fs}
}

func (a *aferoResolver) Join(base string, name string) (string, error) {
	info, err := a.fs.Stat(base)
	if err != nil {
		return "", fmt.Errorf("base directory %q: %w", base, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("base path %q is not a directory", base)
	}

	return lexicalResolver{}.Join(base, name)
}
