package filesystem

import (
	"fmt"
	"path"
	"strings"

	"github.com/bindle-build/bindle/pkg/types"
)

// lexicalResolver joins paths without consulting any filesystem. Resource
// paths in the bundling pipeline are normalized slash paths, so joining is
// purely textual.
type lexicalResolver struct{}

// NewResolver creates a lexical PathResolver
func NewResolver() types.PathResolver {
	return lexicalResolver{}
}

func (lexicalResolver) Join(base string, name string) (string, error) {
	if err := validateJoin(base, name); err != nil {
		return "", err
	}

	joined := path.Join(base, name)

	// Joining must stay inside the base directory; a name like "../x"
	// cleans to a sibling and would silently widen rule scopes.
	cleanBase := strings.TrimSuffix(path.Clean(base), "/")
	if joined != cleanBase && !strings.HasPrefix(joined, cleanBase+"/") {
		return "", fmt.Errorf("join of %q escapes base directory %q", name, base)
	}

	return joined, nil
}

func validateJoin(base string, name string) error {
	if base == "" {
		return fmt.Errorf("base path is empty")
	}
	if name == "" {
		return fmt.Errorf("joined name is empty")
	}
	if strings.HasPrefix(name, "/") {
		return fmt.Errorf("joined name %q must be relative", name)
	}
	return nil
}
