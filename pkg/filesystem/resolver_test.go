package filesystem

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexicalResolver_Join(t *testing.T) {
	resolver := NewResolver()

	tests := []struct {
		name        string
		base        string
		segment     string
		expected    string
		expectError bool
	}{
		{
			name:     "simple join",
			base:     "/pages",
			segment:  "api",
			expected: "/pages/api",
		},
		{
			name:     "join with extension",
			base:     "/pages",
			segment:  "_document.tsx",
			expected: "/pages/_document.tsx",
		},
		{
			name:     "base with trailing slash",
			base:     "/pages/",
			segment:  "api",
			expected: "/pages/api",
		},
		{
			name:     "nested segment",
			base:     "/app",
			segment:  "dashboard/settings",
			expected: "/app/dashboard/settings",
		},
		{
			name:        "empty base",
			base:        "",
			segment:     "api",
			expectError: true,
		},
		{
			name:        "empty segment",
			base:        "/pages",
			segment:     "",
			expectError: true,
		},
		{
			name:        "absolute segment",
			base:        "/pages",
			segment:     "/etc/passwd",
			expectError: true,
		},
		{
			name:        "segment escaping base",
			base:        "/pages",
			segment:     "../src",
			expectError: true,
		},
		{
			name:        "nested segment escaping base",
			base:        "/pages",
			segment:     "api/../../src",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := resolver.Join(tt.base, tt.segment)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestAferoResolver_Join(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project/pages", 0755))
	require.NoError(t, afero.WriteFile(fs, "/project/pages/index.tsx", []byte("export default {}"), 0644))

	resolver := NewAferoResolver(fs)

	t.Run("existing base directory", func(t *testing.T) {
		result, err := resolver.Join("/project/pages", "api")
		require.NoError(t, err)
		assert.Equal(t, "/project/pages/api", result)
	})

	t.Run("missing base directory", func(t *testing.T) {
		_, err := resolver.Join("/project/missing", "api")
		assert.Error(t, err)
	})

	t.Run("base is a file", func(t *testing.T) {
		_, err := resolver.Join("/project/pages/index.tsx", "api")
		assert.Error(t, err)
	})
}
