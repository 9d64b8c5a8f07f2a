package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindleError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BindleError
		expected string
	}{
		{
			name:     "simple error",
			err:      New(ErrPathResolve, "cannot resolve path"),
			expected: "[PATH_RESOLVE] cannot resolve path",
		},
		{
			name:     "wrapped error",
			err:      Wrap(fmt.Errorf("no such file"), ErrPathResolve, "joining pages dir"),
			expected: "[PATH_RESOLVE] joining pages dir: no such file",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrConfigParse, "bad key %q", "font_loaders"),
			expected: `[CONFIG_PARSE] bad key "font_loaders"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestBindleError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("underlying failure")
	err := Wrap(inner, ErrPathResolve, "resolve failed")

	assert.True(t, errors.Is(err, inner))
	assert.Equal(t, inner, err.Unwrap())
}

func TestBindleError_Is(t *testing.T) {
	err := New(ErrPathResolve, "one message")
	other := New(ErrPathResolve, "different message")
	unrelated := New(ErrConfigLoad, "config")

	assert.True(t, errors.Is(err, other), "errors with the same code should match")
	assert.False(t, errors.Is(err, unrelated), "different codes should not match")
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "should be nil"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "should be %s", "nil"))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrapf(fmt.Errorf("io error"), ErrPathResolve, "joining %q", "api")

	assert.True(t, IsErrorCode(err, ErrPathResolve))
	assert.False(t, IsErrorCode(err, ErrConfigLoad))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrPathResolve))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrContextInvalid, GetErrorCode(New(ErrContextInvalid, "bad context")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain error")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrPathResolve, "resolve failed").
		WithDetail("base", "/pages").
		WithDetail("segment", "api")

	assert.Equal(t, "/pages", err.Details["base"])
	assert.Equal(t, "api", err.Details["segment"])
}
