package errors

import (
	stdErrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("content.yaml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: content.yaml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("relay.kind", "unknown relay", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "relay.kind", validationErr.Field)
	require.Equal(t, "validation error: relay.kind: unknown relay", err.Error())
}

func TestStorageErrorWrapsCause(t *testing.T) {
	t.Parallel()

	err := NewStorageError("write", "/tmp/prefs.json", os.ErrPermission)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "write", storageErr.Op)
	require.True(t, stdErrors.Is(err, os.ErrPermission))
	require.Contains(t, err.Error(), "/tmp/prefs.json")
}
