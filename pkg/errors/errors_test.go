package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("task.yml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "task.yml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "task.yml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("size", "required for droplet_resize", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "size", validationErr.Field)
	require.Contains(t, validationErr.Message, "required for droplet_resize")
}

func TestModuleErrorIncludesModuleName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("no module registered")
	err := NewModuleError("tags_info", underlying)

	var moduleErr *ModuleError
	require.ErrorAs(t, err, &moduleErr)
	require.Equal(t, "tags_info", moduleErr.Module)
	require.True(t, stdErrors.Is(err, underlying))
}
