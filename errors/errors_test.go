package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskError_Error(t *testing.T) {
	err := NewInvalidStateError("no strategy set")
	assert.Equal(t, "[invalid_state] no strategy set", err.Error())

	err = NewValidationError("task title is required")
	assert.Equal(t, "[validation] task title is required", err.Error())
}

func TestConstructors_Details(t *testing.T) {
	withDetails := NewInvalidStateError("unrecognized strategy", map[string]any{
		"strategy": "batch",
	})
	assert.Equal(t, "batch", withDetails.Details["strategy"])

	withoutDetails := NewInvalidStateError("no strategy set")
	assert.Nil(t, withoutDetails.Details)
}

func TestIsTaskError(t *testing.T) {
	taskErr, ok := IsTaskError(NewValidationError("bad input"))
	require.True(t, ok)
	assert.Equal(t, ValidationError, taskErr.Type)

	_, ok = IsTaskError(fmt.Errorf("plain error"))
	assert.False(t, ok)

	_, ok = IsTaskError(nil)
	assert.False(t, ok)
}

func TestIsInvalidState(t *testing.T) {
	assert.True(t, IsInvalidState(NewInvalidStateError("no strategy set")))
	assert.False(t, IsInvalidState(NewValidationError("bad input")))
	assert.False(t, IsInvalidState(fmt.Errorf("plain error")))
	assert.False(t, IsInvalidState(nil))
}
