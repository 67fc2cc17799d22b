package cli

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDispatchError_Error(t *testing.T) {
	cause := errors.New("cause")
	tests := map[string]struct {
		err      *DispatchError
		expected string
	}{
		"Unknown command": {
			err:      newDispatchError(ErrUnknownCommand, "goodbye", nil),
			expected: `unknown command "goodbye"`,
		},
		"Missing options": {
			err:      &DispatchError{Kind: ErrMissingOption, Command: "greet", Names: []string{"a", "b"}},
			expected: "missing required option: --a, --b",
		},
		"Missing positional": {
			err:      newDispatchError(ErrMissingPositional, "copy", nil),
			expected: "missing required positional argument",
		},
		"Wrapped cause": {
			err:      newDispatchError(ErrParse, "", cause),
			expected: "parse error: cause",
		},
		"Config conflict": {
			err:      newDispatchError(ErrConfig, "serve", cause),
			expected: `invalid configuration for command "serve": cause`,
		},
		"Global config conflict": {
			err:      newDispatchError(ErrConfig, "", cause),
			expected: "invalid configuration: cause",
		},
		"No kind": {
			err:      &DispatchError{},
			expected: "execution error",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestDispatchError_Is(t *testing.T) {
	cause := errors.New("cause")
	err := error(newDispatchError(ErrParse, "hello", cause))
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, new(DispatchError))
	assert.NotErrorIs(t, err, ErrExecution)
}

func TestExecutionError(t *testing.T) {
	cause := errors.New("cause")
	err := executionError("run", cause)
	assert.ErrorIs(t, err, ErrExecution)
	assert.ErrorIs(t, err, cause)

	inner := newDispatchError(ErrUnknownCommand, "nested", nil)
	assert.Same(t, inner, executionError("run", inner), "Dispatch errors should not be wrapped again")
}
