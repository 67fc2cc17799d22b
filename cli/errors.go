package cli

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrParse             = errors.New("parse error")                          // ErrParse is the kind of a failure to parse arguments.
	ErrUnknownCommand    = errors.New("unknown command")                      // ErrUnknownCommand is the kind of a failure to match positional arguments to a command.
	ErrMissingOption     = errors.New("missing required option")              // ErrMissingOption is the kind of a failure to provide an option marked as required.
	ErrMissingPositional = errors.New("missing required positional argument") // ErrMissingPositional is the kind of a failure to provide positional arguments when they're required.
	ErrExecution         = errors.New("execution error")                      // ErrExecution is the kind of any failure in a handler chain.
	ErrConfig            = errors.New("invalid configuration")                // ErrConfig is the kind of a failure to combine the global option schema with a command's schema.
	ErrChainClosed       = errors.New("handler has already returned")         // ErrChainClosed is returned from a [Next] called after its handler returned.
)

// DispatchError is returned from [App.Dispatch] for any failure.
// It matches its kind with [errors.Is], so callers can check for [ErrConfig], [ErrParse], [ErrUnknownCommand], [ErrMissingOption], [ErrMissingPositional], or [ErrExecution].
type DispatchError struct {
	Kind    error    // Kind is one of the error kind sentinels in this package.
	Command string   // Command is the resolved command name, if a command was matched. For unknown commands, it's the name given by the user.
	Names   []string // Names lists missing options for [ErrMissingOption].
	wrapped error
}

func (e *DispatchError) Error() string {
	kind := e.Kind
	if kind == nil {
		kind = ErrExecution
	}
	var msg string
	switch {
	case errors.Is(kind, ErrUnknownCommand):
		msg = fmt.Sprintf("%s \"%s\"", kind, e.Command)
	case errors.Is(kind, ErrConfig) && len(e.Command) > 0:
		msg = fmt.Sprintf("%s for command \"%s\"", kind, e.Command)
	case errors.Is(kind, ErrMissingOption) && len(e.Names) > 0:
		msg = fmt.Sprintf("%s: --%s", kind, strings.Join(e.Names, ", --"))
	default:
		msg = kind.Error()
	}
	if e.wrapped != nil {
		msg += ": " + e.wrapped.Error()
	}
	return msg
}

func (e *DispatchError) Is(err error) bool {
	if e.Kind != nil && err == e.Kind {
		return true
	}
	_, ok := err.(*DispatchError)
	return ok
}

func (e *DispatchError) Unwrap() error {
	return e.wrapped
}

func newDispatchError(kind error, command string, cause error) *DispatchError {
	return &DispatchError{Kind: kind, Command: command, wrapped: cause}
}

// executionError wraps a handler chain failure, unless it's already a [DispatchError].
func executionError(command string, err error) error {
	var dispatchErr *DispatchError
	if errors.As(err, &dispatchErr) {
		return err
	}
	return newDispatchError(ErrExecution, command, err)
}
