package cli

import (
	"errors"
	"fmt"
)

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs is an easy way to map arguments to variables (targets), and require a certain amount.
// This will return an error if there are not enough args and/or targets to satisfy the amount required by minArgs.
// Targets elements should not be nil.
func MapArgs(args []string, minArgs int, targets ...*string) error {
	if len(args) < minArgs {
		return fmt.Errorf("%w: not enough arguments (%d) to satisfy minArgs (%d)", ErrArgMap, len(args), minArgs)
	}
	if len(targets) < minArgs {
		return fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	for i := 0; i < len(args) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = args[i]
	}
	return nil
}

// MapPositionals creates a [Handler] that maps the session's positional arguments to targets with [MapArgs], before continuing the chain.
func MapPositionals(minArgs int, targets ...*string) Handler {
	return func(s *Session, next Next) error {
		if err := MapArgs(s.Positionals(), minArgs, targets...); err != nil {
			return err
		}
		return next()
	}
}

// Check creates a [Handler] that continues the chain only if fn returns nil.
// This is useful for validation that doesn't need to wrap the rest of the chain.
func Check(fn func(s *Session) error) Handler {
	if fn == nil {
		panic("nil check function")
	}
	return func(s *Session, next Next) error {
		if err := fn(s); err != nil {
			return err
		}
		return next()
	}
}

// Run creates a terminal [Handler] from fn, which never continues the chain.
func Run(fn func(s *Session) error) Handler {
	if fn == nil {
		panic("nil run function")
	}
	return func(s *Session, _ Next) error {
		return fn(s)
	}
}
