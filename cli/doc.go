/*
Package cli provides an opinionated way to dispatch a CLI made of named commands, each with a chain of handlers.

There are a few reasonable (IMHO) policies for how this operates.

  - Commands are identified by their space separated name, so "remote add" is a child of "remote". Whitespace in names is normalized.
  - This package uses [pflag] for posix style flags, through the argparse package.
  - Options may appear anywhere in the invocation, including before the command name.
  - Configuration is layered. Built-in defaults are overridden by the global layer given to [App.Dispatch], which is overridden by the layer of the invoked command.
  - User-visible output goes through an [Output], which is a [Printer] by default. Errors go to STDERR in red if it's a terminal.

# Invocation

Invoking a CLI can always follow this form:

	CLI_NAME [COMMAND...] [OPTIONS...] [ARGS...]

The longest sequence of leading positional arguments that names a registered command is used, and the rest are passed to handlers.
Just calling CLI_NAME will print usage information for the tool, unless root handlers are registered with an empty name.

# Handler chains

Each command has an ordered list of [Handler] functions.
A handler runs the rest of the chain by calling its [Next], and stops the chain by returning without calling it.
This allows handlers to act as middleware, validating input or wrapping later handlers, without a separate middleware concept.

	app.Command("deploy", cfg, meta,
		Check(requireLogin),
		func(s *Session, next Next) error {
			start := time.Now()
			err := next()
			s.Logger().Info("Deploy finished", "duration", time.Since(start))
			return err
		},
		Run(deploy),
	)

Asynchronous work can be awaited within a step with [Await], or with an [Async] handler.
Handlers that run before every command are registered with [App.Use] or [App.AddPreExec].

# Usage by default

Usage information can be incredibly helpful for understanding a tool's purpose and expectations.
That's why the '-h' and '--help' flags are set up by default, with input from the developer in the help metadata of each command and option.
The '-v' and '--version' flags print the version from metadata, and '--gen docs' prints usage for every command.

# Errors

Every failure in dispatch is a [DispatchError], which matches a kind like [ErrUnknownCommand] with [errors.Is].
By default the error and relevant usage information are printed, and the process exits with code 1.
Setting ExitOnError to false in metadata returns the error instead, which is useful for testing and embedding.

[pflag]: https://github.com/spf13/pflag
*/
package cli
