// Package argparse tokenizes command line arguments against a [config.ParseConfig], using [pflag] for posix style flags.
//
// Flags may be interspersed with positional arguments, and '--' ends flag parsing.
// Strict mode rejects unknown flags, and negation support allows '--no-NAME' to set a boolean option to false.
//
// [pflag]: https://github.com/spf13/pflag
package argparse
