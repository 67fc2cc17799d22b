package cli

import "strings"

// Resolution is the result of matching positional arguments to a command.
type Resolution struct {
	Entry    *Entry // Entry is nil if no command matched.
	Name     string
	Consumed int // Consumed is the number of leading positionals that make up the command name.
}

// Matched returns true if a command was found.
func (r Resolution) Matched() bool {
	return r.Entry != nil
}

// Resolve finds the command named by the longest prefix of positionals.
//
// Given commands "foo" and "foo bar", the positionals [foo bar baz] resolve to "foo bar", and [foo baz] resolve to "foo".
func Resolve(positionals []string, registry *Registry) Resolution {
	if registry == nil {
		return Resolution{}
	}
	for i := len(positionals); i > 0; i-- {
		name := strings.Join(positionals[:i], " ")
		if entry, ok := registry.commands[name]; ok {
			return Resolution{Entry: entry, Name: name, Consumed: i}
		}
	}
	return Resolution{}
}
