package cli

import (
	"fmt"
	"github.com/saylorsolutions/cmdchain/config"
	"slices"
	"strings"
)

// Next continues a handler chain with the next [Handler].
// Handlers that don't call Next stop the chain.
type Next func() error

// Handler is a step in a command's handler chain.
// A Handler must call next before returning for later handlers to run.
type Handler func(s *Session, next Next) error

// Entry is a registered command.
type Entry struct {
	Name     string              // Name is the normalized, space separated command name.
	Handlers []Handler           // Handlers run in order when the command is invoked.
	Config   config.ParseConfig  // Config is the command's own parse layer.
	Metadata config.HelpMetadata // Metadata is the command's own metadata layer.
}

// Registry stores commands by their normalized name.
//
// A Registry is not concurrency safe. All registration should be completed before dispatch, since registering during dispatch is undefined behavior.
type Registry struct {
	commands map[string]*Entry
	roots    []Handler
}

func NewRegistry() *Registry {
	return &Registry{commands: map[string]*Entry{}}
}

// NormalizeName trims a command name and collapses internal whitespace to single spaces.
// Each space separated segment is a level in the command hierarchy, so "foo bar" is a child of "foo".
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// Register adds a command to the [Registry].
//
// If the normalized name is empty, then the handlers are added to the root handlers instead.
// Registering a name more than once appends handlers, and merges config and metadata onto the existing [Entry].
//
// Registering a nil [Handler] or an invalid option schema will panic.
// The schema is checked together with the built-in options of [config.DefaultConfig], so a command can't reuse their short aliases.
func (r *Registry) Register(name string, cfg config.ParseConfig, meta config.HelpMetadata, handlers ...Handler) *Entry {
	for _, h := range handlers {
		if h == nil {
			panic("nil handler")
		}
	}
	name = NormalizeName(name)
	if len(name) == 0 {
		r.roots = append(r.roots, handlers...)
		return nil
	}
	if r.commands == nil {
		r.commands = map[string]*Entry{}
	}
	entry, ok := r.commands[name]
	if !ok {
		entry = &Entry{Name: name}
	}
	merged := &Entry{
		Name:     name,
		Handlers: append(slices.Clip(entry.Handlers), handlers...),
		Config:   config.MergeConfig(entry.Config, cfg),
		Metadata: config.MergeMetadata(entry.Metadata, meta),
	}
	if err := config.MergeConfig(config.DefaultConfig(), merged.Config).Options.Validate(); err != nil {
		panic(fmt.Sprintf("invalid options for command '%s': %v", name, err))
	}
	r.commands[name] = merged
	return merged
}

// Lookup finds a command by name. The name is normalized first.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	entry, ok := r.commands[NormalizeName(name)]
	return entry, ok
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TopLevel returns the sorted names of commands that have no parent segment.
func (r *Registry) TopLevel() []string {
	var names []string
	for _, name := range r.Names() {
		if !strings.Contains(name, " ") {
			names = append(names, name)
		}
	}
	return names
}

// Children returns the sorted names of all commands nested under parent, at any depth.
func (r *Registry) Children(parent string) []string {
	prefix := NormalizeName(parent) + " "
	var names []string
	for _, name := range r.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

// Roots returns a copy of the root handlers, which run when no command is given.
func (r *Registry) Roots() []Handler {
	return slices.Clone(r.roots)
}
