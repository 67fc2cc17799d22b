package cli

import (
	"github.com/saylorsolutions/cmdchain/config"
	"io"
	"log/slog"
	"slices"
)

// App is a CLI made up of registered commands.
// Commands are registered with [App.Command], and invoked with [App.Dispatch].
type App struct {
	registry *Registry
	out      Output
	logger   *slog.Logger
	preExec  []Handler
}

// Option configures an [App].
type Option func(app *App)

// WithOutput sets the [Output] used to communicate with the user. A [Printer] is used by default.
func WithOutput(out Output) Option {
	return func(app *App) {
		if out != nil {
			app.out = out
		}
	}
}

// WithLogger sets a logger for tracing dispatch. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(app *App) {
		if logger != nil {
			app.logger = logger
		}
	}
}

func New(opts ...Option) *App {
	app := &App{
		registry: NewRegistry(),
		out:      NewPrinter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Registry returns the [Registry] of this [App].
func (a *App) Registry() *Registry {
	return a.registry
}

// Output returns the [Output] of this [App].
func (a *App) Output() Output {
	return a.out
}

// Command registers a command with its own config and metadata layers, and its handler chain.
// See [Registry.Register] for details.
func (a *App) Command(name string, cfg config.ParseConfig, meta config.HelpMetadata, handlers ...Handler) *App {
	a.registry.Register(name, cfg, meta, handlers...)
	return a
}

// Define registers every command described in defs, attaching handlers by command name.
// Handlers for names that aren't in defs are registered with empty layers.
// The global layer of defs should be passed to [App.Dispatch].
func (a *App) Define(defs *config.Definitions, handlers map[string][]Handler) *App {
	var names []string
	if defs != nil {
		for name := range defs.Commands {
			names = append(names, name)
		}
	}
	for name := range handlers {
		if defs == nil {
			names = append(names, name)
			continue
		}
		if _, ok := defs.Commands[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		var frag config.Fragment
		if defs != nil {
			frag = defs.Commands[name]
		}
		a.registry.Register(name, frag.Config, frag.Metadata, handlers[name]...)
	}
	return a
}
