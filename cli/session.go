package cli

import (
	"context"
	"fmt"
	"github.com/saylorsolutions/cmdchain/argparse"
	"github.com/saylorsolutions/cmdchain/config"
	"log/slog"
	"slices"
)

// Session is the fully resolved state of a single dispatch, shared by every [Handler] in the chain.
// It's constructed once, after command resolution and validation, and isn't changed afterward.
type Session struct {
	ctx      context.Context
	argv     []string
	args     []string
	cfg      config.ParseConfig
	meta     config.HelpMetadata
	rootCfg  config.ParseConfig
	rootMeta config.HelpMetadata
	result   *argparse.Result
	command  string
	registry *Registry
	out      Output
	logger   *slog.Logger
}

// Context returns the context passed to [App.Dispatch].
func (s *Session) Context() context.Context {
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

// Argv returns a copy of the full process argument vector, including the executable.
func (s *Session) Argv() []string {
	return slices.Clone(s.argv)
}

// Args returns a copy of the arguments that were parsed.
func (s *Session) Args() []string {
	return slices.Clone(s.args)
}

// Config returns a copy of the effective parse config.
func (s *Session) Config() config.ParseConfig {
	return config.MergeConfig(config.ParseConfig{}, s.cfg)
}

// Metadata returns a copy of the effective metadata.
func (s *Session) Metadata() config.HelpMetadata {
	return config.MergeMetadata(config.HelpMetadata{}, s.meta)
}

// Result returns a copy of the parse result for the invoked command.
func (s *Session) Result() *argparse.Result {
	return s.result.Copy()
}

// Values returns the parsed option values.
// The returned [argparse.Result] is shared, so it should be treated as read-only.
func (s *Session) Values() *argparse.Result {
	return s.result
}

// Positionals returns the positional arguments that follow the command name.
func (s *Session) Positionals() []string {
	if s.result == nil {
		return nil
	}
	return slices.Clone(s.result.Positionals)
}

// Command returns the name of the invoked command, or an empty string for root handlers.
func (s *Session) Command() string {
	return s.command
}

// Registry returns the [Registry] used for dispatch.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Help renders usage information for the invoked command.
func (s *Session) Help() string {
	return renderHelp(s.registry, s.cfg, s.meta, s.command)
}

// Docs renders usage information for every command.
func (s *Session) Docs() string {
	return renderDocs(s.registry, s.rootCfg, s.rootMeta)
}

// Output returns the [Output] used for dispatch.
func (s *Session) Output() Output {
	return s.out
}

// Emit writes text through the [Output] with a style and level.
func (s *Session) Emit(text string, style Style, level Level) {
	s.out.Emit(text, style, level)
}

// Print writes a line of unstyled text to standard output.
func (s *Session) Print(text string) {
	s.out.Emit(text, nil, LevelLog)
}

// Printf formats a line of unstyled text to standard output.
func (s *Session) Printf(format string, args ...any) {
	s.out.Emit(fmt.Sprintf(format, args...), nil, LevelLog)
}

func (s *Session) Logger() *slog.Logger {
	return s.logger
}
