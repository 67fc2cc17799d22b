package cli

import (
	"context"
	"github.com/saylorsolutions/cmdchain/argparse"
	"github.com/saylorsolutions/cmdchain/config"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Dispatch parses arguments, resolves the invoked command, and runs its handler chain.
//
// The cfg and meta parameters are the global layer, applied on top of [config.DefaultConfig] and [config.DefaultMetadata].
// If no arguments are set in the config layers, then os.Args[1:] is used.
// Root handlers given here run in addition to any registered with an empty command name, when no command is given.
//
// Dispatch proceeds through these steps, stopping at the first that produces an outcome:
//
//  1. The global options, and the options of each command layered over them, are validated.
//     Arguments are parsed with the global options and the options of every command, to find positional arguments.
//  2. The version flag emits the version, and '--gen docs' emits documentation for all commands.
//  3. The command is resolved by the longest prefix of positional arguments, and its layers are applied.
//  4. The help flag emits help for the resolved command.
//  5. Root handlers are used if there are no positional arguments, otherwise an unknown command fails dispatch. With no root handlers, help is emitted.
//  6. Arguments are parsed again with the command's options, and the command name is removed from the positional arguments.
//  7. Required options and positional arguments are validated.
//  8. The handler chain is executed.
//
// Help, version, and documentation output are successful outcomes, and return nil.
// Failures return a [DispatchError].
// If the effective metadata exits on error, which is the default, then the error and help are emitted and the [Output] is terminated with exit code 1.
func (a *App) Dispatch(ctx context.Context, cfg config.ParseConfig, meta config.HelpMetadata, rootHandlers ...Handler) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for _, h := range rootHandlers {
		if h == nil {
			panic("nil handler")
		}
	}
	d := &dispatch{
		app:    a,
		ctx:    ctx,
		argv:   slices.Clone(os.Args),
		roots:  append(a.registry.Roots(), rootHandlers...),
		logger: a.logger,
	}
	return d.run(cfg, meta)
}

type dispatch struct {
	app    *App
	ctx    context.Context
	argv   []string
	roots  []Handler
	logger *slog.Logger
}

// layers is the configuration at one point in dispatch.
type layers struct {
	cfg  config.ParseConfig
	meta config.HelpMetadata
}

func (d *dispatch) trace(phase string, attrs ...any) {
	d.logger.DebugContext(d.ctx, "Dispatch phase", append([]any{"phase", phase}, attrs...)...)
}

func (d *dispatch) args(cfg config.ParseConfig) []string {
	if cfg.Args != nil {
		return cfg.Args
	}
	if len(d.argv) > 1 {
		return d.argv[1:]
	}
	return nil
}

func (d *dispatch) run(userCfg config.ParseConfig, userMeta config.HelpMetadata) error {
	var (
		registry = d.app.registry
		out      = d.app.out
	)

	global := layers{
		cfg:  config.MergeConfig(config.DefaultConfig(), userCfg),
		meta: config.MergeMetadata(config.DefaultMetadata(), userMeta),
	}
	if err := validateSchemas(global.cfg, registry); err != nil {
		return d.fail(err, global, "")
	}
	discovery := discoveryConfig(global.cfg, registry)
	d.trace("merge-global", "options", len(discovery.Options), "commands", len(registry.commands))

	found, err := argparse.Parse(d.args(global.cfg), discovery)
	if err != nil {
		return d.fail(newDispatchError(ErrParse, "", err), global, "")
	}
	d.trace("discovery-parse", "positionals", len(found.Positionals))

	if found.Bool(config.VersionOption) {
		d.trace("version")
		if version := global.meta.VersionText(); len(version) > 0 {
			out.Emit(version, nil, LevelLog)
		}
		return nil
	}
	if found.String(config.GenOption) == config.GenDocs {
		d.trace("docs")
		out.Emit(renderDocs(registry, global.cfg, global.meta), nil, LevelLog)
		return nil
	}

	res := Resolve(found.Positionals, registry)
	d.trace("resolve", "command", res.Name, "consumed", res.Consumed)

	scoped := global
	if res.Matched() {
		scoped = layers{
			cfg:  config.MergeConfig(global.cfg, res.Entry.Config),
			meta: config.MergeMetadata(global.meta, res.Entry.Metadata),
		}
	}

	if found.Bool(config.HelpOption) {
		d.trace("help", "command", res.Name)
		out.Emit(renderHelp(registry, scoped.cfg, scoped.meta, res.Name), nil, LevelLog)
		return nil
	}

	var (
		handlers            []Handler
		positionalsRequired bool
	)
	switch {
	case res.Matched():
		handlers = res.Entry.Handlers
		positionalsRequired = res.Entry.Metadata.PositionalsRequired()
	case len(found.Positionals) == 0 && len(d.roots) > 0:
		d.trace("root-handlers", "handlers", len(d.roots))
		handlers = d.roots
		positionalsRequired = global.meta.PositionalsRequired()
	case len(found.Positionals) > 0:
		return d.fail(newDispatchError(ErrUnknownCommand, NormalizeName(strings.Join(found.Positionals, " ")), nil), global, "")
	default:
		d.trace("bare-invocation")
		out.Emit(renderHelp(registry, global.cfg, global.meta, ""), nil, LevelLog)
		return nil
	}

	args := d.args(scoped.cfg)
	result, err := argparse.Parse(args, scoped.cfg)
	if err != nil {
		return d.fail(newDispatchError(ErrParse, res.Name, err), scoped, res.Name)
	}
	result.Positionals = result.Positionals[min(res.Consumed, len(result.Positionals)):]
	d.trace("scoped-parse", "command", res.Name, "positionals", len(result.Positionals))

	var missing []string
	for _, name := range scoped.meta.RequiredOptions() {
		if !result.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		err := newDispatchError(ErrMissingOption, res.Name, nil)
		err.Names = missing
		return d.fail(err, scoped, res.Name)
	}
	if positionalsRequired && len(result.Positionals) == 0 {
		return d.fail(newDispatchError(ErrMissingPositional, res.Name, nil), scoped, res.Name)
	}

	if len(handlers) == 0 {
		d.trace("no-handlers", "command", res.Name)
		out.Emit(renderHelp(registry, scoped.cfg, scoped.meta, res.Name), nil, LevelLog)
		return nil
	}
	session := &Session{
		ctx:      d.ctx,
		argv:     d.argv,
		args:     slices.Clone(args),
		cfg:      scoped.cfg,
		meta:     scoped.meta,
		rootCfg:  global.cfg,
		rootMeta: global.meta,
		result:   result,
		command:  res.Name,
		registry: registry,
		out:      out,
		logger:   d.logger,
	}
	chain := append(slices.Clone(d.app.preExec), handlers...)
	d.trace("execute", "command", res.Name, "handlers", len(chain))
	if err := runChain(session, chain); err != nil {
		return d.fail(executionError(res.Name, err), scoped, res.Name)
	}
	return nil
}

// fail applies the exit policy of the effective metadata to err.
func (d *dispatch) fail(err error, current layers, command string) error {
	d.trace("fail", "command", command, "error", err)
	if !current.meta.ExitsOnError() {
		return err
	}
	out := d.app.out
	out.Emit(err.Error(), StyleError, LevelError)
	out.Emit(renderHelp(d.app.registry, current.cfg, current.meta, command), nil, LevelLog)
	out.Terminate(1)
	return err
}

// validateSchemas checks the global options, and the options of each command layered over them.
// This reports a conflict between layers before any arguments are parsed.
func validateSchemas(global config.ParseConfig, registry *Registry) error {
	if err := global.Options.Validate(); err != nil {
		return newDispatchError(ErrConfig, "", err)
	}
	for _, name := range registry.Names() {
		scoped := config.MergeConfig(global, registry.commands[name].Config)
		if err := scoped.Options.Validate(); err != nil {
			return newDispatchError(ErrConfig, name, err)
		}
	}
	return nil
}

// discoveryConfig folds the options of every command into the global options.
// This allows command options to appear anywhere without failing strict parsing before the command is known.
//
// Commands are folded in name order, and a later command's option replaces an earlier one of the same name.
// If a short alias is already claimed by a different option, then the later option is parsed without it.
func discoveryConfig(global config.ParseConfig, registry *Registry) config.ParseConfig {
	options := global.Options.Copy()
	if options == nil {
		options = config.Schema{}
	}
	shorts := map[string]string{}
	for name, desc := range options {
		if len(desc.Short) > 0 {
			shorts[desc.Short] = name
		}
	}
	for _, cmdName := range registry.Names() {
		cmdOptions := registry.commands[cmdName].Config.Options
		for _, name := range cmdOptions.Names() {
			desc := cmdOptions[name]
			if prev, ok := options[name]; ok && len(prev.Short) > 0 && shorts[prev.Short] == name {
				delete(shorts, prev.Short)
			}
			if len(desc.Short) > 0 {
				if _, taken := shorts[desc.Short]; taken {
					desc.Short = ""
				} else {
					shorts[desc.Short] = name
				}
			}
			options[name] = desc
		}
	}
	discovery := global
	discovery.Options = options
	return discovery
}
