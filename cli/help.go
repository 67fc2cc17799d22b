package cli

import (
	"fmt"
	"github.com/saylorsolutions/cmdchain/config"
	"os"
	"path/filepath"
	"strings"
)

func programName(meta config.HelpMetadata) string {
	if name := meta.DisplayName(); len(name) > 0 {
		return name
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "cli"
}

func placeholder(desc config.Descriptor, help config.OptionHelp) string {
	switch {
	case len(help.Placeholder) > 0:
		return "<" + help.Placeholder + ">"
	case desc.Kind == config.String && !desc.Multiple && desc.Default != nil:
		return fmt.Sprintf("<%v>", desc.Default)
	default:
		return "<arg>"
	}
}

// renderHelp builds usage information from already layered config and metadata.
// If command is empty, then the help is for the root of the CLI.
func renderHelp(registry *Registry, cfg config.ParseConfig, meta config.HelpMetadata, command string) string {
	if registry == nil {
		registry = NewRegistry()
	}
	var (
		buf         strings.Builder
		entry       *Entry
		subCommands []string
		description = meta.HelpText()
		positionals = meta.PositionalsRequired()
	)
	if len(command) > 0 {
		entry, _ = registry.Lookup(command)
	}
	if entry != nil {
		subCommands = registry.Children(entry.Name)
		description = entry.Metadata.HelpText()
		positionals = entry.Metadata.PositionalsRequired()
	} else {
		subCommands = registry.TopLevel()
	}

	buf.WriteString("Usage: ")
	buf.WriteString(programName(meta))
	if entry != nil {
		buf.WriteString(" " + entry.Name)
	}
	if len(subCommands) > 0 {
		buf.WriteString(" [COMMAND]")
	}
	for _, name := range meta.RequiredOptions() {
		desc, ok := cfg.Options[name]
		if !ok {
			continue
		}
		buf.WriteString(" --" + name)
		if desc.Kind == config.String {
			buf.WriteString(" " + placeholder(desc, meta.Options[name]))
		}
	}
	if positionals {
		label := meta.PlaceholderText()
		if entry != nil {
			label = entry.Metadata.PlaceholderText()
		}
		if len(label) == 0 {
			label = "args"
		}
		buf.WriteString(" <" + label + "...>")
	}

	if len(description) > 0 {
		buf.WriteString("\n\n  " + description)
	}

	if options := optionUsages(cfg, meta); len(options) > 0 {
		buf.WriteString("\n\nOptions:\n")
		buf.WriteString(options)
	}

	if len(subCommands) > 0 {
		buf.WriteString("\n\nCommands:\n")
		buf.WriteString(commandUsages(registry, entry, subCommands))
	}
	return buf.String()
}

func optionUsages(cfg config.ParseConfig, meta config.HelpMetadata) string {
	var (
		names   = cfg.Options.Names()
		defs    = make([]string, len(names))
		descs   = make([]string, len(names))
		lines   = make([]string, len(names))
		maxLen  int
		negates = cfg.NegationAllowed()
	)
	for i, name := range names {
		desc := cfg.Options[name]
		help := meta.Options[name]
		short := "    "
		if len(desc.Short) > 0 {
			short = "-" + desc.Short + ", "
		}
		long := "--" + name
		if desc.Kind == config.Boolean && negates {
			long = "--[no-]" + name
		}
		if desc.Kind == config.String {
			long += " " + placeholder(desc, help)
		}
		if desc.Multiple {
			long += "..."
		}
		defs[i] = short + long
		descs[i] = help.Help
		if help.Required {
			descs[i] = strings.TrimSpace(descs[i] + " (Required)")
		}
		if l := len(defs[i]); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds%%s", maxLen+2)
	for i := range names {
		lines[i] = strings.TrimRight(fmt.Sprintf(fmtStr, defs[i], descs[i]), " ")
	}
	return strings.Join(lines, "\n")
}

func commandUsages(registry *Registry, parent *Entry, names []string) string {
	var (
		display = make([]string, len(names))
		lines   = make([]string, len(names))
		maxLen  int
	)
	for i, name := range names {
		display[i] = name
		if parent != nil {
			display[i] = strings.TrimPrefix(name, parent.Name+" ")
		}
		if l := len(display[i]); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds%%s", maxLen+4)
	for i, name := range names {
		entry, _ := registry.Lookup(name)
		lines[i] = strings.TrimRight(fmt.Sprintf(fmtStr, display[i], entry.Metadata.HelpText()), " ")
	}
	return strings.Join(lines, "\n")
}

// renderDocs renders the root help, followed by the help for every command with its own layers applied.
func renderDocs(registry *Registry, cfg config.ParseConfig, meta config.HelpMetadata) string {
	if registry == nil {
		registry = NewRegistry()
	}
	docs := []string{renderHelp(registry, cfg, meta, "")}
	for _, name := range registry.Names() {
		entry, _ := registry.Lookup(name)
		docs = append(docs, renderHelp(registry, config.MergeConfig(cfg, entry.Config), config.MergeMetadata(meta, entry.Metadata), name))
	}
	return strings.Join(docs, "\n\n")
}
