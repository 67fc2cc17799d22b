package config

import "slices"

// Ptr returns a pointer to val.
// This is a convenience for populating the optional fields of [ParseConfig] and [HelpMetadata].
func Ptr[T any](val T) *T {
	return &val
}

func deref[T any](val *T, defaultVal T) T {
	if val == nil {
		return defaultVal
	}
	return *val
}

// ParseConfig controls how arguments are parsed.
//
// Nil fields are absent, and will not override lower layers when merged with [MergeConfig].
// A non-nil field always wins, even if it points to a zero value.
type ParseConfig struct {
	Args             []string `yaml:"args,omitempty"`             // Args to parse. If nil after merging, the process arguments are used.
	Options          Schema   `yaml:"options,omitempty"`          // Options are merged key-by-key.
	Strict           *bool    `yaml:"strict,omitempty"`           // Strict rejects unknown options.
	AllowPositionals *bool    `yaml:"allowPositionals,omitempty"` // AllowPositionals permits non-option arguments.
	AllowNegative    *bool    `yaml:"allowNegative,omitempty"`    // AllowNegative enables '--no-NAME' for boolean options.
	Tokens           *bool    `yaml:"tokens,omitempty"`           // Tokens requests the parsed token list in results.
}

func (c ParseConfig) IsStrict() bool {
	return deref(c.Strict, false)
}

func (c ParseConfig) PositionalsAllowed() bool {
	return deref(c.AllowPositionals, false)
}

func (c ParseConfig) NegationAllowed() bool {
	return deref(c.AllowNegative, false)
}

func (c ParseConfig) EmitTokens() bool {
	return deref(c.Tokens, false)
}

// OptionHelp is per-option help metadata.
// Extra holds any other values an application wants to associate with an option, for use in handlers.
type OptionHelp struct {
	Help        string         `yaml:"help,omitempty"`
	Placeholder string         `yaml:"placeholder,omitempty"`
	Required    bool           `yaml:"required,omitempty"`
	Extra       map[string]any `yaml:",inline"`
}

// HelpMetadata carries help text and dispatch policy.
// It follows the same absence rules as [ParseConfig].
type HelpMetadata struct {
	ExitOnError *bool                 `yaml:"exitOnError,omitempty"` // ExitOnError terminates the process on failure when true, and returns the error otherwise.
	Name        *string               `yaml:"name,omitempty"`        // Name is the display name of the CLI used in help output.
	Version     *string               `yaml:"version,omitempty"`
	Help        *string               `yaml:"help,omitempty"`
	Placeholder *string               `yaml:"placeholder,omitempty"`
	Required    *bool                 `yaml:"required,omitempty"` // Required means at least one positional argument must be given.
	Options     map[string]OptionHelp `yaml:"options,omitempty"`
}

func (m HelpMetadata) ExitsOnError() bool {
	return deref(m.ExitOnError, false)
}

func (m HelpMetadata) DisplayName() string {
	return deref(m.Name, "")
}

func (m HelpMetadata) VersionText() string {
	return deref(m.Version, "")
}

func (m HelpMetadata) HelpText() string {
	return deref(m.Help, "")
}

func (m HelpMetadata) PlaceholderText() string {
	return deref(m.Placeholder, "")
}

func (m HelpMetadata) PositionalsRequired() bool {
	return deref(m.Required, false)
}

// RequiredOptions returns the sorted names of options marked as required.
func (m HelpMetadata) RequiredOptions() []string {
	var names []string
	for name, opt := range m.Options {
		if opt.Required {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
