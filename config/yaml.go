package config

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
)

var (
	ErrDefinitions = errors.New("failed to load definitions")
)

// Fragment is one configuration layer: the parse config and metadata for the global scope or a single command.
type Fragment struct {
	Config   ParseConfig  `yaml:"config,omitempty"`
	Metadata HelpMetadata `yaml:"metadata,omitempty"`
}

// Definitions is a declarative description of a CLI's global layer and its commands.
// Handlers can't be described in YAML, so they're attached when the definitions are registered.
type Definitions struct {
	Fragment `yaml:",inline"`
	Commands map[string]Fragment `yaml:"commands,omitempty"`
}

// LoadDefinitions decodes YAML [Definitions] from the reader.
// Unknown top-level keys are rejected, and every option schema is validated before returning.
//
//	metadata:
//	  name: greeter
//	  version: 1.0.0
//	commands:
//	  hello:
//	    config:
//	      options:
//	        name: {type: string, short: n, default: World}
//	    metadata:
//	      help: Says hello.
func LoadDefinitions(r io.Reader) (*Definitions, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	defs := new(Definitions)
	if err := dec.Decode(defs); err != nil {
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDefinitions, err)
	}
	if err := defs.Config.Options.Validate(); err != nil {
		return nil, fmt.Errorf("%w: global options: %w", ErrDefinitions, err)
	}
	for name, cmd := range defs.Commands {
		if err := cmd.Config.Options.Validate(); err != nil {
			return nil, fmt.Errorf("%w: command '%s': %w", ErrDefinitions, name, err)
		}
	}
	return defs, nil
}

// UnmarshalYAML decodes a [Descriptor], coercing the default value to the Go type that matches the descriptor's kind.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	type rawDescriptor Descriptor
	var raw rawDescriptor
	if err := node.Decode(&raw); err != nil {
		return err
	}
	def, err := coerceDefault(raw.Kind, raw.Default)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	raw.Default = def
	*d = Descriptor(raw)
	return nil
}

func coerceDefault(kind Kind, val any) (any, error) {
	switch v := val.(type) {
	case nil:
		return nil, nil
	case []any:
		if kind == Boolean {
			bools := make([]bool, len(v))
			for i, el := range v {
				b, ok := el.(bool)
				if !ok {
					return nil, fmt.Errorf("%w: default element %d is not a boolean", ErrInvalidOption, i)
				}
				bools[i] = b
			}
			return bools, nil
		}
		strs := make([]string, len(v))
		for i, el := range v {
			strs[i] = fmt.Sprint(el)
		}
		return strs, nil
	default:
		if kind == String {
			return fmt.Sprint(v), nil
		}
		return v, nil
	}
}
