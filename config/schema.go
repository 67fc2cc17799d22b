package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidOption = errors.New("invalid option descriptor")
)

// Kind identifies which variant of [Descriptor] an option is.
type Kind int

const (
	Boolean Kind = iota + 1 // Boolean options are switches that don't consume a value.
	String                  // String options consume a value.
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Boolean, String:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidOption, int(k))
	}
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "boolean", "bool":
		*k = Boolean
	case "string":
		*k = String
	default:
		return fmt.Errorf("%w: unknown kind '%s'", ErrInvalidOption, string(text))
	}
	return nil
}

// Descriptor describes a single named option in a [Schema].
//
// A Descriptor is replaced as a whole during a merge, so fields are never combined across layers.
type Descriptor struct {
	Kind     Kind   `yaml:"type"`
	Short    string `yaml:"short,omitempty"`    // Short is an optional single ASCII character alias.
	Default  any    `yaml:"default,omitempty"`  // Default must match Kind and Multiple: bool, []bool, string, or []string.
	Multiple bool   `yaml:"multiple,omitempty"` // Multiple allows the option to be given more than once, collecting values into a slice.
}

// Flag creates a [Boolean] [Descriptor] with an optional short alias.
func Flag(short string) Descriptor {
	return Descriptor{Kind: Boolean, Short: short}
}

// Text creates a [String] [Descriptor] with an optional short alias.
func Text(short string) Descriptor {
	return Descriptor{Kind: String, Short: short}
}

// WithDefault returns a copy of the [Descriptor] with the given default value.
func (d Descriptor) WithDefault(val any) Descriptor {
	d.Default = val
	return d
}

// Repeated returns a copy of the [Descriptor] that accepts multiple values.
func (d Descriptor) Repeated() Descriptor {
	d.Multiple = true
	return d
}

// Validate checks the internal consistency of the [Descriptor].
// The name is only used for error messages.
func (d Descriptor) Validate(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w: empty option name", ErrInvalidOption)
	}
	if d.Kind != Boolean && d.Kind != String {
		return fmt.Errorf("%w: option '%s' has unknown kind %d", ErrInvalidOption, name, int(d.Kind))
	}
	if len(d.Short) > 0 && (len(d.Short) != 1 || d.Short == "-") {
		return fmt.Errorf("%w: option '%s' short alias '%s' must be a single ASCII character", ErrInvalidOption, name, d.Short)
	}
	if d.Default == nil {
		return nil
	}
	var ok bool
	switch d.Kind {
	case Boolean:
		if d.Multiple {
			_, ok = d.Default.([]bool)
		} else {
			_, ok = d.Default.(bool)
		}
	case String:
		if d.Multiple {
			_, ok = d.Default.([]string)
		} else {
			_, ok = d.Default.(string)
		}
	}
	if !ok {
		return fmt.Errorf("%w: option '%s' default %T doesn't match %s (multiple=%t)", ErrInvalidOption, name, d.Default, d.Kind, d.Multiple)
	}
	return nil
}

// Schema maps option names to their [Descriptor].
type Schema map[string]Descriptor

// Names returns the option names of the [Schema], sorted.
func (s Schema) Names() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks every [Descriptor], and ensures that short aliases are unique within the [Schema].
func (s Schema) Validate() error {
	shorts := map[string]string{}
	for _, name := range s.Names() {
		desc := s[name]
		if err := desc.Validate(name); err != nil {
			return err
		}
		if len(desc.Short) == 0 {
			continue
		}
		if other, ok := shorts[desc.Short]; ok {
			return fmt.Errorf("%w: short alias '%s' is used by both '%s' and '%s'", ErrInvalidOption, desc.Short, other, name)
		}
		shorts[desc.Short] = name
	}
	return nil
}

// Copy returns a shallow copy of the [Schema].
// A nil [Schema] is returned as nil.
func (s Schema) Copy() Schema {
	if s == nil {
		return nil
	}
	cp := make(Schema, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}
