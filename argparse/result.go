package argparse

import "slices"

// Result is the output of [Parse].
type Result struct {
	Values      map[string]any // Values are keyed by long option name, and hold bool, []bool, string, or []string.
	Positionals []string
	Tokens      []Token // Tokens are only populated if requested in the parse config.
}

// Has returns true if the option has a value, either given or defaulted.
func (r *Result) Has(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.Values[name]
	return ok
}

// Value returns the raw value of an option, and whether it was present.
func (r *Result) Value(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	val, ok := r.Values[name]
	return val, ok
}

// String returns the value of a string option.
// For a repeated option, the last value is returned.
func (r *Result) String(name string) string {
	val, _ := r.Value(name)
	switch v := val.(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[len(v)-1]
		}
	}
	return ""
}

// Strings returns every value of a string option.
func (r *Result) Strings(name string) []string {
	val, _ := r.Value(name)
	switch v := val.(type) {
	case string:
		return []string{v}
	case []string:
		return slices.Clone(v)
	}
	return nil
}

// Bool returns the value of a boolean option.
// For a repeated option, the last value is returned.
func (r *Result) Bool(name string) bool {
	val, _ := r.Value(name)
	switch v := val.(type) {
	case bool:
		return v
	case []bool:
		if len(v) > 0 {
			return v[len(v)-1]
		}
	}
	return false
}

// Bools returns every value of a boolean option.
func (r *Result) Bools(name string) []bool {
	val, _ := r.Value(name)
	switch v := val.(type) {
	case bool:
		return []bool{v}
	case []bool:
		return slices.Clone(v)
	}
	return nil
}

// Copy returns a copy of the [Result] that shares no slices or maps with the original.
func (r *Result) Copy() *Result {
	if r == nil {
		return nil
	}
	cp := &Result{
		Values:      make(map[string]any, len(r.Values)),
		Positionals: slices.Clone(r.Positionals),
		Tokens:      slices.Clone(r.Tokens),
	}
	for k, v := range r.Values {
		switch val := v.(type) {
		case []string:
			cp.Values[k] = slices.Clone(val)
		case []bool:
			cp.Values[k] = slices.Clone(val)
		default:
			cp.Values[k] = v
		}
	}
	return cp
}
