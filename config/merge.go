package config

import "slices"

func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

// mergeMap is a key-wise union of two maps, where the value from overrides replaces the value from base.
// A new map is always returned if either input has entries, so neither input is mutated.
func mergeMap[K comparable, V any, M ~map[K]V](base, overrides M) M {
	if base == nil && overrides == nil {
		return nil
	}
	merged := make(M, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// MergeConfig layers overrides on top of base.
//
// Every field present in overrides replaces the field in base, regardless of its value.
// Options are merged key-by-key, and a [Descriptor] in overrides replaces the one in base entirely.
func MergeConfig(base, overrides ParseConfig) ParseConfig {
	merged := ParseConfig{
		Args:             base.Args,
		Options:          mergeMap(base.Options, overrides.Options),
		Strict:           pick(base.Strict, overrides.Strict),
		AllowPositionals: pick(base.AllowPositionals, overrides.AllowPositionals),
		AllowNegative:    pick(base.AllowNegative, overrides.AllowNegative),
		Tokens:           pick(base.Tokens, overrides.Tokens),
	}
	if overrides.Args != nil {
		merged.Args = overrides.Args
	}
	if merged.Args != nil {
		merged.Args = slices.Clone(merged.Args)
	}
	return merged
}

// MergeMetadata layers overrides on top of base, following the same rules as [MergeConfig].
func MergeMetadata(base, overrides HelpMetadata) HelpMetadata {
	return HelpMetadata{
		ExitOnError: pick(base.ExitOnError, overrides.ExitOnError),
		Name:        pick(base.Name, overrides.Name),
		Version:     pick(base.Version, overrides.Version),
		Help:        pick(base.Help, overrides.Help),
		Placeholder: pick(base.Placeholder, overrides.Placeholder),
		Required:    pick(base.Required, overrides.Required),
		Options:     mergeMap(base.Options, overrides.Options),
	}
}
