/*
Package config defines the option schema, parse configuration, and help metadata used to dispatch commands, along with the rules for layering them.

Configuration is applied in three layers, with later layers winning:

  - The built-in defaults from [DefaultConfig] and [DefaultMetadata].
  - The global layer supplied by the application.
  - The layer of the command that was invoked, if any.

Each layer is combined with [MergeConfig] or [MergeMetadata].
Optional fields are pointers, and a nil pointer means "not set in this layer", so an explicit false or empty string still overrides a lower layer.
The option maps are merged key-by-key, and an option's [Descriptor] is always replaced as a whole.

Layers may also be loaded from YAML with [LoadDefinitions].
*/
package config
