package config

const (
	HelpOption    = "help"    // HelpOption requests usage information.
	VersionOption = "version" // VersionOption requests the version string.
	GenOption     = "gen"     // GenOption with the value of [GenDocs] requests generated documentation.
	GenDocs       = "docs"
)

// DefaultConfig returns the built-in parse layer.
// It's a new value every time, so callers may modify it freely.
func DefaultConfig() ParseConfig {
	return ParseConfig{
		Options: Schema{
			GenOption:     Text("g"),
			HelpOption:    Flag("h"),
			VersionOption: Flag("v"),
		},
		Strict:           Ptr(true),
		AllowPositionals: Ptr(true),
		AllowNegative:    Ptr(false),
		Tokens:           Ptr(false),
	}
}

// DefaultMetadata returns the built-in metadata layer.
func DefaultMetadata() HelpMetadata {
	return HelpMetadata{
		ExitOnError: Ptr(true),
		Options: map[string]OptionHelp{
			GenOption: {
				Help:        "Generate documentation.",
				Placeholder: GenDocs,
			},
			HelpOption: {
				Help: "Show help.",
			},
			VersionOption: {
				Help: "Show version.",
			},
		},
	}
}
