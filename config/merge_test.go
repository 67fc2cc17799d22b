package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMergeConfig_Precedence(t *testing.T) {
	global := ParseConfig{
		Options: Schema{
			"name": Text("n").WithDefault("World"),
		},
	}
	command := ParseConfig{
		Options: Schema{
			"name": Text("").WithDefault("Earth"),
		},
	}

	layered := MergeConfig(DefaultConfig(), global)
	assert.Equal(t, "World", layered.Options["name"].Default)
	assert.Contains(t, layered.Options, HelpOption, "Defaults should survive a global merge")

	scoped := MergeConfig(layered, command)
	assert.Equal(t, "Earth", scoped.Options["name"].Default, "Command layer should win")
	assert.Empty(t, scoped.Options["name"].Short, "Descriptors should be replaced, not merged field-by-field")
	assert.Equal(t, "World", layered.Options["name"].Default, "Merging should not mutate the base")
}

func TestMergeConfig_Absence(t *testing.T) {
	base := DefaultConfig()
	assert.True(t, base.IsStrict())

	merged := MergeConfig(base, ParseConfig{})
	assert.True(t, merged.IsStrict(), "Nil fields should not override")
	assert.True(t, merged.PositionalsAllowed())
	assert.Nil(t, merged.Args)

	merged = MergeConfig(base, ParseConfig{Strict: Ptr(false), Args: []string{}})
	assert.False(t, merged.IsStrict(), "Explicit false should override")
	assert.NotNil(t, merged.Args, "An empty non-nil slice is still present")
	assert.Len(t, merged.Args, 0)
}

func TestMergeConfig_ArgsCopied(t *testing.T) {
	args := []string{"a", "b"}
	merged := MergeConfig(ParseConfig{}, ParseConfig{Args: args})
	merged.Args[0] = "changed"
	assert.Equal(t, "a", args[0])
}

func TestMergeMetadata(t *testing.T) {
	a := HelpMetadata{
		Help:    Ptr("first"),
		Version: Ptr("1.0.0"),
		Options: map[string]OptionHelp{
			"name": {Help: "A name", Required: true},
		},
	}
	b := HelpMetadata{
		Help: Ptr(""),
		Options: map[string]OptionHelp{
			"name":  {Placeholder: "NAME"},
			"other": {Help: "Other"},
		},
	}

	merged := MergeMetadata(a, b)
	assert.Equal(t, "", merged.HelpText(), "Empty string is present, so it wins")
	assert.Equal(t, "1.0.0", merged.VersionText())
	assert.Equal(t, OptionHelp{Placeholder: "NAME"}, merged.Options["name"], "Option help should be replaced as a whole")
	assert.Equal(t, "Other", merged.Options["other"].Help)
	assert.Empty(t, merged.RequiredOptions())
	assert.Equal(t, []string{"name"}, a.RequiredOptions())
}

func TestMergeMetadata_Defaults(t *testing.T) {
	merged := MergeMetadata(DefaultMetadata(), HelpMetadata{})
	assert.True(t, merged.ExitsOnError())
	assert.Equal(t, "Show help.", merged.Options[HelpOption].Help)

	merged = MergeMetadata(merged, HelpMetadata{ExitOnError: Ptr(false)})
	assert.False(t, merged.ExitsOnError())
}

func TestMerge_Nil(t *testing.T) {
	assert.Nil(t, MergeConfig(ParseConfig{}, ParseConfig{}).Options)
	assert.Nil(t, MergeMetadata(HelpMetadata{}, HelpMetadata{}).Options)
}
