package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDescriptor_Validate(t *testing.T) {
	tests := map[string]struct {
		desc    Descriptor
		isError bool
	}{
		"Boolean":                  {desc: Flag("v")},
		"String with default":      {desc: Text("n").WithDefault("World")},
		"Repeated strings":         {desc: Text("").Repeated().WithDefault([]string{"a"})},
		"Repeated bools":           {desc: Flag("").Repeated().WithDefault([]bool{true})},
		"Unknown kind":             {desc: Descriptor{Short: "x"}, isError: true},
		"Long short alias":         {desc: Flag("vv"), isError: true},
		"Dash short alias":         {desc: Flag("-"), isError: true},
		"Bool with string default": {desc: Flag("").WithDefault("true"), isError: true},
		"Scalar for repeated":      {desc: Text("").Repeated().WithDefault("a"), isError: true},
		"Slice for scalar":         {desc: Text("").WithDefault([]string{"a"}), isError: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.desc.Validate("opt")
			if tc.isError {
				assert.ErrorIs(t, err, ErrInvalidOption)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchema_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Options.Validate())

	s := Schema{
		"help":  Flag("h"),
		"human": Flag("h"),
	}
	assert.ErrorIs(t, s.Validate(), ErrInvalidOption)
	assert.ErrorIs(t, Schema{"": Flag("")}.Validate(), ErrInvalidOption)
}

func TestSchema_Names(t *testing.T) {
	assert.Nil(t, Schema(nil).Names())
	assert.Equal(t, []string{"gen", "help", "version"}, DefaultConfig().Options.Names())
}

func TestKind_Text(t *testing.T) {
	var k Kind
	assert.NoError(t, k.UnmarshalText([]byte("bool")))
	assert.Equal(t, Boolean, k)
	assert.NoError(t, k.UnmarshalText([]byte("string")))
	assert.Equal(t, String, k)
	assert.ErrorIs(t, k.UnmarshalText([]byte("int")), ErrInvalidOption)

	text, err := Boolean.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "boolean", string(text))
	_, err = Kind(0).MarshalText()
	assert.Error(t, err)
}
