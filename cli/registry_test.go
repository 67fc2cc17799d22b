package cli

import (
	"github.com/saylorsolutions/cmdchain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func noop(s *Session, next Next) error {
	return next()
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"   ":               "",
		"hello":             "hello",
		"  hello  ":         "hello",
		"remote   add":      "remote add",
		"\tremote\n add  x": "remote add x",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, NormalizeName(input), "Input: %q", input)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	first := r.Register("hello", config.ParseConfig{
		Options: config.Schema{"name": config.Text("n").WithDefault("World")},
		Strict:  config.Ptr(false),
	}, config.HelpMetadata{Help: config.Ptr("Say hello.")}, noop)
	require.NotNil(t, first)
	assert.Len(t, first.Handlers, 1)

	second := r.Register(" hello ", config.ParseConfig{
		Options: config.Schema{"loud": config.Flag("l")},
	}, config.HelpMetadata{Version: config.Ptr("1")}, noop, noop)
	assert.Equal(t, "hello", second.Name)
	assert.Len(t, second.Handlers, 3)
	assert.Equal(t, []string{"loud", "name"}, second.Config.Options.Names())
	assert.False(t, second.Config.IsStrict(), "Earlier config should be kept")
	assert.Equal(t, "Say hello.", second.Metadata.HelpText())
	assert.Equal(t, "1", second.Metadata.VersionText())
	assert.Len(t, first.Handlers, 1, "Earlier entries should not be modified")

	entry, ok := r.Lookup("hello")
	require.True(t, ok)
	assert.Same(t, second, entry)
	assert.Equal(t, []string{"hello"}, r.Names())
}

func TestRegistry_Roots(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Register("   ", config.ParseConfig{}, config.HelpMetadata{}, noop))
	assert.Nil(t, r.Register("", config.ParseConfig{}, config.HelpMetadata{}, noop))
	assert.Len(t, r.Roots(), 2)
	assert.Empty(t, r.Names(), "Root handlers should not create a command")

	roots := r.Roots()
	roots[0] = nil
	assert.NotNil(t, r.Roots()[0], "Roots should return a copy")
}

func TestRegistry_Hierarchy(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"remote add", "remote", "status", "remote add origin", "remotes"} {
		r.Register(name, config.ParseConfig{}, config.HelpMetadata{})
	}
	assert.Equal(t, []string{"remote", "remote add", "remote add origin", "remotes", "status"}, r.Names())
	assert.Equal(t, []string{"remote", "remotes", "status"}, r.TopLevel())
	assert.Equal(t, []string{"remote add", "remote add origin"}, r.Children("remote"))
	assert.Equal(t, []string{"remote add origin"}, r.Children("  remote   add "))
	assert.Empty(t, r.Children("status"))
}

func TestRegistry_Panics(t *testing.T) {
	r := NewRegistry()
	assert.PanicsWithValue(t, "nil handler", func() {
		r.Register("hello", config.ParseConfig{}, config.HelpMetadata{}, noop, nil)
	})
	assert.Panics(t, func() {
		r.Register("hello", config.ParseConfig{Options: config.Schema{"name": config.Text("nm")}}, config.HelpMetadata{})
	})
	assert.Panics(t, func() {
		r.Register("hello", config.ParseConfig{Options: config.Schema{
			"name": config.Text("n"),
			"new":  config.Flag("n"),
		}}, config.HelpMetadata{})
	})
	assert.Panics(t, func() {
		r.Register("hello", config.ParseConfig{Options: config.Schema{"host": config.Text("h")}}, config.HelpMetadata{})
	}, "Built-in short aliases can't be reused")
	assert.NotPanics(t, func() {
		r.Register("serve", config.ParseConfig{Options: config.Schema{
			"help": config.Flag(""),
			"host": config.Text("h"),
		}}, config.HelpMetadata{})
	}, "Overriding a built-in option frees its short alias")
	_, ok := r.Lookup("hello")
	assert.False(t, ok, "Failed registration should not add a command")
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	r.Register("a", config.ParseConfig{}, config.HelpMetadata{})
	r.Register("a b", config.ParseConfig{}, config.HelpMetadata{})
	r.Register("x y", config.ParseConfig{}, config.HelpMetadata{})

	tests := map[string]struct {
		positionals []string
		name        string
		consumed    int
	}{
		"Exact":              {positionals: []string{"a"}, name: "a", consumed: 1},
		"Longest prefix":     {positionals: []string{"a", "b"}, name: "a b", consumed: 2},
		"Longest with rest":  {positionals: []string{"a", "b", "c"}, name: "a b", consumed: 2},
		"Shorter with rest":  {positionals: []string{"a", "c"}, name: "a", consumed: 1},
		"Missing parent":     {positionals: []string{"x", "y", "z"}, name: "x y", consumed: 2},
		"Child without path": {positionals: []string{"x"}},
		"Not a prefix":       {positionals: []string{"b", "a"}},
		"No positionals":     {},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := Resolve(tc.positionals, r)
			assert.Equal(t, tc.name, res.Name)
			assert.Equal(t, tc.consumed, res.Consumed)
			assert.Equal(t, len(tc.name) > 0, res.Matched())
		})
	}

	assert.False(t, Resolve([]string{"a"}, nil).Matched())
}
