package argparse

import (
	"fmt"
	"github.com/saylorsolutions/cmdchain/config"
	flag "github.com/spf13/pflag"
	"io"
	"strconv"
	"strings"
)

// Error is returned from [Parse] when arguments don't satisfy the schema.
type Error struct {
	wrapped error
}

func (e *Error) Error() string {
	if e.wrapped == nil {
		return "invalid arguments"
	}
	return e.wrapped.Error()
}

func (e *Error) Is(err error) bool {
	_, ok := err.(*Error)
	return ok
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

func newError(format string, args ...any) error {
	return &Error{wrapped: fmt.Errorf(format, args...)}
}

// TokenKind identifies the type of a [Token].
type TokenKind int

const (
	OptionToken TokenKind = iota + 1
	PositionalToken
)

// Token is a single parsed element of the argument list.
// Option tokens are reported in the order they were encountered, followed by positional tokens.
type Token struct {
	Kind  TokenKind
	Index int
	Name  string // Name is the long option name, and is empty for positional tokens.
	Value string
}

// Parse tokenizes args against the options and policies in cfg.
//
// Values are populated for every option that was given, and for every option with a default that was not.
// Options that were neither given nor have a default are absent from the result.
func Parse(args []string, cfg config.ParseConfig) (*Result, error) {
	schema := cfg.Options
	if err := schema.Validate(); err != nil {
		return nil, &Error{wrapped: err}
	}
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)
	fs.ParseErrorsWhitelist.UnknownFlags = !cfg.IsStrict()

	repeatedBools := map[string]*boolsValue{}
	for _, name := range schema.Names() {
		desc := schema[name]
		switch {
		case desc.Kind == config.Boolean && desc.Multiple:
			val := new(boolsValue)
			f := fs.VarPF(val, name, desc.Short, "")
			f.NoOptDefVal = "true"
			repeatedBools[name] = val
		case desc.Kind == config.Boolean:
			fs.BoolP(name, desc.Short, false, "")
		case desc.Multiple:
			fs.StringArrayP(name, desc.Short, nil, "")
		default:
			fs.StringP(name, desc.Short, "", "")
		}
	}

	if cfg.NegationAllowed() {
		args = rewriteNegations(args, schema)
	}
	if !cfg.IsStrict() {
		args = dropUnknown(args, schema)
	}

	var tokens []Token
	err := fs.ParseAll(args, func(f *flag.Flag, value string) error {
		if cfg.EmitTokens() {
			tokens = append(tokens, Token{Kind: OptionToken, Index: len(tokens), Name: f.Name, Value: value})
		}
		return fs.Set(f.Name, value)
	})
	if err != nil {
		return nil, &Error{wrapped: err}
	}

	positionals := fs.Args()
	if len(positionals) > 0 && !cfg.PositionalsAllowed() {
		return nil, newError("unexpected argument '%s': positional arguments are not allowed", positionals[0])
	}

	result := &Result{
		Values:      map[string]any{},
		Positionals: append([]string{}, positionals...),
	}
	for _, name := range schema.Names() {
		desc := schema[name]
		f := fs.Lookup(name)
		if !f.Changed {
			if desc.Default != nil {
				result.Values[name] = desc.Default
			}
			continue
		}
		switch {
		case desc.Kind == config.Boolean && desc.Multiple:
			result.Values[name] = append([]bool{}, repeatedBools[name].vals...)
		case desc.Kind == config.Boolean:
			result.Values[name], _ = fs.GetBool(name)
		case desc.Multiple:
			result.Values[name], _ = fs.GetStringArray(name)
		default:
			result.Values[name], _ = fs.GetString(name)
		}
	}
	if cfg.EmitTokens() {
		for _, pos := range positionals {
			tokens = append(tokens, Token{Kind: PositionalToken, Index: len(tokens), Value: pos})
		}
		result.Tokens = tokens
	}
	return result, nil
}

// rewriteNegations translates '--no-NAME' to '--NAME=false' for boolean options, up to the '--' terminator.
// If 'no-NAME' is itself a declared option, then it's left alone.
func rewriteNegations(args []string, schema config.Schema) []string {
	rewritten := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			rewritten = append(rewritten, args[i:]...)
			break
		}
		name, isNegated := strings.CutPrefix(arg, "--no-")
		if isNegated && !strings.Contains(name, "=") {
			desc, known := schema[name]
			_, declared := schema["no-"+name]
			if known && !declared && desc.Kind == config.Boolean {
				rewritten = append(rewritten, "--"+name+"=false")
				continue
			}
		}
		rewritten = append(rewritten, arg)
	}
	return rewritten
}

// dropUnknown removes options that aren't in the schema, up to the '--' terminator.
// Unknown options are treated as flags, so they never consume the following argument as a value.
// Values of known options are left alone, even if they look like options.
func dropUnknown(args []string, schema config.Schema) []string {
	shorts := map[byte]config.Descriptor{}
	for _, desc := range schema {
		if len(desc.Short) == 1 {
			shorts[desc.Short[0]] = desc
		}
	}
	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(kept, args[i:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			desc, known := schema[name]
			if !known {
				continue
			}
			kept = append(kept, arg)
			if !hasValue && takesValue(desc) && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		case len(arg) > 1 && arg[0] == '-':
			cluster, takesNext := knownShorts(arg[1:], shorts)
			if len(cluster) == 0 {
				continue
			}
			kept = append(kept, "-"+cluster)
			if takesNext && i+1 < len(args) {
				i++
				kept = append(kept, args[i])
			}
		default:
			kept = append(kept, arg)
		}
	}
	return kept
}

// knownShorts filters a cluster of short options down to the known ones.
// A known option that takes a value consumes the rest of the cluster, or the next argument if it's last.
func knownShorts(cluster string, shorts map[byte]config.Descriptor) (string, bool) {
	var buf strings.Builder
	for i := 0; i < len(cluster); i++ {
		desc, known := shorts[cluster[i]]
		inline := i+1 < len(cluster) && cluster[i+1] == '='
		if !known {
			if inline {
				break
			}
			continue
		}
		buf.WriteByte(cluster[i])
		if inline || takesValue(desc) {
			buf.WriteString(cluster[i+1:])
			return buf.String(), i+1 == len(cluster) && takesValue(desc)
		}
	}
	return buf.String(), false
}

func takesValue(desc config.Descriptor) bool {
	return desc.Kind == config.String
}

var _ flag.Value = (*boolsValue)(nil)

// boolsValue collects every occurrence of a repeated boolean option.
type boolsValue struct {
	vals []bool
}

func (b *boolsValue) Set(s string) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.vals = append(b.vals, val)
	return nil
}

func (b *boolsValue) Type() string {
	return "bools"
}

func (b *boolsValue) String() string {
	strs := make([]string, len(b.vals))
	for i, val := range b.vals {
		strs[i] = strconv.FormatBool(val)
	}
	return "[" + strings.Join(strs, ",") + "]"
}
