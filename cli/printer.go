package cli

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/saylorsolutions/cmdchain/config"
	"golang.org/x/term"
	"io"
	"os"
)

// Level determines where emitted text is written.
type Level int

const (
	LevelLog   Level = iota // LevelLog writes to the standard output.
	LevelInfo               // LevelInfo writes to the standard output.
	LevelDebug              // LevelDebug writes to the error output.
	LevelWarn               // LevelWarn writes to the error output.
	LevelError              // LevelError writes to the error output.
	LevelNone               // LevelNone discards the text.
)

// Style is a set of [color.Attribute] applied to emitted text when color is enabled.
type Style []color.Attribute

var (
	StyleError   = Style{color.FgRed}
	StyleWarn    = Style{color.FgYellow}
	StyleSuccess = Style{color.FgGreen}
	StyleBold    = Style{color.Bold}
)

// Output is the collaborator that dispatch uses to communicate with the user and end the process.
type Output interface {
	// Emit writes a line of text, with an optional style, at the given level.
	Emit(text string, style Style, level Level)
	// Terminate ends the process with the exit code.
	Terminate(code int)
}

var _ Output = (*Printer)(nil)

// Printer is the default [Output].
// Text is written to STDOUT or STDERR depending on the [Level].
type Printer struct {
	out    io.Writer
	errOut io.Writer
	exit   func(code int)
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stdout, errOut: os.Stderr, exit: os.Exit}
}

// Redirect sends all output to writer.
// If errWriter is given, then error output is sent there instead.
func (p *Printer) Redirect(writer io.Writer, errWriter ...io.Writer) {
	p.out = writer
	p.errOut = writer
	if len(errWriter) > 0 {
		p.errOut = errWriter[0]
	}
}

// OnTerminate replaces the function called by [Printer.Terminate], which is [os.Exit] by default.
// Passing nil restores the default.
func (p *Printer) OnTerminate(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	p.exit = exit
}

func (p *Printer) Emit(text string, style Style, level Level) {
	var w io.Writer
	switch level {
	case LevelNone:
		return
	case LevelDebug, LevelWarn, LevelError:
		w = p.errOut
	default:
		w = p.out
	}
	if len(style) > 0 {
		c := color.New(style...)
		if useColor(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		text = c.Sprint(text)
	}
	_, _ = fmt.Fprintln(w, text)
}

func (p *Printer) Terminate(code int) {
	p.exit(code)
}

// useColor enables color for terminals, unless NO_COLOR is set.
// FORCE_COLOR overrides both.
func useColor(w io.Writer) bool {
	if config.EnvBool("FORCE_COLOR", false) {
		return true
	}
	if config.EnvSet("NO_COLOR") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
