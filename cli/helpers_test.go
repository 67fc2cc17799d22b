package cli

import (
	"bytes"
	"context"
	"testing"
)

type testOutput struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	codes  []int
}

// newTestApp creates an App that captures output and exit codes instead of writing to the terminal and exiting.
func newTestApp(t *testing.T, opts ...Option) (*App, *testOutput) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	captured := new(testOutput)
	printer := NewPrinter()
	printer.Redirect(&captured.stdout, &captured.stderr)
	printer.OnTerminate(func(code int) {
		captured.codes = append(captured.codes, code)
	})
	return New(append([]Option{WithOutput(printer)}, opts...)...), captured
}

func testSession(t *testing.T) *Session {
	t.Helper()
	return &Session{ctx: context.Background()}
}
