package cli

import (
	"context"
	"github.com/saylorsolutions/cmdchain/config"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalContext will set up a context that will be cancelled if any of the given signals are received.
// If a second signal is received, then out is terminated with a non-zero exit code.
//
// The returned stop function cancels the context and stops listening for signals, and should always be called.
func SignalContext(parent context.Context, out Output, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		panic("no signals passed to SignalContext")
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)

	var (
		once    sync.Once
		stopped = make(chan struct{})
	)
	stop := func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(stopped)
			cancel()
		})
	}
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-stopped:
			return
		}
		select {
		case <-sigs:
			if out != nil {
				out.Terminate(1)
			}
		case <-stopped:
		}
	}()
	return ctx, stop
}

// Main dispatches with a context that is cancelled on an interrupt or termination signal.
// This is intended to be called from a main function, and uses the process arguments unless cfg sets them.
func (a *App) Main(cfg config.ParseConfig, meta config.HelpMetadata, rootHandlers ...Handler) error {
	ctx, stop := SignalContext(context.Background(), a.out, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Dispatch(ctx, cfg, meta, rootHandlers...)
}
