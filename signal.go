package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// shutdownContext returns a context that cancels on the first SIGINT/SIGTERM
// and force-exits on the second. Canceling aborts whichever HTTP call is in
// flight. The returned stop func cancels the context and releases the signal
// handler; callers defer it.
func shutdownContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		defer signal.Stop(sigCh)

		watchSignals(ctx, sigCh, done, cancel, logger, func() { os.Exit(1) })
	}()

	var once sync.Once

	stop := func() {
		once.Do(func() { close(done) })
		cancel()
	}

	return ctx, stop
}

// watchSignals cancels on the first signal and calls forceExit on the
// second. It returns once done is closed or ctx ends before any signal.
func watchSignals(
	ctx context.Context,
	sigCh <-chan os.Signal,
	done <-chan struct{},
	cancel context.CancelFunc,
	logger *slog.Logger,
	forceExit func(),
) {
	select {
	case sig := <-sigCh:
		logger.Info("received signal, aborting run",
			slog.String("signal", sig.String()),
		)
		cancel()
	case <-ctx.Done():
		return
	}

	// Wait for second signal: force exit.
	select {
	case sig := <-sigCh:
		logger.Warn("received second signal, forcing exit",
			slog.String("signal", sig.String()),
		)
		forceExit()
	case <-done:
		return
	}
}
