package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hyprwatch/internal/filter"
	"hyprwatch/internal/watch"
)

// Exit codes, distinct per failure class so supervisors and scripts can
// react without parsing stderr.
const (
	exitFailure   = 1
	exitUsage     = 2
	exitTransport = 3
	exitEventLoss = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintf(os.Stderr, "hyprwatch: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var usageErr *usageError
	var filterErr *filter.ConfigError
	var startupErr *watch.StartupError
	var eventErr *watch.EventChannelError
	switch {
	case errors.As(err, &usageErr), errors.As(err, &filterErr):
		return exitUsage
	case errors.As(err, &startupErr):
		return exitTransport
	case errors.As(err, &eventErr):
		return exitEventLoss
	default:
		return exitFailure
	}
}

// usageError marks command-line and configuration mistakes reported
// before any socket is opened.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }
