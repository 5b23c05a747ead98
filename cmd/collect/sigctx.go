package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// NewSigctx returns a context that is canceled, with the signal as its
// cause, on the first SIGHUP, SIGTERM, SIGINT or SIGQUIT.
func NewSigctx() context.Context {
	ctx, cancel := context.WithCancelCause(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		sig := <-sigs
		signal.Stop(sigs)
		cancel(fmt.Errorf("got signal: %s", sig))
	}()
	return ctx
}
