// Package main is the entry point for the petgen CLI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn.Render("Error: "+errors.GetMessage(err)))
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
