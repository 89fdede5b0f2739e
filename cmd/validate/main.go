// Package main is the entry point for the validate CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrymomot/validate/cmd/validate/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		if !commands.IsBlocked(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
