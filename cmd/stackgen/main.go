// Package main is the entry point for the stackgen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/stackgen/cli/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: flag parsing and argument errors
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(cmd.ExitGeneralError)
	}
}
