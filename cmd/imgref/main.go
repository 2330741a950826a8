// Package main is the entry of the application.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := commands.New().ToCLI()
	app.ExitErrHandler = func(_ context.Context, c *cli.Command, err error) {
		cli.HandleExitCoder(err)
		cmdhelper.Fprintf(cmdhelper.Stderr(c), "Error: %s", err)
		stop()
		os.Exit(1)
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(ctx, os.Args)
}
