// Package server serves image reference parsing over HTTP.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/xlog"
)

// NewCommand returns a command with default values.
func NewCommand(common *options.Common) *Command {
	return &Command{
		Common:        common,
		ServerOptions: options.NewServerOptions(),
	}
}

// Command is a command to start the server.
type Command struct {
	Common        *options.Common
	ServerOptions *options.ServerOptions
}

// ToCLI transforms to a *cli.Command.
func (c *Command) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"srv"},
		Usage:   "Start the reference parsing HTTP service",
		UsageText: `imgref server [OPTIONS]

# Start the server with default port 8080
$ imgref server

# Start the server with custom port
$ imgref server --port 9000

# Query the server
$ curl 'http://127.0.0.1:8080/v1/references/parse?ref=ubuntu:22.04'
`,
		Flags:  c.Flags(),
		Before: c.Common.Setup(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *Command) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.ServerOptions.Flags()...)
	return flags
}

// Run is the main function for the current command
func (c *Command) Run(ctx context.Context, cmd *cli.Command) error {
	address := c.ServerOptions.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	xlog.C(ctx).Infof("Starting server %s", listener.Addr())

	handler := NewHandler(ctx, Parsers{
		Lenient: c.Common.NewParserWithStrict(false),
		Strict:  c.Common.NewParserWithStrict(true),
	}, c.Common.Strict)
	cmdhelper.Fprintf(cmdhelper.Stdout(cmd), "Server started at http://%s", listener.Addr())
	cmdhelper.Fprintf(cmdhelper.Stdout(cmd), "Press Ctrl+C to stop the server")
	return Serve(ctx, listener, handler, c.ServerOptions.ShutdownTimeout)
}

// Serve serves handler on the listener until ctx is done, then gives the
// in-flight requests up to shutdownTimeout to complete.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, //nolint:mnd // disable magic number lint error
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			xlog.C(ctx).Error("Server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		xlog.C(ctx).Error("Server shutdown failed", "error", err)
		return err
	}
	xlog.C(ctx).Info("Server stopped")
	return nil
}
