// Package cmdhelper provides common methods or types to help to build cli commands.
package cmdhelper

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// ActionFunc is a function type to set *cli.Command Action
type ActionFunc func(ctx context.Context, cmd *cli.Command) error

// ActionFuncChain wraps multiple ActionFunc into one process.
func ActionFuncChain(handlers ...ActionFunc) ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		for _, h := range handlers {
			if err := h(ctx, cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

// BeforeFunc adapts the ActionFunc chain to the *cli.Command Before hook.
func BeforeFunc(handlers ...ActionFunc) cli.BeforeFunc {
	chain := ActionFuncChain(handlers...)
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		return ctx, chain(ctx, cmd)
	}
}

// ExactArgs returns an error if there are not exactly n args.
func ExactArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() != n {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "accepts %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}

// MinimumNArgs returns an error if there is not at least N args.
func MinimumNArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() < n {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "accepts at least %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}

// NoArgs returns an error if any args are included.
func NoArgs() ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() > 0 {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "no args required for %q, received %q", cmd.FullName(), args.First())
		}
		return nil
	}
}

// Stdout returns the writer configured on the root command. Sub-commands
// do not inherit the root writer, so command output is routed here.
func Stdout(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// Stderr returns the error writer configured on the root command.
func Stderr(cmd *cli.Command) io.Writer {
	return cmd.Root().ErrWriter
}
