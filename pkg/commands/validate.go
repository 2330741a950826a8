package commands

import (
	"context"
	"runtime"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/commands/internal/view"
	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name"
	"github.com/wuxler/imgref/pkg/xlog"
)

// NewValidateCommand returns a command with default values.
func NewValidateCommand(app *App) *ValidateCommand {
	return &ValidateCommand{
		app:         app,
		Input:       options.NewInput(app.Fs),
		Concurrency: int64(runtime.NumCPU()),
	}
}

// ValidateCommand checks image references concurrently.
type ValidateCommand struct {
	Input       *options.Input
	Concurrency int64 `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	Quiet       bool  `json:"quiet,omitempty" yaml:"quiet,omitempty"`

	app *App
}

// ToCLI transforms to a *cli.Command.
func (c *ValidateCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"check"},
		Usage:   "Check whether image references are well formed",
		UsageText: `imgref validate [OPTIONS] REFERENCE...

# Check a single reference
$ imgref validate docker.io/library/ubuntu:22.04

# Check every reference listed in a file, requiring registry and tag or digest
$ imgref --strict validate --from-file images.txt
`,
		ArgsUsage: "REFERENCE...",
		Flags:     c.Flags(),
		Before:    c.app.Common.Setup(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ValidateCommand) Flags() []cli.Flag {
	local := []cli.Flag{
		&cli.IntFlag{
			Name:        "concurrency",
			Aliases:     []string{"c"},
			Usage:       "number of references checked in parallel",
			Destination: &c.Concurrency,
			Value:       c.Concurrency,
			Validator: func(n int64) error {
				if n < 1 {
					return errdefs.Newf(errdefs.ErrInvalidParameter, "concurrency must be positive, got %d", n)
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "print only the invalid references",
			Destination: &c.Quiet,
			Value:       c.Quiet,
		},
	}
	return append(c.Input.Flags(), local...)
}

type validateResult struct {
	ref string
	err error
}

// Run is the main function for the current command
func (c *ValidateCommand) Run(ctx context.Context, cmd *cli.Command) error {
	refs, err := c.Input.References(ctx, cmd)
	if err != nil {
		return err
	}
	parser := c.app.parser()
	start := c.app.Clock.Now()

	results := make([]validateResult, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(c.Concurrency))
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := parser.Parse(gctx, ref)
			results[i] = validateResult{ref: ref, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errdefs.FromContext(err)
	}

	w := cmdhelper.Stdout(cmd)
	for _, r := range results {
		if r.err != nil {
			cmdhelper.Fprintf(w, "INVALID\t%s\t%s", r.ref, view.Message(r.err))
			xlog.C(ctx).Debug("invalid reference", "reference", r.ref, "code", name.ErrorCode(r.err))
			continue
		}
		if !c.Quiet {
			cmdhelper.Fprintf(w, "OK\t%s", r.ref)
		}
	}

	invalid := lo.CountBy(results, func(r validateResult) bool { return r.err != nil })
	xlog.C(ctx).Info("validated references",
		"total", len(results),
		"invalid", invalid,
		"elapsed", c.app.Clock.Since(start).String(),
	)
	if invalid > 0 {
		return errdefs.Newf(name.ErrBadName, "%d of %d references are invalid", invalid, len(results))
	}
	return nil
}
