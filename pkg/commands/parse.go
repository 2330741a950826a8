package commands

import (
	"context"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/commands/internal/view"
	"github.com/wuxler/imgref/pkg/ocispec/name"
	"github.com/wuxler/imgref/pkg/xlog"
)

// NewParseCommand returns a command with default values.
func NewParseCommand(app *App) *ParseCommand {
	return &ParseCommand{
		app:    app,
		Input:  options.NewInput(app.Fs),
		Output: options.NewOutput(),
	}
}

// ParseCommand prints the decomposition of image references.
type ParseCommand struct {
	Input  *options.Input
	Output *options.Output

	app *App
}

// ToCLI transforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Print the registry, repository, tag and digest of image references",
		UsageText: `imgref parse [OPTIONS] REFERENCE...

# Decompose a reference
$ imgref parse localhost:5000/my-app:1.0

# Decompose references listed in a file as json
$ imgref parse --output json --from-file images.txt

# Decompose the base image recorded in a manifest
$ imgref parse --from-annotations manifest.json
`,
		ArgsUsage: "REFERENCE...",
		Flags:     c.Flags(),
		Before:    c.app.Common.Setup(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *ParseCommand) Flags() []cli.Flag {
	flags := []cli.Flag{}
	flags = append(flags, c.Input.Flags()...)
	flags = append(flags, c.Output.Flags()...)
	return flags
}

// Run is the main function for the current command
func (c *ParseCommand) Run(ctx context.Context, cmd *cli.Command) error {
	refs, err := c.Input.References(ctx, cmd)
	if err != nil {
		return err
	}
	parser := c.app.parser()
	images := make([]name.Image, 0, len(refs))
	for _, ref := range refs {
		img, err := parser.Parse(ctx, ref)
		if err != nil {
			xlog.C(ctx).Debug("failed to parse reference", "reference", ref, "code", name.ErrorCode(err))
			return err
		}
		images = append(images, img)
	}
	views := lo.Map(images, func(img name.Image, _ int) view.Reference { return view.FromImage(img) })

	w := cmdhelper.Stdout(cmd)
	if ok, err := cmdhelper.Encode(w, c.Output.Format, views); ok {
		return err
	}
	for i, v := range views {
		if i > 0 {
			cmdhelper.Fprintf(w, "")
		}
		if err := view.WriteText(w, v); err != nil {
			return err
		}
	}
	return nil
}
