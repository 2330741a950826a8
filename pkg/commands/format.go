package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/ocispec/name"
)

// NewFormatCommand returns a command with default values.
func NewFormatCommand(app *App) *FormatCommand {
	return &FormatCommand{
		app:   app,
		Input: options.NewInput(app.Fs),
	}
}

// FormatCommand prints the canonical rendering of image references.
type FormatCommand struct {
	Input *options.Input

	NameOnly    bool `json:"name_only,omitempty" yaml:"name_only,omitempty"`
	StripTag    bool `json:"strip_tag,omitempty" yaml:"strip_tag,omitempty"`
	StripDigest bool `json:"strip_digest,omitempty" yaml:"strip_digest,omitempty"`

	app *App
}

// ToCLI transforms to a *cli.Command.
func (c *FormatCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "format",
		Aliases: []string{"fmt"},
		Usage:   "Print the canonical form of image references",
		UsageText: `imgref format [OPTIONS] REFERENCE...

# Print the canonical form
$ imgref format docker.io/library/ubuntu:22.04

# Drop the digest of a pinned reference
$ imgref format --strip-digest ubuntu:22.04@sha256:<hex>
`,
		ArgsUsage: "REFERENCE...",
		Flags:     c.Flags(),
		Before:    c.app.Common.Setup(),
		Action:    c.Run,
	}
}

// Flags defines the flags related to the current command.
func (c *FormatCommand) Flags() []cli.Flag {
	local := []cli.Flag{
		&cli.BoolFlag{
			Name:        "name-only",
			Usage:       "print only the registry and repository",
			Destination: &c.NameOnly,
			Value:       c.NameOnly,
		},
		&cli.BoolFlag{
			Name:        "strip-tag",
			Usage:       "remove the tag",
			Destination: &c.StripTag,
			Value:       c.StripTag,
		},
		&cli.BoolFlag{
			Name:        "strip-digest",
			Usage:       "remove the digest",
			Destination: &c.StripDigest,
			Value:       c.StripDigest,
		},
	}
	return append(c.Input.Flags(), local...)
}

// Run is the main function for the current command
func (c *FormatCommand) Run(ctx context.Context, cmd *cli.Command) error {
	refs, err := c.Input.References(ctx, cmd)
	if err != nil {
		return err
	}
	parser := c.app.parser()
	w := cmdhelper.Stdout(cmd)
	for _, ref := range refs {
		img, err := parser.Parse(ctx, ref)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(w, "%s", c.render(img))
	}
	return nil
}

func (c *FormatCommand) render(img name.Image) string {
	if c.NameOnly {
		return img.Name()
	}
	if c.StripTag {
		img = img.WithoutTag()
	}
	if c.StripDigest {
		img = img.WithoutDigest()
	}
	return img.String()
}
