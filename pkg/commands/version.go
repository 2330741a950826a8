package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/appinfo"
	"github.com/wuxler/imgref/pkg/cmdhelper"
)

// NewVersionCommand returns a version command.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{
		Format: cmdhelper.OutputText,
	}
}

// VersionCommand prints how the binary was built.
type VersionCommand struct {
	Short  bool
	Format string
}

// ToCLI returns a *cli.Command.
func (c *VersionCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show the imgref version information",
		Flags:  c.Flags(),
		Before: cmdhelper.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *VersionCommand) Run(_ context.Context, cmd *cli.Command) error {
	info := appinfo.Get()
	w := cmdhelper.Stdout(cmd)
	if c.Short {
		cmdhelper.Fprintf(w, "%s", info.Short())
		return nil
	}
	if ok, err := cmdhelper.Encode(w, c.Format, info); ok {
		return err
	}
	return info.WriteText(w, cmd.Root().Name)
}

// Flags returns a list of cli flags of the commands.
func (c *VersionCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "short",
			Aliases:     []string{"s"},
			Usage:       "print only the version and the abbreviated commit",
			Value:       c.Short,
			Destination: &c.Short,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
			Validator:   cmdhelper.ValidateOutput,
		},
	}
}
