// Package commands defines the imgref command line and its sub-commands.
package commands

import (
	"io"

	"github.com/benbjohnson/clock"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/commands/internal/options"
	"github.com/wuxler/imgref/pkg/commands/server"
	"github.com/wuxler/imgref/pkg/ocispec/name"
)

//go:generate mockgen -destination=./parser_mock_test.go -package=commands_test github.com/wuxler/imgref/pkg/ocispec/name Parser

const appName = "imgref"

// New returns an *App working on the OS filesystem and the wall clock.
func New() *App {
	return &App{
		Common: options.NewCommon(),
		Fs:     afero.NewOsFs(),
		Clock:  clock.New(),
	}
}

// App retains the global flags and the dependencies shared by sub-commands.
type App struct {
	Common *options.Common
	// Fs is the filesystem used to read --from-file inputs.
	Fs afero.Fs
	// Clock measures elapsed time of batch operations.
	Clock clock.Clock
	// Parser overrides the parser built from the global flags when set.
	Parser name.Parser

	// Standard streams of the root command, the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ToCLI transforms to the root *cli.Command.
func (a *App) ToCLI() *cli.Command {
	return &cli.Command{
		Name:                  appName,
		Usage:                 "Parse, validate and format OCI image references",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags:                 a.Common.Flags(),
		Commands: []*cli.Command{
			NewParseCommand(a).ToCLI(),
			NewValidateCommand(a).ToCLI(),
			NewFormatCommand(a).ToCLI(),
			server.NewCommand(a.Common).ToCLI(),
			NewVersionCommand().ToCLI(),
		},
		Reader:    a.Stdin,
		Writer:    a.Stdout,
		ErrWriter: a.Stderr,
	}
}

func (a *App) parser() name.Parser {
	if a.Parser == nil {
		a.Parser = a.Common.NewParser()
	}
	return a.Parser
}
