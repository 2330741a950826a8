package options

import (
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
)

// NewOutput returns a *Output with default values.
func NewOutput() *Output {
	return &Output{Format: cmdhelper.OutputText}
}

// Output defines how results are rendered.
type Output struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       o.Format,
			Destination: &o.Format,
			Validator:   cmdhelper.ValidateOutput,
		},
	}
}
