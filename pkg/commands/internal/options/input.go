package options

import (
	"context"
	"encoding/json"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name"
)

const (
	// InputFlagCategory is the category of the input flags.
	InputFlagCategory = "[Input]"
)

// NewInput returns a *Input reading files from fs.
func NewInput(fs afero.Fs) *Input {
	return &Input{fs: fs}
}

// Input collects references from the arguments and an optional file.
type Input struct {
	FromFile        string `json:"from_file,omitempty" yaml:"from_file,omitempty"`
	FromAnnotations string `json:"from_annotations,omitempty" yaml:"from_annotations,omitempty"`

	fs afero.Fs
}

// Flags returns the []cli.Flag related to current options.
func (o *Input) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "from-file",
			Aliases:     []string{"f"},
			Usage:       `read newline separated references from the file, "-" for stdin`,
			Value:       o.FromFile,
			Destination: &o.FromFile,
			TakesFile:   true,
			Category:    InputFlagCategory,
		},
		&cli.StringFlag{
			Name:        "from-annotations",
			Usage:       "read the base image reference from the annotations of an OCI manifest or index file",
			Value:       o.FromAnnotations,
			Destination: &o.FromAnnotations,
			TakesFile:   true,
			Category:    InputFlagCategory,
		},
	}
}

// References returns the command arguments followed by the references
// listed in the input file. At least one reference is required.
func (o *Input) References(_ context.Context, cmd *cli.Command) ([]string, error) {
	refs := cmd.Args().Slice()
	if o.FromFile != "" {
		lines, err := cmdhelper.ReadLinesFromFile(o.fs, o.FromFile, cmd.Root().Reader)
		if err != nil {
			return nil, err
		}
		refs = append(refs, lines...)
	}
	if o.FromAnnotations != "" {
		ref, err := o.baseImage()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return nil, errdefs.Newf(errdefs.ErrInvalidParameter,
			"at least one reference is required as argument, with --from-file or with --from-annotations")
	}
	return lo.Uniq(refs), nil
}

func (o *Input) baseImage() (string, error) {
	data, err := afero.ReadFile(o.fs, o.FromAnnotations)
	if err != nil {
		return "", errdefs.NewE(errdefs.ErrNotFound, err)
	}
	var doc struct {
		Annotations map[string]string `json:"annotations"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", errdefs.Newf(errdefs.ErrInvalidParameter, "decode annotations from %q: %v", o.FromAnnotations, err)
	}
	img, ok, err := name.FromAnnotations(doc.Annotations)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errdefs.Newf(errdefs.ErrNotFound, "no base image annotation in %q", o.FromAnnotations)
	}
	return img.String(), nil
}
