// Package view renders parsed references and errors for the command line
// and the HTTP API.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/wuxler/imgref/pkg/ocispec/name"
)

// Reference is the decomposition of a parsed image reference.
type Reference struct {
	Reference   string            `json:"reference" yaml:"reference"`
	Registry    *Registry         `json:"registry,omitempty" yaml:"registry,omitempty"`
	Repository  Repository        `json:"repository" yaml:"repository"`
	Tag         string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	Digest      *Digest           `json:"digest,omitempty" yaml:"digest,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// Registry is the registry part of Reference.
type Registry struct {
	Host  string  `json:"host" yaml:"host"`
	Port  *uint16 `json:"port,omitempty" yaml:"port,omitempty"`
	Local bool    `json:"local" yaml:"local"`
}

// Repository is the repository part of Reference.
type Repository struct {
	Path       string   `json:"path" yaml:"path"`
	Namespace  string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Components []string `json:"components" yaml:"components"`
}

// Digest is the digest part of Reference.
type Digest struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Encoded   string `json:"encoded" yaml:"encoded"`
}

// Error is the rendering of a failed parse.
type Error struct {
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
	Error     string `json:"error" yaml:"error"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
}

// FromImage returns the decomposition of img.
func FromImage(img name.Image) Reference {
	repo := img.Repository()
	namespace, _ := repo.Namespace()
	ref := Reference{
		Reference: img.String(),
		Repository: Repository{
			Path:       repo.String(),
			Namespace:  namespace,
			Name:       repo.Name(),
			Components: repo.Components(),
		},
		Annotations: img.Annotations(),
	}
	if registry, ok := img.Registry(); ok {
		ref.Registry = &Registry{Host: registry.Host(), Local: registry.IsLocal()}
		if port, ok := registry.Port(); ok {
			ref.Registry.Port = lo.ToPtr(port)
		}
	}
	if tag, ok := img.Tag(); ok {
		ref.Tag = tag.String()
	}
	if dgst, ok := img.Digest(); ok {
		ref.Digest = &Digest{Algorithm: dgst.Algorithm(), Encoded: dgst.Encoded()}
	}
	return ref
}

// FromError returns the rendering of err raised for the reference s.
func FromError(s string, err error) Error {
	return Error{Reference: s, Error: Message(err), Code: name.ErrorCode(err)}
}

// Message flattens the lines of a joined error into a single line.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}

// WriteText writes the human readable layout of ref.
func WriteText(w io.Writer, ref Reference) error {
	var b strings.Builder
	line := func(key, value string) {
		fmt.Fprintf(&b, "%-12s: %s\n", key, value)
	}
	line("Reference", ref.Reference)
	if ref.Registry != nil {
		port := "<none>"
		if ref.Registry.Port != nil {
			port = fmt.Sprint(*ref.Registry.Port)
		}
		line("Registry", ref.Registry.Host)
		line("  Port", port)
		line("  Local", fmt.Sprint(ref.Registry.Local))
	} else {
		line("Registry", "<none>")
	}
	line("Repository", ref.Repository.Path)
	line("  Namespace", lo.Ternary(ref.Repository.Namespace == "", "<none>", ref.Repository.Namespace))
	line("  Name", ref.Repository.Name)
	line("Tag", lo.Ternary(ref.Tag == "", "<none>", ref.Tag))
	if ref.Digest != nil {
		line("Digest", ref.Digest.Algorithm+":"+ref.Digest.Encoded)
	} else {
		line("Digest", "<none>")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
