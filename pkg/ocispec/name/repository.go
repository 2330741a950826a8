package name

import (
	"slices"
	"strings"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name/internal"
)

// Repository is the slash-separated path of an image within a registry,
// without the registry itself. The zero value is not a valid Repository.
type Repository struct {
	components []string
}

// ParseRepository parses path as one or more "/"-separated path-components.
func ParseRepository(path string) (Repository, error) {
	if path == "" {
		return Repository{}, errdefs.Newf(ErrEmptyRepository, "non-empty repository path is required")
	}
	if internal.AnchoredRemoteNameRegexp.MatchString(path) {
		return Repository{components: strings.Split(path, "/")}, nil
	}
	return newRepository(strings.Split(path, "/"))
}

// NewRepository returns a Repository made of the given path-components.
func NewRepository(components ...string) (Repository, error) {
	if len(components) == 0 {
		return Repository{}, errdefs.Newf(ErrEmptyRepository, "at least one path-component is required")
	}
	return newRepository(slices.Clone(components))
}

// MustParseRepository wraps ParseRepository with error panic.
func MustParseRepository(path string) Repository {
	repo, err := ParseRepository(path)
	if err != nil {
		panic(err)
	}
	return repo
}

func newRepository(components []string) (Repository, error) {
	for i, c := range components {
		if err := validateComponent(i, c); err != nil {
			return Repository{}, err
		}
	}
	return Repository{components: components}, nil
}

// Components returns a copy of the path-components in order.
func (r Repository) Components() []string {
	return slices.Clone(r.components)
}

// Len returns the number of path-components.
func (r Repository) Len() int {
	return len(r.components)
}

// Component returns the i-th path-component.
func (r Repository) Component(i int) string {
	return r.components[i]
}

// Namespace returns every path-component but the last joined by "/". It
// reports false for a single-component repository.
func (r Repository) Namespace() (string, bool) {
	if len(r.components) < 2 {
		return "", false
	}
	return strings.Join(r.components[:len(r.components)-1], "/"), true
}

// Name returns the last path-component.
func (r Repository) Name() string {
	if len(r.components) == 0 {
		return ""
	}
	return r.components[len(r.components)-1]
}

// Equal reports whether both repositories have the same path-components.
func (r Repository) Equal(other Repository) bool {
	return slices.Equal(r.components, other.components)
}

// String returns the path-components joined by "/".
func (r Repository) String() string {
	return strings.Join(r.components, "/")
}

func (r Repository) isZero() bool {
	return len(r.components) == 0
}

// validateComponent checks a single path-component:
//
//	component := [a-z0-9]+ (separator [a-z0-9]+)*
//	separator := "." | "_" | "__" | "-"+
func validateComponent(index int, c string) error {
	if internal.AnchoredPathComponentRegexp.MatchString(c) {
		return nil
	}
	fail := func(offset int, v Violation) error {
		return &ComponentError{Index: index, Component: c, Offset: offset, Violation: v}
	}
	if c == "" {
		return fail(0, ViolationEmpty)
	}
	for i := 0; i < len(c); {
		if internal.IsLowerAlnum(c[i]) {
			i++
			continue
		}
		if !internal.IsComponentSeparator(c[i]) {
			return fail(i, ViolationIllegalCharacter)
		}
		j := i
		for j < len(c) && internal.IsComponentSeparator(c[j]) {
			j++
		}
		switch {
		case i == 0:
			return fail(i, ViolationLeadingSeparator)
		case j == len(c):
			return fail(i, ViolationTrailingSeparator)
		case !isSeparator(c[i:j]):
			return fail(i, ViolationMalformedSeparator)
		}
		i = j
	}
	// unreachable when the scanner and the pattern agree
	return fail(0, ViolationIllegalCharacter)
}

func isSeparator(run string) bool {
	switch run {
	case ".", "_", "__":
		return true
	}
	return strings.Trim(run, "-") == ""
}
