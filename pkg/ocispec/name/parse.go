package name

import (
	"strings"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// Parse parses s as an image reference. The first grammar violation is
// returned as is; use errors.Is with the Err* variables and errors.As with
// ComponentError, TagCharacterError or DigestLengthError to inspect it.
func Parse(s string, opts ...Option) (Image, error) {
	o := makeOptions(opts...)
	img, err := parseImage(s)
	if err != nil {
		return Image{}, err
	}
	if o.strict {
		if err := checkFullyQualified(img); err != nil {
			return Image{}, err
		}
	}
	return img, nil
}

// MustParse wraps Parse with error panic.
func MustParse(s string, opts ...Option) Image {
	img, err := Parse(s, opts...)
	if err != nil {
		panic(err)
	}
	return img
}

func parseImage(s string) (Image, error) {
	if s == "" {
		return Image{}, errdefs.Newf(ErrEmptyInput, "non-empty reference is required")
	}

	var img Image
	remainder := s

	// A registry can only precede a "/" that appears before the digest.
	head := s
	if i := strings.IndexByte(s, '@'); i != -1 {
		head = s[:i]
	}
	if i := strings.IndexByte(head, '/'); i != -1 && isRegistryCandidate(s[:i]) {
		registry, err := ParseRegistry(s[:i])
		if err != nil {
			return Image{}, err
		}
		img.registry = registry
		remainder = s[i+1:]
	}

	path, digestText, hasDigest := strings.Cut(remainder, "@")
	path, tagText, hasTag := strings.Cut(path, ":")

	repo, err := ParseRepository(path)
	if err != nil {
		return Image{}, err
	}
	img.repository = repo

	if hasTag {
		if img.tag, err = ParseTag(tagText); err != nil {
			return Image{}, err
		}
	}
	if hasDigest {
		if img.digest, err = ParseDigest(digestText); err != nil {
			return Image{}, err
		}
	}
	return img, nil
}

func checkFullyQualified(img Image) error {
	if img.registry.isZero() {
		return errdefs.Newf(ErrNotFullyQualified, "reference %q does not name a registry", img)
	}
	if img.tag.isZero() && img.digest.isZero() {
		return errdefs.Newf(ErrNotFullyQualified, "reference %q has neither tag nor digest", img)
	}
	return nil
}
