package name

import (
	"github.com/wuxler/imgref/pkg/errdefs"
)

// Validate checks whether s is a valid image reference.
func Validate(s string, opts ...Option) error {
	_, err := Parse(s, opts...)
	return err
}

// ValidateRegistry checks whether the Registry is valid.
func ValidateRegistry(r Registry) error {
	if err := validateHost(r.host); err != nil {
		return err
	}
	if r.port != "" {
		return validatePort(r.port)
	}
	return nil
}

// ValidateRepository checks whether the Repository is valid.
func ValidateRepository(r Repository) error {
	if r.isZero() {
		return errdefs.Newf(ErrEmptyRepository, "at least one path-component is required")
	}
	for i, c := range r.components {
		if err := validateComponent(i, c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTag checks whether the tag is valid.
func ValidateTag(t Tag) error {
	return validateTag(t.value)
}

// ValidateDigest checks whether the digest is valid.
func ValidateDigest(d Digest) error {
	return validateDigest(d.algorithm, d.encoded)
}

// ValidateImage checks the repository and every present optional part of
// the image, and that the rendered reference parses back into the same
// parts: without registry, a multi-component repository must not start
// with a component Parse would read as a registry.
func ValidateImage(img Image) error {
	if !img.registry.isZero() || img.registry.port != "" {
		if err := ValidateRegistry(img.registry); err != nil {
			return err
		}
	}
	if err := ValidateRepository(img.repository); err != nil {
		return err
	}
	if img.registry.isZero() && img.repository.Len() > 1 && isRegistryCandidate(img.repository.Component(0)) {
		return &ComponentError{
			Index:     0,
			Component: img.repository.Component(0),
			Violation: ViolationRegistryLike,
		}
	}
	if !img.tag.isZero() {
		if err := ValidateTag(img.tag); err != nil {
			return err
		}
	}
	if !img.digest.isZero() {
		if err := ValidateDigest(img.digest); err != nil {
			return err
		}
	}
	return nil
}
