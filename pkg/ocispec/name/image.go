package name

import (
	"strings"
)

// Image is a parsed image reference:
//
//	[registry "/"] repository [":" tag] ["@" digest]
//
// Registry, tag and digest are independent optionals and absent parts are
// never defaulted. Image values are immutable; the With* methods return
// modified copies.
type Image struct {
	registry   Registry
	repository Repository
	tag        Tag
	digest     Digest
}

// ImageOption sets an optional part of an Image built by NewImage.
type ImageOption func(*Image)

// WithRegistry sets the registry of the image.
func WithRegistry(r Registry) ImageOption {
	return func(img *Image) {
		img.registry = r
	}
}

// WithTag sets the tag of the image.
func WithTag(t Tag) ImageOption {
	return func(img *Image) {
		img.tag = t
	}
}

// WithDigest sets the digest of the image.
func WithDigest(d Digest) ImageOption {
	return func(img *Image) {
		img.digest = d
	}
}

// NewImage assembles an Image from already parsed parts. Every part is
// validated again, so a zero Repository is rejected.
func NewImage(repo Repository, opts ...ImageOption) (Image, error) {
	img := Image{repository: repo}
	for _, o := range opts {
		o(&img)
	}
	if err := ValidateImage(img); err != nil {
		return Image{}, err
	}
	return img, nil
}

// Registry returns the registry and whether the reference named one.
func (img Image) Registry() (Registry, bool) {
	return img.registry, !img.registry.isZero()
}

// Repository returns the repository path.
func (img Image) Repository() Repository {
	return img.repository
}

// Tag returns the tag and whether the reference carried one.
func (img Image) Tag() (Tag, bool) {
	return img.tag, !img.tag.isZero()
}

// Digest returns the digest and whether the reference carried one.
func (img Image) Digest() (Digest, bool) {
	return img.digest, !img.digest.isZero()
}

// Name returns the registry and repository without tag and digest, e.g.
// "docker.io/library/ubuntu".
func (img Image) Name() string {
	if img.registry.isZero() {
		return img.repository.String()
	}
	return img.registry.String() + "/" + img.repository.String()
}

// WithTag returns a copy of the image with the tag replaced. A zero Tag
// removes it.
func (img Image) WithTag(t Tag) Image {
	clone := img
	clone.tag = t
	return clone
}

// WithDigest returns a copy of the image with the digest replaced. A zero
// Digest removes it.
func (img Image) WithDigest(d Digest) Image {
	clone := img
	clone.digest = d
	return clone
}

// WithoutTag returns a copy of the image without tag.
func (img Image) WithoutTag() Image {
	return img.WithTag(Tag{})
}

// WithoutDigest returns a copy of the image without digest.
func (img Image) WithoutDigest() Image {
	return img.WithDigest(Digest{})
}

// Equal reports whether both images have structurally equal parts.
func (img Image) Equal(other Image) bool {
	return img.registry == other.registry &&
		img.repository.Equal(other.repository) &&
		img.tag == other.tag &&
		img.digest == other.digest
}

// String renders the canonical reference. For any input accepted by Parse
// the output is byte-identical to that input.
func (img Image) String() string {
	var b strings.Builder
	if !img.registry.isZero() {
		b.WriteString(img.registry.String())
		b.WriteByte('/')
	}
	b.WriteString(img.repository.String())
	if !img.tag.isZero() {
		b.WriteByte(':')
		b.WriteString(img.tag.value)
	}
	if !img.digest.isZero() {
		b.WriteByte('@')
		b.WriteString(img.digest.String())
	}
	return b.String()
}
