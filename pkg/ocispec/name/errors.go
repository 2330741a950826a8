package name

import (
	"errors"
	"fmt"

	"github.com/wuxler/imgref/pkg/errdefs"
)

var (
	// ErrBadName is the root of every grammar error returned by this package.
	// It wraps errdefs.ErrInvalidParameter.
	ErrBadName = fmt.Errorf("%w: bad name", errdefs.ErrInvalidParameter)

	// ErrEmptyInput is returned when the reference string is empty.
	ErrEmptyInput = newKind("empty input")
	// ErrInvalidRegistryHost is returned when the registry host violates the
	// domain-name or IP literal grammar.
	ErrInvalidRegistryHost = newKind("invalid registry host")
	// ErrInvalidRegistryPort is returned when a registry port is not a
	// well-formed 16-bit unsigned integer.
	ErrInvalidRegistryPort = newKind("invalid registry port")
	// ErrEmptyRepository is returned when the repository path has no
	// components.
	ErrEmptyRepository = newKind("empty repository")
	// ErrInvalidRepositoryComponent is returned when a repository path
	// component is malformed. See ComponentError for the details.
	ErrInvalidRepositoryComponent = newKind("invalid repository component")
	// ErrEmptyTag is returned when the tag separator is followed by nothing.
	ErrEmptyTag = newKind("empty tag")
	// ErrTagTooLong is returned when a tag exceeds TagMaxLength characters.
	ErrTagTooLong = newKind("tag too long")
	// ErrInvalidTagCharacter is returned when a tag contains a character
	// outside of its class. See TagCharacterError for the details.
	ErrInvalidTagCharacter = newKind("invalid tag character")
	// ErrMissingDigestSeparator is returned when a digest has no ':'.
	ErrMissingDigestSeparator = newKind("missing digest separator")
	// ErrInvalidDigestAlgorithm is returned when the digest algorithm violates
	// its grammar.
	ErrInvalidDigestAlgorithm = newKind("invalid digest algorithm")
	// ErrInvalidDigestEncoding is returned when the encoded digest is empty or
	// is not lowercase hex.
	ErrInvalidDigestEncoding = newKind("invalid digest encoding")
	// ErrDigestLengthMismatch is returned when a known algorithm's encoded
	// length is wrong. See DigestLengthError for the details.
	ErrDigestLengthMismatch = newKind("digest length mismatch")
	// ErrMisorderedReferenceComponents is returned when a tag is written after
	// the digest.
	ErrMisorderedReferenceComponents = newKind("misordered reference components")
	// ErrNotFullyQualified is returned in strict mode when the reference does
	// not carry a registry and a tag or digest.
	ErrNotFullyQualified = newKind("reference not fully qualified")
)

var codes = map[error]string{
	ErrEmptyInput:                    "empty_input",
	ErrInvalidRegistryHost:           "invalid_registry_host",
	ErrInvalidRegistryPort:           "invalid_registry_port",
	ErrEmptyRepository:               "empty_repository",
	ErrInvalidRepositoryComponent:    "invalid_repository_component",
	ErrEmptyTag:                      "empty_tag",
	ErrTagTooLong:                    "tag_too_long",
	ErrInvalidTagCharacter:           "invalid_tag_character",
	ErrMissingDigestSeparator:        "missing_digest_separator",
	ErrInvalidDigestAlgorithm:        "invalid_digest_algorithm",
	ErrInvalidDigestEncoding:         "invalid_digest_encoding",
	ErrDigestLengthMismatch:          "digest_length_mismatch",
	ErrMisorderedReferenceComponents: "misordered_reference_components",
	ErrNotFullyQualified:             "not_fully_qualified",
}

func newKind(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadName, msg)
}

// ErrorCode returns a stable snake_case identifier of the grammar rule err
// violates, or an empty string when err is not a grammar error.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for kind, code := range codes {
		if errors.Is(err, kind) {
			return code
		}
	}
	if errors.Is(err, ErrBadName) {
		return "bad_name"
	}
	return ""
}

// Violation describes why a repository path-component is malformed.
type Violation string

const (
	// ViolationEmpty means the component has no characters.
	ViolationEmpty Violation = "empty component"
	// ViolationIllegalCharacter means a character outside [a-z0-9._-].
	ViolationIllegalCharacter Violation = "illegal character"
	// ViolationLeadingSeparator means the component starts with a separator.
	ViolationLeadingSeparator Violation = "leading separator"
	// ViolationTrailingSeparator means the component ends with a separator.
	ViolationTrailingSeparator Violation = "trailing separator"
	// ViolationMalformedSeparator means a separator run other than ".", "_",
	// "__" or one or more "-".
	ViolationMalformedSeparator Violation = "malformed separator"
	// ViolationRegistryLike means the leading component of a repository
	// without registry would be read back as a registry.
	ViolationRegistryLike Violation = "component reads as a registry"
)

// ComponentError reports the first malformed component of a repository path.
type ComponentError struct {
	// Index is the zero-based position of the component in the path.
	Index int
	// Component is the offending component text.
	Component string
	// Offset is the byte offset of the violation within Component.
	Offset    int
	Violation Violation
}

func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s: component %d %q: %s at offset %d",
		ErrInvalidRepositoryComponent, e.Index, e.Component, e.Violation, e.Offset)
}

// Unwrap returns ErrInvalidRepositoryComponent.
func (e *ComponentError) Unwrap() error {
	return ErrInvalidRepositoryComponent
}

// TagCharacterError reports the first character of a tag outside of the tag
// character classes.
type TagCharacterError struct {
	Tag string
	// Position is the byte offset of Char within Tag.
	Position int
	Char     rune
}

func (e *TagCharacterError) Error() string {
	return fmt.Sprintf("%s: %q at position %d of %q", ErrInvalidTagCharacter, e.Char, e.Position, e.Tag)
}

// Unwrap returns ErrInvalidTagCharacter.
func (e *TagCharacterError) Unwrap() error {
	return ErrInvalidTagCharacter
}

// DigestLengthError reports an encoded digest whose length does not match
// the fixed size of its algorithm.
type DigestLengthError struct {
	Algorithm string
	Expected  int
	Actual    int
}

func (e *DigestLengthError) Error() string {
	return fmt.Sprintf("%s: %s requires %d hex characters, got %d",
		ErrDigestLengthMismatch, e.Algorithm, e.Expected, e.Actual)
}

// Unwrap returns ErrDigestLengthMismatch.
func (e *DigestLengthError) Unwrap() error {
	return ErrDigestLengthMismatch
}
