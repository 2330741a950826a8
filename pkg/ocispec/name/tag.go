package name

import (
	"unicode/utf8"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name/internal"
)

// TagMaxLength is the maximum number of characters in a tag.
const TagMaxLength = 128

// Tag is a human-readable pointer to an image version. The zero value is not
// a valid Tag.
type Tag struct {
	value string
}

// ParseTag validates s as a tag.
func ParseTag(s string) (Tag, error) {
	if err := validateTag(s); err != nil {
		return Tag{}, err
	}
	return Tag{value: s}, nil
}

// MustParseTag wraps ParseTag with error panic.
func MustParseTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the tag text.
func (t Tag) String() string {
	return t.value
}

func (t Tag) isZero() bool {
	return t.value == ""
}

func validateTag(s string) error {
	if s == "" {
		return errdefs.Newf(ErrEmptyTag, "non-empty tag is required")
	}
	if len(s) > TagMaxLength {
		return errdefs.Newf(ErrTagTooLong, "tag has %d characters, at most %d allowed", len(s), TagMaxLength)
	}
	if internal.AnchoredTagRegexp.MatchString(s) {
		return nil
	}
	if !internal.IsTagLeadChar(s[0]) {
		return &TagCharacterError{Tag: s, Position: 0, Char: runeAt(s, 0)}
	}
	for i := 1; i < len(s); i++ {
		if !internal.IsTagChar(s[i]) {
			return &TagCharacterError{Tag: s, Position: i, Char: runeAt(s, i)}
		}
	}
	return &TagCharacterError{Tag: s}
}

// runeAt decodes the character starting at byte offset i of s. An invalid
// UTF-8 sequence decodes to utf8.RuneError.
func runeAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}
