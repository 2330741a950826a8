package name

import (
	"strings"
	"unicode/utf8"

	"github.com/opencontainers/go-digest"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name/internal"
)

// Digest is a content-addressable identifier formatted as
// "algorithm:encoded". The zero value is not a valid Digest.
type Digest struct {
	algorithm string
	encoded   string
}

// ParseDigest parses s as "algorithm:encoded".
func ParseDigest(s string) (Digest, error) {
	algorithm, encoded, ok := strings.Cut(s, ":")
	if !ok {
		return Digest{}, errdefs.Newf(ErrMissingDigestSeparator, "digest %q has no algorithm separator ':'", s)
	}
	if strings.IndexByte(encoded, ':') != -1 {
		return Digest{}, errdefs.Newf(ErrMisorderedReferenceComponents,
			"digest %q is followed by a tag, expected the order name[:tag][@digest]", s)
	}
	return NewDigest(algorithm, encoded)
}

// NewDigest returns a Digest for the given algorithm and encoded value.
func NewDigest(algorithm, encoded string) (Digest, error) {
	if err := validateDigest(algorithm, encoded); err != nil {
		return Digest{}, err
	}
	return Digest{algorithm: algorithm, encoded: encoded}, nil
}

// FromOCI converts a go-digest Digest.
func FromOCI(dgst digest.Digest) (Digest, error) {
	return ParseDigest(dgst.String())
}

// MustParseDigest wraps ParseDigest with error panic.
func MustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Algorithm returns the algorithm identifier, e.g. "sha256".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Encoded returns the hex encoded value.
func (d Digest) Encoded() string {
	return d.encoded
}

// OCI returns the go-digest representation of d.
func (d Digest) OCI() digest.Digest {
	return digest.NewDigestFromEncoded(digest.Algorithm(d.algorithm), d.encoded)
}

// String returns "algorithm:encoded".
func (d Digest) String() string {
	if d.isZero() {
		return ""
	}
	return d.algorithm + ":" + d.encoded
}

func (d Digest) isZero() bool {
	return d.algorithm == "" && d.encoded == ""
}

// EncodedLength returns the number of hex characters required by a known
// algorithm, or 0 when the algorithm has no fixed size.
func EncodedLength(algorithm string) int {
	return digest.Algorithm(algorithm).Size() * 2
}

func validateDigest(algorithm, encoded string) error {
	if !internal.AnchoredAlgorithmRegexp.MatchString(algorithm) {
		return algorithmError(algorithm)
	}
	if !internal.AnchoredEncodedRegexp.MatchString(encoded) {
		if encoded == "" {
			return errdefs.Newf(ErrInvalidDigestEncoding, "encoded digest is empty")
		}
		i := strings.IndexFunc(encoded, func(r rune) bool {
			return r >= utf8.RuneSelf || !internal.IsHexDigit(byte(r))
		})
		return errdefs.Newf(ErrInvalidDigestEncoding, "encoded digest %q has non lowercase hex character %q at offset %d",
			encoded, runeAt(encoded, i), i)
	}
	if want := EncodedLength(algorithm); want > 0 && len(encoded) != want {
		return &DigestLengthError{Algorithm: algorithm, Expected: want, Actual: len(encoded)}
	}
	return nil
}

// algorithmError describes why algorithm does not match
//
//	component [separator component]*
func algorithmError(algorithm string) error {
	if algorithm == "" {
		return errdefs.Newf(ErrInvalidDigestAlgorithm, "digest algorithm is empty")
	}
	for i := 0; i < len(algorithm); i++ {
		b := algorithm[i]
		if internal.IsLowerAlnum(b) {
			continue
		}
		if !internal.IsAlgorithmSeparator(b) {
			return errdefs.Newf(ErrInvalidDigestAlgorithm, "illegal character %q at offset %d of algorithm %q",
				runeAt(algorithm, i), i, algorithm)
		}
		if i == 0 || i == len(algorithm)-1 || internal.IsAlgorithmSeparator(algorithm[i+1]) {
			return errdefs.Newf(ErrInvalidDigestAlgorithm, "misplaced separator %q at offset %d of algorithm %q",
				b, i, algorithm)
		}
	}
	return errdefs.Newf(ErrInvalidDigestAlgorithm, "invalid algorithm %q", algorithm)
}
