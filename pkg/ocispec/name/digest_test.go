package name_test

import (
	_ "crypto/sha256"
	"errors"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/ocispec/name"
)

func TestParseDigest(t *testing.T) {
	testcases := []struct {
		input     string
		algorithm string
		encoded   string
		wantErr   error
	}{
		{input: sha256Dgst, algorithm: "sha256", encoded: sha256Hex},
		{input: "sha384:" + strings.Repeat("0", 96), algorithm: "sha384", encoded: strings.Repeat("0", 96)},
		{input: "sha512:" + strings.Repeat("f", 128), algorithm: "sha512", encoded: strings.Repeat("f", 128)},
		{input: "blake2b-256:abcdef", algorithm: "blake2b-256", encoded: "abcdef"},
		{input: "a_b.c+d-e:0", algorithm: "a_b.c+d-e", encoded: "0"},
		{input: "sha256", wantErr: name.ErrMissingDigestSeparator},
		{input: "", wantErr: name.ErrMissingDigestSeparator},
		{input: ":00", wantErr: name.ErrInvalidDigestAlgorithm},
		{input: "Sha256:" + sha256Hex, wantErr: name.ErrInvalidDigestAlgorithm},
		{input: "sha256-:" + sha256Hex, wantErr: name.ErrInvalidDigestAlgorithm},
		{input: "sha--256:00", wantErr: name.ErrInvalidDigestAlgorithm},
		{input: "sha256:", wantErr: name.ErrInvalidDigestEncoding},
		{input: "sha256:" + strings.Repeat("g", 64), wantErr: name.ErrInvalidDigestEncoding},
		{input: "sha256:" + sha256Hex[:63], wantErr: name.ErrDigestLengthMismatch},
		{input: "sha256:" + sha256Hex + "a", wantErr: name.ErrDigestLengthMismatch},
		{input: "sha512:" + sha256Hex, wantErr: name.ErrDigestLengthMismatch},
		{input: sha256Dgst + ":latest", wantErr: name.ErrMisorderedReferenceComponents},
	}

	for _, tc := range testcases {
		t.Run(subTestName(tc.input, tc.wantErr == nil), func(t *testing.T) {
			got, err := name.ParseDigest(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.algorithm, got.Algorithm())
			assert.Equal(t, tc.encoded, got.Encoded())
			assert.Equal(t, tc.input, got.String())
		})
	}
}

func TestDigest_LengthError(t *testing.T) {
	_, err := name.NewDigest("sha512", sha256Hex)
	var derr *name.DigestLengthError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 128, derr.Expected)
	assert.Equal(t, 64, derr.Actual)
	assert.Equal(t, "sha512", derr.Algorithm)
}

func TestEncodedLength(t *testing.T) {
	assert.Equal(t, 64, name.EncodedLength("sha256"))
	assert.Equal(t, 96, name.EncodedLength("sha384"))
	assert.Equal(t, 128, name.EncodedLength("sha512"))
	assert.Equal(t, 0, name.EncodedLength("unknown"))
}

func TestDigest_OCI(t *testing.T) {
	d := name.MustParseDigest(sha256Dgst)
	oci := d.OCI()
	assert.Equal(t, digest.SHA256, oci.Algorithm())
	assert.Equal(t, sha256Hex, oci.Encoded())
	require.NoError(t, oci.Validate())

	back, err := name.FromOCI(oci)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	fromContent, err := name.FromOCI(digest.FromString(""))
	require.NoError(t, err)
	assert.Equal(t, d, fromContent)

	_, err = name.FromOCI(digest.Digest("sha256:short"))
	assert.ErrorIs(t, err, name.ErrInvalidDigestEncoding)
}
