package name_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/ocispec/name"
)

func TestParseRepository(t *testing.T) {
	good := []string{
		"valid",
		"valid-name",
		"valid_name.123",
		"a--------b",
		"a__b",
		"library/ubuntu",
		"a/b/c/d",
		"0/1/2",
	}
	for _, input := range good {
		t.Run(subTestName(input, true), func(t *testing.T) {
			repo, err := name.ParseRepository(input)
			require.NoError(t, err)
			assert.Equal(t, input, repo.String())
		})
	}

	bad := []struct {
		input     string
		index     int
		offset    int
		violation name.Violation
	}{
		{input: "UPPERCASE", index: 0, offset: 0, violation: name.ViolationIllegalCharacter},
		{input: "ok/invalid!", index: 1, offset: 7, violation: name.ViolationIllegalCharacter},
		{input: "invalid space", index: 0, offset: 7, violation: name.ViolationIllegalCharacter},
		{input: "bad@chars", index: 0, offset: 3, violation: name.ViolationIllegalCharacter},
		{input: "-invalid", index: 0, offset: 0, violation: name.ViolationLeadingSeparator},
		{input: ".invalid", index: 0, offset: 0, violation: name.ViolationLeadingSeparator},
		{input: "_invalid", index: 0, offset: 0, violation: name.ViolationLeadingSeparator},
		{input: "invalid-", index: 0, offset: 7, violation: name.ViolationTrailingSeparator},
		{input: "a/b/c.", index: 2, offset: 1, violation: name.ViolationTrailingSeparator},
		{input: "a..b", index: 0, offset: 1, violation: name.ViolationMalformedSeparator},
		{input: "a___b", index: 0, offset: 1, violation: name.ViolationMalformedSeparator},
		{input: "a-_b", index: 0, offset: 1, violation: name.ViolationMalformedSeparator},
		{input: "a._b", index: 0, offset: 1, violation: name.ViolationMalformedSeparator},
		{input: "a//b", index: 1, offset: 0, violation: name.ViolationEmpty},
	}
	for _, tc := range bad {
		t.Run(subTestName(tc.input, false), func(t *testing.T) {
			_, err := name.ParseRepository(tc.input)
			require.ErrorIs(t, err, name.ErrInvalidRepositoryComponent)
			var cerr *name.ComponentError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, tc.index, cerr.Index)
			assert.Equal(t, tc.offset, cerr.Offset)
			assert.Equal(t, tc.violation, cerr.Violation)
			assert.Contains(t, cerr.Error(), string(tc.violation))
		})
	}

	_, err := name.ParseRepository("")
	assert.ErrorIs(t, err, name.ErrEmptyRepository)
}

func TestNewRepository(t *testing.T) {
	components := []string{"library", "ubuntu"}
	repo, err := name.NewRepository(components...)
	require.NoError(t, err)
	components[0] = "changed"
	assert.Equal(t, "library/ubuntu", repo.String())

	got := repo.Components()
	got[1] = "changed"
	assert.Equal(t, "ubuntu", repo.Name())

	_, err = name.NewRepository()
	assert.ErrorIs(t, err, name.ErrEmptyRepository)

	_, err = name.NewRepository("library/ubuntu")
	assert.ErrorIs(t, err, name.ErrInvalidRepositoryComponent)
}

func TestRepository_Accessors(t *testing.T) {
	repo := name.MustParseRepository("project/team/app")
	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, "team", repo.Component(1))
	assert.Equal(t, "app", repo.Name())
	ns, ok := repo.Namespace()
	assert.True(t, ok)
	assert.Equal(t, "project/team", ns)

	single := name.MustParseRepository("app")
	_, ok = single.Namespace()
	assert.False(t, ok)

	assert.True(t, repo.Equal(name.MustParseRepository("project/team/app")))
	assert.False(t, repo.Equal(single))
}
