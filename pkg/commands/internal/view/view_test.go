package view_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/imgref/pkg/commands/internal/view"
	"github.com/wuxler/imgref/pkg/ocispec/name"
)

func TestFromImage(t *testing.T) {
	got := view.FromImage(name.MustParse("[::1]:5000/ns/app:v1"))
	require.NotNil(t, got.Registry)
	assert.Equal(t, "[::1]", got.Registry.Host)
	assert.Equal(t, uint16(5000), *got.Registry.Port)
	assert.True(t, got.Registry.Local)
	assert.Equal(t, view.Repository{
		Path:       "ns/app",
		Namespace:  "ns",
		Name:       "app",
		Components: []string{"ns", "app"},
	}, got.Repository)
	assert.Equal(t, "v1", got.Tag)
	assert.Nil(t, got.Digest)
}

func TestFromError(t *testing.T) {
	_, err := name.Parse("foo:")
	got := view.FromError("foo:", err)
	assert.Equal(t, "empty_tag", got.Code)
	assert.NotContains(t, got.Error, "\n")

	got = view.FromError("x", errors.New("boom"))
	assert.Equal(t, view.Error{Reference: "x", Error: "boom"}, got)
	assert.Empty(t, view.Message(nil))
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, view.WriteText(buf, view.FromImage(name.MustParse("ubuntu"))))
	want := strings.TrimLeft(`
Reference   : ubuntu
Registry    : <none>
Repository  : ubuntu
  Namespace : <none>
  Name      : ubuntu
Tag         : <none>
Digest      : <none>
`, "\n")
	assert.Equal(t, want, buf.String())
}
