package name_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/imgref/pkg/ocispec/name"
)

type manifestRef struct {
	Image    name.Image      `json:"image" yaml:"image"`
	Registry name.Registry   `json:"registry" yaml:"registry"`
	Repo     name.Repository `json:"repository" yaml:"repository"`
	Tag      name.Tag        `json:"tag" yaml:"tag"`
	Digest   name.Digest     `json:"digest" yaml:"digest"`
}

func TestCodec_JSON(t *testing.T) {
	input := `{"image":"localhost:5000/my-app:1.0","registry":"quay.io:443","repository":"foo/bar","tag":"v1","digest":"` + sha256Dgst + `"}`

	var got manifestRef
	require.NoError(t, json.Unmarshal([]byte(input), &got))
	assert.Equal(t, "localhost:5000/my-app:1.0", got.Image.String())
	assert.Equal(t, "quay.io:443", got.Registry.String())
	assert.Equal(t, "foo/bar", got.Repo.String())
	assert.Equal(t, "v1", got.Tag.String())
	assert.Equal(t, sha256Dgst, got.Digest.String())

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestCodec_JSONErrors(t *testing.T) {
	var img name.Image
	err := json.Unmarshal([]byte(`"docker.io/library/UBUNTU"`), &img)
	assert.ErrorIs(t, err, name.ErrInvalidRepositoryComponent)

	err = json.Unmarshal([]byte(`""`), &img)
	assert.ErrorIs(t, err, name.ErrEmptyInput)

	var tag name.Tag
	assert.ErrorIs(t, json.Unmarshal([]byte(`""`), &tag), name.ErrEmptyTag)
}

func TestCodec_YAML(t *testing.T) {
	input := `image: docker.io/library/ubuntu:latest
registry: localhost
repository: library/ubuntu
tag: latest
digest: ` + sha256Dgst + "\n"

	var got manifestRef
	require.NoError(t, yaml.Unmarshal([]byte(input), &got))
	assert.Equal(t, "docker.io/library/ubuntu:latest", got.Image.String())
	assert.Equal(t, "localhost", got.Registry.Host())

	out, err := yaml.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))

	var bad manifestRef
	err = yaml.Unmarshal([]byte("image: 'foo:'\n"), &bad)
	assert.ErrorIs(t, err, name.ErrEmptyTag)
}
