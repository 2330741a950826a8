package commands_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name"
)

const sha256Dgst = "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestParseCommand_Text(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.run("parse", "localhost:5000/team/my-app:1.0"))

	want := strings.TrimLeft(`
Reference   : localhost:5000/team/my-app:1.0
Registry    : localhost
  Port      : 5000
  Local     : true
Repository  : team/my-app
  Namespace : team
  Name      : my-app
Tag         : 1.0
Digest      : <none>
`, "\n")
	assert.Equal(t, want, ta.stdout.String())
}

func TestParseCommand_JSON(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.run("parse", "--output", "json", "ubuntu", "quay.io/foo/bar@"+sha256Dgst))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "ubuntu", got[0]["reference"])
	assert.NotContains(t, got[0], "registry")
	assert.NotContains(t, got[0], "tag")

	assert.Equal(t, map[string]any{
		"algorithm": "sha256",
		"encoded":   strings.TrimPrefix(sha256Dgst, "sha256:"),
	}, got[1]["digest"])
	assert.Equal(t, map[string]any{
		"org.opencontainers.image.base.name":   "quay.io/foo/bar",
		"org.opencontainers.image.base.digest": sha256Dgst,
	}, got[1]["annotations"])
}

func TestParseCommand_YAMLFromFile(t *testing.T) {
	ta := newTestApp(t)
	ta.writeFile(t, "/images.txt", "# base images\ndocker.io/library/ubuntu:22.04\n\n")
	require.NoError(t, ta.run("parse", "-o", "yaml", "--from-file", "/images.txt"))

	var got []struct {
		Reference  string `yaml:"reference"`
		Repository struct {
			Components []string `yaml:"components"`
		} `yaml:"repository"`
	}
	require.NoError(t, yaml.Unmarshal(ta.stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "docker.io/library/ubuntu:22.04", got[0].Reference)
	assert.Equal(t, []string{"library", "ubuntu"}, got[0].Repository.Components)
}

func TestParseCommand_FromAnnotations(t *testing.T) {
	testcases := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name: "base name and digest",
			content: `{"schemaVersion": 2, "annotations": {
				"org.opencontainers.image.base.name": "quay.io/foo/bar:1.0",
				"org.opencontainers.image.base.digest": "` + sha256Dgst + `"}}`,
			want: "quay.io/foo/bar:1.0@" + sha256Dgst,
		},
		{
			name:    "base name only",
			content: `{"annotations": {"org.opencontainers.image.base.name": "ubuntu"}}`,
			want:    "ubuntu",
		},
		{
			name:    "no base name",
			content: `{"annotations": {"org.opencontainers.image.ref.name": "1.0"}}`,
			wantErr: errdefs.ErrNotFound,
		},
		{
			name:    "invalid base name",
			content: `{"annotations": {"org.opencontainers.image.base.name": "UPPER"}}`,
			wantErr: name.ErrInvalidRepositoryComponent,
		},
		{
			name:    "not json",
			content: `annotations`,
			wantErr: errdefs.ErrInvalidParameter,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.writeFile(t, "/manifest.json", tc.content)
			err := ta.run("parse", "-o", "json", "--from-annotations", "/manifest.json")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			var got []map[string]any
			require.NoError(t, json.Unmarshal(ta.stdout.Bytes(), &got))
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0]["reference"])
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	testcases := []struct {
		name string
		args []string
		want error
	}{
		{"no reference", []string{"parse"}, errdefs.ErrInvalidParameter},
		{"missing file", []string{"parse", "--from-file", "/missing"}, errdefs.ErrNotFound},
		{"missing annotations file", []string{"parse", "--from-annotations", "/missing.json"}, errdefs.ErrNotFound},
		{"uppercase", []string{"parse", "docker.io/library/UBUNTU:latest"}, name.ErrInvalidRepositoryComponent},
		{"strict", []string{"--strict", "parse", "ubuntu:22.04"}, name.ErrNotFullyQualified},
		{"strict after command", []string{"parse", "--strict", "ubuntu"}, name.ErrNotFullyQualified},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestApp(t)
			err := ta.run(tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseCommand_StrictFromEnv(t *testing.T) {
	t.Setenv("IMGREF_STRICT", "true")
	ta := newTestApp(t)
	assert.ErrorIs(t, ta.run("parse", "ubuntu"), name.ErrNotFullyQualified)
}

func TestParseCommand_MockParser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	parser := NewMockParser(mockCtrl)
	parser.EXPECT().Parse(gomock.Any(), "first").Return(name.MustParse("registry.local/first:v1"), nil)
	parser.EXPECT().Parse(gomock.Any(), "second").Return(name.Image{}, name.ErrEmptyTag)

	ta := newTestApp(t)
	ta.Parser = parser
	err := ta.run("parse", "first", "second")
	assert.ErrorIs(t, err, name.ErrEmptyTag)
	assert.Empty(t, ta.stdout.String())
}
