package internal_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/imgref/pkg/ocispec/name/internal"
)

func TestRegexps(t *testing.T) {
	testcases := []struct {
		name string
		re   *regexp.Regexp
		good []string
		bad  []string
	}{
		{
			name: "domain name",
			re:   internal.AnchoredDomainNameRegexp,
			good: []string{"localhost", "docker.io", "Registry-1.Example.COM", "127.0.0.1", "a"},
			bad:  []string{"", "-bad.io", "bad-.io", "a..b", "under_score.io", "a.io:80"},
		},
		{
			name: "ipv6",
			re:   internal.AnchoredIPv6Regexp,
			good: []string{"[::1]", "[2001:db8::1]", "[::ffff:127.0.0.1]"},
			bad:  []string{"::1", "[]", "[fe80::1%eth0]"},
		},
		{
			name: "port",
			re:   internal.AnchoredPortRegexp,
			good: []string{"0", "5000", "0080"},
			bad:  []string{"", "50a", "-1"},
		},
		{
			name: "path component",
			re:   internal.AnchoredPathComponentRegexp,
			good: []string{"ubuntu", "my-app", "a__b", "a---b", "a.b_c", "0"},
			bad:  []string{"", "Ubuntu", "-a", "a-", "a..b", "a___b", "a._b", "a/b"},
		},
		{
			name: "remote name",
			re:   internal.AnchoredRemoteNameRegexp,
			good: []string{"library/ubuntu", "a/b/c/d"},
			bad:  []string{"/a", "a/", "a//b"},
		},
		{
			name: "tag",
			re:   internal.AnchoredTagRegexp,
			good: []string{"latest", "_", "v1.0-rc.1", "A", strings.Repeat("a", 128)},
			bad:  []string{"", ".v1", "-v1", "v1+build", strings.Repeat("a", 129)},
		},
		{
			name: "algorithm",
			re:   internal.AnchoredAlgorithmRegexp,
			good: []string{"sha256", "sha512", "multihash+base58", "a.b_c-d"},
			bad:  []string{"", "SHA256", "sha--256", "+sha", "sha+"},
		},
		{
			name: "encoded",
			re:   internal.AnchoredEncodedRegexp,
			good: []string{"0", "deadbeef"},
			bad:  []string{"", "DEADBEEF", "xyz"},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.good {
				assert.Truef(t, tc.re.MatchString(s), "%q should match %s", s, tc.re)
			}
			for _, s := range tc.bad {
				assert.Falsef(t, tc.re.MatchString(s), "%q should not match %s", s, tc.re)
			}
		})
	}
}
