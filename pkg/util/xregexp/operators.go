// Package xregexp builds regular expressions from grammar productions.
// Every operator wraps its operands in a non-capturing group, so the
// results nest without precedence surprises.
package xregexp

import (
	"regexp"
	"strings"
)

// Literal matches s verbatim.
func Literal(s string) string {
	return regexp.QuoteMeta(s)
}

// Concat matches the productions one after another.
func Concat(res ...string) string {
	return strings.Join(res, "")
}

// Alternation matches any one of the productions.
func Alternation(res ...string) string {
	return `(?:` + strings.Join(res, "|") + `)`
}

// ZeroOrMore matches the concatenation any number of times.
func ZeroOrMore(res ...string) string {
	return `(?:` + Concat(res...) + `)*`
}

// Anchored matches the concatenation against the whole input.
func Anchored(res ...string) string {
	return `^` + Concat(res...) + `$`
}

// MustCompileAnchored compiles Anchored(res...) and panics on a malformed
// expression.
func MustCompileAnchored(res ...string) *regexp.Regexp {
	return regexp.MustCompile(Anchored(res...))
}
