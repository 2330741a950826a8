// Package internal holds the character classes and regular expressions of the
// reference grammar.
package internal

import (
	"github.com/wuxler/imgref/pkg/util/xregexp"
)

var (
	// AnchoredDomainNameRegexp matches a DNS-style registry hostname without
	// port, anchored at the start and end of the matched string. Decimal
	// IPv4 addresses and "localhost" match as well.
	AnchoredDomainNameRegexp = xregexp.MustCompileAnchored(domainName)

	// AnchoredIPv6Regexp matches the shape of a bracketed IPv6 literal. The
	// address itself is checked with net/netip.
	AnchoredIPv6Regexp = xregexp.MustCompileAnchored(ipv6address)

	// AnchoredPortRegexp matches a port number without the port separator.
	AnchoredPortRegexp = xregexp.MustCompileAnchored(port)

	// AnchoredPathComponentRegexp matches a single repository path-component.
	AnchoredPathComponentRegexp = xregexp.MustCompileAnchored(pathComponent)

	// AnchoredRemoteNameRegexp matches a repository path without registry
	// host prefix.
	AnchoredRemoteNameRegexp = xregexp.MustCompileAnchored(remoteName)

	// AnchoredTagRegexp matches valid tags, anchored at the start and
	// end of the matched string.
	AnchoredTagRegexp = xregexp.MustCompileAnchored(tag)

	// AnchoredAlgorithmRegexp matches a digest algorithm identifier.
	AnchoredAlgorithmRegexp = xregexp.MustCompileAnchored(algorithm)

	// AnchoredEncodedRegexp matches a lowercase hex encoded digest value of
	// any non-zero length.
	AnchoredEncodedRegexp = xregexp.MustCompileAnchored(encoded)
)

const (
	// alphaNumeric defines the alpha numeric atom, typically a
	// component of names. This only allows lower case characters and digits.
	alphaNumeric = `[a-z0-9]+`

	// domainLabelChars are the characters of a registry domain label.
	domainLabelChars = `[a-zA-Z0-9]`

	// ipv6address are enclosed between square brackets.
	ipv6address = `\[[a-fA-F0-9:.]+\]`

	// port defines the port number atom without port separator. (e.g. "80").
	port = `[0-9]+`

	// tag matches valid tag names, at most 128 characters.
	tag = `[\w][\w.-]{0,127}`

	// algorithmComponent is a lowercase alphanumeric digest algorithm segment.
	algorithmComponent = `[a-z0-9]+`

	// algorithmSeparator joins digest algorithm segments.
	algorithmSeparator = `[+._-]`

	// encoded is the lowercase hex value of a digest.
	encoded = `[a-f0-9]+`
)

var (
	// separator allows one period, one or two underscores and one or more
	// dashes between alpha numeric runs.
	separator = xregexp.Alternation(`[._]`, `__`, `-+`)

	// domainNameComponent restricts a registry domain label to alphanumerics
	// with inner dashes.
	domainNameComponent = xregexp.Alternation(
		domainLabelChars,
		xregexp.Concat(domainLabelChars, `[a-zA-Z0-9-]*`, domainLabelChars),
	)

	// domainName defines the structure of potential domain components
	// that may be part of image names.
	domainName = xregexp.Concat(
		domainNameComponent,
		xregexp.ZeroOrMore(xregexp.Literal(`.`), domainNameComponent),
	)

	// pathComponent restricts path-components to start with an alphanumeric
	// character, with following parts able to be separated by a separator.
	//
	// Format: alphanumeric [separator alphanumeric]*
	pathComponent = xregexp.Concat(
		alphaNumeric,
		xregexp.ZeroOrMore(separator, alphaNumeric),
	)

	// remoteName matches the remote-name of a repository without registry host.
	//
	// Format: path-component ['/' path-component]*
	remoteName = xregexp.Concat(
		pathComponent,
		xregexp.ZeroOrMore(xregexp.Literal(`/`), pathComponent),
	)

	// algorithm matches the digest algorithm.
	//
	// Format: component [separator component]*
	algorithm = xregexp.Concat(
		algorithmComponent,
		xregexp.ZeroOrMore(algorithmSeparator, algorithmComponent),
	)
)
