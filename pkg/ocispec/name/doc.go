// Package name parses, validates and renders OCI image references. It
// records exactly what the reference spells out: no default registry,
// namespace or tag is ever injected, and rendering a parsed Image returns the
// input unchanged.
//
// # Grammar
//
//	reference                       := [ registry "/" ] repository [ ":" tag ] [ "@" digest ]
//	registry                        := host [ ":" port ]
//	host                            := domain-name | "localhost" | IPv4address | "[" IPv6address "]"
//	domain-name                     := domain-component ['.' domain-component]*
//	domain-component                := /([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9])/
//	port                            := /[0-9]+/                ; 0-65535
//	repository                      := path-component ['/' path-component]*
//	path-component                  := alpha-numeric [separator alpha-numeric]*
//	alpha-numeric                   := /[a-z0-9]+/
//	separator                       := /[_.]|__|[-]+/
//
//	tag                             := /[\w][\w.-]{0,127}/
//
//	digest                          := digest-algorithm ":" digest-hex
//	digest-algorithm                := digest-algorithm-component [ digest-algorithm-separator digest-algorithm-component ]*
//	digest-algorithm-separator      := /[+._-]/
//	digest-algorithm-component      := /[a-z0-9]+/
//	digest-hex                      := /[a-f0-9]+/             ; fixed length for known algorithms
//
// # Registry detection
//
// The text before the first "/" is the registry when it contains a "." or a
// ":", or when it is "localhost". Otherwise it is the first repository
// path-component: "library/ubuntu" has no registry while
// "localhost:5000/my-app" does.
//
// # NOTE
//
// This package is draw inspiration deeply from the follow repositories:
//   - github.com/distribution/reference
//   - oras.land/oras-go/v2/registry/reference.go
//   - github.com/google/go-containerregistry/pkg/name
package name
