package name

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/wuxler/imgref/pkg/errdefs"
	"github.com/wuxler/imgref/pkg/ocispec/name/internal"
)

const (
	// Localhost is the only single-label host recognized as a registry
	// without a port or a dot.
	Localhost = "localhost"
)

var privateBlocks = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.168.0.0/16"),
}

// Registry is the network authority of a repository: a host with an optional
// port. The zero value is not a valid Registry.
type Registry struct {
	host string
	// port keeps the digits as written so that rendering is lossless.
	port string
}

// ParseRegistry parses s as "host[:port]".
func ParseRegistry(s string) (Registry, error) {
	host, port, hasPort := splitHostPort(s)
	if err := validateHost(host); err != nil {
		return Registry{}, err
	}
	if hasPort {
		if err := validatePort(port); err != nil {
			return Registry{}, err
		}
	}
	return Registry{host: host, port: port}, nil
}

// NewRegistry returns a Registry without port for the given host.
func NewRegistry(host string) (Registry, error) {
	if err := validateHost(host); err != nil {
		return Registry{}, err
	}
	return Registry{host: host}, nil
}

// MustParseRegistry wraps ParseRegistry with error panic.
func MustParseRegistry(s string) Registry {
	r, err := ParseRegistry(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Host returns the host without port. A host can be formatted as a
// domain-name, IPv4 address, or bracketed IPv6 address.
func (r Registry) Host() string {
	return r.host
}

// Port returns the port number and whether one was given.
func (r Registry) Port() (uint16, bool) {
	if r.port == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(r.port, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// WithPort returns a copy of Registry with the port overwritten.
func (r Registry) WithPort(port uint16) Registry {
	clone := r
	clone.port = strconv.FormatUint(uint64(port), 10)
	return clone
}

// WithoutPort returns a copy of Registry without port.
func (r Registry) WithoutPort() Registry {
	clone := r
	clone.port = ""
	return clone
}

// IsLocal reports whether the host is "localhost", a loopback address or a
// private (RFC 1918) IPv4 address.
func (r Registry) IsLocal() bool {
	if r.host == Localhost {
		return true
	}
	addr, err := netip.ParseAddr(strings.Trim(r.host, "[]"))
	if err != nil {
		return false
	}
	if addr.IsLoopback() {
		return true
	}
	for _, block := range privateBlocks {
		if block.Contains(addr) {
			return true
		}
	}
	return false
}

// String returns "host[:port]".
func (r Registry) String() string {
	if r.port == "" {
		return r.host
	}
	return r.host + ":" + r.port
}

func (r Registry) isZero() bool {
	return r.host == ""
}

// isRegistryCandidate reports whether the text before the first "/" of a
// reference names a registry rather than the first repository component.
func isRegistryCandidate(s string) bool {
	return s == Localhost || strings.ContainsAny(s, ".:")
}

// splitHostPort splits s into host and port. A bracketed IPv6 host only has
// a port after "]:".
func splitHostPort(s string) (host, port string, hasPort bool) {
	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end == -1 || end == len(s)-1 {
			return s, "", false
		}
		if s[end+1] != ':' {
			return s, "", false
		}
		return s[:end+1], s[end+2:], true
	}
	host, port, hasPort = strings.Cut(s, ":")
	return host, port, hasPort
}

func validateHost(host string) error {
	if host == "" {
		return errdefs.Newf(ErrInvalidRegistryHost, "registry host is required")
	}
	if strings.HasPrefix(host, "[") {
		if !internal.AnchoredIPv6Regexp.MatchString(host) {
			return errdefs.Newf(ErrInvalidRegistryHost, "malformed IPv6 literal %q", host)
		}
		addr, err := netip.ParseAddr(host[1 : len(host)-1])
		if err != nil || !addr.Is6() || addr.Zone() != "" {
			return errdefs.Newf(ErrInvalidRegistryHost, "invalid IPv6 address %q", host)
		}
		return nil
	}
	if internal.AnchoredDomainNameRegexp.MatchString(host) {
		return nil
	}
	for i, label := range strings.Split(host, ".") {
		switch {
		case label == "":
			return errdefs.Newf(ErrInvalidRegistryHost, "empty label %d in host %q", i, host)
		case label[0] == '-' || label[len(label)-1] == '-':
			return errdefs.Newf(ErrInvalidRegistryHost, "label %q in host %q starts or ends with a hyphen", label, host)
		}
		for j := 0; j < len(label); j++ {
			if !internal.IsHostLabelChar(label[j]) {
				return errdefs.Newf(ErrInvalidRegistryHost, "illegal character %q in host %q", runeAt(label, j), host)
			}
		}
	}
	return errdefs.Newf(ErrInvalidRegistryHost, "invalid host %q", host)
}

func validatePort(port string) error {
	if port == "" {
		return errdefs.Newf(ErrInvalidRegistryPort, "port is empty")
	}
	if !internal.AnchoredPortRegexp.MatchString(port) {
		return errdefs.Newf(ErrInvalidRegistryPort, "port %q is not numeric", port)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return errdefs.Newf(ErrInvalidRegistryPort, "port %q is out of range", port)
	}
	return nil
}
