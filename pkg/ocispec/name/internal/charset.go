package internal

// IsLowerAlnum reports whether b is in [a-z0-9].
func IsLowerAlnum(b byte) bool {
	return ('a' <= b && b <= 'z') || IsDigit(b)
}

// IsAlnum reports whether b is in [A-Za-z0-9].
func IsAlnum(b byte) bool {
	return IsLowerAlnum(b) || ('A' <= b && b <= 'Z')
}

// IsDigit reports whether b is in [0-9].
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsHexDigit reports whether b is a lowercase hexadecimal digit [0-9a-f].
func IsHexDigit(b byte) bool {
	return IsDigit(b) || ('a' <= b && b <= 'f')
}

// IsComponentSeparator reports whether b may appear in a separator of a
// repository path-component.
func IsComponentSeparator(b byte) bool {
	return b == '.' || b == '_' || b == '-'
}

// IsAlgorithmSeparator reports whether b may join two digest algorithm
// segments.
func IsAlgorithmSeparator(b byte) bool {
	return b == '+' || b == '.' || b == '_' || b == '-'
}

// IsTagLeadChar reports whether b may start a tag, [A-Za-z0-9_].
func IsTagLeadChar(b byte) bool {
	return IsAlnum(b) || b == '_'
}

// IsTagChar reports whether b may appear after the first tag character.
func IsTagChar(b byte) bool {
	return IsTagLeadChar(b) || b == '.' || b == '-'
}

// IsHostLabelChar reports whether b may appear in a domain label.
func IsHostLabelChar(b byte) bool {
	return IsAlnum(b) || b == '-'
}
