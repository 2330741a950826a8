package name

// The types of this package marshal to their canonical string and unmarshal
// through the matching Parse function, so encoding/json, gopkg.in/yaml.v3 and
// any other encoding.TextUnmarshaler aware codec see a single string field.

// MarshalText implements encoding.TextMarshaler.
func (img Image) MarshalText() ([]byte, error) {
	return []byte(img.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (img *Image) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*img = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Registry) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Registry) UnmarshalText(text []byte) error {
	parsed, err := ParseRegistry(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Repository) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Repository) UnmarshalText(text []byte) error {
	parsed, err := ParseRepository(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
