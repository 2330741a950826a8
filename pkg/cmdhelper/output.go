package cmdhelper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// Supported structured output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Fprintf is a wrapper around fmt.Fprintf to suppress the error check.
func Fprintf(w io.Writer, format string, args ...any) {
	if format == "" || format[len(format)-1] != '\n' {
		format += "\n"
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// PrettifyJSON is a helper function to prettify data to json bytes with indents.
func PrettifyJSON(data any) ([]byte, error) {
	switch v := data.(type) {
	case []byte:
		return prettifyJSONBytes(v)
	case string:
		return prettifyJSONBytes([]byte(v))
	default:
		return json.MarshalIndent(data, "", "  ")
	}
}

func prettifyJSONBytes(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to prettify: %w", err)
	}
	return buf.Bytes(), nil
}

// ValidateOutput checks the output format is one of text, json or yaml.
func ValidateOutput(format string) error {
	switch strings.ToLower(format) {
	case OutputText, OutputJSON, OutputYAML, "yml":
		return nil
	}
	return errdefs.Newf(errdefs.ErrInvalidParameter, "unsupported output format %q, expect one of [%s, %s, %s]",
		format, OutputText, OutputJSON, OutputYAML)
}

// Encode writes data to w as indented json or yaml. It returns false for
// the text format so the caller renders its own layout.
func Encode(w io.Writer, format string, data any) (bool, error) {
	switch strings.ToLower(format) {
	case OutputJSON:
		content, err := PrettifyJSON(data)
		if err != nil {
			return true, err
		}
		Fprintf(w, "%s", content)
		return true, nil
	case OutputYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}
