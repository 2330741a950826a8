package xlog

import (
	"log/slog"
	"strings"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// Level is an alias of slog.Level.
type Level = slog.Level

// Levels accepted by ParseLevel.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Formats of the standard writer.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel parses the case-insensitive level name, e.g. "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return LevelInfo, errdefs.Newf(errdefs.ErrInvalidParameter, "unknown log level %q", s)
	}
	return lvl, nil
}

// ParseFormat validates the standard writer format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errdefs.Newf(errdefs.ErrInvalidParameter,
			"unknown log format %q, expect one of [%s, %s]", s, FormatText, FormatJSON)
	}
}

const badKey = "!BADKEY"

// attrsFromArgs converts key-value pairs and slog.Attr values the same way
// slog.Record.Add does.
func attrsFromArgs(args []any) []slog.Attr {
	var attrs []slog.Attr
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			attrs = append(attrs, x)
			args = args[1:]
		case string:
			if len(args) == 1 {
				attrs = append(attrs, slog.String(badKey, x))
				return attrs
			}
			attrs = append(attrs, slog.Any(x, args[1]))
			args = args[2:]
		default:
			attrs = append(attrs, slog.Any(badKey, x))
			args = args[1:]
		}
	}
	return attrs
}
