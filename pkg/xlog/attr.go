package xlog

import (
	"log/slog"
	"path/filepath"
)

// Replacer rewrites an attribute before it is written. Returning the zero
// Attr drops it.
type Replacer func(groups []string, attr slog.Attr) slog.Attr

// Chain applies the replacers in order, stopping once the attribute has been
// dropped.
func Chain(replacers ...Replacer) Replacer {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replace := range replacers {
			if attr.Key == "" {
				break
			}
			attr = replace(groups, attr)
		}
		return attr
	}
}

// BaseSource trims the directory of the caller file.
func BaseSource() Replacer {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}
		if src, ok := attr.Value.Any().(*slog.Source); ok {
			src.File = filepath.Base(src.File)
		}
		return attr
	}
}

// OmitTime drops the top-level time attribute, mostly for deterministic
// output in tests.
func OmitTime() Replacer {
	return func(groups []string, attr slog.Attr) slog.Attr {
		if len(groups) == 0 && attr.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return attr
	}
}
