package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultMaxSize is the size in megabytes rotating the log file.
const DefaultMaxSize = 30

// NewConfig returns the default Config: text records at info level written
// to stderr, no log file.
func NewConfig() Config {
	return Config{
		Level:     LevelInfo,
		AddSource: true,
		Replacer:  BaseSource(),
		StdFormat: FormatText,
		StdWriter: os.Stderr,
		MaxSize:   DefaultMaxSize,
	}
}

// Config describes where and how records are written.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// AddSource adds the caller file and line to every record.
	AddSource bool
	// Replacer rewrites the attributes of every output.
	Replacer Replacer

	// StdFormat is one of FormatText and FormatJSON.
	StdFormat string
	// StdWriter receives the records, stderr when nil so that logs never
	// mix with command output.
	StdWriter io.Writer

	// Path enables a JSON log file when not empty.
	Path string
	// MaxSize is the size in megabytes triggering a rotation.
	MaxSize int
	// MaxAge is the number of days rotated files are kept, 0 keeps them all.
	MaxAge int
	// MaxBackups is the number of rotated files kept, 0 keeps them all.
	MaxBackups int
	// Compress gzips the rotated files.
	Compress bool
}

// buildHandler returns the handler writing the records enabled by level.
// The log file is always JSON; with the text format it gets its own handler.
func (c Config) buildHandler(level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{AddSource: c.AddSource, Level: level}
	if c.Replacer != nil {
		opts.ReplaceAttr = c.Replacer
	}
	std := c.StdWriter
	if std == nil {
		std = os.Stderr
	}
	file := c.fileWriter()

	if c.StdFormat == FormatJSON {
		if file != nil {
			std = io.MultiWriter(std, file)
		}
		return slog.NewJSONHandler(std, opts)
	}
	text := slog.NewTextHandler(std, opts)
	if file == nil {
		return text
	}
	return fanout(text, slog.NewJSONHandler(file, opts))
}

func (c Config) fileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}
