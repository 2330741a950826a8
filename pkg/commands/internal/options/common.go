package options

import (
	"context"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/cmdhelper"
	"github.com/wuxler/imgref/pkg/ocispec/name"
	"github.com/wuxler/imgref/pkg/util/xcache"
	"github.com/wuxler/imgref/pkg/xlog"
)

const (
	// CommonFlagCategory is the category of the global flags.
	CommonFlagCategory = "[Common]"

	// DefaultCacheSize is the number of parsed references kept in memory.
	DefaultCacheSize = 4096

	// DefaultCacheTTL is how long a parsed reference stays in memory.
	DefaultCacheTTL = time.Hour
)

// NewCommon returns a *Common with default values.
func NewCommon() *Common {
	return &Common{
		LogLevel:  "info",
		LogFormat: xlog.FormatText,
		CacheSize: DefaultCacheSize,
	}
}

// Common are options that are common to all commands.
type Common struct {
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty" yaml:"log_format,omitempty"`
	LogFile   string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Strict    bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
	CacheSize int64  `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
}

// Flags returns the []cli.Flag related to current options.
func (o *Common) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       `log level, oneof ["debug", "info", "warn", "error"]`,
			Sources:     cli.EnvVars("IMGREF_LOG_LEVEL"),
			Value:       o.LogLevel,
			Destination: &o.LogLevel,
			Category:    CommonFlagCategory,
			Validator: func(s string) error {
				_, err := xlog.ParseLevel(s)
				return err
			},
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       `log format written to stderr, oneof ["text", "json"]`,
			Sources:     cli.EnvVars("IMGREF_LOG_FORMAT"),
			Value:       o.LogFormat,
			Destination: &o.LogFormat,
			Category:    CommonFlagCategory,
			Validator: func(s string) error {
				_, err := xlog.ParseFormat(s)
				return err
			},
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "also write json logs into the file, rotated by size",
			Sources:     cli.EnvVars("IMGREF_LOG_FILE"),
			Value:       o.LogFile,
			Destination: &o.LogFile,
			TakesFile:   true,
			Category:    CommonFlagCategory,
		},
		&cli.BoolFlag{
			Name:        "strict",
			Usage:       "require an explicit registry and a tag or digest on every reference",
			Sources:     cli.EnvVars("IMGREF_STRICT"),
			Value:       o.Strict,
			Destination: &o.Strict,
			Category:    CommonFlagCategory,
		},
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "number of parsed references kept in memory, 0 disables the cache",
			Sources:     cli.EnvVars("IMGREF_CACHE_SIZE"),
			Value:       o.CacheSize,
			Destination: &o.CacheSize,
			Category:    CommonFlagCategory,
		},
	}
}

// Setup returns a cli.BeforeFunc which runs the checks, then injects the
// logger configured by the flags into the context.
func (o *Common) Setup(checks ...cmdhelper.ActionFunc) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if err := cmdhelper.ActionFuncChain(checks...)(ctx, cmd); err != nil {
			return ctx, err
		}
		c, err := o.LogConfig(cmdhelper.Stderr(cmd))
		if err != nil {
			return ctx, err
		}
		logger := xlog.New(c)
		logger.Debug("logger configured", "level", c.Level, "format", c.StdFormat, "file", c.Path)
		return xlog.NewContext(ctx, logger), nil
	}
}

// NewParser returns a name.Parser honoring the strict flag, backed by an
// in-memory cache unless the cache size is 0.
func (o *Common) NewParser() name.Parser {
	return o.NewParserWithStrict(o.Strict)
}

// NewParserWithStrict is like NewParser with the strict mode given.
func (o *Common) NewParserWithStrict(strict bool) name.Parser {
	opts := []name.Option{name.WithStrict(strict)}
	if o.CacheSize <= 0 {
		return name.NewParser(opts...)
	}
	cache := xcache.NewMemoryWithCapacity[name.Image](int(o.CacheSize), DefaultCacheTTL)
	return name.NewCachingParser(cache, opts...)
}

// LogConfig builds the xlog.Config writing to w.
func (o *Common) LogConfig(w io.Writer) (xlog.Config, error) {
	c := xlog.NewConfig()
	lvl, err := xlog.ParseLevel(o.LogLevel)
	if err != nil {
		return c, err
	}
	format, err := xlog.ParseFormat(o.LogFormat)
	if err != nil {
		return c, err
	}
	c.Level = lvl
	c.StdFormat = format
	c.StdWriter = w
	c.Path = o.LogFile
	return c, nil
}
