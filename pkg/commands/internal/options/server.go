package options

import (
	"net"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/wuxler/imgref/pkg/errdefs"
)

const (
	// ServerFlagCategory is the category of the server flags.
	ServerFlagCategory = "[Server]"

	// DefaultServerPort is the default port for the server to listen on.
	DefaultServerPort int64 = 8080

	// DefaultServerHost is the default host for the server to listen on.
	DefaultServerHost = "127.0.0.1"

	// DefaultShutdownTimeout bounds the graceful shutdown of the server.
	DefaultShutdownTimeout = 5 * time.Second
)

// NewServerOptions returns a new *ServerOptions with default values.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Port:            DefaultServerPort,
		Host:            DefaultServerHost,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ServerOptions defines the options for the server.
type ServerOptions struct {
	// Port is the port for the server to listen on.
	Port int64

	// Host is the host for the server to listen on.
	Host string

	// ShutdownTimeout is how long in-flight requests may take to finish
	// once the server is asked to stop.
	ShutdownTimeout time.Duration
}

// Flags returns the []cli.Flag related to current options.
func (o *ServerOptions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "port to listen on",
			Sources:     cli.EnvVars("IMGREF_SERVER_PORT"),
			Value:       o.Port,
			Destination: &o.Port,
			Category:    ServerFlagCategory,
			Validator: func(port int64) error {
				if port < 0 || port > 65535 {
					return errdefs.Newf(errdefs.ErrInvalidParameter, "port %d out of range [0, 65535]", port)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:        "host",
			Usage:       "host to listen on",
			Sources:     cli.EnvVars("IMGREF_SERVER_HOST"),
			Value:       o.Host,
			Destination: &o.Host,
			Category:    ServerFlagCategory,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "time given to in-flight requests on shutdown",
			Sources:     cli.EnvVars("IMGREF_SERVER_SHUTDOWN_TIMEOUT"),
			Value:       o.ShutdownTimeout,
			Destination: &o.ShutdownTimeout,
			Category:    ServerFlagCategory,
			Validator: func(d time.Duration) error {
				if d <= 0 {
					return errdefs.Newf(errdefs.ErrInvalidParameter, "shutdown timeout must be positive, got %s", d)
				}
				return nil
			},
		},
	}
}

// Address returns the server address format as host:port.
func (o *ServerOptions) Address() string {
	return net.JoinHostPort(o.Host, strconv.FormatInt(o.Port, 10))
}
