package server

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingAddress rejects a Config whose Addr is empty.
var ErrMissingAddress = errors.New("server address is required")

// Defaults applied by New and mirrored by the envDefault tags on Config.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1 << 20
)

// Config declares the server's environment surface for the config loader.
// The envDefault values match the package constants, so a Config loaded
// from an empty environment behaves like New with no options.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"`

	// TLS stays off unless both files are set.
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE" envDefault:""`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE" envDefault:""`
}

// DefaultConfig mirrors what the env loader produces from an empty
// environment, for callers that configure in code.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// NewFromConfig builds a Server from a loaded Config. Zero config values
// leave the corresponding default untouched, and explicit opts are applied
// last so they win over configured values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	var all []Option
	add := func(set bool, opt Option) {
		if set {
			all = append(all, opt)
		}
	}
	add(cfg.ReadTimeout > 0, WithReadTimeout(cfg.ReadTimeout))
	add(cfg.WriteTimeout > 0, WithWriteTimeout(cfg.WriteTimeout))
	add(cfg.IdleTimeout > 0, WithIdleTimeout(cfg.IdleTimeout))
	add(cfg.ShutdownTimeout > 0, WithShutdownTimeout(cfg.ShutdownTimeout))
	add(cfg.MaxHeaderBytes > 0, WithMaxHeaderBytes(cfg.MaxHeaderBytes))

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		tlsConfig, err := NewTLSConfig(WithTLSCertificate(cfg.TLSCertFile, cfg.TLSKeyFile))
		if err != nil {
			return nil, fmt.Errorf("tls setup from %s and %s: %w",
				cfg.TLSCertFile, cfg.TLSKeyFile, err)
		}
		add(true, WithTLS(tlsConfig))
	}

	all = append(all, opts...)

	return New(cfg.Addr, all...), nil
}
