package server

import (
	"crypto/tls"
	"fmt"
)

// DefaultTLSConfig is the starting point for NewTLSConfig: TLS 1.2 or newer
// with ECDHE-only suites so every connection has forward secrecy.
func DefaultTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		// Go picks 1.3 suites itself; this list constrains 1.2 handshakes.
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		},
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
	}
}

// ModernTLSConfig requires TLS 1.3. Suitable for internal services where
// all clients are known to be recent.
func ModernTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS13,
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
	}
}

// IntermediateTLSConfig widens DefaultTLSConfig with the P-384 curve for
// older clients that negotiate neither X25519 nor P-256.
func IntermediateTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		},
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
			tls.CurveP384,
		},
	}
}

// StrictTLSConfig hardens ModernTLSConfig further: session tickets off so
// resumed sessions cannot be replayed from a stolen ticket key, and
// renegotiation refused outright.
func StrictTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS13,
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
		SessionTicketsDisabled: true,
		Renegotiation:          tls.RenegotiateNever,
	}
}

// TLSConfigOption customizes a TLS configuration and reports invalid settings.
type TLSConfigOption func(*tls.Config) error

// WithTLSCertificate adds a certificate loaded from the given files.
func WithTLSCertificate(certFile, keyFile string) TLSConfigOption {
	return func(cfg *tls.Config) error {
		if certFile == "" || keyFile == "" {
			return ErrEmptyCertPath
		}
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedLoadCert, err)
		}
		cfg.Certificates = append(cfg.Certificates, cert)
		return nil
	}
}

// WithTLSClientAuth sets the client certificate policy for mutual TLS.
func WithTLSClientAuth(clientAuthType tls.ClientAuthType) TLSConfigOption {
	return func(cfg *tls.Config) error {
		switch clientAuthType {
		case tls.NoClientCert,
			tls.RequestClientCert,
			tls.RequireAnyClientCert,
			tls.VerifyClientCertIfGiven,
			tls.RequireAndVerifyClientCert:
			cfg.ClientAuth = clientAuthType
			return nil
		default:
			return ErrInvalidClientAuthType
		}
	}
}

// WithTLSMinVersion overrides the minimum protocol version.
func WithTLSMinVersion(version uint16) TLSConfigOption {
	return func(cfg *tls.Config) error {
		switch version {
		case tls.VersionTLS10, tls.VersionTLS11, tls.VersionTLS12, tls.VersionTLS13:
			cfg.MinVersion = version
			return nil
		default:
			return ErrInvalidTLSVersion
		}
	}
}

// WithTLSServerName pins the name the peer certificate must present.
func WithTLSServerName(serverName string) TLSConfigOption {
	return func(cfg *tls.Config) error {
		if serverName == "" {
			return ErrEmptyServerName
		}
		cfg.ServerName = serverName
		return nil
	}
}

// WithTLSInsecureSkipVerify turns certificate verification off. Test
// environments only; anything on a real network must not use it.
func WithTLSInsecureSkipVerify() TLSConfigOption {
	return func(cfg *tls.Config) error {
		cfg.InsecureSkipVerify = true
		return nil
	}
}

// NewTLSConfig creates a TLS configuration with the given options,
// starting from the secure defaults of DefaultTLSConfig.
func NewTLSConfig(opts ...TLSConfigOption) (*tls.Config, error) {
	cfg := DefaultTLSConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
