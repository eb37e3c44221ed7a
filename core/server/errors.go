package server

import "errors"

var (
	// Returned by the TLS option validators.
	ErrEmptyCertPath         = errors.New("certificate or key file path cannot be empty")
	ErrEmptyServerName       = errors.New("server name cannot be empty")
	ErrInvalidTLSVersion     = errors.New("invalid TLS version")
	ErrInvalidClientAuthType = errors.New("invalid client auth type")
	ErrFailedLoadCert        = errors.New("failed to load certificate")

	// Returned by Start on a server that is already serving.
	ErrServerAlreadyRunning = errors.New("server is already running")
)
