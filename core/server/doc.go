// Package server wraps http.Server with context-driven lifecycle
// management: Start blocks until the context is canceled or the listener
// fails, shutdown is graceful with a bounded timeout, and every knob has a
// production default.
//
// # Running a Server
//
// The package-level Run covers the common case:
//
//	func main() {
//		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//		defer stop()
//
//		if err := server.Run(ctx, ":8080", handler); err != nil && !errors.Is(err, context.Canceled) {
//			log.Fatal(err)
//		}
//	}
//
// For more control, build the server explicitly:
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(60*time.Second),
//		server.WithLogger(slog.Default()),
//	)
//	if err := srv.Start(ctx, handler); err != nil {
//		log.Fatal(err)
//	}
//
// Start returns ctx.Err() after a context-triggered shutdown completes, so
// callers can tell a clean exit from a listener failure. Addr reports the
// bound address, which matters when listening on ":0".
//
// # Errgroup Integration
//
// The Run method returns a func() error shaped for errgroup, shutting the
// server down when the group context is canceled:
//
//	g, gctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(gctx, handler))
//	g.Go(worker.Run(gctx))
//	if err := g.Wait(); err != nil {
//		log.Fatal(err)
//	}
//
// # Environment Configuration
//
// Config carries env tags for the config loader, and NewFromConfig turns a
// loaded Config into a server. Explicit options run last and win:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//
// TLS activates only when both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE
// are set.
//
// # TLS
//
// NewTLSConfig starts from DefaultTLSConfig (TLS 1.2+, ECDHE-only suites)
// and applies validating options:
//
//	tlsCfg, err := server.NewTLSConfig(
//		server.WithTLSCertificate("cert.pem", "key.pem"),
//		server.WithTLSMinVersion(tls.VersionTLS13),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv := server.New(":8443", server.WithTLS(tlsCfg))
//
// ModernTLSConfig, IntermediateTLSConfig, and StrictTLSConfig provide
// alternative starting points for stricter or more compatible deployments.
//
// # Defaults
//
// Without options a server reads requests for at most 15s, writes for at
// most 15s, drops idle connections after 60s, caps headers at 1MB, allows
// 30s for graceful shutdown, and logs nothing. The Server type is safe for
// concurrent use; Start on an already running server returns
// ErrServerAlreadyRunning.
package server
