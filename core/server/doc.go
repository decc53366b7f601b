// Package server runs an http.Handler with production timeouts and graceful
// shutdown driven by context cancellation.
//
// The server binds its listener before reporting readiness, so ":0" can be
// used in tests and the chosen address read back with Addr once Ready is
// closed.
//
// # Usage
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run treats cancellation as a normal stop and returns the shutdown error, if
// any. Listen and serve failures are returned as is.
//
// # Configuration
//
// Config is parsed from the environment with the SERVER_ prefix:
//
//   - SERVER_ADDR (default ":8080")
//   - SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT (default 15s)
//   - SERVER_IDLE_TIMEOUT (default 60s)
//   - SERVER_SHUTDOWN_TIMEOUT (default 30s)
//   - SERVER_MAX_HEADER_BYTES (default 1 MB)
//   - SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE, both required for HTTPS
package server
