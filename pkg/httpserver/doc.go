// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown and slog lifecycle records.
//
// Run blocks until its context is cancelled or Shutdown is called, then shuts
// the server down within Config.ShutdownTimeout. Ready and Addr expose the
// bound listener, so ":0" works in tests:
//
//	srv := httpserver.New(httpserver.Config{Addr: ":8080"}, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes. Errors are wrapped
// with ErrStart and ErrShutdown for errors.Is.
package httpserver
