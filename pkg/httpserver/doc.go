// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown, and provides the health endpoint handler.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled, on SIGINT or SIGTERM, or when the listener
// fails. Listen errors wrap ErrStart; shutdown errors wrap ErrShutdown.
package httpserver
