package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the HTTP endpoints.
func NewRouter(handlers Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handlers.PingHandler)
	mux.HandleFunc("GET /tool-schema", handlers.ToolSchema)
	mux.HandleFunc("GET /sessions/{id}", handlers.GetSession)
	mux.HandleFunc("GET /results", handlers.RecentResults)

	return mux
}

// Start - starts HTTP server and stops it when ctx is done.
func Start(ctx context.Context, port string, handlers Handlers) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(handlers),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
