package server

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the HTTP server of the application with controlled startup
// and shutdown.
type Server struct {
	server *http.Server
}

// ListenAndServe blocks until the server stops. After Shutdown it returns
// http.ErrServerClosed.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for active requests until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// NewServer creates a server listening on address and routing to router,
// with read/write timeouts and a bounded header size.
func NewServer(address string, router *ApiV1Router) *Server {
	s := Server{&http.Server{
		Addr:           address,
		Handler:        router.Mux(),
		ReadTimeout:    time.Second * 3,
		WriteTimeout:   time.Second * 3,
		MaxHeaderBytes: 1024 * 10,
	}}

	return &s
}
