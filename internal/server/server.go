package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server.
type Server struct {
	http *http.Server
}

// New creates a server serving the given router.
func New(router *gin.Engine, host, port string) *Server {
	return &Server{
		http: &http.Server{
			Addr:    net.JoinHostPort(host, port),
			Handler: router,
		},
	}
}

// Start blocks serving requests until Shutdown is called or the listener
// fails. http.ErrServerClosed is swallowed so a graceful stop reads as nil.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
