package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	router http.Handler
}

// New creates a new Server instance.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
	}
}

// HTTPServer creates and configures the HTTP server.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler.
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}
