package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
)

const shutdownGracePeriod = 10 * time.Second

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds the HTTP server over the given router. The listen address
// is resolved from PORT/ADDRESS per the deployment contract.
func NewServer(router http.Handler, cfg config.Server, logger *logger.Logger) Server {
	logger.Info().Str("address", cfg.ListenAddress()).Msg("creating new server...")

	return &server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddress(),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// RunServer serves requests until a termination signal arrives, then shuts
// down gracefully and returns.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Err(err).Msg("HTTP server ListenAndServe")
		stop()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown stops accepting new connections and waits up to the grace period
// for in-flight requests to finish.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
