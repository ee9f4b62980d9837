package server

import (
	"context"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/proxy-desk-bot/internal/config"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/workers"
)

type server struct {
	workers    *workers.Workers
	httpServer *httpServer
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewServer runs the given workers side by side. ops is served on
// cfg.HTTPAddress when both are set.
func NewServer(ws []workers.Worker, ops http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if len(ws) == 0 {
		return nil, errNoWorkersAreCreated
	}

	s := &server{
		workers: workers.NewWorkers(ws...),
		logger:  logger,
	}
	if cfg.HTTPAddress != "" && ops != nil {
		s.httpServer = newHTTPServer(ops, cfg.HTTPAddress, logger)
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.Run(ctx)
}

func (s *server) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	if s.httpServer != nil {
		s.logger.Info().Str("addr", s.httpServer.server.Addr).Msg("launching ops HTTP server")
		go s.httpServer.RunServer()
	}

	s.logger.Info().Msg("launching bot workers")
	s.workers.Run(ctx)

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
}
