package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/pkg/lifecycle"
)

type httpServer struct {
	srv     *http.Server
	logger  *slog.Logger
	drainIn time.Duration
}

func newHTTPServer(cfg *config.Config, handler http.Handler, logger *slog.Logger) *httpServer {
	read := cfg.Server.ReadTimeoutDuration()
	return &httpServer{
		srv: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: read,
			ReadTimeout:       read,
			WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
		},
		logger:  logger.With("system", "http"),
		drainIn: cfg.ShutdownTimeoutDuration(),
	}
}

func (s *httpServer) addr() string {
	return s.srv.Addr
}

// Start binds synchronously and serves in the background. In-flight
// requests get drainIn to finish once the lifecycle context is cancelled.
func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("serve failed", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.drainIn)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("drain incomplete", "error", err)
			return
		}
		s.logger.Info("listener closed")
	})
	return nil
}
