package main

import (
	"fmt"
	"time"

	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/internal/infrastructure"
)

// Server owns the infrastructure and the HTTP listener for one process.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg.Version)
	modules.Mount(router)

	return &Server{
		infra: infra,
		http:  newHTTPServer(cfg, router, infra.Logger),
	}, nil
}

// Start brings up the database and blob storage, then binds the listener.
// A bind failure is returned here rather than logged from the serve loop.
func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("listen %s: %w", s.http.addr(), err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info(
			"homework ready",
			"addr", s.http.addr(),
			"llm", s.infra.LLM != nil,
			"vision", s.infra.Vision != nil,
			"wolfram", s.infra.Wolfram != nil,
		)
	}()
	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("stopping homework", "timeout", timeout)
	return s.infra.Lifecycle.Shutdown(timeout)
}
