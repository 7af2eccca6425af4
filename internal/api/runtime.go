package api

import (
	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/internal/infrastructure"
	"github.com/JaimeStill/homework/internal/workflow"
	"github.com/JaimeStill/homework/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Workflow   *workflow.Runtime
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			LLM:       infra.LLM,
			Vision:    infra.Vision,
			Wolfram:   infra.Wolfram,
			Extractor: infra.Extractor,
		},
		Pagination: cfg.API.Pagination,
		Workflow: &workflow.Runtime{
			LLM:            infra.LLM,
			Wolfram:        infra.Wolfram,
			Logger:         logger.With("system", "workflow"),
			LLMTimeout:     cfg.LLM.TimeoutDuration(),
			WolframTimeout: cfg.Wolfram.TimeoutDuration(),
			MaxTokens:      cfg.LLM.MaxTokens,
			Temperature:    cfg.LLM.Temperature,
		},
	}
}
