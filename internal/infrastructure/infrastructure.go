// Package infrastructure assembles the systems shared by every domain
// module: lifecycle, logging, database, blob storage, and the optional
// language model and Wolfram Alpha collaborators.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/homework/internal/config"
	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/internal/wolfram"
	"github.com/JaimeStill/homework/pkg/database"
	"github.com/JaimeStill/homework/pkg/lifecycle"
	"github.com/JaimeStill/homework/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// LLM, Vision and Wolfram are nil when their collaborator is not configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	LLM       llm.Provider
	Vision    llm.Provider
	Wolfram   wolfram.Client
	Extractor *extraction.Extractor
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	llmLogger := logger.With("system", "llm")
	retry := cfg.LLM.RetryConfig()

	analysisModel, err := llm.NewProvider(cfg.LLM.Provider, cfg.LLM.OpenAIConfig(false), retry, llmLogger)
	if err != nil {
		return nil, fmt.Errorf("llm init failed: %w", err)
	}

	visionModel, err := llm.NewProvider(cfg.LLM.Provider, cfg.LLM.OpenAIConfig(true), retry, llmLogger)
	if err != nil {
		return nil, fmt.Errorf("vision init failed: %w", err)
	}

	var wa wolfram.Client
	if cfg.Wolfram.Enabled() {
		wa = wolfram.New(cfg.Wolfram.AppID, cfg.Wolfram.BaseURL, cfg.Wolfram.TimeoutDuration())
	}

	logger.Info(
		"collaborators configured",
		"llm_provider", cfg.LLM.Provider,
		"wolfram", wa != nil,
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Storage:   store,
		LLM:       analysisModel,
		Vision:    visionModel,
		Wolfram:   wa,
		Extractor: extraction.New(visionModel, logger),
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// Database and storage hooks are registered for startup and shutdown coordination.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
