package workflow

import (
	"log/slog"
	"time"

	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/internal/wolfram"
)

// Runtime bundles the optional collaborators of an analysis run. A nil LLM
// or Wolfram disables that collaborator.
type Runtime struct {
	LLM            llm.Provider
	Wolfram        wolfram.Client
	Logger         *slog.Logger
	LLMTimeout     time.Duration
	WolframTimeout time.Duration
	MaxTokens      int
	Temperature    float64
}

// DefaultMode is llm when a model is configured and heuristic otherwise.
func (rt *Runtime) DefaultMode() Mode {
	if rt.LLM != nil {
		return ModeLLM
	}
	return ModeHeuristic
}
