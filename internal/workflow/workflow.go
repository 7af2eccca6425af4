// Package workflow runs one problem analysis: the heuristic engine always,
// the language model when requested, and Wolfram Alpha when configured.
package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/homework/analysis"
	"github.com/JaimeStill/homework/internal/wolfram"
)

// Mode selects who classifies the problem.
type Mode string

const (
	ModeHeuristic Mode = "heuristic"
	ModeLLM       Mode = "llm"
)

// ParseMode accepts "", heuristic and llm. The empty mode is returned as is
// and resolved by Execute.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "", ModeHeuristic, ModeLLM:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Outcome is the result of one run.
type Outcome struct {
	Mode     Mode            `json:"mode"`
	Analysis analysis.Result `json:"analysis"`
	// Fallback is set when the model failed and the fixed fallback result
	// replaced its analysis.
	Fallback        bool    `json:"fallback"`
	WolframSolution *string `json:"wolfram_solution"`
}

// Execute analyzes text. Collaborator failures degrade the outcome instead
// of failing it; only an invalid or unavailable mode is an error.
func Execute(ctx context.Context, rt *Runtime, text string, mode Mode) (*Outcome, error) {
	if mode == "" {
		mode = rt.DefaultMode()
	}

	heuristic := analysis.Analyze(text)
	out := &Outcome{Mode: mode, Analysis: heuristic}

	switch mode {
	case ModeHeuristic:
	case ModeLLM:
		if rt.LLM == nil {
			return nil, ErrModeUnavailable
		}
		result, err := analyzeWithModel(ctx, rt, text, heuristic)
		if err != nil {
			rt.Logger.WarnContext(ctx, "model analysis failed, using fallback", "error", err)
			result = analysis.FallbackResult(text)
			result.CorrectSteps = heuristic.CorrectSteps
			out.Fallback = true
		}
		out.Analysis = result
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	out.WolframSolution = solve(ctx, rt, out.Analysis.OriginalProblem)
	return out, nil
}

func solve(ctx context.Context, rt *Runtime, problem string) *string {
	if rt.Wolfram == nil || problem == "" {
		return nil
	}

	if rt.WolframTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.WolframTimeout)
		defer cancel()
	}

	solution, err := rt.Wolfram.Solve(ctx, problem)
	switch {
	case errors.Is(err, wolfram.ErrNoSolution):
		rt.Logger.DebugContext(ctx, "wolfram returned no solution")
		return nil
	case err != nil:
		rt.Logger.WarnContext(ctx, "wolfram query failed", "error", err)
		return nil
	}
	return &solution
}
