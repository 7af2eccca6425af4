package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/homework/analysis"
	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/internal/prompts"
	"github.com/JaimeStill/homework/pkg/formatting"
)

// modelAnalysis is the analyze stage output. ConfidenceScore is a pointer
// so a missing score can be told apart from zero.
type modelAnalysis struct {
	OriginalProblem string   `json:"original_problem"`
	StudentSolution string   `json:"student_solution"`
	ErrorType       string   `json:"error_type"`
	Explanation     string   `json:"explanation"`
	Hints           string   `json:"hints"`
	ConfidenceScore *float64 `json:"confidence_score"`
	Topic           string   `json:"topic"`
	DifficultyLevel string   `json:"difficulty_level"`
}

func analyzeWithModel(ctx context.Context, rt *Runtime, text string, heuristic analysis.Result) (analysis.Result, error) {
	system, err := prompts.Compose(prompts.StageAnalyze)
	if err != nil {
		return analysis.Result{}, err
	}

	if rt.LLMTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.LLMTimeout)
		defer cancel()
	}

	resp, err := rt.LLM.Generate(llm.WithPurpose(ctx, string(prompts.StageAnalyze)), llm.Request{
		System: system,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: prompts.AnalyzeMessage(text),
		}},
		Schema:      prompts.AnalysisSchema(),
		MaxTokens:   rt.MaxTokens,
		Temperature: rt.Temperature,
	})
	if err != nil {
		return analysis.Result{}, err
	}

	parsed, err := formatting.Parse[modelAnalysis](resp.Text())
	if err != nil {
		return analysis.Result{}, fmt.Errorf("parse model analysis: %w", err)
	}

	return normalize(parsed, heuristic), nil
}

// normalize coerces model output onto the analysis vocabulary. Values the
// model leaves empty or outside the vocabulary are taken from the
// heuristic result, and the confidence is clamped.
func normalize(m modelAnalysis, h analysis.Result) analysis.Result {
	r := analysis.Result{
		OriginalProblem: strings.TrimSpace(m.OriginalProblem),
		StudentSolution: strings.TrimSpace(m.StudentSolution),
		ErrorType:       analysis.ErrorType(strings.ToLower(strings.TrimSpace(m.ErrorType))),
		Explanation:     strings.TrimSpace(m.Explanation),
		Hints:           strings.TrimSpace(m.Hints),
		ConfidenceScore: analysis.ClampConfidence(m.ConfidenceScore),
		Topic:           strings.ToLower(strings.TrimSpace(m.Topic)),
		DifficultyLevel: analysis.Difficulty(strings.ToLower(strings.TrimSpace(m.DifficultyLevel))),
		CorrectSteps:    h.CorrectSteps,
	}

	if r.OriginalProblem == "" {
		r.OriginalProblem = h.OriginalProblem
		r.StudentSolution = h.StudentSolution
	}
	if !r.ErrorType.Valid() || r.ErrorType == analysis.ErrorUnknown {
		r.ErrorType = h.ErrorType
	}
	if r.Explanation == "" {
		r.Explanation = h.Explanation
	}
	if r.Hints == "" {
		r.Hints = h.Hints
	}
	if r.Topic == "" {
		r.Topic = h.Topic
	}
	if !r.DifficultyLevel.Valid() || r.DifficultyLevel == analysis.DifficultyUnknown {
		r.DifficultyLevel = h.DifficultyLevel
	}
	return r
}
