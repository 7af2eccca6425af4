// Package problems implements the problem domain: running an analysis over
// submitted homework text, persisting the outcome, and querying the
// stored history.
package problems

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/homework/analysis"
	"github.com/JaimeStill/homework/internal/workflow"
)

// Problem is a persisted analysis.
type Problem struct {
	ID               uuid.UUID `json:"id"`
	UserEmail        *string   `json:"user_email"`
	ProblemText      string    `json:"problem_text"`
	UserSolution     string    `json:"user_solution"`
	CorrectSolution  string    `json:"correct_solution"`
	WolframSolution  *string   `json:"wolfram_solution"`
	ErrorType        string    `json:"error_type"`
	ErrorDescription string    `json:"error_description"`
	Hints            string    `json:"hints"`
	ConfidenceScore  float64   `json:"confidence_score"`
	Topic            string    `json:"topic"`
	DifficultyLevel  string    `json:"difficulty_level"`
	Mode             string    `json:"mode"`
	CreatedAt        time.Time `json:"created_at"`
}

// AnalyzeCommand submits homework for analysis. ProblemText and the texts
// of UploadIDs are combined; at least one of them is required.
type AnalyzeCommand struct {
	UserEmail   string      `json:"user_email"`
	ProblemText string      `json:"problem_text"`
	UploadIDs   []uuid.UUID `json:"upload_ids,omitempty"`
	Mode        string      `json:"mode,omitempty"`
}

// AnalyzeResult is the response of an analysis. ID is nil and Saved is
// false when the outcome was not persisted.
type AnalyzeResult struct {
	ID              *uuid.UUID            `json:"id"`
	Saved           bool                  `json:"saved"`
	Mode            workflow.Mode         `json:"mode"`
	Fallback        bool                  `json:"fallback"`
	ParsedContent   analysis.Segmentation `json:"parsed_content"`
	WolframSolution *string               `json:"wolfram_solution"`
	Analysis        analysis.Result       `json:"analysis"`
}

// ParseCommand is the body of the debug parse endpoint.
type ParseCommand struct {
	Text string `json:"text"`
}

// ParseResult reports how text was normalized and segmented.
type ParseResult struct {
	InputLength    int                   `json:"input_length"`
	InputLines     int                   `json:"input_lines"`
	Normalized     string                `json:"normalized"`
	Parsed         analysis.Segmentation `json:"parsed"`
	ProblemLength  int                   `json:"problem_length"`
	SolutionLength int                   `json:"solution_length"`
}

func fromOutcome(cmd AnalyzeCommand, out *workflow.Outcome) Problem {
	p := Problem{
		ProblemText:      out.Analysis.OriginalProblem,
		UserSolution:     out.Analysis.StudentSolution,
		CorrectSolution:  out.Analysis.CorrectSteps,
		WolframSolution:  out.WolframSolution,
		ErrorType:        string(out.Analysis.ErrorType),
		ErrorDescription: out.Analysis.Explanation,
		Hints:            out.Analysis.Hints,
		ConfidenceScore:  out.Analysis.ConfidenceScore,
		Topic:            out.Analysis.Topic,
		DifficultyLevel:  string(out.Analysis.DifficultyLevel),
		Mode:             string(out.Mode),
	}
	if cmd.UserEmail != "" {
		p.UserEmail = &cmd.UserEmail
	}
	return p
}
