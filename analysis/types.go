package analysis

import "strings"

// ErrorType categorizes the student's mathematical work.
type ErrorType string

// Error categories assigned by the heuristic classifier. ErrorUnknown is
// only produced when an external analysis fails and the fixed fallback
// result is substituted.
const (
	ErrorNone          ErrorType = "no_error"
	ErrorComputational ErrorType = "computational"
	ErrorConceptual    ErrorType = "conceptual"
	ErrorNoSolution    ErrorType = "no_solution_provided"
	ErrorUnknown       ErrorType = "unknown"
)

// Valid reports whether t is one of the known error categories.
func (t ErrorType) Valid() bool {
	switch t {
	case ErrorNone, ErrorComputational, ErrorConceptual, ErrorNoSolution, ErrorUnknown:
		return true
	}
	return false
}

// Difficulty is the inferred difficulty level of a problem.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyUnknown      Difficulty = "unknown"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyUnknown:
		return true
	}
	return false
}

// Topic names produced by topic inference.
const (
	TopicAlgebra      = "algebra"
	TopicCalculus     = "calculus"
	TopicTrigonometry = "trigonometry"
	TopicFunctions    = "functions"
	TopicGeometry     = "geometry"
	TopicUnknown      = "unknown"
)

// Segmentation is the split of normalized text into the problem statement
// and the student's worked solution. StudentSolution is empty when no work
// was found.
type Segmentation struct {
	OriginalProblem string `json:"original_problem"`
	StudentSolution string `json:"student_solution"`
}

// Classification is the outcome of the heuristic classifier.
type Classification struct {
	ErrorType       ErrorType  `json:"error_type"`
	Explanation     string     `json:"explanation"`
	Hints           string     `json:"hints"`
	ConfidenceScore float64    `json:"confidence_score"`
	Topic           string     `json:"topic"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
}

// StepPlan is an ordered list of instructional lines. It is never empty.
type StepPlan []string

// String joins the plan with newlines.
func (p StepPlan) String() string {
	return strings.Join(p, "\n")
}

// Result is the assembled output of a full pipeline run.
type Result struct {
	OriginalProblem string     `json:"original_problem"`
	StudentSolution string     `json:"student_solution"`
	ErrorType       ErrorType  `json:"error_type"`
	Explanation     string     `json:"explanation"`
	Hints           string     `json:"hints"`
	ConfidenceScore float64    `json:"confidence_score"`
	Topic           string     `json:"topic"`
	DifficultyLevel Difficulty `json:"difficulty_level"`
	CorrectSteps    string     `json:"correct_steps"`
}
