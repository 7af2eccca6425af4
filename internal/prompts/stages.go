// Package prompts holds the instructions and output specifications sent to
// the language model for each stage of problem analysis.
package prompts

import (
	"encoding/json"
	"slices"
)

// Stage is one kind of model call.
type Stage string

const (
	StageExtractProblem  Stage = "extract_problem"
	StageExtractSolution Stage = "extract_solution"
	StageExtractCombined Stage = "extract_combined"
	StageAnalyze         Stage = "analyze"
)

var stages = []Stage{
	StageExtractProblem,
	StageExtractSolution,
	StageExtractCombined,
	StageAnalyze,
}

// Stages lists every valid stage.
func Stages() []Stage {
	return stages
}

// ParseStage returns ErrInvalidStage for unknown names.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}

// UnmarshalJSON rejects unknown stage names.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStage(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ExtractStage maps an upload type (problem, solution or combined) to its
// extraction stage. Anything else extracts combined content.
func ExtractStage(uploadType string) Stage {
	switch uploadType {
	case "problem":
		return StageExtractProblem
	case "solution":
		return StageExtractSolution
	default:
		return StageExtractCombined
	}
}
