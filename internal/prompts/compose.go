package prompts

import (
	"fmt"

	"github.com/JaimeStill/homework/analysis"
	"github.com/JaimeStill/homework/internal/llm"
)

// Compose joins the instructions and spec of stage into a system prompt.
func Compose(stage Stage) (string, error) {
	instr, err := Instructions(stage)
	if err != nil {
		return "", err
	}
	spec, err := Spec(stage)
	if err != nil {
		return "", err
	}
	return instr + "\n\n" + spec, nil
}

// AnalyzeMessage wraps the problem text for the analyze stage.
func AnalyzeMessage(text string) string {
	return fmt.Sprintf("Analyze this math problem and solution:\n\n%s", text)
}

// AnalysisSchema constrains analyze stage output to the analysis package
// vocabulary.
func AnalysisSchema() *llm.Schema {
	str := map[string]any{"type": "string"}
	enum := func(values ...string) map[string]any {
		items := make([]any, len(values))
		for i, v := range values {
			items[i] = v
		}
		return map[string]any{"type": "string", "enum": items}
	}

	return &llm.Schema{
		Name:        "homework_analysis",
		Description: "Error analysis of a student's math homework",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"original_problem": str,
				"student_solution": str,
				"error_type": enum(
					string(analysis.ErrorConceptual),
					string(analysis.ErrorComputational),
					string(analysis.ErrorNone),
					string(analysis.ErrorNoSolution),
				),
				"explanation":      str,
				"hints":            str,
				"confidence_score": map[string]any{"type": "number"},
				"topic":            str,
				"difficulty_level": enum(
					string(analysis.DifficultyBeginner),
					string(analysis.DifficultyIntermediate),
					string(analysis.DifficultyAdvanced),
				),
			},
			"required": []any{
				"original_problem", "student_solution", "error_type", "explanation",
				"hints", "confidence_score", "topic", "difficulty_level",
			},
			"additionalProperties": false,
		},
	}
}
