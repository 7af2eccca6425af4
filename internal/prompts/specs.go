package prompts

const extractSpec = `Output constraints:
- Plain text only, no markdown fencing and no commentary
- Keep line breaks between separate steps or equations
- If the image contains no readable mathematics, return an empty response`

const analyzeSpec = `Respond with a JSON object matching this exact structure:

{
  "original_problem": "<the math problem>",
  "student_solution": "<the student's work>",
  "error_type": "conceptual|computational|no_error|no_solution_provided",
  "explanation": "<explanation>",
  "hints": "<hints>",
  "confidence_score": 0.95,
  "topic": "algebra|calculus|trigonometry|functions|geometry",
  "difficulty_level": "beginner|intermediate|advanced"
}

Field constraints:
- original_problem: The problem statement only, without the student's work.
- student_solution: The student's work only. Empty string when none is present.
- error_type: no_error when the final answer and method are correct.
- explanation: What the student did right or wrong, in two or three sentences.
- hints: One concrete next step the student should take.
- confidence_score: Number between 0.0 and 1.0.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Judge only the work shown; do not invent steps the student did not write`

var specs = map[Stage]string{
	StageExtractProblem:  extractSpec,
	StageExtractSolution: extractSpec,
	StageExtractCombined: extractSpec,
	StageAnalyze:         analyzeSpec,
}

// Spec returns the output format and behavioral constraints for stage.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
