package prompts

const extractProblemInstructions = `Extract the mathematical problem statement from this image. Focus on:
- The main question being asked
- Any given information or constraints
- Mathematical expressions, equations, or formulas
- Ignore any solution work or answers

Return only the problem statement as clean, readable text. Use proper mathematical notation where possible (like x², √, ∫, etc.).`

const extractSolutionInstructions = `Extract the student's solution work from this image. Focus on:
- Step-by-step calculations
- Mathematical work and reasoning
- Equations and algebraic manipulations
- Final answers
- Ignore the original problem statement

Return the solution work as clean, readable text with clear steps. Use proper mathematical notation where possible.`

const extractCombinedInstructions = `Extract all mathematical content from this image, including:
- The problem statement or question
- Any solution work or steps shown
- Mathematical expressions, equations, and formulas
- Preserve the structure and separate problem from solution if both are present

Return clean, readable text using proper mathematical notation where possible (like x², √, ∫, etc.).`

const analyzeInstructions = `You are a patient math tutor reviewing a student's homework.

The text you receive may contain a problem statement followed by the student's attempt. Determine:
1. What is the original problem?
2. What is the student's solution, if any?
3. Is there an error? If so, is it conceptual (wrong method or misunderstanding) or computational (right method, arithmetic or algebra slip)?
4. Helpful feedback that guides the student without simply handing over the answer.
5. How confident you are in this analysis.

When no solution attempt is present, report no_solution_provided rather than guessing at one.`

var instructions = map[Stage]string{
	StageExtractProblem:  extractProblemInstructions,
	StageExtractSolution: extractSolutionInstructions,
	StageExtractCombined: extractCombinedInstructions,
	StageAnalyze:         analyzeInstructions,
}

// Instructions returns the task description for stage.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
