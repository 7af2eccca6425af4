// Package analysis separates extracted homework text into a problem and a
// student solution, classifies the solution with rule-based heuristics, and
// produces a canonical step-by-step solution.
//
// Every function is pure and total over string input: no I/O, no clock reads
// and no shared mutable state, so the pipeline is safe for concurrent use and
// always returns the same result for the same input.
package analysis

const (
	fallbackExplanation = "Unable to analyze at this time - please check your input and try again"
	fallbackHints       = "Make sure your problem is clearly written with both the question and your solution"
	fallbackConfidence  = 0.1
)

// Analyze runs the full pipeline over raw extracted text:
// Normalize, Segment, Classify, GenerateSteps.
func Analyze(raw string) Result {
	seg := Segment(Normalize(raw))
	class := Classify(seg.OriginalProblem, seg.StudentSolution)
	steps := GenerateSteps(seg.OriginalProblem)

	return Assemble(seg, class, steps)
}

// Assemble folds the pipeline stages into a Result.
func Assemble(seg Segmentation, class Classification, steps StepPlan) Result {
	return Result{
		OriginalProblem: seg.OriginalProblem,
		StudentSolution: seg.StudentSolution,
		ErrorType:       class.ErrorType,
		Explanation:     class.Explanation,
		Hints:           class.Hints,
		ConfidenceScore: class.ConfidenceScore,
		Topic:           class.Topic,
		DifficultyLevel: class.DifficultyLevel,
		CorrectSteps:    steps.String(),
	}
}

// FallbackResult is substituted when an external analysis service fails.
// The raw text becomes the problem and the classification is unknown with
// a confidence of 0.1.
func FallbackResult(raw string) Result {
	return Result{
		OriginalProblem: raw,
		ErrorType:       ErrorUnknown,
		Explanation:     fallbackExplanation,
		Hints:           fallbackHints,
		ConfidenceScore: fallbackConfidence,
		Topic:           TopicUnknown,
		DifficultyLevel: DifficultyUnknown,
	}
}
