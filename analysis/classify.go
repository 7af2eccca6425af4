package analysis

import (
	"math"
	"strings"
	"unicode"
)

// DefaultConfidence replaces a confidence score that is missing or outside [0,1].
const DefaultConfidence = 0.75

const minSolutionLength = 3

const (
	canonicalLinear       = "2x + 3 = 7"
	canonicalLinearAnswer = "x = 2"
)

type verdict struct {
	errorType   ErrorType
	explanation string
	hints       string
	confidence  float64
}

var (
	verdictNoSolution = verdict{
		errorType:   ErrorNoSolution,
		explanation: "Please provide your solution attempt so I can help you.",
		hints:       "Write out each step you took, even if you are unsure it is right.",
		confidence:  0.9,
	}

	verdictLinearCorrect = verdict{
		errorType:   ErrorNone,
		explanation: "Great job! Your solution is correct.",
		hints:       "Check your answer by substituting x = 2 back into the original equation.",
		confidence:  0.95,
	}

	verdictCompositionCorrect = verdict{
		errorType:   ErrorNone,
		explanation: "Great job! You evaluated the inner function first and substituted the result correctly.",
		hints:       "For compositions, always work from the innermost function outward.",
		confidence:  0.90,
	}

	verdictCompositionIncomplete = verdict{
		errorType:   ErrorComputational,
		explanation: "Check your calculations - evaluate g(3) first and substitute that value into f.",
		hints:       "Write down the value of the inner function before evaluating the outer one.",
		confidence:  0.75,
	}

	verdictUnverifiedAnswer = verdict{
		errorType:   ErrorComputational,
		explanation: "Check your calculations - there might be an arithmetic error.",
		hints:       "Substitute your answer back into the original equation to verify it.",
		confidence:  0.75,
	}

	verdictNoAnswer = verdict{
		errorType:   ErrorConceptual,
		explanation: "Review the problem-solving approach and make sure you understand the concept.",
		hints:       "Identify what the problem asks for and state your final answer clearly.",
		confidence:  0.70,
	}

	verdictUnstructured = verdict{
		errorType:   ErrorConceptual,
		explanation: "Your work does not show an equation with values. Review the problem-solving approach.",
		hints:       "Show your work step by step for better analysis.",
		confidence:  0.60,
	}
)

// Classify assigns an error category, explanation, hints and confidence to
// the student's solution, and infers topic and difficulty from the problem.
// Correctness is judged only by string patterns against the canonical
// problems; no symbolic evaluation takes place.
func Classify(problem, solution string) Classification {
	v := judge(problem, solution)
	topic, difficulty := InferTopic(problem)

	return Classification{
		ErrorType:       v.errorType,
		Explanation:     v.explanation,
		Hints:           v.hints,
		ConfidenceScore: v.confidence,
		Topic:           topic,
		DifficultyLevel: difficulty,
	}
}

func judge(problem, solution string) verdict {
	if length(solution) < minSolutionLength {
		return verdictNoSolution
	}

	if !strings.Contains(solution, "=") || !hasLetter(solution) || !hasDigit(solution) {
		return verdictUnstructured
	}

	if strings.Contains(problem, canonicalLinear) && strings.Contains(solution, canonicalLinearAnswer) {
		return verdictLinearCorrect
	}

	if isComposition(problem) {
		if strings.Contains(solution, "g(3)") && strings.Contains(solution, "f(") {
			return verdictCompositionCorrect
		}
		return verdictCompositionIncomplete
	}

	if strings.Contains(problem, "x") && strings.Contains(solution, "x =") {
		return verdictUnverifiedAnswer
	}

	return verdictNoAnswer
}

// InferTopic scans the problem for keyword families, first match wins:
// calculus, trigonometry, functions, quadratic algebra, geometry. Keywords
// match case-insensitively. Anything else is beginner algebra.
func InferTopic(problem string) (string, Difficulty) {
	p := strings.ToLower(problem)

	switch {
	case containsAny(p, "derivative", "d/dx"):
		return TopicCalculus, DifficultyAdvanced
	case containsAny(p, "sin", "cos", "tan"):
		return TopicTrigonometry, DifficultyIntermediate
	case isComposition(p):
		return TopicFunctions, DifficultyIntermediate
	case containsAny(p, "x²", "x^2", "quadratic"):
		return TopicAlgebra, DifficultyIntermediate
	case containsAny(p, "triangle", "circle", "area"):
		return TopicGeometry, DifficultyIntermediate
	default:
		return TopicAlgebra, DifficultyBeginner
	}
}

// ClampConfidence returns score when it lies in [0,1] and DefaultConfidence
// otherwise. A nil score is treated as absent.
func ClampConfidence(score *float64) float64 {
	if score == nil || *score < 0 || *score > 1 || math.IsNaN(*score) {
		return DefaultConfidence
	}
	return *score
}

func isComposition(s string) bool {
	return strings.Contains(s, "f(") && strings.Contains(s, "g(")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
