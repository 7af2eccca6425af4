package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSegmentLength is the length a segment must reach before a strategy is
// accepted. A shorter solution falls through to the next strategy and a
// shorter problem triggers the whole-text fallback.
const MinSegmentLength = 10

var (
	questionSplit  = regexp.MustCompile(`(?s)^(.*?\?)(.*)$`)
	stepMarker     = regexp.MustCompile(`(?is)step\s+\d+.*$`)
	stepOneSplit   = regexp.MustCompile(`(?is)^(.*?)step\s+1\s*:(.*)$`)
	computeSplit   = regexp.MustCompile(`(?is)^(.*?)compute\s+(.*)$`)
	resultSentence = regexp.MustCompile(`(?i)result\s*:?\s*the\s+value.*?is\s+\d+\.?$`)
)

// Segment splits normalized text into the problem statement and the
// student's solution. Strategies run in priority order (question mark,
// "Step 1:" marker, "compute" keyword) and stop once one yields a solution
// of at least MinSegmentLength characters. Both segments are repaired. If
// the problem ends up shorter than MinSegmentLength the whole text becomes
// the problem and the solution is empty.
func Segment(normalized string) Segmentation {
	var problem, solution string

	if m := questionSplit.FindStringSubmatch(normalized); m != nil {
		problem = strings.TrimSpace(m[1])
		rest := strings.TrimSpace(m[2])
		if length(rest) > MinSegmentLength {
			if step := stepMarker.FindString(rest); step != "" {
				rest = step
			}
			solution = stripResult(rest)
		}
	}

	if length(solution) < MinSegmentLength {
		if m := stepOneSplit.FindStringSubmatch(normalized); m != nil {
			problem = strings.TrimSpace(m[1])
			solution = stripResult("Step 1: " + strings.TrimSpace(m[2]))
		}
	}

	if length(solution) < MinSegmentLength {
		if m := computeSplit.FindStringSubmatch(normalized); m != nil {
			problem = strings.TrimSpace(m[1])
			solution = stripResult("Compute " + strings.TrimSpace(m[2]))
		}
	}

	problem = RepairProblem(problem)
	solution = RepairSolution(solution)

	if length(problem) < MinSegmentLength {
		return Segmentation{OriginalProblem: normalized}
	}

	return Segmentation{
		OriginalProblem: problem,
		StudentSolution: solution,
	}
}

func stripResult(s string) string {
	return strings.TrimSpace(resultSentence.ReplaceAllLiteralString(s, ""))
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
