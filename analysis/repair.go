package analysis

import (
	"regexp"
	"strings"
)

const emDash = "—"

type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// OCR misreads seen in scanned work. Order matters: the squared-term rule
// consumes an em-dash before the global em-dash rule runs.
var (
	problemRepairs = []substitution{
		{regexp.MustCompile(`f\(z\)\s*=\s*2x`), "f(x) = 2x"},
		{regexp.MustCompile(`x\?\s*` + emDash + `\s*3`), "x² - 3"},
	}

	solutionRepairs = []substitution{
		{regexp.MustCompile(`g\(3\)\s*=\s*32\s*-\s*3`), "g(3) = 3² - 3"},
	}
)

// RepairProblem applies the problem-side OCR substitutions, replaces
// em-dashes with hyphen-minus, collapses whitespace and trims.
func RepairProblem(s string) string {
	return repair(s, problemRepairs)
}

// RepairSolution applies the solution-side OCR substitutions, replaces
// em-dashes with hyphen-minus, collapses whitespace and trims.
func RepairSolution(s string) string {
	return repair(s, solutionRepairs)
}

func repair(s string, subs []substitution) string {
	for _, sub := range subs {
		s = sub.pattern.ReplaceAllLiteralString(s, sub.replacement)
	}
	s = strings.ReplaceAll(s, emDash, "-")
	return collapseWhitespace(s)
}
