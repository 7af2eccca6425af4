package analysis_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/homework/analysis"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		problem  string
		solution string
	}{
		{
			"empty",
			"",
			"",
			"",
		},
		{
			"question mark with steps and result",
			"What is 2x + 3 = 7? Step 1: subtract 3. Step 2: divide by 2. Result: the value of x is 2.",
			"What is 2x + 3 = 7?",
			"Step 1: subtract 3. Step 2: divide by 2.",
		},
		{
			"question mark skips text before first step",
			"Solve 3x = 9 for x? I think so. Step 1: x = 3 because 9/3",
			"Solve 3x = 9 for x?",
			"Step 1: x = 3 because 9/3",
		},
		{
			"question mark without steps",
			"How many apples remain? She had 5 and ate 2 so 3 remain",
			"How many apples remain?",
			"She had 5 and ate 2 so 3 remain",
		},
		{
			"question spans lines",
			"Given 2 apples\nhow many left?\nStep 1: 2 - 1 = 1",
			"Given 2 apples how many left?",
			"Step 1: 2 - 1 = 1",
		},
		{
			"step one marker",
			"Solve 2x = 10 for x. step 1: divide both sides by 2",
			"Solve 2x = 10 for x.",
			"Step 1: divide both sides by 2",
		},
		{
			"step one marker with result",
			"Solve 2x = 10 for x. STEP 1 : x = 5. Result: the value of x is 5",
			"Solve 2x = 10 for x.",
			"Step 1: x = 5.",
		},
		{
			"compute marker",
			"Let f(x) = 2x and g(x) = x + 1. Compute f(g(2)) = 2(3) = 6",
			"Let f(x) = 2x and g(x) = x + 1.",
			"Compute f(g(2)) = 2(3) = 6",
		},
		{
			"compute marker with repairs",
			"Let f(z) = 2x. Compute g(3) = 32 - 3 = 6 then f(—8) = —16",
			"Let f(x) = 2x.",
			"Compute g(3) = 3² - 3 = 6 then f(-8) = -16",
		},
		{
			"short remainder keeps problem",
			"What is the value of 5 + 5? 10",
			"What is the value of 5 + 5?",
			"",
		},
		{
			"short problem falls back",
			"Why? Because 2 + 2 = 4 always",
			"Why? Because 2 + 2 = 4 always",
			"",
		},
		{
			"no markers falls back",
			"Simplify the expression 3a + 4a",
			"Simplify the expression 3a + 4a",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.Segment(tt.input)
			if got.OriginalProblem != tt.problem {
				t.Errorf("OriginalProblem = %q, want %q", got.OriginalProblem, tt.problem)
			}
			if got.StudentSolution != tt.solution {
				t.Errorf("StudentSolution = %q, want %q", got.StudentSolution, tt.solution)
			}
		})
	}
}

func TestSegmentFallbackKeepsNormalizedText(t *testing.T) {
	inputs := []string{
		"Simplify\nthe expression 3a + 4a",
		"A train leaves the station at noon",
		"0123456789",
	}

	for _, in := range inputs {
		normalized := analysis.Normalize(in)
		got := analysis.Segment(normalized)
		if got.OriginalProblem != normalized {
			t.Errorf("Segment(%q).OriginalProblem = %q, want %q", normalized, got.OriginalProblem, normalized)
		}
		if got.StudentSolution != "" {
			t.Errorf("Segment(%q).StudentSolution = %q, want empty", normalized, got.StudentSolution)
		}
	}
}

// MinSegmentLength is a literal carried over from the heuristic parser with
// no documented rationale. These cases pin its exact boundary.
func TestSegmentLengthThreshold(t *testing.T) {
	if analysis.MinSegmentLength != 10 {
		t.Fatalf("MinSegmentLength = %d, want 10", analysis.MinSegmentLength)
	}

	t.Run("remainder of exactly threshold is rejected", func(t *testing.T) {
		got := analysis.Segment("Find the value of y? y = 2 time")
		if got.StudentSolution != "" {
			t.Errorf("StudentSolution = %q, want empty", got.StudentSolution)
		}
		if got.OriginalProblem != "Find the value of y?" {
			t.Errorf("OriginalProblem = %q, want %q", got.OriginalProblem, "Find the value of y?")
		}
	})

	t.Run("remainder one past threshold is accepted", func(t *testing.T) {
		got := analysis.Segment("Find the value of y? y = 2 times")
		if got.StudentSolution != "y = 2 times" {
			t.Errorf("StudentSolution = %q, want %q", got.StudentSolution, "y = 2 times")
		}
	})

	t.Run("problem one short of threshold falls back", func(t *testing.T) {
		input := "Is 2 = 2? Yes because both sides match"
		got := analysis.Segment(input)
		if got.OriginalProblem != input {
			t.Errorf("OriginalProblem = %q, want %q", got.OriginalProblem, input)
		}
	})
}

func TestSegmentProblemNeverEmpty(t *testing.T) {
	inputs := []string{
		"?",
		"step 1: x",
		"compute",
		"Step 1: 2x = 4 Step 2: x = 2",
		"??????????????",
	}

	for _, in := range inputs {
		got := analysis.Segment(in)
		if strings.TrimSpace(got.OriginalProblem) == "" {
			t.Errorf("Segment(%q).OriginalProblem is empty", in)
		}
	}
}
