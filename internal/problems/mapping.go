package problems

import (
	"net/url"

	"github.com/JaimeStill/homework/pkg/query"
	"github.com/JaimeStill/homework/pkg/repository"
)

// historyLimit is the number of problems returned by History.
const historyLimit = 20

var projection = query.
	NewProjectionMap("public", "problems", "p").
	Project("id", "ID").
	Project("user_email", "UserEmail").
	Project("problem_text", "ProblemText").
	Project("user_solution", "UserSolution").
	Project("correct_solution", "CorrectSolution").
	Project("wolfram_solution", "WolframSolution").
	Project("error_type", "ErrorType").
	Project("error_description", "ErrorDescription").
	Project("hints", "Hints").
	Project("confidence_score", "ConfidenceScore").
	Project("topic", "Topic").
	Project("difficulty_level", "DifficultyLevel").
	Project("mode", "Mode").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters narrows problem queries. Nil fields are ignored; all fields
// match exactly.
type Filters struct {
	UserEmail       *string `json:"user_email,omitempty"`
	ErrorType       *string `json:"error_type,omitempty"`
	Topic           *string `json:"topic,omitempty"`
	DifficultyLevel *string `json:"difficulty_level,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("UserEmail", f.UserEmail).
		WhereEquals("ErrorType", f.ErrorType).
		WhereEquals("Topic", f.Topic).
		WhereEquals("DifficultyLevel", f.DifficultyLevel)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("user_email"); v != "" {
		f.UserEmail = &v
	}
	if v := values.Get("error_type"); v != "" {
		f.ErrorType = &v
	}
	if v := values.Get("topic"); v != "" {
		f.Topic = &v
	}
	if v := values.Get("difficulty_level"); v != "" {
		f.DifficultyLevel = &v
	}

	return f
}

func scanProblem(s repository.Scanner) (Problem, error) {
	var p Problem
	err := s.Scan(
		&p.ID,
		&p.UserEmail,
		&p.ProblemText,
		&p.UserSolution,
		&p.CorrectSolution,
		&p.WolframSolution,
		&p.ErrorType,
		&p.ErrorDescription,
		&p.Hints,
		&p.ConfidenceScore,
		&p.Topic,
		&p.DifficultyLevel,
		&p.Mode,
		&p.CreatedAt,
	)
	return p, err
}
