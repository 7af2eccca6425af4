package query_test

import (
	"slices"
	"testing"
	"time"

	"github.com/JaimeStill/homework/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "problems", "p").
		Project("id", "ID").
		Project("error_type", "ErrorType").
		Project("problem_text", "ProblemText").
		Project("user_solution", "UserSolution").
		Project("created_at", "CreatedAt")
}

func TestBuild(t *testing.T) {
	errType := "computational"
	search := "2x"
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sql, args := query.
		NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		WhereEquals("ErrorType", &errType).
		WhereSearch(&search, "ProblemText", "UserSolution").
		WhereSince("CreatedAt", &since).
		Build()

	want := "SELECT p.id, p.error_type, p.problem_text, p.user_solution, p.created_at " +
		"FROM public.problems p " +
		"WHERE p.error_type = $1 AND (p.problem_text ILIKE $2 OR p.user_solution ILIKE $3) AND p.created_at >= $4 " +
		"ORDER BY p.created_at DESC"

	if sql != want {
		t.Errorf("sql =\n%s\nwant\n%s", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("len(args) = %d, want 4", len(args))
	}
	if p, ok := args[0].(*string); !ok || *p != errType {
		t.Errorf("args[0] = %v, want %q", args[0], errType)
	}
	if args[1] != "%2x%" || args[2] != "%2x%" {
		t.Errorf("search args = %v, %v, want %%2x%%", args[1], args[2])
	}
}

func TestBuildIgnoresNil(t *testing.T) {
	var errType *string
	empty := ""

	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("ErrorType", errType).
		WhereContains("ProblemText", &empty).
		WhereSince("CreatedAt", nil).
		BuildCount()

	if sql != "SELECT COUNT(*) FROM public.problems p" {
		t.Errorf("sql = %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection()).
		OrderByFields([]query.SortField{{Field: "ErrorType"}, {Field: "Bogus; DROP TABLE"}}).
		BuildPage(3, 20)

	want := "SELECT p.id, p.error_type, p.problem_text, p.user_solution, p.created_at " +
		"FROM public.problems p ORDER BY p.error_type ASC LIMIT 20 OFFSET 40"
	if sql != want {
		t.Errorf("sql =\n%s\nwant\n%s", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", 42)

	want := "SELECT p.id, p.error_type, p.problem_text, p.user_solution, p.created_at FROM public.problems p WHERE p.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("args = %v, want [42]", args)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"CreatedAt", []query.SortField{{Field: "CreatedAt"}}},
		{"-CreatedAt, ErrorType", []query.SortField{{Field: "CreatedAt", Descending: true}, {Field: "ErrorType"}}},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := query.ParseSortFields(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
