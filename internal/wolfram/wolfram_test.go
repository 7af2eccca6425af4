package wolfram_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/homework/internal/wolfram"
)

const solvedBody = `{
  "queryresult": {
    "success": true,
    "pods": [
      {"title": "Input interpretation", "subpods": [{"plaintext": "solve 2x + 3 = 7"}]},
      {"title": "Solution", "subpods": [{"plaintext": "x = 2"}]},
      {"title": "Result", "subpods": [{"plaintext": "ignored"}]}
    ]
  }
}`

func serve(t *testing.T, status int, body string, check func(*http.Request)) wolfram.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return wolfram.New("APP-ID", server.URL+"/v2/query", 5*time.Second)
}

func TestSolve(t *testing.T) {
	c := serve(t, http.StatusOK, solvedBody, func(r *http.Request) {
		q := r.URL.Query()
		if q.Get("input") != "2x + 3 = 7" {
			t.Errorf("input = %q", q.Get("input"))
		}
		if q.Get("appid") != "APP-ID" || q.Get("output") != "JSON" || q.Get("format") != "plaintext" {
			t.Errorf("query = %v", q)
		}
	})

	got, err := c.Solve(context.Background(), "2x + 3 = 7")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got != "x = 2" {
		t.Errorf("Solve = %q, want x = 2", got)
	}
}

func TestSolvePodSelection(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"result title",
			`{"queryresult":{"pods":[{"title":"Result","subpods":[{"plaintext":"-16"}]}]}}`,
			"-16",
		},
		{
			"answer skips empty subpod",
			`{"queryresult":{"pods":[{"title":"Solution","subpods":[]},{"title":"Answer","subpods":[{"plaintext":"42"}]}]}}`,
			"42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serve(t, http.StatusOK, tt.body, nil).Solve(context.Background(), "q")
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if got != tt.want {
				t.Errorf("Solve = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"no pods", http.StatusOK, `{"queryresult":{"success":false,"pods":[]}}`, wolfram.ErrNoSolution},
		{"lowercase title", http.StatusOK, `{"queryresult":{"pods":[{"title":"Exact result","subpods":[{"plaintext":"-16"}]}]}}`, wolfram.ErrNoSolution},
		{"no matching pod", http.StatusOK, `{"queryresult":{"pods":[{"title":"Plot","subpods":[{"plaintext":""}]}]}}`, wolfram.ErrNoSolution},
		{"forbidden", http.StatusForbidden, `Invalid appid`, wolfram.ErrQuery},
		{"malformed", http.StatusOK, `{`, wolfram.ErrQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serve(t, tt.status, tt.body, nil).Solve(context.Background(), "q")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
