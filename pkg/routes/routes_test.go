package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/homework/pkg/routes"
)

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name + ":" + r.PathValue("id")))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/problems",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: named("list")},
			{Method: "GET", Pattern: "/{id}", Handler: named("find")},
		},
		Children: []routes.Group{{
			Prefix: "/history",
			Routes: []routes.Route{{Method: "GET", Pattern: "/{id}", Handler: named("history")}},
		}},
	})

	tests := []struct {
		method, path, want string
		status             int
	}{
		{"GET", "/problems", "list:", http.StatusOK},
		{"GET", "/problems/42", "find:42", http.StatusOK},
		{"GET", "/problems/history/a@b.c", "history:a@b.c", http.StatusOK},
		{"POST", "/problems", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.want != "" && rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}
}
