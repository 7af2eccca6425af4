package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/homework/internal/llm"
)

func completion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1760000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func newProvider(t *testing.T, handler http.HandlerFunc) *llm.OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		BaseURL: server.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

var topicSchema = &llm.Schema{
	Name: "topic",
	Definition: map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"topic": map[string]any{"type": "string", "enum": []any{"algebra", "calculus"}}},
		"required":             []any{"topic"},
		"additionalProperties": false,
	},
}

func TestOpenAIGenerate(t *testing.T) {
	var got map[string]any
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, completion(`{"topic":"algebra"}`, "stop"))
	})

	resp, err := p.Generate(context.Background(), llm.Request{
		System:   "Classify the topic.",
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "2x + 3 = 7"}},
		Schema:   topicSchema,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if resp.Text() != `{"topic":"algebra"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v, want json_schema", got["response_format"])
	}
	if msgs, _ := got["messages"].([]any); len(msgs) != 2 {
		t.Errorf("messages = %v, want system and user", got["messages"])
	}
}

func TestOpenAIGenerateWithImage(t *testing.T) {
	var got struct {
		Messages []struct {
			Content json.RawMessage `json:"content"`
		} `json:"messages"`
	}
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, completion("Solve 2x + 3 = 7", "stop"))
	})

	resp, err := p.Generate(context.Background(), llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: "Extract the text.",
			Images:  []llm.Image{{MediaType: "image/png", Data: []byte("png-bytes")}},
		}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text() != "Solve 2x + 3 = 7" {
		t.Errorf("content = %q", resp.Text())
	}

	if len(got.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(got.Messages))
	}
	body := string(got.Messages[0].Content)
	if !strings.Contains(body, "image_url") || !strings.Contains(body, "data:image/png;base64,") {
		t.Errorf("content parts = %s, want inline image", body)
	}
}

func TestOpenAIErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
		finish  string
		check   func(error) bool
	}{
		{
			name:   "rate limit",
			status: http.StatusTooManyRequests,
			check:  func(err error) bool { var e *llm.ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			check:  func(err error) bool { var e *llm.ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "schema mismatch",
			status:  http.StatusOK,
			content: `{"topic":"astrology"}`,
			finish:  "stop",
			check:   func(err error) bool { var e *llm.ErrInvalidResponse; return errors.As(err, &e) },
		},
		{
			name:    "truncated",
			status:  http.StatusOK,
			content: `{"topic":"alg`,
			finish:  "length",
			check:   func(err error) bool { var e *llm.ErrMaxTokensExceeded; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.status != http.StatusOK {
					writeJSON(w, tt.status, map[string]any{
						"error": map[string]any{"message": tt.name, "type": "error"},
					})
					return
				}
				writeJSON(w, http.StatusOK, completion(tt.content, tt.finish))
			})

			_, err := p.Generate(context.Background(), llm.Request{
				Messages: []llm.Message{{Role: llm.RoleUser, Content: "x"}},
				Schema:   topicSchema,
			})
			if err == nil || !tt.check(err) {
				t.Errorf("err = %T %v", err, err)
			}
		})
	}
}

func TestNewOpenAIProviderRequiresKey(t *testing.T) {
	if _, err := llm.NewOpenAIProvider(llm.OpenAIConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Error("err = nil, want missing key")
	}
}
