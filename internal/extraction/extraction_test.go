package extraction_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/homework/internal/extraction"
	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/internal/prompts"
)

func text(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func newExtractor(p llm.Provider) *extraction.Extractor {
	return extraction.New(p, slog.New(slog.DiscardHandler))
}

func png(name string) extraction.File {
	return extraction.File{Name: name, ContentType: "image/png", Data: []byte("\x89PNG fake")}
}

func TestExtractImage(t *testing.T) {
	mock := llm.NewMockProvider(text("  Solve 2x + 3 = 7\n"))
	e := newExtractor(mock)

	got, err := e.Extract(context.Background(), png("hw.png"), prompts.StageExtractProblem)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got.Text != "Solve 2x + 3 = 7" || got.Method != extraction.MethodVision {
		t.Errorf("result = %+v", got)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 || len(req.Messages[0].Images) != 1 {
		t.Fatalf("request = %+v, want one message with one image", req)
	}
	instr, _ := prompts.Instructions(prompts.StageExtractProblem)
	if req.Messages[0].Content != instr {
		t.Error("request does not carry the problem extraction instructions")
	}
	if req.Messages[0].Images[0].MediaType != "image/png" {
		t.Errorf("media type = %q", req.Messages[0].Images[0].MediaType)
	}
	spec, _ := prompts.Spec(prompts.StageExtractProblem)
	if req.System != spec {
		t.Error("request does not carry the problem extraction system prompt")
	}
}

func TestExtractImageUnknownStage(t *testing.T) {
	mock := llm.NewMockProvider(text("ignored"))
	e := newExtractor(mock)

	_, err := e.Extract(context.Background(), png("hw.png"), prompts.Stage("grade"))
	if !errors.Is(err, prompts.ErrInvalidStage) {
		t.Fatalf("err = %v, want %v", err, prompts.ErrInvalidStage)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("provider called %d times, want 0", len(mock.Calls))
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name   string
		e      *extraction.Extractor
		file   extraction.File
		want   error
		status int
	}{
		{
			name:   "image without provider",
			e:      newExtractor(nil),
			file:   png("a.png"),
			want:   extraction.ErrOCRUnavailable,
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "unsupported type",
			e:      newExtractor(nil),
			file:   extraction.File{Name: "a.docx", ContentType: "application/msword"},
			want:   extraction.ErrUnsupportedType,
			status: http.StatusUnsupportedMediaType,
		},
		{
			name:   "corrupt pdf",
			e:      newExtractor(nil),
			file:   extraction.File{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("not a pdf")},
			want:   extraction.ErrExtractFailed,
			status: http.StatusBadGateway,
		},
		{
			name:   "vision failure",
			e:      newExtractor(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})),
			file:   png("a.png"),
			want:   extraction.ErrExtractFailed,
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.e.Extract(context.Background(), tt.file, prompts.StageExtractCombined)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got := extraction.MapHTTPStatus(err); got != tt.status {
				t.Errorf("status = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestExtractAllKeepsOrder(t *testing.T) {
	mock := llm.NewMockProvider(text("same"), text("same"), text("same"))
	e := newExtractor(mock)

	files := []extraction.File{png("one.png"), png("two.png"), png("three.png")}
	results, err := e.ExtractAll(context.Background(), files, prompts.StageExtractCombined)
	if err != nil {
		t.Fatalf("ExtractAll: %v", err)
	}

	for i, r := range results {
		if r.Name != files[i].Name {
			t.Errorf("results[%d].Name = %q, want %q", i, r.Name, files[i].Name)
		}
	}
}

func TestExtractAllFailure(t *testing.T) {
	e := newExtractor(nil)
	files := []extraction.File{png("one.png")}

	_, err := e.ExtractAll(context.Background(), files, prompts.StageExtractCombined)
	if !errors.Is(err, extraction.ErrOCRUnavailable) || !strings.Contains(err.Error(), "one.png") {
		t.Errorf("err = %v, want ErrOCRUnavailable naming the file", err)
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		sources []extraction.Source
		want    string
	}{
		{"empty", nil, ""},
		{"single", []extraction.Source{{"a.png", "Solve 2x + 3 = 7"}}, "Solve 2x + 3 = 7"},
		{
			"multiple",
			[]extraction.Source{{"a.png", "Solve 2x + 3 = 7"}, {"b.pdf", "x = 2"}},
			"Solve 2x + 3 = 7\n\n--- From b.pdf ---\nx = 2",
		},
		{
			"leading empty",
			[]extraction.Source{{"a.png", "  "}, {"b.pdf", "x = 2"}, {"c.png", "check"}},
			"x = 2\n\n--- From c.png ---\ncheck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extraction.Combine(tt.sources); got != tt.want {
				t.Errorf("Combine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for ct, want := range map[string]bool{
		"application/pdf": true,
		"image/jpeg":      true,
		"image/heic":      true,
		"text/plain":      false,
		"":                false,
	} {
		if got := extraction.Supported(ct); got != want {
			t.Errorf("Supported(%q) = %v, want %v", ct, got, want)
		}
	}
}
