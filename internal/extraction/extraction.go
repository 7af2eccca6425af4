// Package extraction turns uploaded images and PDFs into raw problem text.
package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/homework/internal/llm"
	"github.com/JaimeStill/homework/internal/prompts"
)

const (
	MethodPDFText = "pdf_text"
	MethodVision  = "vision"

	visionMaxTokens   = 1000
	visionTemperature = 0.1
	maxWorkers        = 4
)

// File is one uploaded file.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Result is the text recovered from one file.
type Result struct {
	Name      string `json:"name"`
	Text      string `json:"text"`
	Method    string `json:"method"`
	PageCount *int   `json:"page_count,omitempty"`
}

// Extractor reads PDF text directly and sends images to a vision model.
type Extractor struct {
	vision llm.Provider
	logger *slog.Logger
}

// New creates an Extractor. A nil vision provider leaves PDF extraction
// working and makes image extraction return ErrOCRUnavailable.
func New(vision llm.Provider, logger *slog.Logger) *Extractor {
	return &Extractor{
		vision: vision,
		logger: logger.With("system", "extraction"),
	}
}

// Supported reports whether contentType can be extracted.
func Supported(contentType string) bool {
	return contentType == "application/pdf" || strings.HasPrefix(contentType, "image/")
}

// Extract returns the text of f. Stage selects the vision instructions for
// images and is ignored for PDFs.
func (e *Extractor) Extract(ctx context.Context, f File, stage prompts.Stage) (*Result, error) {
	switch {
	case f.ContentType == "application/pdf":
		return e.extractPDF(f)
	case strings.HasPrefix(f.ContentType, "image/"):
		return e.extractImage(ctx, f, stage)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, f.ContentType)
	}
}

// ExtractAll extracts files concurrently. Results keep the input order and
// the first failure cancels the rest.
func (e *Extractor) ExtractAll(ctx context.Context, files []File, stage prompts.Stage) ([]Result, error) {
	if len(files) == 0 {
		return nil, nil
	}
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(len(files), maxWorkers))

	for i, f := range files {
		g.Go(func() error {
			r, err := e.Extract(gctx, f, stage)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
			results[i] = *r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Extractor) extractPDF(f File) (*Result, error) {
	text, err := pdfText(f.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	pages := pageCount(f.Data)
	if pages == nil {
		e.logger.Warn("pdf page count unavailable", "name", f.Name)
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("pdf contains no extractable text", "name", f.Name)
	}

	return &Result{
		Name:      f.Name,
		Text:      strings.TrimSpace(text),
		Method:    MethodPDFText,
		PageCount: pages,
	}, nil
}

func (e *Extractor) extractImage(ctx context.Context, f File, stage prompts.Stage) (*Result, error) {
	if e.vision == nil {
		return nil, ErrOCRUnavailable
	}

	instr, err := prompts.Instructions(stage)
	if err != nil {
		return nil, err
	}
	spec, err := prompts.Spec(stage)
	if err != nil {
		return nil, err
	}

	resp, err := e.vision.Generate(llm.WithPurpose(ctx, string(stage)), llm.Request{
		System: spec,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: instr,
			Images:  []llm.Image{{MediaType: f.ContentType, Data: f.Data}},
		}},
		MaxTokens:   visionMaxTokens,
		Temperature: visionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	return &Result{
		Name:   f.Name,
		Text:   strings.TrimSpace(resp.Text()),
		Method: MethodVision,
	}, nil
}
