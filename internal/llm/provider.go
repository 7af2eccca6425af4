// Package llm is the language model client used for image OCR and
// model-backed problem analysis.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model and returns its output.
type Provider interface {
	// Generate returns the model output. When req.Schema is set the
	// Content is JSON that validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the model requests are served by.
	ModelID() string
}

// Request is a single-turn prompt with optional image attachments.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn. Images are sent alongside Content.
type Message struct {
	Role    Role
	Content string
	Images  []Image
}

// Image is an inline attachment for vision-capable models.
type Image struct {
	MediaType string
	Data      []byte
}

// Schema is the JSON Schema the output must satisfy.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output for one request.
type Response struct {
	// Content is the validated JSON when a Schema was requested and the raw
	// text otherwise.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
