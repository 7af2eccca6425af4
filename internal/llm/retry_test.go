package llm_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/JaimeStill/homework/internal/llm"
)

func retryConfig() llm.RetryConfig {
	return llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var okResponse = llm.MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func unavailable() llm.MockResponse {
	return llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []llm.MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []llm.MockResponse{okResponse}, false, 1},
		{"transient then success", []llm.MockResponse{unavailable(), okResponse}, false, 2},
		{"all attempts fail", []llm.MockResponse{unavailable(), unavailable(), unavailable(), okResponse}, true, 3},
		{
			"rate limit then success",
			[]llm.MockResponse{{Err: &llm.ErrRateLimit{RetryAfter: time.Millisecond}}, okResponse},
			false, 2,
		},
		{
			"max tokens not retried",
			[]llm.MockResponse{{Err: &llm.ErrMaxTokensExceeded{}}, okResponse},
			true, 1,
		},
		{
			"invalid response retried once",
			[]llm.MockResponse{
				{Err: &llm.ErrInvalidResponse{Err: errors.New("bad")}},
				{Err: &llm.ErrInvalidResponse{Err: errors.New("bad")}},
				okResponse,
			},
			true, 2,
		},
		{
			"context error not retried",
			[]llm.MockResponse{{Err: context.DeadlineExceeded}, okResponse},
			true, 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.responses...)
			p := llm.WithRetry(mock, retryConfig())

			_, err := p.Generate(context.Background(), llm.Request{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	mock := llm.NewMockProvider(unavailable(), okResponse)
	p := llm.WithRetry(mock, llm.RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Hour,
		MaxWait:     time.Hour,
		Multiplier:  1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, llm.Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}
