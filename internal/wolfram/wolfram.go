// Package wolfram queries the Wolfram Alpha full results API for a
// reference solution to a problem.
package wolfram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrNoSolution = errors.New("no solution pod in response")
	ErrQuery      = errors.New("wolfram query failed")
)

// solutionTitles are matched in pod order; the first pod whose title
// contains any of them is used.
var solutionTitles = []string{"Solution", "Result", "Answer"}

// Client is a Wolfram Alpha client.
type Client interface {
	// Solve returns the plaintext of the first solution, result or answer
	// pod for query.
	Solve(ctx context.Context, query string) (string, error)
}

type client struct {
	http    *http.Client
	baseURL string
	appID   string
}

// New creates a Client against baseURL.
func New(appID, baseURL string, timeout time.Duration) Client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
		appID:   appID,
	}
}

type queryResponse struct {
	QueryResult struct {
		Success bool `json:"success"`
		Error   any  `json:"error"`
		Pods    []struct {
			Title   string `json:"title"`
			SubPods []struct {
				Plaintext string `json:"plaintext"`
			} `json:"subpods"`
		} `json:"pods"`
	} `json:"queryresult"`
}

func (c *client) Solve(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("format", "plaintext")
	params.Set("output", "JSON")
	params.Set("appid", c.appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrQuery, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrQuery, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrQuery, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return "", fmt.Errorf("%w: decode: %w", ErrQuery, err)
	}

	return solution(qr)
}

func solution(qr queryResponse) (string, error) {
	for _, pod := range qr.QueryResult.Pods {
		if !titleMatches(pod.Title) || len(pod.SubPods) == 0 {
			continue
		}
		if text := strings.TrimSpace(pod.SubPods[0].Plaintext); text != "" {
			return text, nil
		}
	}
	return "", ErrNoSolution
}

func titleMatches(title string) bool {
	for _, t := range solutionTitles {
		if strings.Contains(title, t) {
			return true
		}
	}
	return false
}
