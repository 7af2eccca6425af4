package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed reports content that holds no decodable JSON value.
var ErrParseFailed = errors.New("no JSON found in content")

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON returns the JSON payload of content. Models sometimes wrap
// their answer in a markdown fence or surround it with prose, so the fence
// body is preferred and the outermost braces are tried last.
func ExtractJSON(content string) (json.RawMessage, error) {
	content = strings.TrimSpace(content)

	candidates := []string{content}
	if m := fencedBlock.FindStringSubmatch(content); m != nil {
		candidates = append(candidates, m[1])
	}
	if start, end := strings.Index(content, "{"), strings.LastIndex(content, "}"); start >= 0 && end > start {
		candidates = append(candidates, content[start:end+1])
	}

	for _, c := range candidates {
		if json.Valid([]byte(c)) {
			return json.RawMessage(c), nil
		}
	}
	return nil, fmt.Errorf("%w: %.80q", ErrParseFailed, content)
}

// Parse decodes the JSON payload of content into T.
func Parse[T any](content string) (T, error) {
	var out T

	raw, err := ExtractJSON(content)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return out, nil
}
