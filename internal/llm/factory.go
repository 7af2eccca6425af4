package llm

import (
	"fmt"
	"log/slog"
)

// NewProvider builds the named provider wrapped as retry -> logging -> base.
// Name "none" returns a nil Provider and no error.
func NewProvider(name string, cfg OpenAIConfig, retry RetryConfig, logger *slog.Logger) (Provider, error) {
	var base Provider

	switch name {
	case "none", "":
		return nil, nil
	case "mock":
		return NewMockProvider(), nil
	case "openai":
		p, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, fmt.Errorf("initialize openai provider: %w", err)
		}
		base = p
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}

	return WithRetry(WithLogging(base, logger), retry), nil
}
