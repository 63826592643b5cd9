package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/store"
)

// NewProvider creates a Provider from configuration. The API key must
// already be set on cfg. The result is wrapped with retry and logging
// middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	return WithRetry(logged, cfg.Retry), nil
}

// NewProviderWithKey is NewProvider with apiKey injected into the selected
// provider's configuration.
func NewProviderWithKey(ctx context.Context, cfg Config, apiKey string, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	return NewProvider(ctx, cfg.WithAPIKey(apiKey), eventRepo, log)
}
