package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "# Modul A", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "# Modul B"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "# Modul A" {
		t.Fatalf("text = %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "# Modul B" {
		t.Fatalf("text = %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "ok"},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeRevise)
	if p := PurposeFrom(ctx); p != "revise" {
		t.Fatalf("expected 'revise', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     DefaultConfig(),
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     DefaultConfig().WithAPIKey("AIza-test"),
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mock.Generate(ctx, UserPrompt("x"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("call should still be recorded, got %d", mock.CallCount())
	}
}

func TestUserPrompt(t *testing.T) {
	req := UserPrompt("halo")
	if len(req.Messages) != 1 || req.Messages[0].Role != RoleUser || req.Messages[0].Content != "halo" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.ModelID() != DefaultModel {
		t.Errorf("model = %q, want %q", cfg.ModelID(), DefaultModel)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("max attempts = %d, want 1", cfg.Retry.MaxAttempts)
	}
}

func TestConfig_WithAPIKey(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithAPIKey("AIza-test")
	if cfg.Gemini.APIKey != "AIza-test" {
		t.Fatalf("gemini key = %q", cfg.Gemini.APIKey)
	}
	if base.Gemini.APIKey != "" {
		t.Fatal("WithAPIKey must not mutate the receiver")
	}

	base.Provider = "anthropic"
	if got := base.WithAPIKey("sk-ant").Anthropic.APIKey; got != "sk-ant" {
		t.Fatalf("anthropic key = %q", got)
	}
}

func TestConfig_ModelID(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{Provider: "gemini", Gemini: GeminiConfig{Model: "gemini-pro"}}, "gemini-3-pro-preview"},
		{Config{Provider: "anthropic", Anthropic: AnthropicConfig{Model: "claude-haiku"}}, "claude-haiku-4-5-20251001"},
		{Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{Model: "google/gemini-3-flash-preview"}}, "google/gemini-3-flash-preview"},
		{Config{Provider: "mock"}, "mock"},
		{Config{Provider: "nope"}, ""},
	}
	for _, tt := range tests {
		if got := tt.cfg.ModelID(); got != tt.want {
			t.Errorf("%s: ModelID() = %q, want %q", tt.cfg.Provider, got, tt.want)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MODULAJAR_LLM_PROVIDER", "openai")
	t.Setenv("MODULAJAR_OPENAI_MODEL", "gpt-4.1-mini")
	t.Setenv("MODULAJAR_OPENAI_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("MODULAJAR_GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("MODULAJAR_LLM_MAX_ATTEMPTS", "3")
	t.Setenv("MODULAJAR_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" || cfg.OpenAI.Model != "gpt-4.1-mini" || cfg.OpenAI.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("gemini model = %q", cfg.Gemini.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("max attempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}

func TestConfigFromEnv_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("MODULAJAR_LLM_MAX_ATTEMPTS", "zero")
	t.Setenv("MODULAJAR_LLM_TIMEOUT", "-1s")

	cfg := ConfigFromEnv()
	def := DefaultConfig()
	if cfg.Retry.MaxAttempts != def.Retry.MaxAttempts || cfg.Timeout != def.Timeout {
		t.Errorf("bad values should fall back to defaults: %+v", cfg)
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q", p.ModelID())
	}

	if _, err := NewProvider(context.Background(), DefaultConfig(), nil, nil); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-3-flash-preview")
	if c == nil {
		t.Fatal("expected pricing for default model")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 3.5 {
		t.Errorf("cost = %v, want 3.5", got)
	}
	if LookupCost("google/gemini-3-flash-preview") == nil {
		t.Error("vendor-prefixed id should resolve")
	}
	if LookupCost("unknown-model") != nil {
		t.Error("unknown model should be nil")
	}
}
