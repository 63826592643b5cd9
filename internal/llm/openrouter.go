package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is an OpenAIProvider pointed at OpenRouter's
// OpenAI-compatible endpoint. Model ids pass through unmapped
// ("google/gemini-3-flash-preview").
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
		HTTPClient: &http.Client{Transport: attributionTransport{
			base:  http.DefaultTransport,
			title: cfg.AppTitle,
			url:   cfg.AppURL,
		}},
	})
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionTransport adds OpenRouter's app attribution headers.
type attributionTransport struct {
	base  http.RoundTripper
	title string
	url   string
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.title == "" && t.url == "" {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	if t.url != "" {
		req.Header.Set("HTTP-Referer", t.url)
	}
	return t.base.RoundTrip(req)
}
