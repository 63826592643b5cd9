package llm

import "context"

// Provider is the core abstraction for text generation.
type Provider interface {
	// Generate sends a prompt to the model and returns its text reply.
	// A single call is made; retries are layered on with WithRetry.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Optional.
	System string

	// Messages is the conversation history. Lesson generation and revision
	// both send exactly one user message.
	Messages []Message

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Sampling controls. Zero means "not set" and the provider default
	// applies.
	Temperature float64
	TopP        float64
	TopK        int
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt is shorthand for a request holding one user message.
func UserPrompt(prompt string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: prompt}}}
}

// Response holds the model's output.
type Response struct {
	// Text is the generated Markdown or plain text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "safety"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
