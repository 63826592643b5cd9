// Package generation turns a lesson request into a Markdown lesson plan by
// calling a generative model, and revises existing plans on request.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/credential"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/llm"
)

// RevisedTitle is the title every revision carries.
const RevisedTitle = "Modul Ajar (Revisi)"

// GeneratedModule is one lesson plan returned by the model.
type GeneratedModule struct {
	Title   string
	Content string // Markdown
}

// ProviderFactory builds the remote provider once a key is known.
type ProviderFactory func(ctx context.Context, apiKey string) (llm.Provider, error)

// Client generates and revises lesson plans. Each call makes at most one
// remote request.
type Client struct {
	creds   credential.Provider
	factory ProviderFactory
	cfg     Config
	log     *zap.Logger
}

// NewClient wires a client. log may be nil.
func NewClient(creds credential.Provider, factory ProviderFactory, cfg Config, log *zap.Logger) *Client {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{creds: creds, factory: factory, cfg: cfg, log: log}
}

// Generate validates req and asks the model for a full lesson plan.
//
// Validation and credential failures return before any network attempt.
// Remote failures come back as *AuthOrQuotaError, ErrEmptyResponse or
// *TransportError.
func (c *Client) Generate(ctx context.Context, req lessonplan.LessonRequest) (*GeneratedModule, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	provider, err := c.provider(ctx)
	if err != nil {
		return nil, err
	}

	prompt := BuildModulePrompt(req, c.cfg.Now())
	c.log.Debug("generating module",
		zap.String("subject", req.Subject),
		zap.String("topic", req.Topic),
		zap.Int("meetings", req.MeetingCountInt()),
		zap.Int("prompt_chars", len(prompt)),
	)

	ctx = llm.WithPurpose(ctx, llm.PurposeGenerate)
	text, err := c.call(ctx, provider, prompt, c.cfg.Generate)
	if err != nil {
		c.log.Warn("generate failed", zap.Error(err))
		return nil, err
	}

	return &GeneratedModule{
		Title:   fmt.Sprintf("%s - %s", req.Subject, req.Topic),
		Content: text,
	}, nil
}

// Revise rewrites current according to instruction and returns the whole
// replacement document. Every failure is reported as ErrRevisionFailed.
func (c *Client) Revise(ctx context.Context, current, instruction string) (*GeneratedModule, error) {
	mod, err := c.revise(ctx, current, instruction)
	if err != nil {
		c.log.Warn("revise failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrRevisionFailed, err)
	}
	return mod, nil
}

func (c *Client) revise(ctx context.Context, current, instruction string) (*GeneratedModule, error) {
	if strings.TrimSpace(instruction) == "" {
		return nil, errors.New("empty revision instruction")
	}
	if strings.TrimSpace(current) == "" {
		return nil, errors.New("nothing to revise")
	}

	provider, err := c.provider(ctx)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeRevise)
	text, err := c.call(ctx, provider, BuildRevisionPrompt(current, instruction), c.cfg.Revise)
	if err != nil {
		return nil, err
	}
	return &GeneratedModule{Title: RevisedTitle, Content: text}, nil
}

// provider resolves the key and builds the remote provider.
func (c *Client) provider(ctx context.Context) (llm.Provider, error) {
	if c.creds == nil {
		return nil, ErrCredentialMissing
	}
	key, err := c.creds(ctx)
	if err != nil {
		if errors.Is(err, credential.ErrMissing) {
			return nil, ErrCredentialMissing
		}
		return nil, fmt.Errorf("%w: %w", ErrCredentialMissing, err)
	}
	if strings.TrimSpace(key) == "" {
		return nil, ErrCredentialMissing
	}

	p, err := c.factory(ctx, key)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return p, nil
}

func (c *Client) call(ctx context.Context, p llm.Provider, prompt string, s Sampling) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req := llm.UserPrompt(prompt)
	req.Temperature = s.Temperature
	req.TopP = s.TopP
	req.TopK = s.TopK

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Text, nil
}
