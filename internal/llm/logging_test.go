package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/modulajar/internal/store"
)

type recordingRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "# MODUL AJAR",
		Usage: Usage{InputTokens: 120, OutputTokens: 900},
	})
	p := WithLogging(mock, "gemini", repo, zap.New(core))

	ctx := WithPurpose(context.Background(), PurposeGenerate)
	if _, err := p.Generate(ctx, Request{
		Messages:    []Message{{Role: RoleUser, Content: "Buatkan modul"}},
		Temperature: 0.75,
		TopP:        0.95,
		TopK:        40,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success || ev.Purpose != "generate" || ev.Provider != "gemini" || ev.Model != "mock" {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 900 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != "# MODUL AJAR" {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
	if !strings.Contains(ev.RequestBody, "[user]\nBuatkan modul") ||
		!strings.Contains(ev.RequestBody, "temperature=0.75 top_p=0.95 top_k=40") {
		t.Errorf("request body = %q", ev.RequestBody)
	}

	entries := logs.FilterMessage("llm request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["purpose"] != "generate" {
		t.Errorf("log fields = %v", entries[0].ContextMap())
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrAuth{Err: errors.New("403")}})
	p := WithLogging(mock, "gemini", repo, zap.New(core))

	_, err := p.Generate(context.Background(), UserPrompt("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("events = %+v", repo.events)
	}
	if repo.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q", repo.events[0].Purpose)
	}
	if logs.FilterMessage("llm request failed").Len() != 1 {
		t.Error("expected a warning for the failed call")
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "mock", repo, nil)

	resp, err := p.Generate(context.Background(), UserPrompt("x"))
	if err != nil || resp.Text != "ok" {
		t.Fatalf("resp = %+v, err = %v", resp, err)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "mock", nil, zap.NewNop())

	if _, err := p.Generate(context.Background(), UserPrompt("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}
}
