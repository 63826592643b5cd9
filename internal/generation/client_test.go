package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/modulajar/internal/credential"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/llm"
)

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "# MODUL AJAR: SIKLUS AIR\n..."})
	c, built := testClient(mock, "AIza-test")

	mod, err := c.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "IPA - Siklus Air", mod.Title)
	assert.Equal(t, "# MODUL AJAR: SIKLUS AIR\n...", mod.Content)
	assert.Equal(t, 1, *built)
	require.Equal(t, 1, mock.CallCount())

	call, _ := mock.LastCall()
	assert.Equal(t, 0.75, call.Temperature)
	assert.Equal(t, 0.95, call.TopP)
	assert.Equal(t, 40, call.TopK)
	require.Len(t, call.Messages, 1)
	assert.Equal(t, llm.RoleUser, call.Messages[0].Role)
	assert.Equal(t, BuildModulePrompt(sampleRequest(), testNow), call.Messages[0].Content)
}

func TestGenerate_ValidationBlocksCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "never"})
	c, built := testClient(mock, "AIza-test")

	req := sampleRequest()
	req.SESPriority = lessonplan.NewLabelSet()

	_, err := c.Generate(context.Background(), req)

	var verr *lessonplan.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sesPriority", verr.Field)
	assert.Equal(t, 0, *built)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_MissingCredential(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "never"})
	c, built := testClient(mock, "")

	_, err := c.Generate(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrCredentialMissing)
	assert.Equal(t, 0, *built)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_CredentialChainMissing(t *testing.T) {
	mock := llm.NewMockProvider()
	factory := func(context.Context, string) (llm.Provider, error) { return mock, nil }
	c := NewClient(credential.Chain(credential.Static("")), factory, DefaultConfig(), nil)

	_, err := c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrCredentialMissing)
}

func TestGenerate_CredentialSourceError(t *testing.T) {
	failing := func(context.Context) (string, error) { return "", errors.New("settings unreadable") }
	c := NewClient(failing, nil, DefaultConfig(), nil)

	_, err := c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrCredentialMissing)
	assert.Contains(t, err.Error(), "settings unreadable")
}

func TestGenerate_ErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{"typed auth", &llm.ErrAuth{Err: errors.New("denied")}, func(t *testing.T, err error) {
			var aq *AuthOrQuotaError
			assert.ErrorAs(t, err, &aq)
		}},
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("slow down")}, func(t *testing.T, err error) {
			var aq *AuthOrQuotaError
			assert.ErrorAs(t, err, &aq)
		}},
		{"403 in text", errors.New("Error 403, Message: forbidden"), func(t *testing.T, err error) {
			var aq *AuthOrQuotaError
			assert.ErrorAs(t, err, &aq)
		}},
		{"api key in text", errors.New("API key not valid. Please pass a valid API key."), func(t *testing.T, err error) {
			var aq *AuthOrQuotaError
			assert.ErrorAs(t, err, &aq)
		}},
		{"quota in text", errors.New("RESOURCE_EXHAUSTED: quota exceeded"), func(t *testing.T, err error) {
			var aq *AuthOrQuotaError
			assert.ErrorAs(t, err, &aq)
		}},
		{"network", &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}, func(t *testing.T, err error) {
			var te *TransportError
			assert.ErrorAs(t, err, &te)
		}},
		{"provider empty", &llm.ErrEmptyResponse{Model: "gemini-3-flash-preview"}, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, ErrEmptyResponse)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Err: tt.err})
			c, _ := testClient(mock, "AIza-test")

			_, err := c.Generate(context.Background(), sampleRequest())
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, 1, mock.CallCount(), "no automatic retry")
		})
	}
}

func TestGenerate_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  \n"})
	c, _ := testClient(mock, "AIza-test")

	_, err := c.Generate(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerate_FactoryError(t *testing.T) {
	factory := func(context.Context, string) (llm.Provider, error) { return nil, errors.New("bad base url") }
	c := NewClient(credential.Static("AIza-test"), factory, DefaultConfig(), nil)

	_, err := c.Generate(context.Background(), sampleRequest())
	var te *TransportError
	assert.ErrorAs(t, err, &te)
}

func TestGenerate_Cancelled(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "late"})
	c, _ := testClient(mock, "AIza-test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, sampleRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Permintaan dibatalkan.", UserMessage(err))
}

func TestGenerate_PurposeLabel(t *testing.T) {
	var purpose string
	recorder := purposeRecorder{got: &purpose, inner: llm.NewMockProvider(llm.MockResponse{Text: "ok"})}
	factory := func(context.Context, string) (llm.Provider, error) { return recorder, nil }
	c := NewClient(credential.Static("k"), factory, DefaultConfig(), nil)

	_, err := c.Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, llm.PurposeGenerate, purpose)
}

type purposeRecorder struct {
	got   *string
	inner llm.Provider
}

func (p purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	*p.got = llm.PurposeFrom(ctx)
	return p.inner.Generate(ctx, req)
}

func (p purposeRecorder) ModelID() string { return p.inner.ModelID() }

func TestRevise_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "# MODUL AJAR v2"})
	c, _ := testClient(mock, "AIza-test")

	mod, err := c.Revise(context.Background(), "# MODUL AJAR v1", "Tambahkan ice breaking")
	require.NoError(t, err)

	assert.Equal(t, RevisedTitle, mod.Title)
	assert.Equal(t, "# MODUL AJAR v2", mod.Content)

	call, _ := mock.LastCall()
	assert.Equal(t, 0.7, call.Temperature)
	assert.Zero(t, call.TopK)
	assert.Zero(t, call.TopP)
	assert.Contains(t, call.Messages[0].Content, "# MODUL AJAR v1")
	assert.Contains(t, call.Messages[0].Content, `"Tambahkan ice breaking"`)
}

func TestRevise_AllFailuresCollapse(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		resp        llm.MockResponse
		instruction string
	}{
		{"missing credential", "", llm.MockResponse{Text: "x"}, "ubah"},
		{"auth", "k", llm.MockResponse{Err: &llm.ErrAuth{Err: errors.New("403")}}, "ubah"},
		{"transport", "k", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("eof")}}, "ubah"},
		{"empty text", "k", llm.MockResponse{Text: ""}, "ubah"},
		{"blank instruction", "k", llm.MockResponse{Text: "x"}, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(llm.NewMockProvider(tt.resp), tt.key)

			_, err := c.Revise(context.Background(), "# MODUL AJAR", tt.instruction)
			require.ErrorIs(t, err, ErrRevisionFailed)
			assert.Equal(t, "Gagal merevisi modul. Pastikan API Key valid.", UserMessage(err))
		})
	}
}

func TestRevise_KeepsCauseForLogs(t *testing.T) {
	c, _ := testClient(llm.NewMockProvider(), "")

	_, err := c.Revise(context.Background(), "# MODUL AJAR", "ubah")
	assert.ErrorIs(t, err, ErrRevisionFailed)
	assert.ErrorIs(t, err, ErrCredentialMissing)
}
