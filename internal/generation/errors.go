package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/llm"
)

var (
	// ErrCredentialMissing means no API key could be resolved. No request
	// was sent.
	ErrCredentialMissing = errors.New("generation: no API key configured")

	// ErrEmptyResponse means the call succeeded but carried no text.
	ErrEmptyResponse = errors.New("generation: empty response from model")

	// ErrRevisionFailed is the single failure Revise reports. The cause is
	// wrapped alongside it.
	ErrRevisionFailed = errors.New("generation: revision failed")
)

// AuthOrQuotaError means the remote rejected the key or the quota is spent.
type AuthOrQuotaError struct {
	Err error
}

func (e *AuthOrQuotaError) Error() string {
	return fmt.Sprintf("generation: API key rejected or quota exhausted: %v", e.Err)
}

func (e *AuthOrQuotaError) Unwrap() error { return e.Err }

// TransportError is any other failed call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation: calling model: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// authMarkers appear in provider error text for rejected keys and spent
// quota. Matched case-insensitively.
var authMarkers = []string{
	"403",
	"401",
	"api key",
	"api_key",
	"permission_denied",
	"unauthenticated",
	"resource_exhausted",
	"quota",
}

// classify maps a provider error onto the generation taxonomy.
func classify(err error) error {
	var auth *llm.ErrAuth
	var rl *llm.ErrRateLimit
	var empty *llm.ErrEmptyResponse
	switch {
	case errors.As(err, &auth), errors.As(err, &rl):
		return &AuthOrQuotaError{Err: err}
	case errors.As(err, &empty):
		return fmt.Errorf("%w: %w", ErrEmptyResponse, err)
	case hasAuthMarker(err):
		return &AuthOrQuotaError{Err: err}
	}
	return &TransportError{Err: err}
}

func hasAuthMarker(err error) bool {
	text := strings.ToLower(err.Error())
	for _, m := range authMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// UserMessage renders err as the Indonesian message shown to teachers.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *lessonplan.ValidationError
	var aq *AuthOrQuotaError
	var te *TransportError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, ErrRevisionFailed):
		return "Gagal merevisi modul. Pastikan API Key valid."
	case errors.Is(err, context.Canceled):
		return "Permintaan dibatalkan."
	case errors.Is(err, context.DeadlineExceeded):
		return "Layanan AI terlalu lama merespon. Silakan coba lagi."
	case errors.Is(err, ErrCredentialMissing):
		return "API Key tidak ditemukan. Silakan atur API Key Anda dengan `modulajar apikey set` atau menu API Key."
	case errors.As(err, &aq):
		return "API Key tidak valid atau kuota habis. Silakan periksa kunci Anda di menu API Key."
	case errors.Is(err, ErrEmptyResponse):
		return "Tidak ada respon dari AI."
	case errors.As(err, &te):
		return fmt.Sprintf("Gagal menghubungi layanan AI: %v", te.Err)
	}
	return err.Error()
}
