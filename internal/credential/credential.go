// Package credential resolves the API key used for generation.
package credential

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrMissing is returned when no source yields a key.
var ErrMissing = errors.New("no API key configured")

// Provider returns the current API key. An empty string with a nil error
// means "not set here"; Chain moves on to the next source.
type Provider func(ctx context.Context) (string, error)

// Chain returns the first non-empty key. It fails with ErrMissing when every
// source is empty, and stops at the first source that errors.
func Chain(providers ...Provider) Provider {
	return func(ctx context.Context) (string, error) {
		for _, p := range providers {
			if p == nil {
				continue
			}
			key, err := p(ctx)
			if err != nil {
				return "", err
			}
			if key = strings.TrimSpace(key); key != "" {
				return key, nil
			}
		}
		return "", ErrMissing
	}
}

// Static returns a fixed value, typically injected at build time.
func Static(value string) Provider {
	return func(context.Context) (string, error) {
		return value, nil
	}
}

// Env reads the first set variable among names.
func Env(names ...string) Provider {
	return func(context.Context) (string, error) {
		for _, n := range names {
			if v := strings.TrimSpace(os.Getenv(n)); v != "" {
				return v, nil
			}
		}
		return "", nil
	}
}

// EnvNames are the deploy-time variables checked for a key.
var EnvNames = []string{"MODULAJAR_API_KEY", "GEMINI_API_KEY"}

// Default is the standard resolution order: persisted override, then the
// build-time value, then the environment.
func Default(store *OverrideStore, buildTime string) Provider {
	var providers []Provider
	if store != nil {
		providers = append(providers, store.Provider())
	}
	return Chain(append(providers, Static(buildTime), Env(EnvNames...))...)
}

// Mask hides all but the last four characters of key.
func Mask(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
