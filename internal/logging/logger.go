// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Mode is "prod"/"production" for JSON output; anything else selects the
	// console development encoder.
	Mode string

	// Level is a zap level name. Default: info.
	Level string

	// OutputPath receives log lines. Default: stderr. The TUI points this
	// at a file so logs stay off the alt screen.
	OutputPath string

	// DisableRedaction turns off masking of secret-looking fields.
	DisableRedaction bool
}

// OptionsFromEnv reads MODULAJAR_LOG_MODE, MODULAJAR_LOG_LEVEL and
// MODULAJAR_LOG_REDACTION.
func OptionsFromEnv() Options {
	opts := Options{
		Mode:  os.Getenv("MODULAJAR_LOG_MODE"),
		Level: os.Getenv("MODULAJAR_LOG_LEVEL"),
	}
	switch strings.TrimSpace(strings.ToLower(os.Getenv("MODULAJAR_LOG_REDACTION"))) {
	case "0", "false", "no", "off":
		opts.DisableRedaction = true
	}
	return opts
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(opts.Mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}

	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	if opts.OutputPath != "" {
		cfg.OutputPaths = []string{opts.OutputPath}
		cfg.ErrorOutputPaths = []string{opts.OutputPath}
	}

	var buildOpts []zap.Option
	if !opts.DisableRedaction {
		buildOpts = append(buildOpts, zap.WrapCore(Redact))
	}
	return cfg.Build(buildOpts...)
}

// Redact wraps core so that secret-looking fields are masked before they
// are encoded.
func Redact(core zapcore.Core) zapcore.Core {
	return redactCore{Core: core}
}

type redactCore struct {
	zapcore.Core
}

func (c redactCore) With(fields []zapcore.Field) zapcore.Core {
	return redactCore{Core: c.Core.With(sanitizeFields(fields))}
}

func (c redactCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c redactCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(ent, sanitizeFields(fields))
}

const redacted = "[REDACTED]"

func sanitizeFields(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		switch {
		case isRedactKey(strings.ToLower(f.Key)):
			out[i] = zap.String(f.Key, redacted)
		case f.Type == zapcore.StringType && looksLikeSecret(f.String):
			out[i] = zap.String(f.Key, redacted)
		default:
			out[i] = f
		}
	}
	return out
}

func isRedactKey(key string) bool {
	switch {
	case strings.Contains(key, "token") && !strings.HasSuffix(key, "_tokens"),
		strings.Contains(key, "authorization"),
		strings.Contains(key, "password"),
		strings.Contains(key, "secret"),
		strings.Contains(key, "api_key"),
		strings.Contains(key, "apikey"):
		return true
	default:
		return false
	}
}

// looksLikeSecret catches provider keys logged under an innocent name.
func looksLikeSecret(s string) bool {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, " \n") {
		return false
	}
	switch {
	case strings.HasPrefix(s, "AIza") && len(s) >= 30:
		return true
	case strings.HasPrefix(s, "sk-") && len(s) >= 20:
		return true
	}
	return false
}
