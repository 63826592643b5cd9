package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/credential"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/llm"
	"github.com/abhisek/modulajar/internal/logging"
	"github.com/abhisek/modulajar/internal/store"
)

// buildAPIKey is the deploy-time Gemini key, set with
// -ldflags "-X github.com/abhisek/modulajar/cmd.buildAPIKey=...".
var buildAPIKey = ""

const (
	settingsFile = "settings.db"
	tuiLogFile   = "modulajar.log"
)

// env holds the services a command runs against.
type env struct {
	store     *store.Store
	overrides *credential.OverrideStore
	creds     credential.Provider
	llmCfg    llm.Config
	client    *generation.Client
	log       *zap.Logger
}

// openEnv opens the database and the settings file and wires the
// generation client. logPath sends log lines to a file; empty means stderr.
func openEnv(cmd *cobra.Command, logPath string) (*env, error) {
	log, err := newLogger(cmd, logPath)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	overrides, err := credential.OpenOverrideStore(settingsPath(dbPath))
	if err != nil {
		st.Close()
		return nil, err
	}

	e := &env{
		store:     st,
		overrides: overrides,
		creds:     credential.Default(overrides, buildAPIKey),
		llmCfg:    llm.ConfigFromEnv(),
		log:       log,
	}
	if e.llmCfg.Provider == "mock" {
		e.creds = credential.Static("mock")
	}

	genCfg := generation.DefaultConfig()
	genCfg.Timeout = e.llmCfg.Timeout
	events := st.EventRepo()
	factory := func(ctx context.Context, key string) (llm.Provider, error) {
		return llm.NewProviderWithKey(ctx, e.llmCfg, key, events, log)
	}
	e.client = generation.NewClient(e.creds, factory, genCfg, log)

	log.Debug("environment ready",
		zap.String("db", dbPath),
		zap.String("provider", e.llmCfg.Provider),
		zap.String("model", e.llmCfg.ModelID()),
	)
	return e, nil
}

// keyConfigured reports whether any credential source yields a key.
func (e *env) keyConfigured(ctx context.Context) bool {
	key, err := e.creds(ctx)
	return err == nil && key != ""
}

func (e *env) Close() error {
	_ = e.log.Sync()
	return errors.Join(e.overrides.Close(), e.store.Close())
}

func newLogger(cmd *cobra.Command, path string) (*zap.Logger, error) {
	opts := logging.OptionsFromEnv()
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		opts.Level = lvl
	}
	opts.OutputPath = path
	return logging.New(opts)
}

// tuiLogPath is where logs go while the alt screen owns the terminal.
func tuiLogPath() (string, error) {
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, tuiLogFile)
	return p, store.EnsureDir(p)
}

// settingsPath places the key override file next to the database.
func settingsPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), settingsFile)
}

// openOverrides opens only the settings file.
func openOverrides(cmd *cobra.Command) (*credential.OverrideStore, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return credential.OpenOverrideStore(settingsPath(dbPath))
}

// userError shows the user-facing message for err while keeping the
// cause reachable through errors.Is and errors.As.
type userError struct {
	err error
}

func (e *userError) Error() string { return generation.UserMessage(e.err) }

func (e *userError) Unwrap() error { return e.err }

// writeOutput writes content to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path, content string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(w, content)
		if err == nil && len(content) > 0 && content[len(content)-1] != '\n' {
			_, err = io.WriteString(w, "\n")
		}
		return err
	}
	if err := store.EnsureDir(path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// shortID is the prefix shown for module ids.
func shortID(uuid string) string {
	if len(uuid) > 8 {
		return uuid[:8]
	}
	return uuid
}
