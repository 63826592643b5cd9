package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/app"
	"github.com/abhisek/modulajar/internal/lessonplan"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// requestFile pre-fills the form when set.
func runApp(cmd *cobra.Command, requestFile string) error {
	ctx := cmd.Context()
	today := time.Now()

	// Load the request before touching the terminal so errors stay readable.
	var initial *lessonplan.LessonRequest
	if requestFile != "" {
		req, err := lessonplan.LoadFile(requestFile, today)
		if err != nil {
			return err
		}
		initial = &req
	}

	exportDir, err := resolveExportDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve export dir: %w", err)
	}
	logPath, err := tuiLogPath()
	if err != nil {
		return fmt.Errorf("resolve log path: %w", err)
	}

	e, err := openEnv(cmd, logPath)
	if err != nil {
		return err
	}
	defer e.Close()

	skipIntro, _ := cmd.Flags().GetBool("no-intro")
	deps := app.Deps{
		Service:       e.client,
		Modules:       e.store.ModuleRepo(),
		Today:         today,
		ExportDir:     exportDir,
		Initial:       initial,
		KeyConfigured: e.keyConfigured(ctx),
		Status:        e.llmCfg.ModelID(),
		SkipIntro:     skipIntro || initial != nil,
		Log:           e.log,
	}

	e.log.Info("starting tui",
		zap.String("export_dir", exportDir),
		zap.Bool("key_configured", deps.KeyConfigured),
		zap.Bool("prefilled", initial != nil),
	)
	return app.Run(ctx, deps)
}
