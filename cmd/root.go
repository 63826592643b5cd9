package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "modulajar",
	Short: "Lesson plan (Modul Ajar) writer for teachers",
	Long: `Modul Ajar: terminal form and CLI that writes Kurikulum Merdeka lesson plans
with a generative model (Gemini by default) and revises them on request.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

// Execute runs the command line with ctx as the root context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MODULAJAR_DB env var)")
	rootCmd.PersistentFlags().String("export-dir", "", "Directory for saved .md/.html files (overrides MODULAJAR_EXPORT_DIR env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides MODULAJAR_LOG_LEVEL env var)")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(apikeyCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MODULAJAR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveExportDir returns the directory the TUI saves modules into:
// --export-dir, then MODULAJAR_EXPORT_DIR, then <data dir>/export.
func resolveExportDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("export-dir"); p != "" {
		return p, nil
	}
	if p := os.Getenv("MODULAJAR_EXPORT_DIR"); p != "" {
		return p, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "export"), nil
}
