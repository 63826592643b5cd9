package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/export"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/lessonplan"
	"github.com/abhisek/modulajar/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a lesson plan from a request file",
	Long: `Generate a lesson plan from a YAML or JSON request file.

The Markdown goes to stdout unless -o is given. The module is also stored in
the local history so it can be revised later with "modulajar revise <id>".`,
	Example: `  modulajar options --template > request.yaml
  modulajar generate -f request.yaml -o modul.md --html modul.html`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Request file (required)")
	generateCmd.Flags().StringP("output", "o", "", "Write Markdown to this file instead of stdout")
	generateCmd.Flags().String("html", "", "Also write a printable HTML page to this file")
	generateCmd.Flags().Bool("no-save", false, "Do not store the module in history")
	_ = generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	file, _ := cmd.Flags().GetString("file")
	out, _ := cmd.Flags().GetString("output")
	htmlPath, _ := cmd.Flags().GetString("html")
	noSave, _ := cmd.Flags().GetBool("no-save")

	req, err := lessonplan.LoadFile(file, time.Now())
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return &userError{err: err}
	}

	e, err := openEnv(cmd, "")
	if err != nil {
		return err
	}
	defer e.Close()

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "Membuat modul ajar %s - %s (%s)...\n", req.Subject, req.Topic, e.llmCfg.ModelID())

	mod, err := e.client.Generate(ctx, req)
	if err != nil {
		return &userError{err: err}
	}

	if !noSave {
		ev, err := e.store.ModuleRepo().AppendModule(ctx, generatedRecord(req, *mod))
		if err != nil {
			e.log.Warn("storing module", zap.Error(err))
		} else {
			fmt.Fprintf(stderr, "Tersimpan di riwayat: %s\n", shortID(ev.UUID))
		}
	}

	if err := writeOutput(cmd.OutOrStdout(), out, mod.Content); err != nil {
		return err
	}
	if htmlPath != "" {
		if err := export.WriteHTMLFile(htmlPath, *mod); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "HTML: %s\n", htmlPath)
	}
	return nil
}

// generatedRecord is the history entry for a fresh module.
func generatedRecord(req lessonplan.LessonRequest, mod generation.GeneratedModule) store.ModuleEventData {
	data := store.ModuleEventData{
		Kind:       store.ModuleGenerated,
		Title:      mod.Title,
		Subject:    req.Subject,
		Topic:      req.Topic,
		GradeLevel: req.GradeLevel,
		Content:    mod.Content,
	}
	if b, err := json.Marshal(req); err == nil {
		data.RequestJSON = string(b)
	}
	return data
}
