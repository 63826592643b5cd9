package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/lessonplan"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the prompt a request file produces (no database, no network)",
	Long: `Validate a request file and print the exact prompt that "generate" would
send to the model.

This is a stateless developer tool: no database, no API key, no remote call.
Useful for checking request files and prompt changes.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("file", "f", "", "Request file (required)")
	_ = previewCmd.MarkFlagRequired("file")
}

func runPreview(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")

	now := time.Now()
	req, err := lessonplan.LoadFile(file, now)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return &userError{err: err}
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "── %s - %s (%d pertemuan) ──\n\n", req.Subject, req.Topic, req.MeetingCountInt())
	fmt.Fprintln(w, generation.BuildModulePrompt(req, now))
	return nil
}
