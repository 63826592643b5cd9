package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/modulajar/internal/export"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/store"
)

var reviseCmd = &cobra.Command{
	Use:   "revise [module-id]",
	Short: "Revise a stored module or a Markdown file",
	Long: `Ask the model to rewrite a lesson plan according to an instruction.

The source is either a module from history (full id or an unambiguous
prefix) or a Markdown file given with --in ("-" reads stdin). The whole
document is replaced by the revision.`,
	Example: `  modulajar revise 3f2a9c1b -i "Tambahkan kegiatan ice breaking"
  modulajar revise --in modul.md -i "Ringkas asesmen" -o modul-v2.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRevise,
}

func init() {
	reviseCmd.Flags().String("in", "", "Markdown file to revise instead of a stored module")
	reviseCmd.Flags().StringP("instruction", "i", "", "Revision instruction (required)")
	reviseCmd.Flags().StringP("output", "o", "", "Write Markdown to this file instead of stdout")
	reviseCmd.Flags().String("html", "", "Also write a printable HTML page to this file")
	reviseCmd.Flags().Bool("no-save", false, "Do not store the revision in history")
	_ = reviseCmd.MarkFlagRequired("instruction")
}

func runRevise(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	in, _ := cmd.Flags().GetString("in")
	instruction, _ := cmd.Flags().GetString("instruction")
	out, _ := cmd.Flags().GetString("output")
	htmlPath, _ := cmd.Flags().GetString("html")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if (len(args) == 1) == (in != "") {
		return errors.New("give either a module id or --in, not both")
	}

	e, err := openEnv(cmd, "")
	if err != nil {
		return err
	}
	defer e.Close()
	repo := e.store.ModuleRepo()

	var parent *store.ModuleEvent
	var current string
	if len(args) == 1 {
		parent, err = repo.GetModule(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get module: %w", err)
		}
		if parent == nil {
			return fmt.Errorf("module %q not found", args[0])
		}
		current = parent.Content
	} else {
		current, err = readSource(cmd.InOrStdin(), in)
		if err != nil {
			return err
		}
	}

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, "Merevisi modul ajar...")

	mod, err := e.client.Revise(ctx, current, instruction)
	if err != nil {
		return &userError{err: err}
	}

	if !noSave {
		ev, err := repo.AppendModule(ctx, revisedRecord(parent, instruction, *mod))
		if err != nil {
			e.log.Warn("storing revision", zap.Error(err))
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

// revisedRecord is the history entry for a revision. parent is nil when
// the source was a file.
func revisedRecord(parent *store.ModuleEvent, instruction string, mod generation.GeneratedModule) store.ModuleEventData {
	data := store.ModuleEventData{
		Kind:        store.ModuleRevised,
		Title:       mod.Title,
		Instruction: instruction,
		Content:     mod.Content,
	}
	if parent != nil {
		data.ParentUUID = parent.UUID
		data.Subject = parent.Subject
		data.Topic = parent.Topic
		data.GradeLevel = parent.GradeLevel
	}
	return data
}

func readSource(stdin io.Reader, path string) (string, error) {
	var b []byte
	var err error
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
