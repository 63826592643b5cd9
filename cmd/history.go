package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/export"
	"github.com/abhisek/modulajar/internal/generation"
	"github.com/abhisek/modulajar/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored lesson plans",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent modules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		mods, err := s.ModuleRepo().ListModules(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list modules: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(mods) == 0 {
			fmt.Fprintln(w, "Belum ada modul tersimpan.")
			return nil
		}

		fmt.Fprintf(w, "%-8s  %-16s  %-8s  %-8s  %s\n", "ID", "Waktu", "Jenis", "Induk", "Judul")
		fmt.Fprintln(w, strings.Repeat("─", 90))
		for _, m := range mods {
			fmt.Fprintf(w, "%-8s  %-16s  %-8s  %-8s  %s\n",
				shortID(m.UUID),
				m.Timestamp.Local().Format("2006-01-02 15:04"),
				m.Kind,
				shortID(m.ParentUUID),
				truncate(m.Title, 50),
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Print a stored module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		m, err := getModule(cmd, s, args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if !raw {
			fmt.Fprintf(w, "ID:        %s\n", m.UUID)
			fmt.Fprintf(w, "Waktu:     %s\n", m.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "Judul:     %s\n", m.Title)
			if m.Subject != "" {
				fmt.Fprintf(w, "Mapel:     %s\n", m.Subject)
				fmt.Fprintf(w, "Topik:     %s\n", m.Topic)
				fmt.Fprintf(w, "Fase:      %s\n", m.GradeLevel)
			}
			if m.ParentUUID != "" {
				fmt.Fprintf(w, "Revisi:    %s\n", m.ParentUUID)
				fmt.Fprintf(w, "Instruksi: %s\n", m.Instruction)
			}
			fmt.Fprintln(w, strings.Repeat("─", 60))
		}
		return writeOutput(w, "", m.Content)
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a stored module as a printable HTML page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		m, err := getModule(cmd, s, args[0])
		if err != nil {
			return err
		}

		if out == "" {
			out = export.Filename(m.Title) + "-" + shortID(m.UUID) + ".html"
		}
		mod := generation.GeneratedModule{Title: m.Title, Content: m.Content}
		if err := export.WriteHTMLFile(out, mod); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func getModule(cmd *cobra.Command, s *store.Store, id string) (*store.ModuleEvent, error) {
	m, err := s.ModuleRepo().GetModule(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("get module: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("module %q not found", id)
	}
	return m, nil
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of modules to show")
	historyViewCmd.Flags().Bool("raw", false, "Print only the Markdown")
	historyExportCmd.Flags().StringP("output", "o", "", "HTML file to write (default <title>-<id>.html)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyExportCmd)
}
