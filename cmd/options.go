package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/lessonplan"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Print the option catalogs used in request files",
	Long: `Print the values accepted for grade level, semester, method, identity
type and the DPL, KBC and SES checklists.

With --template a request file pre-filled with defaults is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if tmpl, _ := cmd.Flags().GetBool("template"); tmpl {
			return lessonplan.Encode(w, lessonplan.NewRequest(time.Now()))
		}
		printCatalogs(w)
		return nil
	},
}

func init() {
	optionsCmd.Flags().Bool("template", false, "Print a request file template")
}

type catalog struct {
	key     string
	title   string
	options []string
}

func catalogs() []catalog {
	ids := make([]string, 0, len(lessonplan.IDTypeOptions))
	for _, o := range lessonplan.IDTypeOptions {
		if o == "" {
			o = `"" (tanpa ID)`
		}
		ids = append(ids, o)
	}
	return []catalog{
		{string(lessonplan.FieldGradeLevel), "Fase / Kelas", lessonplan.GradeLevelOptions},
		{string(lessonplan.FieldSemester), "Semester", lessonplan.SemesterOptions},
		{string(lessonplan.FieldMethod), "Model Pembelajaran", lessonplan.MethodOptions},
		{string(lessonplan.FieldTeacherIDType) + ", " + string(lessonplan.FieldPrincipalIDType), "Jenis ID", ids},
		{string(lessonplan.SetDPL), "Dimensi Profil Lulusan", lessonplan.OptionsFor(lessonplan.SetDPL)},
		{string(lessonplan.SetKBCTheme), "Tema KBC", lessonplan.OptionsFor(lessonplan.SetKBCTheme)},
		{string(lessonplan.SetSESPriority), "Prioritas SES", lessonplan.OptionsFor(lessonplan.SetSESPriority)},
	}
}

func printCatalogs(w io.Writer) {
	for i, c := range catalogs() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", c.title, c.key)
		for _, o := range c.options {
			fmt.Fprintf(w, "  - %s\n", o)
		}
	}
}
