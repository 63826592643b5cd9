package cmd

import (
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the lesson plan form",
	Long: `Open the interactive lesson plan form.

With -f the form starts pre-filled from a request file, so a saved request
can be tweaked and generated again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		return runApp(cmd, file)
	},
}

func init() {
	formCmd.Flags().StringP("file", "f", "", "Request file (YAML or JSON) to pre-fill the form")
	formCmd.Flags().Bool("no-intro", false, "Skip the welcome animation")
	rootCmd.Flags().Bool("no-intro", false, "Skip the welcome animation")
}
