package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/llm"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "modulajar", version)
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			cfg := llm.ConfigFromEnv()
			fmt.Fprintf(w, "provider: %s\nmodel:    %s\nbuilt-in key: %v\n", cfg.Provider, cfg.ModelID(), buildAPIKey != "")
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print the model configuration")
}
