package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/modulajar/internal/credential"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the personal Gemini API key",
	Long: `Manage the personal API key stored on this machine.

A stored key takes precedence over the built-in key and over the
MODULAJAR_API_KEY and GEMINI_API_KEY environment variables.`,
}

var apikeySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store a personal API key (reads stdin when no key is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			sc := bufio.NewScanner(cmd.InOrStdin())
			if sc.Scan() {
				key = sc.Text()
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read key: %w", err)
			}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("API key is empty")
		}

		s, err := openOverrides(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Set(key); err != nil {
			return fmt.Errorf("store key: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "API Key disimpan: %s\n", credential.Mask(key))
		return nil
	},
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openOverrides(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(); err != nil {
			return fmt.Errorf("clear key: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "API Key pribadi dihapus.")
		return nil
	},
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which API key is in effect (masked)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openOverrides(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		w := cmd.OutOrStdout()
		stored, err := s.Get()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		key, err := credential.Default(s, buildAPIKey)(cmd.Context())
		switch {
		case errors.Is(err, credential.ErrMissing):
			fmt.Fprintln(w, "API Key belum diatur.")
			return nil
		case err != nil:
			return err
		}

		source := "bawaan aplikasi"
		switch {
		case strings.TrimSpace(stored) != "":
			source = "tersimpan (modulajar apikey set)"
		case strings.TrimSpace(buildAPIKey) == "":
			source = "variabel lingkungan"
		}
		fmt.Fprintf(w, "API Key: %s\nSumber:  %s\n", credential.Mask(key), source)
		return nil
	},
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyClearCmd)
	apikeyCmd.AddCommand(apikeyShowCmd)
}
