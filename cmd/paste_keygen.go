package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var keygenExport bool

func init() {
	keygenCmd.Flags().BoolVar(&keygenExport, "export", false, "print a shell export line instead of the bare secret")
}

// resetKeygenCommandState resets the keygen command's global state for testing.
func resetKeygenCommandState() {
	keygenExport = false
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generates a random 256-bit secret",
	Long: `Generates a random 256-bit secret as 64 hex characters.

A hex secret of this form is used as the AES key directly, skipping the
passphrase derivation.

Examples:
  pasteportal paste keygen
  eval "$(pasteportal paste keygen --export)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keygen command")

		result, err := workflows.Keygen(context.Background())
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to generate secret: %v", err)
		}

		if keygenExport {
			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", configs.DefaultSecretEnv, result.Secret)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Secret)
		return nil
	},
}
