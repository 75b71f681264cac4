package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [blob]",
	Short: "Verifies and decrypts a hex blob back into paste text",
	Long: `Verifies a hex blob produced by 'pasteportal paste encrypt' and prints the
recovered text on stdout.

The blob is taken from the first argument, or read from stdin when no
argument is given. Surrounding whitespace is ignored. A blob that was
modified, or was encrypted with a different secret, is rejected and
nothing is printed.

Examples:
  pasteportal paste decrypt 3f9a...
  pasteportal paste decrypt < paste.blob`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		blob, err := readInput(cmd, args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read blob: %v", err)
		}
		Logger.Debugf("Decrypting blob %s", ui.Blob(strings.TrimSpace(blob)))

		result, err := workflows.Decrypt(context.Background(), workflows.DecryptOptions{Blob: blob})
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			return pasteFailure(err)
		}

		Logger.Infof("Decrypt command completed successfully (%d bytes)", len(result.Text))
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}
