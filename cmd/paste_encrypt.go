package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var encryptRaw bool

func init() {
	encryptCmd.Flags().BoolVar(&encryptRaw, "raw", false, "encrypt stdin exactly as read, including a trailing newline")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypts paste text and prints the hex blob",
	Long: `Encrypts paste text with AES-256-GCM and prints the hex blob
(IV, ciphertext and tag) on stdout.

The text is taken from the first argument, or read from stdin when no
argument is given. A single trailing newline on stdin is dropped unless
--raw is set.

Examples:
  pasteportal paste encrypt "hello world"
  cat notes.txt | pasteportal paste encrypt
  pasteportal paste encrypt --raw < notes.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		text, err := readInput(cmd, args)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read paste text: %v", err)
		}
		if len(args) == 0 && !encryptRaw {
			text = trimTrailingNewline(text)
		}
		Logger.Debugf("Encrypting %d bytes", len(text))

		result, err := workflows.Encrypt(context.Background(), workflows.EncryptOptions{Text: text})
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			return pasteFailure(err)
		}

		Logger.Infof("Encrypt command completed successfully (%d bytes in, %d hex chars out)", result.Bytes, len(result.Blob))
		fmt.Fprintln(cmd.OutOrStdout(), result.Blob)
		return nil
	},
}
