package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/pasteportal/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pasteportal",
	Short: "PastePortal - encrypt paste contents for storage and sharing.",
	Long: `PastePortal encrypts paste contents with AES-256-GCM before they are stored,
and verifies and decrypts them when they are read back.

Usage:
  pasteportal <command> [flags]

Available Commands:
  paste      Encrypt, decrypt, seal and open pastes
  config     Manage the encryption configuration

Run 'pasteportal help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to PastePortal! Run 'pasteportal --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.PasteCmd)
	rootCmd.AddCommand(cmd.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(1)
	}
}
