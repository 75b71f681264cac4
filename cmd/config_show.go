package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long: `Displays the effective pasteportal configuration with the secret redacted.

Examples:
  pasteportal config show
  pasteportal config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")
		ConfigLogger.Debugf("Loading config from %s", configs.PortalSettings.ConfigPath)

		config, err := configs.Load()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to load config: %v", err)
		}
		redacted := config.Redacted()

		out := cmd.OutOrStdout()
		if configShowJSON {
			output, err := json.MarshalIndent(redacted, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		outputConfigText(out, &redacted)
		return nil
	},
}

// outputConfigText outputs the config in human-readable format.
func outputConfigText(w io.Writer, config *configs.Config) {
	source := configs.PortalSettings.ConfigPath
	if !configs.Exists() {
		source += " (not found, using defaults)"
	}
	fmt.Fprintln(w, ui.Info.Sprint("Configuration")+" ("+source+"):")
	fmt.Fprintln(w)

	secretEnv := config.Encryption.SecretEnv
	envState := ui.Muted.Sprint("unset")
	if os.Getenv(secretEnv) != "" {
		envState = ui.Success.Sprint("set")
	}

	fileSecret := ui.Muted.Sprint("none")
	if config.Encryption.Secret != "" {
		fileSecret = config.Encryption.Secret
	}

	salt := ui.Muted.Sprint("built-in")
	if config.Encryption.Salt != "" {
		salt = config.Encryption.Salt
	}

	fmt.Fprintf(w, "  %-14s %s (%s)\n", "Secret env:", ui.Highlight.Sprint(secretEnv), envState)
	fmt.Fprintf(w, "  %-14s %s\n", "File secret:", fileSecret)
	fmt.Fprintf(w, "  %-14s %s\n", "Salt:", salt)

	audit := ui.Muted.Sprint("disabled")
	if path := config.AuditLogPath(); path != "" {
		audit = ui.Path.Sprint(path)
	}
	fmt.Fprintf(w, "  %-14s %s\n", "Audit log:", audit)
}
