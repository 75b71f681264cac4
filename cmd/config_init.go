package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/utils"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	configInitPassphrase bool
	configInitSalt       string
	configInitForce      bool

	// readPassphrase prompts for the passphrase. Can be overridden for testing.
	readPassphrase utils.PassphraseReader = utils.ReadPassphrase
)

func init() {
	configInitCmd.Flags().BoolVar(&configInitPassphrase, "passphrase", false, "prompt for a passphrase instead of generating a random secret")
	configInitCmd.Flags().StringVar(&configInitSalt, "salt", "", "explicit scrypt salt (pastes encrypted under another salt will not decrypt)")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitPassphrase = false
	configInitSalt = ""
	configInitForce = false
	readPassphrase = utils.ReadPassphrase
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with an encryption secret",
	Long: `Writes config.toml with an encryption secret, readable only by you.

By default a random 256-bit hex secret is generated. With --passphrase you
are prompted for a passphrase instead, and the key is derived from it with
scrypt.

The PASTEPORTAL_ENCRYPTION_SECRET environment variable, when set, still takes
precedence over the secret in the file.

Examples:
  pasteportal config init
  pasteportal config init --passphrase
  pasteportal config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")
		ConfigLogger.Debugf("Flags: passphrase=%t, salt set=%t, force=%t", configInitPassphrase, configInitSalt != "", configInitForce)

		opts := workflows.InitOptions{
			Salt:  configInitSalt,
			Force: configInitForce,
		}

		if configInitPassphrase {
			passphrase, err := utils.ReadConfirmedPassphrase(readPassphrase)
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to read passphrase: %v", err)
			}
			opts.Passphrase = passphrase
		}

		out := cmd.OutOrStdout()

		result, err := workflows.Init(context.Background(), opts)
		if err != nil {
			if errors.Is(err, kerrors.ErrConfigExists) {
				fmt.Fprintln(out, ui.Cross()+" A config file already exists at "+ui.Path.Sprint(configs.PortalSettings.ConfigPath))
				fmt.Fprintln(out, ui.Hint("Run with "+ui.Flag.Sprint("--force")+" to overwrite it"))
				return nil
			}
			return ConfigLogger.ErrorfAndReturn("Failed to write config: %v", err)
		}

		ConfigLogger.Infof("Config written to %s", result.ConfigPath)

		fmt.Fprintln(out, ui.Check()+" Configuration written to "+ui.Path.Sprint(result.ConfigPath))
		if result.GeneratedSecret {
			fmt.Fprintln(out, ui.Arrow()+" A random 256-bit secret was generated")
		} else {
			fmt.Fprintln(out, ui.Arrow()+" Keys will be derived from your passphrase with scrypt")
		}
		if configInitSalt != "" {
			fmt.Fprintln(out, ui.Caution()+" A custom salt is set; pastes encrypted with the default salt will not decrypt")
		}
		fmt.Fprintln(out, ui.Caution()+" Losing this secret makes every existing paste unreadable")
		return nil
	},
}
