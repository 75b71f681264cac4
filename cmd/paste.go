package cmd

import (
	logger "github.com/PolarWolf314/pasteportal/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	PasteCmd = &cobra.Command{
		Use:   "paste",
		Short: "Encrypt and decrypt paste contents",
		Long: `Provides encryption and decryption of paste contents with the configured secret.

The secret is read from PASTEPORTAL_ENCRYPTION_SECRET (or the variable named by
encryption.secret_env), falling back to encryption.secret in the config file.
A 64-character hex secret is used as the key directly; anything else is treated
as a passphrase and stretched with scrypt.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing paste command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	PasteCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	PasteCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	PasteCmd.AddCommand(encryptCmd)
	PasteCmd.AddCommand(decryptCmd)
	PasteCmd.AddCommand(sealCmd)
	PasteCmd.AddCommand(openCmd)
	PasteCmd.AddCommand(keygenCmd)
	PasteCmd.AddCommand(logCmd)
	PasteCmd.AddCommand(doctorCmd)
}

// Helper functions for testing

// GetPasteCmd returns the PasteCmd for testing.
func GetPasteCmd() *cobra.Command {
	return PasteCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetFilesCommandState()
	resetKeygenCommandState()
	resetLogCommandState()
	resetDoctorCommandState()
	resetCobraFlagState(PasteCmd)
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

// resetCobraFlagState marks every flag under root as unchanged so values set
// by one test do not leak into the next.
func resetCobraFlagState(root *cobra.Command) {
	root.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, c := range root.Commands() {
		c.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
