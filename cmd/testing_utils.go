// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for setting up test environments
// and capturing output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	logger "github.com/PolarWolf314/pasteportal/internal/logging"
	"github.com/spf13/cobra"
)

// setupTestEnvironment moves into a fresh temp directory, points the config
// at a second temp directory and sets the secret env var. It returns the
// working directory.
func setupTestEnvironment(t *testing.T, secret string) string {
	t.Helper()

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get original working directory: %v", err)
	}
	originalSettings := configs.PortalSettings

	workDir := t.TempDir()
	configDir := t.TempDir()

	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	configs.PortalSettings = &configs.Settings{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "config.toml"),
	}
	t.Setenv(configs.DefaultSecretEnv, secret)

	ResetGlobalState()
	ResetConfigState()

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.PortalSettings = originalSettings
		ResetGlobalState()
		ResetConfigState()
	})

	return workDir
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	for _, r := range []io.Reader{stdoutReader, stderrReader} {
		go func(r io.Reader) {
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, r); err != nil {
				log.Fatalf("Failed to run copy command: %s", err)
			}
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-outputChan + <-outputChan, err
}

// createTestCLI creates a complete CLI instance running args, with command
// output written to stdout.
func createTestCLI(stdout io.Writer, args ...string) *cobra.Command {
	Logger = logger.Logger{}
	ConfigLogger = logger.Logger{}

	rootCmd := &cobra.Command{
		Use:           "pasteportal",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(PasteCmd)
	rootCmd.AddCommand(ConfigCmd)

	if stdout != nil {
		rootCmd.SetOut(stdout)
	}
	rootCmd.SetArgs(args)

	return rootCmd
}

// runCLI executes args and returns what the command wrote to its output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli := createTestCLI(&out, args...)
	if stdin != "" {
		cli.SetIn(bytes.NewBufferString(stdin))
	}

	// Spinner final messages go straight to stdout.
	captured, err := captureOutput(cli.Execute)
	return out.String() + captured, err
}
