package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on the encryption setup",
	Long: `Runs a series of health checks on the encryption setup and reports issues.

The doctor command checks:
  - Config file presence and permissions
  - Secret availability and strength
  - Salt choice
  - An encrypt/decrypt round trip with the configured key

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	result, err := workflows.Doctor(context.Background(), workflows.DoctorOptions{})
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to run health checks: %v", err)
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
	}

	out := cmd.OutOrStdout()
	if doctorJSONOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		printDoctorResults(out, result)
	}

	if result.Summary.Errors > 0 {
		doctorExitFunc(2)
	} else if result.Summary.Warnings > 0 {
		doctorExitFunc(1)
	}
	return nil
}

// printDoctorResults prints the doctor results in a human-readable format.
func printDoctorResults(w io.Writer, result *workflows.DoctorResult) {
	fmt.Fprintln(w, "Running health checks...")
	fmt.Fprintln(w)

	for _, check := range result.Checks {
		var statusIcon string
		switch check.Status {
		case workflows.CheckPass:
			statusIcon = ui.Check()
		case workflows.CheckWarning:
			statusIcon = ui.Caution()
		case workflows.CheckError:
			statusIcon = ui.Cross()
		}
		fmt.Fprintf(w, "%s %s: %s\n", statusIcon, check.Name, check.Message)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: %d passed", result.Summary.Passed)
	if result.Summary.Warnings > 0 {
		fmt.Fprintf(w, ", %s", ui.Warning.Sprint(fmt.Sprintf("%d warning(s)", result.Summary.Warnings)))
	}
	if result.Summary.Errors > 0 {
		fmt.Fprintf(w, ", %s", ui.Error.Sprint(fmt.Sprintf("%d error(s)", result.Summary.Errors)))
	}
	fmt.Fprintln(w)

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, suggestion := range result.Suggestions {
			fmt.Fprintf(w, "  %s %s\n", ui.Arrow(), suggestion)
		}
	}
}
