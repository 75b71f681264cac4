package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logOutcome   string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logOutcome, "outcome", "", "filter by outcome (success or failure)")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries on or after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries on or before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logOutcome = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of paste operations.

Entries record the operation, its outcome, input size and error kind.
They never contain paste text, blobs or secrets.

Examples:
  pasteportal paste log                              # View full log
  pasteportal paste log -n 10                        # First 10 entries
  pasteportal paste log --reverse                    # Most recent first
  pasteportal paste log --operation encrypt,decrypt  # Filter by operation
  pasteportal paste log --outcome failure            # Only failures
  pasteportal paste log --since 2026-01-01           # Filter by date
  pasteportal paste log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	opts := workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		Outcome:    logOutcome,
		Since:      logSince,
		Until:      logUntil,
	}

	out := cmd.OutOrStdout()

	result, err := workflows.Log(context.Background(), opts)
	if err != nil {
		fmt.Fprintln(out, formatLogError(err))
		if isLogUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Fprintln(out, "No audit log entries found.")
		} else {
			fmt.Fprintln(out, "No audit log entries found matching the filters.")
		}
		return nil
	}

	switch {
	case logJSON:
		return outputLogJSON(out, result.Entries)
	case logOneline:
		outputLogOneline(out, result.Entries)
	default:
		outputLogDefault(out, result.Entries)
	}
	return nil
}

// formatLogError formats a log error for display to the user.
func formatLogError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoAuditLog):
		return ui.Arrow() + " No audit log found. Operations are logged after running any paste command."
	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Cross() + " " + err.Error()
	default:
		return ui.Cross() + " Failed to read audit log: " + err.Error()
	}
}

// isLogUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isLogUnexpectedError(err error) bool {
	return !errors.Is(err, kerrors.ErrNoAuditLog) && !errors.Is(err, kerrors.ErrInvalidDateFormat)
}

func outputLogJSON(w io.Writer, entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputLogOneline(w io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s %s %s\n", logDate(e.Timestamp), e.Operation, e.Outcome, logDetails(e))
	}
}

func outputLogDefault(w io.Writer, entries []audit.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%-19s  %-8s  %-8s  %s\n", logDateTime(e.Timestamp), e.Operation, e.Outcome, logDetails(e))
	}
}

// logDate returns the YYYY-MM-DD part of an audit timestamp.
func logDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

// logDateTime returns "YYYY-MM-DD HH:MM:SS" from an audit timestamp.
func logDateTime(ts string) string {
	if len(ts) >= 19 {
		return ts[:10] + " " + ts[11:19]
	}
	return ts
}

func logDetails(e audit.Entry) string {
	var parts []string
	if e.Bytes > 0 {
		parts = append(parts, fmt.Sprintf("%d bytes", e.Bytes))
	}
	if n := len(e.Files); n > 0 {
		parts = append(parts, fmt.Sprintf("%d file(s)", n))
	}
	if e.DryRun {
		parts = append(parts, "(dry-run)")
	}
	if e.ErrorKind != "" {
		parts = append(parts, e.ErrorKind+" error")
	}
	return strings.Join(parts, ", ")
}
