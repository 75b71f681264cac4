package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	quiet := !verbose && !debugFlag
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// cliError carries a user-facing message while keeping the underlying error
// reachable through errors.Is.
type cliError struct {
	msg string
	err error
}

func (e *cliError) Error() string { return e.msg }
func (e *cliError) Unwrap() error { return e.err }

// formatPasteError renders err for the terminal with a hint for its kind.
func formatPasteError(err error) string {
	msg := ui.Cross() + " " + err.Error()

	switch {
	case errors.Is(err, kerrors.ErrConfiguration):
		msg += "\n" + ui.Hint("Run "+ui.Code.Sprint("pasteportal paste keygen")+
			" and export the result as "+ui.Highlight.Sprint(configs.DefaultSecretEnv)+
			", or run "+ui.Code.Sprint("pasteportal config init"))
	case errors.Is(err, kerrors.ErrAuthentication):
		msg += "\n" + ui.Hint("The paste was modified or was encrypted with a different secret")
	case errors.Is(err, kerrors.ErrNoFilesFound):
		msg += "\n" + ui.Hint("Pass a file, directory or glob pattern")
	}

	return msg
}

// pasteFailure wraps err for display and exit status.
func pasteFailure(err error) error {
	return &cliError{msg: formatPasteError(err), err: err}
}

// readInput returns args[0] when given, otherwise everything piped on stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	read := utils.ReadAll
	if in == os.Stdin {
		read = utils.ReadStdin
	}

	data, err := read(in)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// trimTrailingNewline drops one trailing line break, as added by echo or a
// heredoc. Other whitespace is part of the paste.
func trimTrailingNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
