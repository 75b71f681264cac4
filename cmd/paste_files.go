package cmd

import (
	"context"
	"os"

	"github.com/PolarWolf314/pasteportal/internal/secrets"
	"github.com/PolarWolf314/pasteportal/internal/ui"
	"github.com/PolarWolf314/pasteportal/internal/utils"
	"github.com/PolarWolf314/pasteportal/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	sealDryRun bool
	openDryRun bool
)

func init() {
	sealCmd.Flags().BoolVar(&sealDryRun, "dry-run", false, "list the files that would be sealed without writing anything")
	openCmd.Flags().BoolVar(&openDryRun, "dry-run", false, "list the files that would be opened without writing anything")
}

// resetFilesCommandState resets the seal and open commands' global state for testing.
func resetFilesCommandState() {
	sealDryRun = false
	openDryRun = false
}

var sealCmd = &cobra.Command{
	Use:   "seal [paths...]",
	Short: "Encrypts text files into .paste files",
	Long: `Encrypts each matching file and writes the blob to <file>.paste.

Arguments may be files, directories or glob patterns (including **).
With no arguments every non-.paste file under the current directory is
sealed. Hidden directories are skipped.

Examples:
  pasteportal paste seal notes.txt
  pasteportal paste seal "drafts/**/*.md"
  pasteportal paste seal --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting seal command")
		return runFilesCommand("Sealing files...", args, sealDryRun, workflows.Seal, "sealed", "created")
	},
}

var openCmd = &cobra.Command{
	Use:   "open [paths...]",
	Short: "Decrypts .paste files back into text files",
	Long: `Verifies and decrypts each matching .paste file, writing the text next to it
without the .paste suffix.

Arguments may be files, directories or glob patterns (including **).
With no arguments every .paste file under the current directory is opened.
A file that fails verification is reported and nothing is written for it.

Examples:
  pasteportal paste open notes.txt.paste
  pasteportal paste open drafts/
  pasteportal paste open --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting open command")
		return runFilesCommand("Opening files...", args, openDryRun, workflows.Open, "opened", "restored")
	},
}

type filesWorkflow func(context.Context, workflows.FilesOptions) (*workflows.FilesResult, error)

func runFilesCommand(message string, args []string, dryRun bool, run filesWorkflow, verb, noun string) error {
	spinner, cleanup := startSpinner(message, verbose, debug)
	defer cleanup()

	root, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
	}
	Logger.Debugf("Resolving %v relative to %s", args, root)

	result, err := run(context.Background(), workflows.FilesOptions{
		Patterns: args,
		Root:     root,
		DryRun:   dryRun,
	})
	if err != nil {
		Logger.Errorf("Failed to process files: %v", err)
		spinner.FinalMSG = formatPasteError(err)
		if result != nil && len(result.OutputFiles) > 0 {
			spinner.FinalMSG += "\nFiles " + noun + " before the failure: " + utils.FormatPaths(result.OutputFiles)
		}
		return &cliError{msg: "", err: err}
	}

	if len(result.SourceFiles) > 20 {
		Logger.Warnf("Processed %d files", len(result.SourceFiles))
	}

	if result.DryRun {
		spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " Would have " + verb + " " +
			ui.Highlight.Sprintf("%d", len(result.SourceFiles)) + " file(s):" +
			utils.FormatPaths(result.OutputFiles) +
			ui.Arrow() + " No changes made. Run without " + ui.Flag.Sprint("--dry-run") + " to apply"
		return nil
	}

	Logger.Infof("Command completed successfully. %d file(s) %s", len(result.OutputFiles), verb)

	msg := ui.Check() + " Files " + verb + " successfully!\n" +
		"The following files were " + noun + ": " + utils.FormatPaths(result.OutputFiles)
	if verb == "sealed" {
		msg += ui.Arrow() + " Only the " + ui.Path.Sprint(secrets.PasteExt) + " files are safe to share"
	}
	spinner.FinalMSG = msg
	return nil
}
