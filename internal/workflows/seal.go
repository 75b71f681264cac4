package workflows

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// FilesOptions configures the seal and open workflows.
type FilesOptions struct {
	// Patterns are paths, directories or globs. Empty means every
	// candidate under Root.
	Patterns []string

	// Root resolves relative patterns. Defaults to the working directory.
	Root string

	// DryRun lists the files that would be written without touching disk.
	DryRun bool

	// Config overrides the configuration on disk when set.
	Config *configs.Config
}

// FilesResult contains the outcome of a seal or open operation.
type FilesResult struct {
	// SourceFiles lists the files that were read.
	SourceFiles []string

	// OutputFiles lists the files that were (or would be) written.
	OutputFiles []string

	// DryRun indicates whether this was a dry-run (no files modified).
	DryRun bool
}

// Seal encrypts plain files into <name>.paste files.
//
// Returns ErrNoFilesFound if no files match.
// Returns ErrValidation if a file is empty.
// Returns ErrConfiguration if no secret is configured.
func Seal(ctx context.Context, opts FilesOptions) (*FilesResult, error) {
	return runFiles(ctx, "seal", true, opts)
}

// Open decrypts <name>.paste files back to <name>.
//
// Returns ErrNoFilesFound if no files match.
// Returns ErrAuthentication if a file was tampered with or the key is wrong;
// nothing is written for that file.
func Open(ctx context.Context, opts FilesOptions) (*FilesResult, error) {
	return runFiles(ctx, "open", false, opts)
}

func runFiles(ctx context.Context, op string, sealing bool, opts FilesOptions) (*FilesResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	root := opts.Root
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	files, err := secrets.ResolveFiles(opts.Patterns, root, sealing)
	if err != nil {
		return nil, fmt.Errorf("resolving file patterns: %w", err)
	}

	result := &FilesResult{
		SourceFiles: files,
		DryRun:      opts.DryRun,
	}

	if opts.DryRun {
		result.OutputFiles = make([]string, len(files))
		for i, f := range files {
			if sealing {
				result.OutputFiles[i] = f + secrets.PasteExt
			} else {
				result.OutputFiles[i] = strings.TrimSuffix(f, secrets.PasteExt)
			}
		}
		record(cfg, audit.Entry{Operation: op, Files: result.OutputFiles, DryRun: true}, nil)
		return result, nil
	}

	keys := cfg.KeyProvider()
	var written []string
	if sealing {
		written, err = secrets.SealFiles(secrets.NewEncryptor(keys), files)
	} else {
		written, err = secrets.OpenFiles(secrets.NewDecryptor(keys), files)
	}
	result.OutputFiles = written

	record(cfg, audit.Entry{Operation: op, Files: written}, err)
	if err != nil {
		return result, err
	}

	return result, nil
}
