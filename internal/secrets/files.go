package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// PasteExt is the suffix of a sealed paste file.
const PasteExt = ".paste"

// ResolveFiles takes user-provided paths/globs and returns matching files.
// If patterns is empty, every candidate under root is returned.
// forSealing=true finds plain files, forSealing=false finds *.paste files.
func ResolveFiles(patterns []string, root string, forSealing bool) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, root, forSealing)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, root string, forSealing bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(root, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, forSealing)
	}

	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern, pattern, forSealing)
	}

	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
	}

	if forSealing && isPasteFile(absPattern) {
		return nil, fmt.Errorf("%w: %s is already sealed", kerrors.ErrInvalidFileType, pattern)
	}
	if !forSealing && !isPasteFile(absPattern) {
		return nil, fmt.Errorf("%w: %s is not a %s file", kerrors.ErrInvalidFileType, pattern, PasteExt)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern string, forSealing bool) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if isPasteFile(m) != forSealing {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir string, forSealing bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if isPasteFile(path) != forSealing {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func isPasteFile(path string) bool {
	return strings.HasSuffix(filepath.Base(path), PasteExt)
}

// SealFiles encrypts each file and writes the blob to <path>.paste.
// It returns the paths written before any failure.
func SealFiles(enc *Encryptor, inputPaths []string) ([]string, error) {
	var written []string

	for _, inputPath := range inputPaths {
		plaintext, err := os.ReadFile(inputPath)
		if err != nil {
			return written, fmt.Errorf("failed to read %s: %w", inputPath, err)
		}

		blob, err := enc.Encrypt(string(plaintext))
		if err != nil {
			return written, fmt.Errorf("failed to seal %s: %w", inputPath, err)
		}

		outputPath := inputPath + PasteExt
		if err := os.WriteFile(outputPath, []byte(blob+"\n"), 0600); err != nil {
			return written, fmt.Errorf("failed to write to %s: %w", outputPath, err)
		}
		written = append(written, outputPath)
	}

	return written, nil
}

// OpenFiles decrypts each .paste file and writes the plaintext next to it
// without the suffix. Nothing is written for a file that fails to authenticate.
func OpenFiles(dec *Decryptor, inputPaths []string) ([]string, error) {
	var written []string

	for _, inputPath := range inputPaths {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return written, fmt.Errorf("failed to read %s: %w", inputPath, err)
		}

		plaintext, err := dec.Decrypt(strings.TrimSpace(string(data)))
		if err != nil {
			return written, fmt.Errorf("failed to open %s: %w", inputPath, err)
		}

		outputPath := strings.TrimSuffix(inputPath, PasteExt)
		if err := os.WriteFile(outputPath, []byte(plaintext), 0600); err != nil {
			return written, fmt.Errorf("failed to write to %s: %w", outputPath, err)
		}
		written = append(written, outputPath)
	}

	return written, nil
}
