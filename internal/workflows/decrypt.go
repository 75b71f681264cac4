package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Blob is the stored hex blob. Surrounding whitespace is ignored.
	Blob string

	// Config overrides the configuration on disk when set.
	Config *configs.Config
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Text is the recovered paste body.
	Text string
}

// Decrypt verifies and decrypts a single blob.
//
// Returns ErrValidation if the blob is empty, too short or not hex.
// Returns ErrConfiguration if no secret is configured.
// Returns ErrAuthentication if the blob was tampered with or the key is wrong.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	blob := strings.TrimSpace(opts.Blob)

	dec := secrets.NewDecryptor(cfg.KeyProvider())
	text, err := dec.Decrypt(blob)

	record(cfg, audit.Entry{Operation: "decrypt", Bytes: len(blob)}, err)
	if err != nil {
		return nil, err
	}

	return &DecryptResult{Text: text}, nil
}
