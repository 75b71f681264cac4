package workflows

import (
	"context"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// Text is the paste body to encrypt.
	Text string

	// Config overrides the configuration on disk when set.
	Config *configs.Config
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Blob is the hex-encoded IV, ciphertext and tag.
	Blob string

	// Bytes is the UTF-8 length of the plaintext.
	Bytes int
}

// Encrypt encrypts a single paste body.
//
// Returns ErrValidation if the text is empty.
// Returns ErrConfiguration if no secret is configured.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	enc := secrets.NewEncryptor(cfg.KeyProvider())
	blob, err := enc.Encrypt(opts.Text)

	record(cfg, audit.Entry{Operation: "encrypt", Bytes: len(opts.Text)}, err)
	if err != nil {
		return nil, err
	}

	return &EncryptResult{Blob: blob, Bytes: len(opts.Text)}, nil
}
