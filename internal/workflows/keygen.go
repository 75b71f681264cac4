package workflows

import (
	"context"

	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// KeygenResult contains a freshly generated secret.
type KeygenResult struct {
	// Secret is 64 hex characters, used directly as the AES-256 key.
	Secret string
}

// Keygen generates a random secret. Nothing is written to disk.
func Keygen(ctx context.Context) (*KeygenResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	secret, err := secrets.GenerateSecret()
	if err != nil {
		return nil, err
	}

	return &KeygenResult{Secret: secret}, nil
}
