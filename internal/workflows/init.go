package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// InitOptions configures the config init workflow.
type InitOptions struct {
	// Passphrase is stored as the secret when set. Otherwise a random
	// 64-hex secret is generated.
	Passphrase string

	// Salt is an explicit scrypt salt. Empty keeps the default.
	Salt string

	// Force overwrites an existing config file.
	Force bool
}

// InitResult contains the outcome of a config init operation.
type InitResult struct {
	// ConfigPath is where the configuration was written.
	ConfigPath string

	// GeneratedSecret is true when a random secret was generated.
	GeneratedSecret bool
}

// Init writes a new config file with an encryption secret.
//
// Returns ErrConfigExists if a config file exists and Force is false.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if configs.Exists() && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigExists, configs.PortalSettings.ConfigPath)
	}

	result := &InitResult{ConfigPath: configs.PortalSettings.ConfigPath}

	secret := opts.Passphrase
	if secret == "" {
		generated, err := secrets.GenerateSecret()
		if err != nil {
			return nil, err
		}
		secret = generated
		result.GeneratedSecret = true
	}

	cfg := configs.Default()
	cfg.Encryption.Secret = secret
	cfg.Encryption.Salt = opts.Salt

	if err := configs.Save(cfg); err != nil {
		return nil, err
	}

	return result, nil
}
