package configs

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// DefaultSecretEnv is the environment variable read for the secret unless
// encryption.secret_env names another.
const DefaultSecretEnv = "PASTEPORTAL_ENCRYPTION_SECRET"

type Config struct {
	Encryption EncryptionConfig `toml:"encryption" json:"encryption"`
	Audit      AuditConfig      `toml:"audit" json:"audit"`
}

type EncryptionConfig struct {
	Secret    string `toml:"secret" json:"secret"`
	SecretEnv string `toml:"secret_env" json:"secret_env"`
	Salt      string `toml:"salt,omitempty" json:"salt,omitempty"`
}

type AuditConfig struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path,omitempty" json:"path,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Encryption: EncryptionConfig{SecretEnv: DefaultSecretEnv},
		Audit:      AuditConfig{Enabled: true},
	}
}

// Load loads the configuration from PortalSettings.ConfigPath. A missing
// file is not an error: the defaults are returned so the secret can come
// from the environment alone.
func Load() (*Config, error) {
	return LoadFrom(PortalSettings.ConfigPath)
}

// LoadFrom loads the configuration at path over the defaults.
func LoadFrom(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Encryption.SecretEnv == "" {
		config.Encryption.SecretEnv = DefaultSecretEnv
	}

	return config, nil
}

// Save writes the configuration to PortalSettings.ConfigPath.
func Save(config *Config) error {
	return SaveTo(PortalSettings.ConfigPath, config)
}

// SaveTo writes the configuration to path.
func SaveTo(path string, config *Config) error {
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Exists reports whether a config file is present at PortalSettings.ConfigPath.
func Exists() bool {
	_, err := os.Stat(PortalSettings.ConfigPath)
	return err == nil
}

// SecretSource returns the source of the encryption secret. A non-empty
// environment variable wins over the secret stored in the file.
func (c *Config) SecretSource() secrets.SecretSource {
	envName := c.Encryption.SecretEnv
	if envName == "" {
		envName = DefaultSecretEnv
	}
	fileSecret := c.Encryption.Secret

	return func() (string, error) {
		if value := os.Getenv(envName); value != "" {
			return value, nil
		}
		if fileSecret != "" {
			return fileSecret, nil
		}
		return "", fmt.Errorf("%w: set %s or encryption.secret in %s", secrets.ErrNoSecret, envName, PortalSettings.ConfigPath)
	}
}

// KeyProvider builds the KeyProvider for this configuration.
func (c *Config) KeyProvider(opts ...secrets.KeyProviderOption) *secrets.KeyProvider {
	opts = append([]secrets.KeyProviderOption{secrets.WithSalt(c.Encryption.Salt)}, opts...)
	return secrets.NewKeyProvider(c.SecretSource(), opts...)
}

// AuditLogPath returns the audit log location, or "" when auditing is off.
func (c *Config) AuditLogPath() string {
	if !c.Audit.Enabled {
		return ""
	}
	if c.Audit.Path != "" {
		return c.Audit.Path
	}
	return filepath.Join(PortalSettings.ConfigDir, "audit.jsonl")
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.Encryption.Secret != "" {
		out.Encryption.Secret = "[redacted]"
	}
	return out
}

// RequireFile returns ErrConfigNotFound when no config file exists.
func RequireFile() error {
	if !Exists() {
		return fmt.Errorf("%w: %s", kerrors.ErrConfigNotFound, PortalSettings.ConfigPath)
	}
	return nil
}
