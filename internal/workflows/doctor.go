package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/PolarWolf314/pasteportal/internal/configs"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks      []CheckResult `json:"checks"`
	Summary     DoctorSummary `json:"summary"`
	Suggestions []string      `json:"suggestions,omitempty"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct {
	// Config overrides the configuration on disk when set.
	Config *configs.Config
}

// Doctor runs health checks on the encryption setup.
//
// The doctor workflow checks:
//   - Config file presence and permissions
//   - Secret availability and strength
//   - Salt choice
//   - An encrypt/decrypt self-test with the configured key
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	checks := []func(*configs.Config) CheckResult{
		checkConfigFile,
		checkConfigPermissions,
		checkSecret,
		checkSalt,
		checkSelfTest,
	}

	var results []CheckResult
	for _, check := range checks {
		results = append(results, check(cfg))
	}

	summary := DoctorSummary{}
	var suggestions []string
	for _, r := range results {
		switch r.Status {
		case CheckPass:
			summary.Passed++
		case CheckWarning:
			summary.Warnings++
		case CheckError:
			summary.Errors++
		}
		if r.Suggestion != "" {
			suggestions = append(suggestions, r.Suggestion)
		}
	}

	return &DoctorResult{
		Checks:      results,
		Summary:     summary,
		Suggestions: suggestions,
	}, nil
}

// HasErrors returns true if any check failed.
func (r *DoctorResult) HasErrors() bool {
	return r.Summary.Errors > 0
}

func checkConfigFile(cfg *configs.Config) CheckResult {
	result := CheckResult{Name: "Config file"}
	if !configs.Exists() {
		result.Status = CheckWarning
		result.Message = fmt.Sprintf("No config file at %s", configs.PortalSettings.ConfigPath)
		result.Suggestion = "Run 'pasteportal config init' or set " + cfg.Encryption.SecretEnv
		return result
	}
	result.Status = CheckPass
	result.Message = "Config file found at " + configs.PortalSettings.ConfigPath
	return result
}

func checkConfigPermissions(cfg *configs.Config) CheckResult {
	result := CheckResult{Name: "Config permissions"}

	info, err := os.Stat(configs.PortalSettings.ConfigPath)
	if err != nil || runtime.GOOS == "windows" || cfg.Encryption.Secret == "" {
		result.Status = CheckPass
		result.Message = "No secret stored on disk"
		return result
	}

	if info.Mode().Perm()&0077 != 0 {
		result.Status = CheckWarning
		result.Message = fmt.Sprintf("Config file holds the secret but has permissions %o", info.Mode().Perm())
		result.Suggestion = "Run 'chmod 600 " + filepath.Clean(configs.PortalSettings.ConfigPath) + "'"
		return result
	}

	result.Status = CheckPass
	result.Message = "Config file is only readable by its owner"
	return result
}

func checkSecret(cfg *configs.Config) CheckResult {
	result := CheckResult{Name: "Secret"}

	secret, err := cfg.SecretSource()()
	if err != nil {
		result.Status = CheckError
		result.Message = err.Error()
		result.Suggestion = "Run 'pasteportal paste keygen' and export the result as " + cfg.Encryption.SecretEnv
		return result
	}

	if len(secret) == secrets.KeySize*2 && isHex(secret) {
		result.Status = CheckPass
		result.Message = "Secret is a 256-bit hex key"
		return result
	}

	result.Status = CheckWarning
	result.Message = "Secret is a passphrase; the key is derived with scrypt"
	result.Suggestion = "Prefer a random key from 'pasteportal paste keygen' for new deployments"
	return result
}

func checkSalt(cfg *configs.Config) CheckResult {
	result := CheckResult{Name: "Salt", Status: CheckPass}
	if cfg.Encryption.Salt == "" {
		result.Message = "Using the built-in salt (compatible with existing pastes)"
		return result
	}
	result.Message = "Using a configured salt; pastes encrypted under another salt will not decrypt"
	return result
}

func checkSelfTest(cfg *configs.Config) CheckResult {
	result := CheckResult{Name: "Self-test"}

	keys := cfg.KeyProvider()
	blob, err := secrets.NewEncryptor(keys).Encrypt("pasteportal self-test")
	if err == nil {
		var text string
		text, err = secrets.NewDecryptor(keys).Decrypt(blob)
		if err == nil && text != "pasteportal self-test" {
			err = fmt.Errorf("round trip returned different text")
		}
	}

	if err != nil {
		result.Status = CheckError
		result.Message = "Encrypt/decrypt round trip failed: " + err.Error()
		return result
	}

	result.Status = CheckPass
	result.Message = "Encrypt/decrypt round trip succeeded"
	return result
}

func isHex(s string) bool {
	for _, c := range s {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
