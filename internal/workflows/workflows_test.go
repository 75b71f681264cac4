package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/pasteportal/internal/audit"
	"github.com/PolarWolf314/pasteportal/internal/configs"
	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"github.com/PolarWolf314/pasteportal/internal/secrets"
)

const testSecret = "c0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ffeec0ff"

// setupTestEnvironment points configs at a temp dir and sets the secret env var.
func setupTestEnvironment(t *testing.T, secret string) string {
	t.Helper()
	tempDir := t.TempDir()

	original := configs.PortalSettings
	configs.PortalSettings = &configs.Settings{
		ConfigDir:  tempDir,
		ConfigPath: filepath.Join(tempDir, "config.toml"),
	}
	t.Cleanup(func() { configs.PortalSettings = original })

	t.Setenv(configs.DefaultSecretEnv, secret)
	return tempDir
}

func auditEntries(t *testing.T, dir string) []audit.Entry {
	t.Helper()
	entries, err := audit.ReadEntries(filepath.Join(dir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	return entries
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	dir := setupTestEnvironment(t, testSecret)
	ctx := context.Background()

	enc, err := Encrypt(ctx, EncryptOptions{Text: "hello paste ✓"})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if len(enc.Blob) != secrets.BlobHexLen(len("hello paste ✓")) {
		t.Errorf("Unexpected blob length %d", len(enc.Blob))
	}

	// Stored blobs often come back with a trailing newline.
	dec, err := Decrypt(ctx, DecryptOptions{Blob: enc.Blob + "\n"})
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if dec.Text != "hello paste ✓" {
		t.Errorf("Expected original text, got %q", dec.Text)
	}

	entries := auditEntries(t, dir)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 audit entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Outcome != audit.OutcomeSuccess {
			t.Errorf("Expected success outcome, got %+v", e)
		}
	}
}

func TestEncrypt_NoSecret(t *testing.T) {
	dir := setupTestEnvironment(t, "")

	_, err := Encrypt(context.Background(), EncryptOptions{Text: "hello"})
	if !errors.Is(err, kerrors.ErrConfiguration) {
		t.Fatalf("Expected ErrConfiguration, got %v", err)
	}

	entries := auditEntries(t, dir)
	if len(entries) != 1 || entries[0].ErrorKind != "configuration" {
		t.Errorf("Unexpected audit entries: %+v", entries)
	}
}

func TestEncrypt_UsesConfigFileSecret(t *testing.T) {
	setupTestEnvironment(t, "")

	cfg := configs.Default()
	cfg.Encryption.Secret = testSecret
	if err := configs.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	enc, err := Encrypt(context.Background(), EncryptOptions{Text: "from file"})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// The env var, once set, takes precedence; the same key decrypts.
	t.Setenv(configs.DefaultSecretEnv, testSecret)
	dec, err := Decrypt(context.Background(), DecryptOptions{Blob: enc.Blob})
	if err != nil || dec.Text != "from file" {
		t.Errorf("Decrypt = %+v, %v", dec, err)
	}
}

func TestDecrypt_WrongSecretIsAuthenticationError(t *testing.T) {
	dir := setupTestEnvironment(t, testSecret)

	enc, err := Encrypt(context.Background(), EncryptOptions{Text: "secret"})
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	t.Setenv(configs.DefaultSecretEnv, strings.Repeat("0", 64))
	_, err = Decrypt(context.Background(), DecryptOptions{Blob: enc.Blob})
	if !errors.Is(err, kerrors.ErrAuthentication) {
		t.Fatalf("Expected ErrAuthentication, got %v", err)
	}

	entries := auditEntries(t, dir)
	last := entries[len(entries)-1]
	if last.Operation != "decrypt" || last.Outcome != audit.OutcomeFailure || last.ErrorKind != "authentication" {
		t.Errorf("Unexpected audit entry: %+v", last)
	}
}

func TestDecrypt_Validation(t *testing.T) {
	setupTestEnvironment(t, testSecret)

	for _, blob := range []string{"", "   ", "abc"} {
		_, err := Decrypt(context.Background(), DecryptOptions{Blob: blob})
		if !errors.Is(err, kerrors.ErrValidation) {
			t.Errorf("Decrypt(%q) error = %v, want ErrValidation", blob, err)
		}
	}
}

func TestAuditDisabled(t *testing.T) {
	dir := setupTestEnvironment(t, testSecret)

	cfg := configs.Default()
	cfg.Audit.Enabled = false

	if _, err := Encrypt(context.Background(), EncryptOptions{Text: "quiet", Config: cfg}); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "audit.jsonl")); !os.IsNotExist(err) {
		t.Error("Expected no audit log when auditing is disabled")
	}
}

func TestCancelledContext(t *testing.T) {
	setupTestEnvironment(t, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Encrypt(ctx, EncryptOptions{Text: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Encrypt error = %v, want context.Canceled", err)
	}
	if _, err := Decrypt(ctx, DecryptOptions{Blob: "x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Decrypt error = %v, want context.Canceled", err)
	}
}

func TestSealOpen(t *testing.T) {
	setupTestEnvironment(t, testSecret)
	root := t.TempDir()
	ctx := context.Background()

	path := filepath.Join(root, "notes.txt")
	if err := os.WriteFile(path, []byte("paste on disk"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	dry, err := Seal(ctx, FilesOptions{Root: root, DryRun: true})
	if err != nil {
		t.Fatalf("Seal dry-run failed: %v", err)
	}
	if len(dry.OutputFiles) != 1 || dry.OutputFiles[0] != path+secrets.PasteExt {
		t.Errorf("Unexpected dry-run output: %v", dry.OutputFiles)
	}
	if _, err := os.Stat(path + secrets.PasteExt); !os.IsNotExist(err) {
		t.Fatal("Dry-run should not write files")
	}

	sealed, err := Seal(ctx, FilesOptions{Root: root, Patterns: []string{"*.txt"}})
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	if len(sealed.OutputFiles) != 1 {
		t.Fatalf("Expected 1 sealed file, got %v", sealed.OutputFiles)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove plaintext: %v", err)
	}

	opened, err := Open(ctx, FilesOptions{Root: root})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(opened.OutputFiles) != 1 || opened.OutputFiles[0] != path {
		t.Fatalf("Unexpected opened files: %v", opened.OutputFiles)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "paste on disk" {
		t.Errorf("Unexpected plaintext %q", data)
	}
}

func TestSeal_NoFiles(t *testing.T) {
	setupTestEnvironment(t, testSecret)

	_, err := Seal(context.Background(), FilesOptions{Root: t.TempDir()})
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestKeygen(t *testing.T) {
	result, err := Keygen(context.Background())
	if err != nil {
		t.Fatalf("Keygen failed: %v", err)
	}
	if len(result.Secret) != 64 {
		t.Errorf("Expected 64-char secret, got %d", len(result.Secret))
	}
}

func TestInit(t *testing.T) {
	setupTestEnvironment(t, "")
	ctx := context.Background()

	result, err := Init(ctx, InitOptions{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !result.GeneratedSecret {
		t.Error("Expected a generated secret")
	}

	cfg, err := configs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Encryption.Secret) != 64 {
		t.Errorf("Expected generated 64-char secret, got %q", cfg.Encryption.Secret)
	}

	if _, err := Init(ctx, InitOptions{}); !errors.Is(err, kerrors.ErrConfigExists) {
		t.Errorf("Expected ErrConfigExists, got %v", err)
	}

	result, err = Init(ctx, InitOptions{Passphrase: "my passphrase", Salt: "site-1", Force: true})
	if err != nil {
		t.Fatalf("Init --force failed: %v", err)
	}
	if result.GeneratedSecret {
		t.Error("Expected passphrase to be used")
	}

	cfg, _ = configs.Load()
	if cfg.Encryption.Secret != "my passphrase" || cfg.Encryption.Salt != "site-1" {
		t.Errorf("Unexpected config after force: %+v", cfg.Encryption)
	}
}

func TestLog_Filters(t *testing.T) {
	dir := setupTestEnvironment(t, testSecret)
	logPath := filepath.Join(dir, "audit.jsonl")

	audit.Log(logPath, audit.Entry{Timestamp: "2026-01-01T10:00:00.000000Z", Operation: "encrypt", Outcome: audit.OutcomeSuccess})
	audit.Log(logPath, audit.Entry{Timestamp: "2026-01-02T10:00:00.000000Z", Operation: "decrypt", Outcome: audit.OutcomeFailure})
	audit.Log(logPath, audit.Entry{Timestamp: "2026-01-03T10:00:00.000000Z", Operation: "seal", Outcome: audit.OutcomeSuccess})

	tests := []struct {
		name string
		opts LogOptions
		want []string
	}{
		{"all", LogOptions{}, []string{"encrypt", "decrypt", "seal"}},
		{"operations", LogOptions{Operations: "encrypt, seal"}, []string{"encrypt", "seal"}},
		{"failures", LogOptions{Outcome: audit.OutcomeFailure}, []string{"decrypt"}},
		{"since", LogOptions{Since: "2026-01-02"}, []string{"decrypt", "seal"}},
		{"until inclusive", LogOptions{Until: "2026-01-02"}, []string{"encrypt", "decrypt"}},
		{"reverse limit", LogOptions{Reverse: true, Limit: 1}, []string{"seal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Log(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Log failed: %v", err)
			}
			if result.TotalEntriesBeforeFilter != 3 {
				t.Errorf("Expected 3 total entries, got %d", result.TotalEntriesBeforeFilter)
			}
			var got []string
			for _, e := range result.Entries {
				got = append(got, e.Operation)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLog_Errors(t *testing.T) {
	setupTestEnvironment(t, testSecret)

	if _, err := Log(context.Background(), LogOptions{}); !errors.Is(err, kerrors.ErrNoAuditLog) {
		t.Errorf("Expected ErrNoAuditLog, got %v", err)
	}
	if _, err := Log(context.Background(), LogOptions{Since: "01/02/2026"}); !errors.Is(err, kerrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestDoctor(t *testing.T) {
	setupTestEnvironment(t, testSecret)

	result, err := Doctor(context.Background(), DoctorOptions{})
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}
	if result.HasErrors() {
		t.Errorf("Expected no errors, got %+v", result.Checks)
	}
	// No config file on disk yet.
	if result.Summary.Warnings != 1 {
		t.Errorf("Expected 1 warning, got %+v", result.Checks)
	}
}

func TestDoctor_NoSecret(t *testing.T) {
	setupTestEnvironment(t, "")

	result, err := Doctor(context.Background(), DoctorOptions{})
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}
	if result.Summary.Errors != 2 {
		t.Errorf("Expected secret and self-test errors, got %+v", result.Checks)
	}
}
