package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"golang.org/x/crypto/scrypt"
)

// DefaultSalt is the scrypt salt used for passphrase secrets when no
// explicit salt is configured. Changing it makes existing blobs undecryptable.
const DefaultSalt = "pasteportal-paste-encryption"

// Default scrypt cost parameters.
const (
	DefaultScryptN = 1 << 14
	DefaultScryptR = 8
	DefaultScryptP = 1
)

// SecretSource returns the operator-configured secret.
type SecretSource func() (string, error)

// StaticSecret returns a SecretSource that always yields secret.
func StaticSecret(secret string) SecretSource {
	return func() (string, error) {
		return secret, nil
	}
}

// EnvSecret returns a SecretSource that reads the named environment variable.
func EnvSecret(name string) SecretSource {
	return func() (string, error) {
		value, ok := os.LookupEnv(name)
		if !ok {
			return "", fmt.Errorf("environment variable %s is not set", name)
		}
		return value, nil
	}
}

// ScryptParams are the cost parameters for passphrase derivation.
type ScryptParams struct {
	N, R, P int
}

// KeyProviderOption configures a KeyProvider.
type KeyProviderOption func(*KeyProvider)

// WithSalt overrides DefaultSalt. An empty salt keeps the default.
func WithSalt(salt string) KeyProviderOption {
	return func(kp *KeyProvider) {
		if salt != "" {
			kp.salt = []byte(salt)
		}
	}
}

// WithScryptParams overrides the default scrypt cost parameters.
func WithScryptParams(params ScryptParams) KeyProviderOption {
	return func(kp *KeyProvider) {
		kp.params = params
	}
}

// KeyProvider derives the encryption key from a secret on first use and
// caches it. It is safe for concurrent use.
type KeyProvider struct {
	source SecretSource
	salt   []byte
	params ScryptParams

	mu  sync.Mutex
	key atomic.Pointer[[KeySize]byte]
}

// NewKeyProvider creates a KeyProvider reading its secret from source.
func NewKeyProvider(source SecretSource, opts ...KeyProviderOption) *KeyProvider {
	kp := &KeyProvider{
		source: source,
		salt:   []byte(DefaultSalt),
		params: ScryptParams{N: DefaultScryptN, R: DefaultScryptR, P: DefaultScryptP},
	}
	for _, opt := range opts {
		opt(kp)
	}
	return kp
}

// Key returns a copy of the 32-byte encryption key, deriving it on the first
// successful call. Failures are not cached.
func (kp *KeyProvider) Key() ([]byte, error) {
	if k := kp.key.Load(); k != nil {
		return cloneKey(k), nil
	}

	kp.mu.Lock()
	defer kp.mu.Unlock()

	// Another goroutine may have finished while we waited.
	if k := kp.key.Load(); k != nil {
		return cloneKey(k), nil
	}

	k, err := kp.derive()
	if err != nil {
		return nil, err
	}
	kp.key.Store(k)

	return cloneKey(k), nil
}

func (kp *KeyProvider) derive() (*[KeySize]byte, error) {
	if kp.source == nil {
		return nil, kerrors.Configuration("key", "no secret source configured", nil)
	}

	secret, err := kp.source()
	if err != nil {
		return nil, kerrors.Configuration("key", "failed to read secret", err)
	}
	if secret == "" {
		return nil, kerrors.Configuration("key", "secret is empty", nil)
	}

	var key [KeySize]byte

	if isHexKey(secret) {
		if _, err := hex.Decode(key[:], []byte(secret)); err != nil {
			return nil, kerrors.Configuration("key", "failed to decode hex secret", err)
		}
		return &key, nil
	}

	derived, err := scrypt.Key([]byte(secret), kp.salt, kp.params.N, kp.params.R, kp.params.P, KeySize)
	if err != nil {
		return nil, kerrors.Configuration("key", "failed to derive key from passphrase", err)
	}
	copy(key[:], derived)

	return &key, nil
}

// isHexKey reports whether secret is exactly 64 hex characters.
func isHexKey(secret string) bool {
	if len(secret) != KeySize*2 {
		return false
	}
	for i := 0; i < len(secret); i++ {
		if !isHexDigit(secret[i]) {
			return false
		}
	}
	return true
}

func cloneKey(k *[KeySize]byte) []byte {
	out := make([]byte, KeySize)
	copy(out, k[:])
	return out
}

// GenerateSecret returns 32 random bytes hex-encoded, suitable for use as
// a secret that bypasses passphrase derivation.
func GenerateSecret() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// ErrNoSecret is returned by a SecretSource when none of its inputs hold a secret.
var ErrNoSecret = errors.New("no secret configured")
