package secrets

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
	"golang.org/x/crypto/scrypt"
)

// fastScrypt keeps passphrase tests quick; the derivation path is the same.
var fastScrypt = ScryptParams{N: 1 << 4, R: 8, P: 1}

func TestKeyProvider_HexSecretDecodedDirectly(t *testing.T) {
	secret := strings.Repeat("0123456789abcdef", 4)
	want, _ := hex.DecodeString(secret)

	kp := NewKeyProvider(StaticSecret(secret))
	key, err := kp.Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if !bytes.Equal(key, want) {
		t.Errorf("Key() = %x, want %x", key, want)
	}
}

func TestKeyProvider_UppercaseHexSecret(t *testing.T) {
	secret := strings.Repeat("ABCDEF0123456789", 4)
	want, _ := hex.DecodeString(secret)

	key, err := NewKeyProvider(StaticSecret(secret)).Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if !bytes.Equal(key, want) {
		t.Errorf("Key() = %x, want %x", key, want)
	}
}

func TestKeyProvider_PassphraseUsesScrypt(t *testing.T) {
	tests := []struct {
		name   string
		secret string
	}{
		{"short passphrase", "correct horse battery staple"},
		{"63 hex chars", strings.Repeat("a", 63)},
		{"65 hex chars", strings.Repeat("a", 65)},
		{"64 chars with non-hex", strings.Repeat("a", 63) + "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := scrypt.Key([]byte(tt.secret), []byte(DefaultSalt), fastScrypt.N, fastScrypt.R, fastScrypt.P, KeySize)
			if err != nil {
				t.Fatalf("scrypt.Key() error = %v", err)
			}

			key, err := NewKeyProvider(StaticSecret(tt.secret), WithScryptParams(fastScrypt)).Key()
			if err != nil {
				t.Fatalf("Key() error = %v", err)
			}
			if !bytes.Equal(key, want) {
				t.Errorf("Key() = %x, want %x", key, want)
			}
		})
	}
}

func TestKeyProvider_DefaultParamsMatchScrypt(t *testing.T) {
	want, err := scrypt.Key([]byte("hunter2"), []byte(DefaultSalt), 16384, 8, 1, 32)
	if err != nil {
		t.Fatalf("scrypt.Key() error = %v", err)
	}

	key, err := NewKeyProvider(StaticSecret("hunter2")).Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if !bytes.Equal(key, want) {
		t.Errorf("default derivation does not match scrypt(N=16384, r=8, p=1)")
	}
}

func TestKeyProvider_SaltChangesKey(t *testing.T) {
	a, _ := NewKeyProvider(StaticSecret("hunter2"), WithScryptParams(fastScrypt)).Key()
	b, _ := NewKeyProvider(StaticSecret("hunter2"), WithScryptParams(fastScrypt), WithSalt("install-1")).Key()
	c, _ := NewKeyProvider(StaticSecret("hunter2"), WithScryptParams(fastScrypt), WithSalt("")).Key()

	if bytes.Equal(a, b) {
		t.Error("different salts produced the same key")
	}
	if !bytes.Equal(a, c) {
		t.Error("empty salt option should keep the default salt")
	}
}

func TestKeyProvider_MissingSecret(t *testing.T) {
	tests := []struct {
		name   string
		source SecretSource
	}{
		{"nil source", nil},
		{"empty secret", StaticSecret("")},
		{"unset env var", EnvSecret("PASTEPORTAL_TEST_SECRET_THAT_IS_NOT_SET")},
		{"source error", func() (string, error) { return "", ErrNoSecret }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewKeyProvider(tt.source).Key()
			if !errors.Is(err, kerrors.ErrConfiguration) {
				t.Errorf("Key() error = %v, want ErrConfiguration", err)
			}
			if key != nil {
				t.Errorf("Key() returned key material on failure")
			}
		})
	}
}

func TestKeyProvider_EnvSecret(t *testing.T) {
	t.Setenv("PASTEPORTAL_TEST_SECRET", "from-the-environment")

	key, err := NewKeyProvider(EnvSecret("PASTEPORTAL_TEST_SECRET"), WithScryptParams(fastScrypt)).Key()
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if len(key) != KeySize {
		t.Errorf("Key() length = %d, want %d", len(key), KeySize)
	}
}

func TestKeyProvider_DerivesOnce(t *testing.T) {
	var calls atomic.Int32
	source := func() (string, error) {
		calls.Add(1)
		return "concurrent passphrase", nil
	}

	kp := NewKeyProvider(source, WithScryptParams(fastScrypt))

	const workers = 32
	keys := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k, err := kp.Key()
			if err != nil {
				t.Errorf("Key() error = %v", err)
				return
			}
			keys[i] = k
		}(i)
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("secret source called %d times, want 1", n)
	}
	for i := 1; i < workers; i++ {
		if !bytes.Equal(keys[0], keys[i]) {
			t.Fatalf("goroutine %d got a different key", i)
		}
	}
}

func TestKeyProvider_FailureNotCached(t *testing.T) {
	secret := ""
	kp := NewKeyProvider(func() (string, error) { return secret, nil }, WithScryptParams(fastScrypt))

	if _, err := kp.Key(); !errors.Is(err, kerrors.ErrConfiguration) {
		t.Fatalf("Key() error = %v, want ErrConfiguration", err)
	}

	secret = "now configured"
	if _, err := kp.Key(); err != nil {
		t.Errorf("Key() after configuring secret error = %v", err)
	}
}

func TestKeyProvider_ReturnsCopy(t *testing.T) {
	kp := NewKeyProvider(StaticSecret(strings.Repeat("11", 32)))

	first, _ := kp.Key()
	first[0] ^= 0xff

	second, _ := kp.Key()
	if second[0] != 0x11 {
		t.Error("mutating a returned key changed the cached key")
	}
}

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret()
	if err != nil {
		t.Fatalf("GenerateSecret() error = %v", err)
	}
	if len(secret) != 64 {
		t.Errorf("GenerateSecret() length = %d, want 64", len(secret))
	}
	if !isHexKey(secret) {
		t.Errorf("GenerateSecret() = %q is not a 64-char hex key", secret)
	}

	other, _ := GenerateSecret()
	if secret == other {
		t.Error("GenerateSecret() generated duplicate secrets")
	}
}
