package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesSentinelOfSameKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"configuration", Configuration("key", "secret is empty", nil), ErrConfiguration},
		{"validation", Validation("encrypt", "plaintext is empty"), ErrValidation},
		{"authentication", Authentication("decrypt", "tag mismatch", errors.New("cipher: message authentication failed")), ErrAuthentication},
	}

	all := []error{ErrConfiguration, ErrValidation, ErrAuthentication}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
			for _, other := range all {
				if other == tt.sentinel {
					continue
				}
				if errors.Is(tt.err, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", tt.err, other)
				}
			}
		})
	}
}

func TestErrorIsSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("reading paste 42: %w", Validation("decrypt", "blob is empty"))

	if !errors.Is(err, ErrValidation) {
		t.Errorf("wrapped validation error should match ErrValidation")
	}
	if got := KindOf(err); got != KindValidation {
		t.Errorf("KindOf() = %v, want %v", got, KindValidation)
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("environment variable not set")
	err := Configuration("key", "no secret", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
}

func TestErrorMessage(t *testing.T) {
	err := Validation("decrypt", "blob has %d hex characters, need at least %d", 3, 64)
	want := "decrypt: validation error: blob has 3 hex characters, need at least 64"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Errorf("KindOf() = %v, want %v", got, KindUnknown)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindUnknown)
	}
	if KindUnknown.String() != "unknown" {
		t.Errorf("KindUnknown.String() = %q", KindUnknown.String())
	}
}
