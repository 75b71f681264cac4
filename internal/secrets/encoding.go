package secrets

import (
	"encoding/hex"
	"fmt"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
)

// Framing constants for an encrypted blob: hex(IV || ciphertext || tag).
const (
	KeySize = 32 // AES-256 key size
	IVSize  = 16 // GCM nonce size used by this module
	TagSize = 16 // GCM authentication tag size

	IVHexLen      = IVSize * 2
	TagHexLen     = TagSize * 2
	MinBlobHexLen = IVHexLen + TagHexLen
)

// Frame is a decoded blob.
type Frame struct {
	IV         []byte
	Ciphertext []byte
	Tag        []byte
}

// EncodeBlob returns the lowercase hex encoding of iv || ciphertext || tag.
func EncodeBlob(iv, ciphertext, tag []byte) (string, error) {
	if len(iv) != IVSize {
		return "", fmt.Errorf("invalid IV length: expected %d bytes, got %d bytes", IVSize, len(iv))
	}
	if len(tag) != TagSize {
		return "", fmt.Errorf("invalid tag length: expected %d bytes, got %d bytes", TagSize, len(tag))
	}

	raw := make([]byte, 0, IVSize+len(ciphertext)+TagSize)
	raw = append(raw, iv...)
	raw = append(raw, ciphertext...)
	raw = append(raw, tag...)

	return hex.EncodeToString(raw), nil
}

// DecodeBlob splits a hex blob into its IV, ciphertext and tag. It returns
// a validation error for empty, short, odd-length or non-hex input.
func DecodeBlob(blob string) (Frame, error) {
	if blob == "" {
		return Frame{}, kerrors.Validation("decrypt", "blob is empty")
	}
	if len(blob) < MinBlobHexLen {
		return Frame{}, kerrors.Validation("decrypt", "blob has %d hex characters, need at least %d", len(blob), MinBlobHexLen)
	}
	if len(blob)%2 != 0 {
		return Frame{}, kerrors.Validation("decrypt", "blob has odd length %d", len(blob))
	}

	raw, err := hex.DecodeString(blob)
	if err != nil {
		return Frame{}, kerrors.Validation("decrypt", "blob is not valid hexadecimal")
	}

	return Frame{
		IV:         raw[:IVSize],
		Ciphertext: raw[IVSize : len(raw)-TagSize],
		Tag:        raw[len(raw)-TagSize:],
	}, nil
}

// BlobHexLen returns the blob length in hex characters for a plaintext of n bytes.
func BlobHexLen(n int) int {
	return MinBlobHexLen + 2*n
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
