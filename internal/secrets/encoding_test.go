package secrets

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/pasteportal/internal/errors"
)

func TestEncodeBlob_Layout(t *testing.T) {
	iv := bytes.Repeat([]byte{0x01}, IVSize)
	ct := []byte{0xaa, 0xbb}
	tag := bytes.Repeat([]byte{0x02}, TagSize)

	blob, err := EncodeBlob(iv, ct, tag)
	if err != nil {
		t.Fatalf("EncodeBlob() error = %v", err)
	}

	want := strings.Repeat("01", IVSize) + "aabb" + strings.Repeat("02", TagSize)
	if blob != want {
		t.Errorf("EncodeBlob() = %s, want %s", blob, want)
	}

	frame, err := DecodeBlob(blob)
	if err != nil {
		t.Fatalf("DecodeBlob() error = %v", err)
	}
	if !bytes.Equal(frame.IV, iv) || !bytes.Equal(frame.Ciphertext, ct) || !bytes.Equal(frame.Tag, tag) {
		t.Errorf("DecodeBlob() = %+v, does not match encoded parts", frame)
	}
}

func TestEncodeBlob_InvalidSizes(t *testing.T) {
	if _, err := EncodeBlob(make([]byte, 12), nil, make([]byte, TagSize)); err == nil {
		t.Error("EncodeBlob() should reject a 12-byte IV")
	}
	if _, err := EncodeBlob(make([]byte, IVSize), nil, make([]byte, 8)); err == nil {
		t.Error("EncodeBlob() should reject an 8-byte tag")
	}
}

func TestDecodeBlob_EmptyCiphertext(t *testing.T) {
	frame, err := DecodeBlob(strings.Repeat("0", MinBlobHexLen))
	if err != nil {
		t.Fatalf("DecodeBlob() error = %v", err)
	}
	if len(frame.Ciphertext) != 0 {
		t.Errorf("Ciphertext length = %d, want 0", len(frame.Ciphertext))
	}
}

func TestDecodeBlob_Invalid(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"empty", ""},
		{"short", "abc"},
		{"odd", strings.Repeat("a", MinBlobHexLen+1)},
		{"non-hex", strings.Repeat("g", MinBlobHexLen)},
		{"whitespace", strings.Repeat("a", MinBlobHexLen) + "\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBlob(tt.blob)
			if !errors.Is(err, kerrors.ErrValidation) {
				t.Errorf("DecodeBlob() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestFramingConstants(t *testing.T) {
	if IVHexLen != 32 || TagHexLen != 32 || MinBlobHexLen != 64 {
		t.Errorf("unexpected framing constants: iv=%d tag=%d min=%d", IVHexLen, TagHexLen, MinBlobHexLen)
	}
}
