// Package secrets provides the paste encryption module for pasteportal.
//
// Paste bodies are encrypted at rest with AES-256-GCM. Callers pass plain
// strings in and get opaque hex blobs back; nothing in this package touches
// storage or the network, and nothing here logs.
//
// # Key Management
//
// A KeyProvider turns the operator's secret into a 32-byte key:
//
//   - A secret of exactly 64 hex characters is decoded directly. Use
//     GenerateSecret to create one.
//   - Anything else is treated as a passphrase and run through scrypt
//     (N=16384, r=8, p=1) with DefaultSalt, or the configured salt.
//
// The key is derived on first use and cached for the lifetime of the
// provider. Concurrent first callers derive it exactly once; later reads
// take no lock.
//
// # Blob Format
//
// An encrypted blob is the lowercase hex encoding of:
//
//	+--------+----------------+----------+
//	| IV     | Ciphertext     | Auth Tag |
//	| 16 B   | len(plaintext) | 16 B     |
//	+--------+----------------+----------+
//
// so a blob is always 64 + 2*len(plaintext) hex characters. The IV is
// drawn from crypto/rand for every call (non-deterministic encryption).
//
// # Errors
//
// Every failure is classified (see internal/errors):
//
//   - ErrConfiguration: missing or empty secret
//   - ErrValidation: empty plaintext, or an empty, short or non-hex blob
//   - ErrAuthentication: tampered data or a wrong key
//
// Decrypt returns the exact original plaintext or an error, never both.
//
// # Paste Files
//
// SealFiles and OpenFiles apply the same scheme to files on disk: a sealed
// file holds the blob in <name>.paste.
package secrets
