// Package errors provides typed error values for pasteportal.
//
// The encryption module reports every failure as one of a closed set of
// kinds, so callers can decide how much detail to surface without string
// matching.
//
// # Error Categories
//
//   - Configuration errors: the secret is missing, empty or unusable (ErrConfiguration)
//   - Validation errors: empty plaintext, malformed blobs (ErrValidation)
//   - Authentication errors: tampered data or a wrong key (ErrAuthentication)
//   - Config file errors: ErrConfigNotFound, ErrConfigExists
//   - File errors: ErrNoFilesFound, ErrFileNotFound, ErrInvalidFileType
//   - Audit log errors: ErrInvalidDateFormat, ErrNoAuditLog
//
// # Usage
//
// Return a classified error from the crypto layer:
//
//	if plaintext == "" {
//	    return "", errors.Validation("encrypt", "plaintext is empty")
//	}
//
// Handle errors in the CLI layer:
//
//	text, err := dec.Decrypt(blob)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // The data cannot be trusted. Never show partial output.
//	}
//
// KindOf extracts the kind from any wrapped error, which is what the audit
// log records.
package errors
