package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the encryption module. The set is closed.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors that carry no Kind.
	KindUnknown Kind = iota

	// KindConfiguration covers a missing, empty or unusable secret.
	KindConfiguration

	// KindValidation covers rejected input: empty plaintext, malformed blobs.
	KindValidation

	// KindAuthentication covers GCM tag verification failures.
	KindAuthentication
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	default:
		return "unknown"
	}
}

// Encryption errors. Match them with errors.Is; an *Error of the same Kind matches.
var (
	// ErrConfiguration indicates the encryption secret is missing or invalid.
	ErrConfiguration = errors.New("encryption is not configured")

	// ErrValidation indicates the input to encrypt or decrypt was rejected.
	ErrValidation = errors.New("invalid input")

	// ErrAuthentication indicates the ciphertext could not be authenticated.
	ErrAuthentication = errors.New("ciphertext authentication failed")
)

// Configuration file errors.
var (
	// ErrConfigNotFound indicates no configuration file exists yet.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigExists indicates a configuration file already exists.
	ErrConfigExists = errors.New("configuration file already exists")
)

// File errors indicate issues with file discovery or access.
var (
	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidFileType indicates the file is not of the expected type.
	ErrInvalidFileType = errors.New("invalid file type")
)

// Audit log errors.
var (
	// ErrInvalidDateFormat indicates a date filter is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrNoAuditLog indicates auditing is disabled or nothing was logged yet.
	ErrNoAuditLog = errors.New("no audit log found")
)

// Error is a classified encryption failure.
type Error struct {
	Kind   Kind
	Op     string // "encrypt", "decrypt", "key"
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + " error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind, or an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == e.Kind
	}
	return target == sentinel(e.Kind)
}

func sentinel(k Kind) error {
	switch k {
	case KindConfiguration:
		return ErrConfiguration
	case KindValidation:
		return ErrValidation
	case KindAuthentication:
		return ErrAuthentication
	default:
		return nil
	}
}

// Configuration returns a KindConfiguration error.
func Configuration(op, reason string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Reason: reason, Err: err}
}

// Validation returns a KindValidation error.
func Validation(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Reason: fmt.Sprintf(format, args...)}
}

// Authentication returns a KindAuthentication error wrapping the cipher failure.
func Authentication(op, reason string, err error) error {
	return &Error{Kind: KindAuthentication, Op: op, Reason: reason, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
