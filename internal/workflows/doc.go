// Package workflows provides high-level orchestration for pasteportal commands.
//
// Workflows coordinate the configs, secrets and audit packages to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners,
// and output formatting.
//
// # Available Workflows
//
//   - Encrypt / Decrypt: a single paste body to and from a hex blob
//   - Seal / Open: paste files on disk to and from <name>.paste
//   - Keygen: a random 64-hex secret
//   - Init: writes config.toml with a secret
//   - Log: reads and filters the audit log
//   - Doctor: checks the encryption setup end to end
//
// Every Encrypt, Decrypt, Seal and Open is recorded in the audit log with
// its outcome and, on failure, the error kind.
//
// # Error Handling
//
// Workflows return the classified errors from internal/errors unchanged,
// so the CLI layer can pick a message without string matching:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // Tampered data or wrong key. Show nothing of the payload.
//	}
package workflows
