// Package audit provides an audit trail for pasteportal operations.
//
// Every encrypt, decrypt, seal and open is recorded, successful or not,
// so operators can see when authentication failures start appearing
// (tampering or a rotated secret).
//
// # Log Format
//
// JSON Lines, one object per operation, by default next to config.toml:
//
//	{"ts":"2026-10-18T09:12:44.018311Z","id":"6f0c…","op":"decrypt","outcome":"failure","bytes":132,"error_kind":"authentication"}
//
// Entries record sizes, file paths and error kinds only. Plaintext, blobs
// and secrets are never written.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error.
package audit
