// Package configs manages pasteportal configuration.
//
// Configuration is stored in TOML format at
// <user config dir>/pasteportal/config.toml, or wherever PASTEPORTAL_CONFIG
// points:
//
//	[encryption]
//	secret = "..."                               # optional
//	secret_env = "PASTEPORTAL_ENCRYPTION_SECRET"
//	salt = ""                                    # optional scrypt salt
//
//	[audit]
//	enabled = true
//	path = ""                                    # default: next to config.toml
//
// # Secret Resolution
//
// The environment variable named by secret_env wins over encryption.secret,
// so deployments can keep the secret out of the file entirely. When neither
// is set the KeyProvider fails with a configuration error; there is no
// default key.
//
// # Salt
//
// Leaving salt empty keeps secrets.DefaultSalt. Setting it is a migration:
// pastes encrypted under a passphrase with one salt do not decrypt under
// another. Hex secrets ignore the salt.
//
// # Settings
//
// PortalSettings holds the resolved paths and is initialized at startup.
// Tests may replace it.
package configs
