package utils

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PassphraseReader prompts with the given text and returns what was typed.
type PassphraseReader func(prompt string) ([]byte, error)

// ErrPassphraseMismatch is returned when the confirmation differs from the first entry.
var ErrPassphraseMismatch = errors.New("passphrases do not match")

// ErrEmptyPassphrase is returned when nothing was typed.
var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

// ReadPassphrase prompts on stderr and reads a line from the terminal
// without echo. Stdin must be a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	// The user's Enter was swallowed along with the echo.
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadConfirmedPassphrase asks twice through read and returns the passphrase
// once both entries match.
func ReadConfirmedPassphrase(read PassphraseReader) (string, error) {
	first, err := read("Passphrase: ")
	if err != nil {
		return "", err
	}
	if len(first) == 0 {
		return "", ErrEmptyPassphrase
	}

	second, err := read("Confirm passphrase: ")
	if err != nil {
		return "", err
	}
	if string(first) != string(second) {
		return "", ErrPassphraseMismatch
	}

	return string(first), nil
}

// StdinIsTerminal reports whether stdin is an interactive terminal rather
// than a pipe or file.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
