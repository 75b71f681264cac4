package utils

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyInput is returned when a reader yields no bytes.
var ErrEmptyInput = errors.New("input is empty")

// ReadStdin reads piped stdin to the end. It refuses an interactive terminal
// so a command never blocks waiting for the user to type a paste.
func ReadStdin(stdin io.Reader) ([]byte, error) {
	if StdinIsTerminal() {
		return nil, fmt.Errorf("no data provided on stdin (hint: pass the text as an argument or pipe it in)")
	}
	return ReadAll(stdin)
}

// ReadAll reads r to the end and rejects empty input.
func ReadAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return data, nil
}
