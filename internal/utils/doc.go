// Package utils provides shared helpers for the pasteportal CLI.
//
// # Input
//
//   - ReadStdin: reads piped input, refusing an interactive terminal
//   - ReadAll: reads a reader to the end, rejecting empty input
//
// # Terminal
//
//   - ReadPassphrase: prompts without echo (golang.org/x/term)
//   - ReadConfirmedPassphrase: asks twice and checks both entries match
//   - StdinIsTerminal: checks whether stdin is a terminal
//
// # Output
//
//   - FormatPaths: formats file paths as an indented list
package utils
