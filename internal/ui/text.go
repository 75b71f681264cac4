package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders one kind of CLI content. With color it applies style;
// without color it wraps the text in open and close instead.
type Formatter struct {
	style       *color.Color
	open, close string
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.open + text + f.close
	}
	return f.style.Sprint(text)
}

// Sprint formats a like fmt.Sprint.
func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats like fmt.Sprintf.
func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

// colorDisabled honors NO_COLOR (https://no-color.org/) on top of
// fatih/color's own terminal detection.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code is a command the user can run: yellow, or `backticks`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is a file or directory: yellow, or bare.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Flag is a CLI flag: yellow, or bare.
	Flag = Formatter{color.New(color.FgYellow), "", ""}

	// Success is green, or bare.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error is red, or bare.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Warning is yellow, or bare.
	Warning = Formatter{color.New(color.FgYellow), "", ""}

	// Info is a hint or pointer: cyan, or bare.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight is a value worth noticing, such as an env var name: cyan, or 'quoted'.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Muted is secondary detail: gray, or (parenthesized).
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Status glyphs that lead each line of command output.
func Check() string   { return Success.Sprint("✓") }
func Cross() string   { return Error.Sprint("✗") }
func Caution() string { return Warning.Sprint("⚠") }
func Arrow() string   { return Info.Sprint("→") }

// Hint renders an indented follow-up line: "→ text".
func Hint(text string) string {
	return Arrow() + " " + text
}

// EnsureNewline appends "\n" unless s already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

// Preview shortens s to at most n runes for display, marking the cut with an
// ellipsis. Used for blobs, which can be arbitrarily long.
func Preview(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

// Blob renders a hex blob as a short prefix and its total length.
func Blob(blob string) string {
	return Preview(blob, 16) + " " + Muted.Sprintf("%d hex chars", len(blob))
}
