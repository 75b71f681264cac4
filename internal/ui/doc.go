// Package ui formats pasteportal's terminal output.
//
// Each Formatter names a kind of content rather than a color, so output
// reads the same with and without color support:
//
//	ui.Code.Sprint("pasteportal paste keygen") // yellow, or `backticks`
//	ui.Highlight.Sprint("PASTEPORTAL_CONFIG")  // cyan, or 'quotes'
//	ui.Muted.Sprint("built-in")                // gray, or (parentheses)
//
// Color is off when NO_COLOR is set or stdout is not a color terminal.
//
// Command output lines start with a status glyph from Check, Cross,
// Caution or Arrow; Hint builds an "→ ..." follow-up line.
package ui
