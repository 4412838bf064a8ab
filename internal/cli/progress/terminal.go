package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalCapabilities holds what the attached terminal can do.
type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

// detectCapabilities probes the current terminal. Safe to call repeatedly;
// on Windows, enabling virtual terminal processing is idempotent.
func detectCapabilities() terminalCapabilities {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	return terminalCapabilities{
		supportsANSI:  initTerminal(),
		terminalWidth: width,
	}
}

// clearLine returns the sequence that erases the current line.
func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	// Overwrite with spaces for terminals without ANSI support
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// endsEscape reports whether the rune terminates an ANSI escape sequence.
func endsEscape(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// truncateToWidth cuts a string down to the given number of visible
// characters. ANSI escape sequences pass through without counting, and a
// reset is appended when anything was cut so styling cannot bleed into the
// next line.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var result strings.Builder
	visible := 0
	inEscape := false
	truncated := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			result.WriteRune(r)
			continue
		}
		if inEscape {
			result.WriteRune(r)
			if endsEscape(r) {
				inEscape = false
			}
			continue
		}
		if visible >= width {
			truncated = true
			break
		}
		result.WriteRune(r)
		visible++
	}

	if truncated && !inEscape {
		result.WriteString("\033[0m")
	}
	return result.String()
}
