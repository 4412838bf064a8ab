package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI style codes.
const (
	codeReset  = "\033[0m"
	codeBold   = "\033[1m"
	codeDim    = "\033[2m"
	codeRed    = "\033[31m"
	codeGreen  = "\033[32m"
	codeYellow = "\033[33m"
	codeCyan   = "\033[36m"
	codeWhite  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// stylize wraps text in the given codes, or returns it plain when colors
// are off.
func stylize(text string, codes ...string) string {
	if !ColorsEnabled() {
		return text
	}
	styled := ""
	for _, code := range codes {
		styled += code
	}
	return styled + text + codeReset
}

func Bold(text string) string    { return stylize(text, codeBold) }
func Dim(text string) string     { return stylize(text, codeDim) }
func Success(text string) string { return stylize(text, codeGreen) }
func Error(text string) string   { return stylize(text, codeRed) }
func Warning(text string) string { return stylize(text, codeYellow) }
func Info(text string) string    { return stylize(text, codeCyan) }

// Header returns text styled as a section header
func Header(text string) string {
	return stylize(text, codeBold, codeWhite)
}

// PrintHeader prints a bold section header
func PrintHeader(text string) {
	fmt.Println(Header(text))
}

// PrintSuccess prints a success message with its symbol
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning prints a warning message to stderr
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	fmt.Printf("%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints a step being executed with arrow
func PrintStep(message string) {
	fmt.Printf("  %s %s\n", SymbolArrow, message)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
