package ports

// TerminalInput provides methods for reading user input from the terminal.
type TerminalInput interface {
	// ReadPassword prompts for a secret and returns the input without echoing to the terminal.
	ReadPassword(prompt string) (string, error)
	// ReadLine reads one line from standard input, for piped input when no
	// terminal is attached.
	ReadLine() (string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
