//go:build windows

package progress

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal prepares the terminal for in-place repainting by switching
// the console into virtual terminal mode. Returns false when the console
// refuses, in which case the tracker falls back to plain output.
func initTerminal() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	// ENABLE_VIRTUAL_TERMINAL_PROCESSING turns on ANSI escape handling
	const enableVirtualTerminalProcessing = 0x0004
	if err := windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing); err != nil {
		return false
	}

	return true
}
