//go:build !windows

package progress

// initTerminal prepares the terminal for in-place repainting. Unix
// terminals speak ANSI out of the box, so there is nothing to set up.
func initTerminal() bool {
	return true
}
