//go:build unix

package cli

import "golang.org/x/sys/unix"

// terminalSize returns the size of the terminal on fd in cells.
// Defaults to 80x24 when fd is not a terminal.
func terminalSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return defaultWidth, defaultHeight
	}
	return int(ws.Col), int(ws.Row)
}
