//go:build windows

package cli

import "golang.org/x/sys/windows"

// terminalSize returns the visible console window size in cells.
// Defaults to 80x24 when fd is not a console.
func terminalSize(fd int) (width, height int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return defaultWidth, defaultHeight
	}
	width = int(info.Window.Right - info.Window.Left + 1)
	height = int(info.Window.Bottom - info.Window.Top + 1)
	return width, height
}
