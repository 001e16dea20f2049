//go:build !unix && !windows

package cli

func terminalSize(int) (width, height int) {
	return defaultWidth, defaultHeight
}
