package cli

// Fallback terminal size when the output is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)
