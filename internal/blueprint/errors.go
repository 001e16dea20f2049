package blueprint

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions with no decoder.
	ErrUnsupportedFormat = errors.New("unsupported blueprint format")

	// ErrDecode is returned when a blueprint file cannot be parsed.
	ErrDecode = errors.New("failed to decode blueprint")

	// ErrUnknownTarget is returned when a nested split names no child of its parent.
	ErrUnknownTarget = errors.New("unknown split target")
)
