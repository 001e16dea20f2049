// Package debug provides optional file-based debug logging.
//
// When the RAYZER_DEBUG environment variable is set to a file path, or
// [Init] is called, debug records are appended to that file as slog text
// records. Otherwise [Logger] returns a logger that discards everything.
package debug
