package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables the debug log file.
const EnvVar = "RAYZER_DEBUG"

var (
	logFile *os.File
	logger  *slog.Logger
	envOnce sync.Once
	mu      sync.Mutex
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init opens path for appending and routes debug records to it.
// If path is empty, uses "rayzer-debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "rayzer-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close closes the debug log file. Later records are discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the debug logger. The first call honors RAYZER_DEBUG.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			if logger == nil {
				// Best effort: a bad path leaves logging disabled.
				_ = initLocked(path)
			}
			mu.Unlock()
		}
	})

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return discard
	}
	return logger
}
