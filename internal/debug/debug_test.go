package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Logger().Debug("split", "axis", "rows", "parts", 3)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	for _, want := range []string{"msg=split", "axis=rows", "parts=3", "level=DEBUG"} {
		if !strings.Contains(got, want) {
			t.Errorf("log %q missing %q", got, want)
		}
	}
}

func TestLogger_DiscardsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	Logger().Debug("dropped")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("log = %q, want empty", data)
	}
}

func TestClose_WithoutInit(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}
