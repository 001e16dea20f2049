package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-rayzer/internal/ctxlog"
)

// Load reads and decodes the blueprint at path.
func Load(ctx context.Context, path string) (*Blueprint, error) {
	logger := ctxlog.FromContext(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint: %w", err)
	}

	logger.Debug("Decoding blueprint.", "path", path, "format", format)
	bp, err := Decode(data, format, path)
	if err != nil {
		return nil, err
	}
	if bp.Name == "" {
		bp.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return bp, nil
}

// Decode decodes data in the given format. filename is used in diagnostics.
func Decode(data []byte, format Format, filename string) (*Blueprint, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data, filename)
	case FormatJSON:
		return decodeJSON(data, filename)
	case FormatHCL:
		return decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func decodeYAML(data []byte, filename string) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filename, err)
	}
	return &bp, nil
}

func decodeJSON(data []byte, filename string) (*Blueprint, error) {
	var bp Blueprint
	if err := json.Unmarshal(jsonc.ToJSON(data), &bp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, filename, err)
	}
	return &bp, nil
}
