package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Errorf("FromContext() = %p, want %p", got, logger)
	}
}

func TestFromContext_FallsBack(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Error("FromContext() without logger returned nil")
	}
}
