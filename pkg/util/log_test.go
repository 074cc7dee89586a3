package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tradebook.log")

	logger, err := NewLoggerWithFile(path, false)
	if err != nil {
		t.Fatalf("NewLoggerWithFile: %v", err)
	}
	logger.Sugar().Infow("order_submitted", "id", 1)
	logger.Sugar().Debugw("hidden_at_info")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"order_submitted"`) || !strings.Contains(out, `"ts":`) {
		t.Errorf("unexpected log line: %s", out)
	}
	if strings.Contains(out, "hidden_at_info") {
		t.Error("debug line written at info level")
	}
}

func TestNewLoggerWithFile_EmptyPath(t *testing.T) {
	logger, err := NewLoggerWithFile("", true)
	if err != nil {
		t.Fatalf("NewLoggerWithFile: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Error("verbose logger should enable debug")
	}
}
