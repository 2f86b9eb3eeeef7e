package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerAppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "antojo.log")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l.Printf("submit %s: %v\n", "http://x", "refused")
	l.Printf("second")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "submit http://x: refused") {
		t.Errorf("unexpected line %q", lines[0])
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Printf("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}
