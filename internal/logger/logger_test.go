package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "court_check.log")

	log, closeLog, err := New(false, path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info().Str("date", "2026-08-30").Msg("check completed")
	if err := closeLog(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "check completed") {
		t.Errorf("expected log line in file, got: %s", data)
	}
	if !strings.Contains(string(data), `"date":"2026-08-30"`) {
		t.Errorf("expected structured field in file output, got: %s", data)
	}
}

func TestNewWithoutFile(t *testing.T) {
	log, closeLog, err := New(true, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer closeLog()

	if log.GetLevel().String() != "debug" {
		t.Errorf("expected debug level in verbose mode, got %s", log.GetLevel())
	}
}

func TestNewBadFilePath(t *testing.T) {
	_, _, err := New(false, filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
