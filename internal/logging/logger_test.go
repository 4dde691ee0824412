package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerDefaultsToInfoText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})

	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info level to be enabled")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug level to be disabled")
	}

	logger.Info("hello", FieldGame, "jersey-match")
	if !strings.Contains(buf.String(), "game=jersey-match") {
		t.Fatalf("expected text output, got %q", buf.String())
	}
}

func TestNewLoggerJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: "warn", Output: &buf})

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("expected info disabled at warn level")
	}
	logger.Warn("careful")
	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Fatalf("expected json output, got %q", buf.String())
	}
}

func TestHelpersToleratesNilLogger(t *testing.T) {
	Info(nil, "x")
	Debug(nil, "x")
	Warn(nil, "x")
	Error(nil, "x", errors.New("boom"))
}

func TestErrorAppendsErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Output: &buf})
	Error(logger, "failed", errors.New("boom"))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}
