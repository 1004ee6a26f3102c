package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInit_ReturnsUsableLogger(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l := Init(Options{Level: "info", Output: &buf})

	// The returned logger must be held in a variable and support chained
	// leveled events, including those with pointer receivers.
	l.Error().Err(errors.New("boom")).Msg("startup failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line: %v", err)
	}
	if entry["level"] != "error" || entry["message"] != "startup failed" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error field, got %+v", entry)
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	l := Init(Options{Output: &second})

	l.Info().Msg("hello")

	if first.Len() == 0 {
		t.Fatalf("expected output on the first writer")
	}
	if second.Len() != 0 {
		t.Fatalf("second Init must not rebuild the logger")
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l := Init(Options{Level: "warn", Output: &buf})

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info event should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn event missing: %s", out)
	}
}

func TestGet_BeforeInitPanics(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	Get()
}

func TestGet_AfterInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Output: &buf})

	l := Get()
	l.Info().Msg("via get")

	if !strings.Contains(buf.String(), "via get") {
		t.Fatalf("Get logger did not write to the configured output")
	}
}
