package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelsFilterOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("tick %s", "14:43")
	log.Warn("battery %d%%", 12)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line printed at normal level: %q", out)
	}
	if !strings.Contains(out, "[INF] ") || !strings.Contains(out, "tick 14:43") {
		t.Fatalf("info line missing: %q", out)
	}
	if !strings.Contains(out, "[WRN] ") || !strings.Contains(out, "battery 12%") {
		t.Fatalf("warn line missing: %q", out)
	}

	buf.Reset()
	log.SetLevel(LevelVerbose)
	log.Debug("shown")
	if !strings.Contains(buf.String(), "[DBG] ") {
		t.Fatalf("debug line missing at verbose level: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("silenced")
	if buf.Len() != 0 {
		t.Fatalf("output at off level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"off":     LevelOff,
		"":        LevelNormal,
		"info":    LevelNormal,
		"Verbose": LevelVerbose,
		"debug":   LevelVerbose,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) error = nil, want error")
	}
}
