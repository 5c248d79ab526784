package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJSONLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "warn")
	l.Info().Msg("hidden")
	l.Warn().Str("backend", "dcrd").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if entry["message"] != "shown" || entry["backend"] != "dcrd" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestComponentLoggers(t *testing.T) {
	var buf bytes.Buffer
	Logger = NewJSONLogger(&buf, "debug")
	initComponentLoggers()
	t.Cleanup(func() {
		Logger = NewConsoleLogger(os.Stderr, "info")
		initComponentLoggers()
	})

	Crypto.Debug().Msg("a")
	Wallet.Debug().Msg("b")
	CLI.Debug().Msg("c")
	netLog := WithNetwork("testnet")
	netLog.Debug().Msg("d")

	out := buf.String()
	for _, want := range []string{`"component":"crypto"`, `"component":"wallet"`, `"component":"cli"`, `"network":"testnet"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.log")
	if err := Init("debug", true, path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		Logger = NewConsoleLogger(os.Stderr, "info")
		initComponentLoggers()
	})

	Wallet.Info().Msg("written")
	Benchmark("op")()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"message":"written"`) {
		t.Errorf("log file missing entry: %s", data)
	}
	if !strings.Contains(string(data), `"operation":"op"`) {
		t.Errorf("log file missing benchmark: %s", data)
	}
}

func TestInit_BadFile(t *testing.T) {
	if err := Init("info", false, filepath.Join(t.TempDir(), "missing", "keys.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
