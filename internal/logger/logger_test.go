package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")
	l.Info().Str("city", "FLEN").Msg("resolved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["city"] != "FLEN" || entry["message"] != "resolved" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_LevelFallback(t *testing.T) {
	cases := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
	}
	for _, tc := range cases {
		l := New(&bytes.Buffer{}, tc.level, "json")
		if got := l.GetLevel(); got != tc.want {
			t.Errorf("New(%q) level = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info written at warn level: %q", buf.String())
	}
}
