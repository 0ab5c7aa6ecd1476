package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	if got := Level(false, false); got != zerolog.WarnLevel {
		t.Errorf("default = %v, want warn", got)
	}
	if got := Level(true, false); got != zerolog.DebugLevel {
		t.Errorf("verbose = %v, want debug", got)
	}
	if got := Level(true, true); got != zerolog.Disabled {
		t.Errorf("quiet = %v, want disabled", got)
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(&buf, zerolog.WarnLevel)

	logger.Debug().Msg("hidden")
	logger.Warn().Str("budget", "sample").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "budget=sample") {
		t.Errorf("warn message missing: %q", out)
	}
}
