package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer

	setup(&buf, false)
	log.Debug().Msg("hidden message")
	log.Warn().Msg("visible warning")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("expected debug output to be suppressed, got: %s", out)
	}
	if !strings.Contains(out, "visible warning") {
		t.Errorf("expected warning in output, got: %s", out)
	}

	buf.Reset()
	setup(&buf, true)
	log.Debug().Msg("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("expected debug output with debug enabled, got: %s", buf.String())
	}

	setup(&bytes.Buffer{}, false)
}
