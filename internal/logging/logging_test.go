package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_VerbosityLevels(t *testing.T) {
	tests := []struct {
		name      string
		verbosity string
		debugSeen bool
	}{
		{"debug", "debug", true},
		{"info", "info", false},
		{"uppercase", "WARN", false},
		{"empty defaults to info", "", false},
		{"unrecognized defaults to info", "loud", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			logger := Setup(Options{Verbosity: tt.verbosity, Writer: buf})

			logger.Debug("debug line")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug line")))
		})
	}
}

func TestSetup_WarnSuppressesInfo(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := Setup(Options{Verbosity: "warn", Writer: buf})

	logger.Info("info line")
	logger.Warn("warn line")

	out := buf.String()
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
}
