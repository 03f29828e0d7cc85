package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(true, &buf)

	logger.Verbose("parsed %d annotations", 3)
	logger.Info("wrote %s", "out.json")
	logger.Error("boom")

	out := buf.String()
	assert.Contains(t, out, "[VERBOSE] parsed 3 annotations\n")
	assert.Contains(t, out, "wrote out.json\n")
	assert.Contains(t, out, "[ERROR] boom\n")
}

func TestConsoleLogger_VerboseSuppressed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	logger.Verbose("should not appear")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_LiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(false, &buf)

	// No args: the format string must pass through verbatim.
	logger.Info("progress 100%")
	assert.Equal(t, "progress 100%\n", buf.String())
}

func TestLoggersImplementInterface(t *testing.T) {
	var _ sqlfhir.Logger = NewConsoleLogger(false)
	var _ sqlfhir.Logger = NewNullLogger()
}
