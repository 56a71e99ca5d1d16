package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbose_OnlyLoggedWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Verbose("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Verbose("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestInfoAndWarn(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	Info("hello %s", "world")
	Warn("careful")
	assert.Contains(t, buf.String(), "hello world")
	assert.Contains(t, buf.String(), "level=warning")
}
