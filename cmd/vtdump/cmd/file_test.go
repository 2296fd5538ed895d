package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/vtwire/logger"
)

func TestRunFile(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\x1bchi\x1b[1;31m!\x1b[0m")

	require.NoError(t, runFile(in, &out, logger.Nop(), false))

	assert.Contains(t, out.String(), "ESC FullReset")
	assert.Contains(t, out.String(), `"hi"`)
	assert.Contains(t, out.String(), "CSI [] [1 31] 109")
	assert.NotContains(t, out.String(), "summary")
}

func TestRunFileSummary(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\x1bc\x1bc")

	require.NoError(t, runFile(in, &out, logger.Nop(), true))

	assert.Contains(t, out.String(), "summary")
	assert.Contains(t, out.String(), "2x ESC FullReset")
}
