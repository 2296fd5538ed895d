package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel("info"))
	assert.Equal(t, WarnLevel, ParseLevel("warn"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
}

func TestParseLevel_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, DefaultLevel, ParseLevel("verbose"))
	assert.Equal(t, DefaultLevel, ParseLevel(""))
}
