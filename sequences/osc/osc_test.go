package osc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserAccumulates(t *testing.T) {
	p := NewParser()
	p.Reset()
	for _, c := range []uint8("0;title") {
		p.Next(c)
	}
	command := p.End(0x07)

	require.NotNil(t, command)
	assert.Equal(t, []uint8("0;title"), command.Data)
	assert.EqualValues(t, 0x07, command.Terminator)
}

func TestParserEmptyString(t *testing.T) {
	p := NewParser()
	p.Reset()
	command := p.End(0x07)

	require.NotNil(t, command)
	assert.Empty(t, command.Data)
}

func TestParserEndWithoutStart(t *testing.T) {
	p := NewParser()
	assert.Nil(t, p.End(0x07))

	p.Reset()
	p.Next('x')
	require.NotNil(t, p.End(0x07))
	assert.Nil(t, p.End(0x07), "second End should have nothing left to return")
}

func TestParserDropsBeyondCap(t *testing.T) {
	p := NewParser()
	p.Reset()
	for range MaxData + 100 {
		p.Next('a')
	}
	command := p.End(0x07)

	require.NotNil(t, command)
	assert.Len(t, command.Data, MaxData)
}

func TestCommandEncode(t *testing.T) {
	tcs := []struct {
		name     string
		command  Command
		expected string
	}{
		{
			name:     "bel terminated",
			command:  Command{Data: []uint8("0;title"), Terminator: 0x07},
			expected: "\x1b]0;title\x07",
		},
		{
			name:     "8-bit st terminated",
			command:  Command{Data: []uint8("2;x"), Terminator: 0x9C},
			expected: "\x1b]2;x\x9c",
		},
		{
			name:     "escape form falls back to full st",
			command:  Command{Data: []uint8("8;;uri"), Terminator: 0x1B},
			expected: "\x1b]8;;uri\x1b\\",
		},
		{
			name:     "zero terminator falls back to full st",
			command:  Command{Data: []uint8("q")},
			expected: "\x1b]q\x1b\\",
		},
		{
			name:     "cancel abort is reproduced",
			command:  Command{Data: []uint8("0;ti"), Terminator: 0x18},
			expected: "\x1b]0;ti\x18",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.command.Encode(&buf))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestCommandHash(t *testing.T) {
	first := Command{Data: []uint8("0;title"), Terminator: 0x07}
	second := Command{Data: []uint8("0;title"), Terminator: 0x07}
	assert.Equal(t, first.Hash(), second.Hash())

	otherData := Command{Data: []uint8("0;other"), Terminator: 0x07}
	assert.NotEqual(t, first.Hash(), otherData.Hash())

	otherTerminator := Command{Data: []uint8("0;title"), Terminator: 0x9C}
	assert.NotEqual(t, first.Hash(), otherTerminator.Hash())
}
