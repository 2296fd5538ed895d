package csi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/vtwire/utils"
)

func TestCommandEncode(t *testing.T) {
	tcs := []struct {
		name     string
		command  Command
		expected string
	}{
		{
			name:     "no params",
			command:  Command{Final: 'H'},
			expected: "\x1b[H",
		},
		{
			name:     "single param",
			command:  Command{Params: []uint16{4}, Final: 'A'},
			expected: "\x1b[4A",
		},
		{
			name:     "params joined by semicolons",
			command:  Command{Params: []uint16{1, 31}, Final: 'm'},
			expected: "\x1b[1;31m",
		},
		{
			name: "colon separators restored",
			command: Command{
				Params: []uint16{38, 2, 255, 0, 10},
				ParamsSet: func() *utils.StaticBitSet {
					set := utils.NewStaticBitSet(5)
					set.Set(1)
					set.Set(2)
					set.Set(3)
					return set
				}(),
				Final: 'm',
			},
			expected: "\x1b[38;2:255:0:10m",
		},
		{
			name: "private marker goes before params",
			command: Command{
				Intermediates: []uint8{'?'},
				Params:        []uint16{1049},
				Final:         'h',
			},
			expected: "\x1b[?1049h",
		},
		{
			name: "intermediate goes after params",
			command: Command{
				Intermediates: []uint8{' '},
				Params:        []uint16{2},
				Final:         'q',
			},
			expected: "\x1b[2 q",
		},
		{
			name: "marker and intermediate keep their positions",
			command: Command{
				Intermediates: []uint8{'?', '$'},
				Params:        []uint16{2026},
				Final:         'p',
			},
			expected: "\x1b[?2026$p",
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

func TestCommandString(t *testing.T) {
	command := Command{
		Intermediates: []uint8{'?'},
		Params:        []uint16{1049},
		Final:         'h',
	}
	assert.Equal(t, "CSI [63] [1049] 104", command.String())
}

func TestCommandHash(t *testing.T) {
	first := Command{Params: []uint16{1, 31}, Final: 'm'}
	second := Command{Params: []uint16{1, 31}, Final: 'm'}
	assert.Equal(t, first.Hash(), second.Hash())

	other := Command{Params: []uint16{1, 32}, Final: 'm'}
	assert.NotEqual(t, first.Hash(), other.Hash())

	// Same params, different separators.
	colon := Command{
		Params: []uint16{38, 2},
		ParamsSet: func() *utils.StaticBitSet {
			set := utils.NewStaticBitSet(2)
			set.Set(0)
			return set
		}(),
		Final: 'm',
	}
	semicolon := Command{Params: []uint16{38, 2}, Final: 'm'}
	assert.NotEqual(t, colon.Hash(), semicolon.Hash())
}
