package dcs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookEncode(t *testing.T) {
	tcs := []struct {
		name     string
		hook     Hook
		expected string
	}{
		{
			name:     "bare final",
			hook:     Hook{Final: 'q'},
			expected: "\x1bPq",
		},
		{
			name:     "params and intermediate",
			hook:     Hook{Params: []uint16{1, 0}, Intermediates: []uint8{'$'}, Final: 'q'},
			expected: "\x1bP1;0$q",
		},
		{
			name:     "private marker before params",
			hook:     Hook{Params: []uint16{5}, Intermediates: []uint8{'>'}, Final: 's'},
			expected: "\x1bP>5s",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.hook.Encode(&buf))
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestHookEncodePassthrough(t *testing.T) {
	var buf bytes.Buffer
	hook := Hook{Params: []uint16{1000}, Intermediates: []uint8{'$'}, Final: 'q'}
	require.NoError(t, hook.EncodePassthrough(&buf, []uint8("m")))
	assert.Equal(t, "\x1bP1000$qm\x1b\\", buf.String())
}

func TestHookEncodePassthroughEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	hook := Hook{Final: 'p'}
	require.NoError(t, hook.EncodePassthrough(&buf, nil))
	assert.Equal(t, "\x1bPp\x1b\\", buf.String())
}
