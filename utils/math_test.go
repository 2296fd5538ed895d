package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddWithOverflow(t *testing.T) {
	sum, overflow := AddWithOverflow(1, 2)
	assert.False(t, overflow)
	assert.Equal(t, 3, sum)
}

func TestAddWithOverflow_Overflows(t *testing.T) {
	_, overflow := AddWithOverflow((1<<16)-1, 1)
	assert.True(t, overflow)
}

func TestAddWithOverflow_NegativeOverflows(t *testing.T) {
	_, overflow := AddWithOverflow(-(1 << 16), -1)
	assert.True(t, overflow)
}

func TestAddWithOverflow_ZeroAddend(t *testing.T) {
	sum, overflow := AddWithOverflow((1<<16)-1, 0)
	assert.False(t, overflow)
	assert.Equal(t, (1<<16)-1, sum)
}

func TestAddWithOverflow_ZeroAddendOverflows(t *testing.T) {
	_, overflow := AddWithOverflow(1<<16, 0)
	assert.True(t, overflow)
}

func TestAddWithOverflow_NegativeZeroAddendOverflows(t *testing.T) {
	_, overflow := AddWithOverflow(-(1<<16)-1, 0)
	assert.True(t, overflow)
}
