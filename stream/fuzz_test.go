//go:build fuzz
// +build fuzz

package stream

import (
	"slices"
	"testing"
)

// FuzzStreamScalarSliceEquivalence checks that feeding bytes one at a time
// and feeding them as a slice produce the same event stream, and that neither
// path panics on arbitrary input.
func FuzzStreamScalarSliceEquivalence(f *testing.F) {
	// Seed corpus covering the interesting tokenizer paths.
	f.Add([]byte("plain text"))
	f.Add([]byte("\x1b[1;31mred\x1b[0m"))
	f.Add([]byte("\x1b]0;title\x07"))
	f.Add([]byte("\x1bP1000$qm\x1b\\"))
	f.Add([]byte("\x1bc\x1b(0\x1bz"))
	f.Add([]byte("mixed é😄\xc3\x28\xff"))
	f.Add([]byte{0x9B, '1', 'm', 0x18, 0x1A, 0x00})

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 1<<16 {
			t.Skip("input too large for fuzz test")
		}

		scalar := &recorder{}
		byByte := NewStream(scalar, nil)
		for _, c := range input {
			byByte.Next(c)
		}

		sliced := &recorder{}
		chunked := NewStream(sliced, nil)
		chunked.NextSlice(input)

		if !slices.Equal(scalar.events, sliced.events) {
			t.Errorf("event streams diverge for %q:\nscalar: %v\nsliced: %v",
				input, scalar.events, sliced.events)
		}
	})
}

// FuzzStreamSplitEquivalence checks that splitting the input at an arbitrary
// position and feeding both halves produces the same events as feeding the
// whole input at once.
func FuzzStreamSplitEquivalence(f *testing.F) {
	f.Add([]byte("\x1b[1;31mred\x1b]0;t\x07é"), uint(3))
	f.Add([]byte("\x1bP$qpayload\x1b\\"), uint(5))
	f.Add([]byte("\xc3\xa9\x1b[m"), uint(1))

	f.Fuzz(func(t *testing.T, input []byte, at uint) {
		if len(input) > 1<<16 {
			t.Skip("input too large for fuzz test")
		}
		split := int(at % uint(len(input)+1))

		whole := &recorder{}
		s := NewStream(whole, nil)
		s.NextSlice(input)

		parts := &recorder{}
		s = NewStream(parts, nil)
		s.NextSlice(input[:split])
		s.NextSlice(input[split:])

		if !slices.Equal(whole.events, parts.events) {
			t.Errorf("event streams diverge for %q split at %d:\nwhole: %v\nparts: %v",
				input, split, whole.events, parts.events)
		}
	})
}
