package utils

import (
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// StaticBitSet is a fixed-size bit set. The size is chosen at construction
// and every access outside it is a programming error.
type StaticBitSet struct {
	bits      []uint64
	size      int
	sliceSize int // Number of uint64s needed to store the bits
}

// NewStaticBitSet creates a new StaticBitSet with the given size, all bits
// cleared.
func NewStaticBitSet(size int) *StaticBitSet {
	set := &StaticBitSet{size: size}
	set.init()
	return set
}

// Set sets the bit at the given idx to 1.
func (s *StaticBitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	s.bits[idx] |= 1 << offset
}

// Unset clears the bit at the given idx.
func (s *StaticBitSet) Unset(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	s.bits[idx] &^= 1 << offset
}

// IsSet returns whether the bit at the given idx is set.
func (s *StaticBitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	idx, offset := s.addr(idx)
	return s.bits[idx]&(1<<offset) != 0
}

// Count counts the number of bits set.
func (s *StaticBitSet) Count() int {
	total := 0
	for i := range s.sliceSize {
		total += bits.OnesCount64(s.bits[i])
	}
	return total
}

// Clear resets every bit to 0.
func (s *StaticBitSet) Clear() {
	s.init()
}

// addr returns the index of the word containing the bit at idx and the offset
// of the bit inside that word.
func (s *StaticBitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}

func (s *StaticBitSet) init() {
	s.sliceSize = (s.size + bitSetSize - 1) / bitSetSize
	s.bits = make([]uint64, s.sliceSize)
}
