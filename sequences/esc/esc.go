// Package esc models simple escape sequences: an escape marker followed by
// at most one intermediate byte and a final byte. Recognized byte pairs parse
// to a Code, everything else is kept raw, and both forms encode back to the
// exact bytes they came from.
package esc

import (
	"fmt"
	"io"
	"math"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/vtwire/ansi"
	"github.com/hnimtadd/vtwire/utils"
)

type SequenceType int

const (
	// SequenceTypeRaw carries a byte pair the recognition table does not
	// know. The bytes are kept verbatim so the sequence still round-trips.
	SequenceTypeRaw SequenceType = iota
	// SequenceTypeCode carries a recognized Code.
	SequenceTypeCode
)

// Sequence is one simple escape sequence in typed form. The zero value is a
// raw sequence with a NUL final byte. Sequences are plain values, comparing
// them with == compares the sequences they denote.
type Sequence struct {
	Type SequenceType

	// Code is the recognized code, set when Type is SequenceTypeCode.
	Code Code

	// The fields below describe the raw byte pair, set when Type is
	// SequenceTypeRaw. The final byte typically defines how to interpret
	// the intermediate.
	Intermediate    uint8
	HasIntermediate bool
	Control         uint8
}

// Parse classifies a byte pair, a nil intermediate meaning the sequence was
// just ESC plus the final byte. Pairs the recognition table knows come back
// as their Code, every other pair comes back raw. Parse never fails.
func Parse(intermediate *uint8, control uint8) Sequence {
	if code, ok := codeFromKey(packedKey(intermediate, control)); ok {
		return Sequence{Type: SequenceTypeCode, Code: code}
	}
	sequence := Sequence{Type: SequenceTypeRaw, Control: control}
	if intermediate != nil {
		sequence.HasIntermediate = true
		sequence.Intermediate = *intermediate
	}
	return sequence
}

// FromCode wraps a recognized code in its Sequence form.
func FromCode(code Code) Sequence {
	return Sequence{Type: SequenceTypeCode, Code: code}
}

// Encode writes the sequence to w in wire form: the escape marker followed
// by the byte pair it was parsed from. Raw sequences reproduce their bytes
// verbatim, recognized codes unpack their key, so every Sequence encodes to
// exactly the bytes that produced it. The only errors are write errors from
// w, returned as is.
func (s Sequence) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{ansi.C0.ESC}); err != nil {
		return err
	}
	switch s.Type {
	case SequenceTypeCode:
		key, ok := keyFromCode(s.Code)
		utils.Assert(
			ok,
			fmt.Sprintf("escape code %d missing from the recognition table", int(s.Code)),
		)
		if key > math.MaxUint8 {
			_, err := w.Write([]byte{uint8(key >> 8), uint8(key & 0xFF)})
			return err
		}
		_, err := w.Write([]byte{uint8(key)})
		return err
	default:
		if s.HasIntermediate {
			_, err := w.Write([]byte{s.Intermediate, s.Control})
			return err
		}
		_, err := w.Write([]byte{s.Control})
		return err
	}
}

func (s Sequence) String() string {
	switch s.Type {
	case SequenceTypeCode:
		return fmt.Sprintf("ESC %v", s.Code)
	default:
		if s.HasIntermediate {
			return fmt.Sprintf("ESC 0x%02X 0x%02X", s.Intermediate, s.Control)
		}
		return fmt.Sprintf("ESC 0x%02X", s.Control)
	}
}

// Hash returns a stable hash of the sequence for callers that aggregate
// sequences in hash-keyed maps.
func (s Sequence) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash sequence: %v", err))
	return hashed
}
