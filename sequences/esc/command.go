package esc

import (
	"fmt"
	"io"

	"github.com/hnimtadd/vtwire/ansi"
)

// Command is an escape sequence as the tokenizer dispatches it: every
// collected intermediate plus the final byte, before any recognition.
type Command struct {
	Intermediates []uint8
	Final         uint8
}

func (c Command) String() string {
	return fmt.Sprintf("ESC %v %v", c.Intermediates, c.Final)
}

// Sequence converts the command into its typed form. ok is false when the
// command carries two or more intermediates, those fall outside the one
// intermediate family Sequence models and only Encode can reproduce them.
func (c *Command) Sequence() (Sequence, bool) {
	switch len(c.Intermediates) {
	case 0:
		return Parse(nil, c.Final), true
	case 1:
		return Parse(&c.Intermediates[0], c.Final), true
	default:
		return Sequence{}, false
	}
}

// Encode writes the command back to w byte-exactly, whatever its arity.
func (c *Command) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{ansi.C0.ESC}); err != nil {
		return err
	}
	if len(c.Intermediates) > 0 {
		if _, err := w.Write(c.Intermediates); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{c.Final})
	return err
}
