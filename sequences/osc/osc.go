// Package osc models operating system commands: free-form byte strings
// introduced by ESC ']' and closed by a terminator byte. The payload is kept
// raw, splitting it into numbered command and text is left to consumers.
package osc

import (
	"fmt"
	"io"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/hnimtadd/vtwire/ansi"
	"github.com/hnimtadd/vtwire/utils"
)

// MaxData is the number of payload bytes a Parser accumulates before it
// starts dropping input. Real emitters stay far below this, the cap only
// guards against unterminated strings flooding memory.
const MaxData = 4096

// Command is one tokenized OSC sequence. Terminator is the byte that closed
// the string on the wire: BEL, the 8-bit ST, or ESC when the string was
// closed by the two-byte ST form. The tokenizer reports that two-byte ST as
// its own escape sequence right after the command.
type Command struct {
	Data       []uint8
	Terminator uint8
}

func (c *Command) String() string {
	return fmt.Sprintf("OSC %q %v", c.Data, c.Terminator)
}

// Encode writes the sequence back to w in wire form. Commands closed by BEL,
// the 8-bit ST or an abort byte reproduce exactly that closing byte; for the
// two-byte ST form (and for a zero Terminator) the full ESC '\' is written
// so the encoded string stands terminated on its own. The only errors are
// write errors from w.
func (c *Command) Encode(w io.Writer) error {
	buf := make([]uint8, 0, len(c.Data)+4)
	buf = append(buf, ansi.C0.ESC, ']')
	buf = append(buf, c.Data...)
	switch c.Terminator {
	case ansi.C0.BEL, ansi.C1.ST, ansi.C0.CAN, ansi.C0.SUB:
		buf = append(buf, c.Terminator)
	default:
		buf = append(buf, ansi.C0.ESC, '\\')
	}
	_, err := w.Write(buf)
	return err
}

// Hash returns a stable hash of the command for callers that aggregate
// commands in hash-keyed maps. The terminator is part of the identity, the
// same payload closed by BEL and by ST hashes apart.
func (c *Command) Hash() uint64 {
	hashed, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash command: %v", err))
	return hashed
}

// Parser accumulates the payload of one OSC string at a time. The tokenizer
// drives it: Reset on string start, Next for every payload byte, End with
// the closing byte once the string is over.
type Parser struct {
	data    [MaxData]uint8
	dataLen int
	started bool
}

func NewParser() *Parser {
	return &Parser{}
}

// Reset prepares the parser for a new OSC string.
func (p *Parser) Reset() {
	p.dataLen = 0
	p.started = true
}

// Next accumulates one payload byte. Bytes past MaxData are dropped.
func (p *Parser) Next(c uint8) {
	if p.dataLen >= MaxData {
		return
	}
	p.data[p.dataLen] = c
	p.dataLen += 1
}

// End closes the string and returns the accumulated command, nil when no
// string was being accumulated. The returned command aliases the parser's
// buffer and is only valid until the next Reset.
func (p *Parser) End(terminator uint8) *Command {
	if !p.started {
		return nil
	}
	p.started = false
	return &Command{
		Data:       p.data[:p.dataLen],
		Terminator: terminator,
	}
}
