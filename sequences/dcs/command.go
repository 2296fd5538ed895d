// Package dcs models device control strings: a CSI-like header that opens a
// passthrough payload which runs until the string terminator.
package dcs

import (
	"fmt"
	"io"
	"strconv"

	"github.com/hnimtadd/vtwire/ansi"
)

// Hook is the header of one device control string, delivered when the final
// byte of the header arrives. The payload bytes that follow are delivered
// one at a time through PutHandler until the string is unhooked.
type Hook struct {
	Intermediates []uint8
	Params        []uint16
	Final         uint8
}

func (h *Hook) String() string {
	return fmt.Sprintf("DCS %v %v %v", h.Intermediates, h.Params, h.Final)
}

// Encode writes the header back to w in wire form: ESC 'P', private markers,
// parameters, intermediates and the final byte. The payload and terminator
// are not part of the header, use EncodePassthrough to write a whole string.
func (h *Hook) Encode(w io.Writer) error {
	buf := []uint8{ansi.C0.ESC, 'P'}
	for _, in := range h.Intermediates {
		if in >= 0x3C && in <= 0x3F {
			buf = append(buf, in)
		}
	}
	for i, param := range h.Params {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendUint(buf, uint64(param), 10)
	}
	for _, in := range h.Intermediates {
		if in >= 0x20 && in <= 0x2F {
			buf = append(buf, in)
		}
	}
	buf = append(buf, h.Final)
	_, err := w.Write(buf)
	return err
}

// EncodePassthrough writes the complete device control string: the header,
// the payload and the closing ST.
func (h *Hook) EncodePassthrough(w io.Writer, data []uint8) error {
	if err := h.Encode(w); err != nil {
		return err
	}
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := w.Write([]uint8{ansi.C0.ESC, '\\'})
	return err
}
