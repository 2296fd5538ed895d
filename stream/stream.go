package stream

import (
	"slices"

	"github.com/hnimtadd/vtwire/ansi"
	"github.com/hnimtadd/vtwire/handler"
	"github.com/hnimtadd/vtwire/logger"
	"github.com/hnimtadd/vtwire/parser"
	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
	"github.com/hnimtadd/vtwire/utils"
)

// This is the maximum number of codepoints we can decode
// at one time for this function call. This is somewhat arbitrary
// so if someone can demonstrate a better number then we can switch.
const MaxCodePoints = 4096

// Flip this to true when you want verbose debug output for
// debugging terminal stream issues. In addition to louder
// output this will also disable the chunk optimizations in
// order to make it easier to see every byte.
const debug = false

// Stream tokenizes a stream of tty bytes and calls back into an
// arbitrary handler value. The handler only has to implement the
// callback interfaces it cares about; sequences with no matching
// callback are logged and skipped. Stream never assigns meaning to
// what it tokenizes.
//
// To figure out which callbacks are available, see the handler and
// sequences/dcs packages.
type Stream struct {
	handler     any
	parser      *parser.Parser
	utf8Decoder *UTF8Decoder

	logger logger.Logger
}

func NewStream(handler any, log logger.Logger) *Stream {
	if log == nil {
		log = logger.Nop()
	}
	p := parser.NewParser()
	p.SetLogger(log)
	return &Stream{
		handler:     handler,
		parser:      p,
		utf8Decoder: NewUTF8Decoder(),
		logger:      log,
	}
}

// NextSlice processes a string of characters.
func (s *Stream) NextSlice(input []uint8) {
	if debug {
		for c := range slices.Values(input) {
			s.Next(c)
		}
		return
	}
	cpBuf := make([]uint32, MaxCodePoints)
	// split the input into chunks that fit into cpBuf
	i := 0
	for {
		bufLen := min(len(cpBuf), len(input)-i)
		s.nextSliceCapped(input[i:i+bufLen], cpBuf)
		i += bufLen
		if i >= len(input) {
			break
		}
	}
}

func (s *Stream) nextSliceCapped(input []uint8, cpBuf []uint32) {
	utils.Assert(len(input) <= len(cpBuf))
	offset := 0

	// Drain any partial UTF-8 sequence left over from the last chunk.
	for s.utf8Decoder.state != stateUTF8Accept {
		if offset >= len(input) {
			break
		}
		s.nextUtf8(input[offset])
		offset += 1
	}
	if offset >= len(input) {
		return
	}

	// If we're not in the ground state then we process until we are. This
	// can happen if the last chunk of input put us in the middle of a control
	// sequence.
	offset += s.consumeUntilGround(input[offset:])
	if offset >= len(input) {
		return
	}
	offset += s.consumeAllEscapes(input[offset:])

	// If we're in the ground state then we can process the input
	// until we see an ESC (0x1B) since all other characters up to that point
	// are just UTF-8 characters
	for (s.parser.State == parser.StateGround) && (offset < len(input)) {
		decoded, consumed := s.utf8Decoder.DecodeUntilControlSeq(input[offset:], cpBuf)
		for cp := range slices.Values(cpBuf[:decoded]) {
			s.handleCodepoint(cp)
		}
		// Consume the bytes we just processed.
		offset += consumed
		if offset >= len(input) {
			return
		}

		// Two cases leave us short of the chunk end: the decoder
		// refused the byte here, or an ESC arrived. An ESC landing in
		// the middle of a partial UTF-8 sequence has to abort it
		// first, so both the refused byte and that ESC go through the
		// scalar path, which handles the replacement-then-retry dance.
		if input[offset] != ansi.C0.ESC || s.utf8Decoder.state != stateUTF8Accept {
			s.nextUtf8(input[offset])
			offset += 1
			offset += s.consumeUntilGround(input[offset:])
			continue
		}

		// Process control sequences until we run out.
		offset += s.consumeAllEscapes(input[offset:])
	}
}

// Next processes a single byte. This is necessarily a scalar operation,
// prefer NextSlice when multiple bytes are available at once.
func (s *Stream) Next(c uint8) {
	// The scalar path can be responsible for decoding UTF-8.
	switch s.parser.State {
	case parser.StateGround:
		s.nextUtf8(c)
	default:
		s.nextNonUtf8(c)
	}
}

// nextUtf8 processes a single UTF-8 character and prints as necessary.
//
// This assumes we're in the UTF-8 decoding state. If we may not
// be in the UTF-8 decoding state call NextSlice or Next.
func (s *Stream) nextUtf8(c uint8) {
	utils.Assert(s.parser.State == parser.StateGround)
	s.logger.Debug("nextUtf8", "code", ansi.String(c))

	cp, generated, consumed := s.utf8Decoder.Next(c)
	if generated {
		s.handleCodepoint(cp)
	}

	if !consumed {
		cp, generated, consumed := s.utf8Decoder.Next(c)

		// It should be impossible for the utf8Decoder
		// to not consume the byte twice in a row.
		utils.Assert(consumed)
		if generated {
			s.handleCodepoint(cp)
		}
	}
}

// To be called whenever the utf-8 decoder produces a codepoint.
//
// This function is abstracted this way to handle the case where
// the decoder emits a 0x1B after rejecting an ill-formed sequence.
func (s *Stream) handleCodepoint(cp uint32) {
	if cp == uint32(ansi.C0.ESC) {
		s.nextNonUtf8(uint8(cp))
		return
	}
	// C0 controls take the execute path, the same split the parser
	// table makes in the ground state.
	if cp < 0x20 {
		s.execute(uint8(cp))
		return
	}
	s.print(cp)
}

// Process the next character and call any callbacks if necessary.
//
// This assumes that we're not in the UTF-8 decoding state. If
// we may be in the UTF-8 decoding state call NextSlice or Next.
func (s *Stream) nextNonUtf8(c uint8) {
	utils.Assert(s.parser.State != parser.StateGround || c == ansi.C0.ESC)
	s.logger.Debug("nextNonUtf8", "code", ansi.String(c))

	actions := s.parser.Next(c)
	for action := range slices.Values(actions[:]) {
		if action == nil {
			continue
		}
		s.logger.Debug("action", "action", action.String())
		switch action.Type {
		case parser.ActionPrint:
			s.print(uint32(action.PrintData))

		case parser.ActionExecute:
			s.execute(action.ExecuteData)

		case parser.ActionCSIDispatch:
			s.csiDispatch(action.CSIDispatchData)

		case parser.ActionESCDispatch:
			s.escDispatch(action.ESCDispatchData)

		case parser.ActionOSCEnd:
			switch {
			case action.OSCDispatchData != nil:
				s.oscDispatch(action.OSCDispatchData)
			default:
				s.logger.Warn("osc end carried no command")
				continue
			}

		case parser.ActionDCSHook:
			if action.DCSHookData == nil {
				s.logger.Warn("dcs hook carried no command")
				continue
			}
			if handler, implemented := s.handler.(dcs.HookHandler); implemented {
				handler.DCSHook(action.DCSHookData)
			}

		case parser.ActionDCSPut:
			if handler, implemented := s.handler.(dcs.PutHandler); implemented {
				handler.DCSPut(action.DCSPutData)
			}

		case parser.ActionDCSUnHook:
			if handler, implemented := s.handler.(dcs.UnhookHandler); implemented {
				handler.DCSUnhook()
			}
		}
	}
}

func (s *Stream) execute(c uint8) {
	if handler, implemented := s.handler.(handler.ExecuteHandler); implemented {
		handler.Execute(c)
		return
	}
	s.logger.Warn("unhandled execute", "code", ansi.String(c))
}

func (s *Stream) print(c uint32) {
	if handler, implemented := s.handler.(handler.PrintHandler); implemented {
		handler.Print(c)
		return
	}
	s.logger.Warn("unhandled print", "codepoint", c)
}

// escDispatch hands a completed two-byte escape to the handler. When
// the pair fits the recognized table shape it is delivered as a typed
// esc.Sequence, otherwise the raw command is offered instead. Commands
// with more intermediates than a Sequence can carry always take the
// raw route.
func (s *Stream) escDispatch(c *esc.Command) {
	if sequence, ok := c.Sequence(); ok {
		if handler, implemented := s.handler.(handler.EscHandler); implemented {
			handler.Esc(sequence)
			return
		}
	}
	if handler, implemented := s.handler.(handler.EscRawHandler); implemented {
		handler.EscRaw(c)
		return
	}
	s.logger.Warn("unhandled esc dispatch", "command", c)
}

func (s *Stream) csiDispatch(c *csi.Command) {
	if handler, implemented := s.handler.(handler.CSIHandler); implemented {
		handler.CSI(c)
		return
	}
	s.logger.Warn("unhandled csi dispatch", "command", c)
}

func (s *Stream) oscDispatch(c *osc.Command) {
	if handler, implemented := s.handler.(handler.OSCHandler); implemented {
		handler.OSC(c)
		return
	}
	s.logger.Warn("unhandled osc dispatch", "command", c)
}

// consumeUntilGround reads the stream until we got the ground state
// then return the number of bytes consumed
func (s *Stream) consumeUntilGround(input []uint8) int {
	offset := 0
	for s.parser.State != parser.StateGround {
		if offset >= len(input) {
			return len(input)
		}
		s.nextNonUtf8(input[offset])
		offset += 1
	}
	return offset
}

// Parse escape sequences back-to-back until none are left.
// Returns the number of bytes consumed from the provided input.
//
// Expects input to start with ansi ESC, use consumeUntilGround first
// if the stream is in the middle of an escape sequence.
func (s *Stream) consumeAllEscapes(input []uint8) int {
	offset := 0
	for input[offset] == ansi.C0.ESC {
		s.parser.State = parser.StateEscape
		s.parser.Clear()
		offset += 1
		offset += s.consumeUntilGround(input[offset:])
		if offset >= len(input) {
			return len(input)
		}
	}
	return offset
}
