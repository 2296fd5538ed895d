package vtwire

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
	"github.com/hnimtadd/vtwire/utils"
)

type captureHandler struct {
	prints    []rune
	executes  []uint8
	sequences []esc.Sequence
}

func (h *captureHandler) Print(cp uint32)    { h.prints = append(h.prints, rune(cp)) }
func (h *captureHandler) Execute(c uint8)    { h.executes = append(h.executes, c) }
func (h *captureHandler) Esc(s esc.Sequence) { h.sequences = append(h.sequences, s) }

func TestDecoderWrite(t *testing.T) {
	h := &captureHandler{}
	d := NewDecoder(Options{Handler: h})

	n, err := d.Write([]byte("ok\r\n\x1bc\x1b(0\x1bz"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)

	assert.Equal(t, []rune("ok"), h.prints)
	assert.Equal(t, []uint8{0x0D, 0x0A}, h.executes)
	assert.Equal(t, []esc.Sequence{
		esc.FromCode(esc.CodeFullReset),
		esc.FromCode(esc.CodeDECLineDrawing),
		{Type: esc.SequenceTypeRaw, Control: 'z'},
	}, h.sequences)
}

func TestDecoderProcess(t *testing.T) {
	h := &captureHandler{}
	d := NewDecoder(Options{Handler: h})

	for _, c := range []byte("\x1b7é") {
		require.NoError(t, d.Process(c))
	}
	assert.Equal(t, []esc.Sequence{esc.FromCode(esc.CodeDECSaveCursorPosition)}, h.sequences)
	assert.Equal(t, []rune("é"), h.prints)
}

func TestEncoderSequences(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder(&buf)

	require.NoError(t, e.Encode(esc.FromCode(esc.CodeDECApplicationKeypad)))
	require.NoError(t, e.Encode(esc.FromCode(esc.CodeF1Press)))
	require.NoError(t, e.Encode(&csi.Command{Params: []uint16{1, 31}, Final: 'm'}))
	require.NoError(t, e.Encode(&osc.Command{Data: []uint8("0;hi"), Terminator: 0x07}))

	assert.Equal(t, "\x1b=\x1bOP\x1b[1;31m\x1b]0;hi\x07", buf.String())
}

// reencoder writes every tokenized sequence straight back into a buffer.
// Dispatched commands alias tokenizer buffers that the next sequence reuses,
// encoding right away snapshots them. The two-byte ST that closes a string
// is reported both through the string's Terminator and as its own escape
// event, so the escape event is skipped to keep the output faithful.
type reencoder struct {
	buf  bytes.Buffer
	hook *dcs.Hook
	data []uint8
}

func (r *reencoder) Print(cp uint32) {}
func (r *reencoder) Execute(c uint8) {}

func (r *reencoder) Esc(s esc.Sequence) {
	if s == esc.FromCode(esc.CodeStringTerminator) {
		return
	}
	_ = s.Encode(&r.buf)
}

func (r *reencoder) EscRaw(c *esc.Command) { _ = c.Encode(&r.buf) }
func (r *reencoder) CSI(c *csi.Command)    { _ = c.Encode(&r.buf) }
func (r *reencoder) OSC(c *osc.Command)    { _ = c.Encode(&r.buf) }

func (r *reencoder) DCSHook(h *dcs.Hook) {
	r.hook = &dcs.Hook{
		Intermediates: slices.Clone(h.Intermediates),
		Params:        slices.Clone(h.Params),
		Final:         h.Final,
	}
	r.data = r.data[:0]
}

func (r *reencoder) DCSPut(c uint8) { r.data = append(r.data, c) }

func (r *reencoder) DCSUnhook() {
	if r.hook == nil {
		return
	}
	_ = r.hook.EncodePassthrough(&r.buf, r.data)
	r.hook = nil
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	input := "\x1bc" +
		"\x1b(0" +
		"\x1bz" +
		"\x1b[?1049h" +
		"\x1b[38:2:255m" +
		"\x1b]0;title\x07" +
		"\x1b]2;x\x1b\\" +
		"\x1bP1000$qok\x1b\\" +
		"\x1b8"

	r := &reencoder{}
	d := NewDecoder(Options{Handler: r})
	_, err := d.Write([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, input, r.buf.String())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	paramsSet := utils.NewStaticBitSet(2)
	paramsSet.Set(0)
	commands := []*csi.Command{
		{Final: 'H'},
		{Params: []uint16{4}, Final: 'A'},
		{Intermediates: []uint8{'?'}, Params: []uint16{2026}, Final: 'p'},
		{Params: []uint16{5, 2}, ParamsSet: paramsSet, Final: 'G'},
	}

	var wire bytes.Buffer
	e := NewEncoder(&wire)
	for _, command := range commands {
		require.NoError(t, e.Encode(command))
	}

	r := &reencoder{}
	d := NewDecoder(Options{Handler: r})
	_, err := d.Write(wire.Bytes())
	require.NoError(t, err)

	assert.Equal(t, wire.String(), r.buf.String())
}
