// Package dump renders a tokenized wire stream as a human readable
// transcript: one line per event with the event's wire bytes alongside, plus
// an aggregate summary. It is the backend of the vtdump command.
package dump

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/unicode"

	"github.com/hnimtadd/vtwire/ansi"
	"github.com/hnimtadd/vtwire/handler"
	"github.com/hnimtadd/vtwire/logger"
	"github.com/hnimtadd/vtwire/sequences"
	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
	"github.com/hnimtadd/vtwire/utils"
)

// Width of the description column. Descriptions carry user text whose
// display width varies, padding goes by display width so the wire column
// stays aligned.
const descWidth = 44

var _ handler.Handler = (*Recorder)(nil)

// Recorder implements every stream callback and writes one transcript line
// per event. Consecutive printable codepoints coalesce into a single text
// line, flushed when any other event arrives.
type Recorder struct {
	w      io.Writer
	logger logger.Logger

	// Pending printable run, re-encoded as UTF-8.
	run []uint8

	// Open device control string, nil outside hook/unhook.
	hook     *dcs.Hook
	hookData []uint8

	prints    int
	executes  int
	escapes   int
	controls  int
	osCmds    int
	deviceCmd int

	escSeen map[uint64]*seenCount
	csiSeen map[uint64]*seenCount
	oscSeen map[uint64]*seenCount

	err error
}

// seenCount tallies one distinct sequence. The display string is captured at
// dispatch time because dispatched commands alias tokenizer buffers.
type seenCount struct {
	display string
	n       int
}

func tally(seen map[uint64]*seenCount, key uint64, display string) {
	if count, ok := seen[key]; ok {
		count.n++
		return
	}
	seen[key] = &seenCount{display: display, n: 1}
}

func NewRecorder(w io.Writer, log logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{
		w:       w,
		logger:  log,
		escSeen: map[uint64]*seenCount{},
		csiSeen: map[uint64]*seenCount{},
		oscSeen: map[uint64]*seenCount{},
	}
}

func (r *Recorder) Print(cp uint32) {
	r.run = utf8.AppendRune(r.run, rune(cp))
	r.prints++
}

func (r *Recorder) Execute(c uint8) {
	r.flushRun()
	r.line("ctrl", ansi.String(c), []uint8{c})
	r.executes++
}

func (r *Recorder) Esc(sequence esc.Sequence) {
	r.flushRun()
	description := sequence.String()
	r.line("esc", description, encodeWire(sequence))
	r.escapes++
	if sequence.Type == esc.SequenceTypeCode {
		tally(r.escSeen, sequence.Hash(), description)
	}
}

func (r *Recorder) EscRaw(command *esc.Command) {
	r.flushRun()
	r.line("esc", command.String(), encodeWire(command))
	r.escapes++
}

func (r *Recorder) CSI(command *csi.Command) {
	r.flushRun()
	description := command.String()
	r.line("csi", description, encodeWire(command))
	r.controls++
	tally(r.csiSeen, command.Hash(), description)
}

func (r *Recorder) OSC(command *osc.Command) {
	r.flushRun()
	description := fmt.Sprintf(
		"OSC %q %s",
		r.printable(command.Data),
		ansi.String(command.Terminator),
	)
	r.line("osc", description, encodeWire(command))
	r.osCmds++
	tally(r.oscSeen, command.Hash(), description)
}

func (r *Recorder) DCSHook(hook *dcs.Hook) {
	r.flushRun()
	// The hook aliases tokenizer buffers that the next sequence reuses,
	// the copy has to happen now.
	r.hook = &dcs.Hook{
		Intermediates: slices.Clone(hook.Intermediates),
		Params:        slices.Clone(hook.Params),
		Final:         hook.Final,
	}
	r.hookData = r.hookData[:0]
}

func (r *Recorder) DCSPut(c uint8) {
	r.hookData = append(r.hookData, c)
}

func (r *Recorder) DCSUnhook() {
	if r.hook == nil {
		r.logger.Warn("unhook without a hooked device control string")
		return
	}
	var wire bytes.Buffer
	err := r.hook.EncodePassthrough(&wire, r.hookData)
	utils.Assert(err == nil)

	description := fmt.Sprintf("%v %q", r.hook, r.printable(r.hookData))
	r.line("dcs", description, wire.Bytes())
	r.deviceCmd++
	r.hook = nil
}

// Flush writes any pending text line and reports the first write error the
// recorder ran into.
func (r *Recorder) Flush() error {
	r.flushRun()
	return r.err
}

// Summary flushes and appends an aggregate block: event totals, then the
// distinct sequences of each family ranked by how often they appeared.
func (r *Recorder) Summary() error {
	r.flushRun()

	r.emit("summary\n")
	r.emit("  text  %d codepoints\n", r.prints)
	r.emit("  ctrl  %d\n", r.executes)
	r.emit("  esc   %d\n", r.escapes)
	r.emit("  csi   %d\n", r.controls)
	r.emit("  osc   %d\n", r.osCmds)
	r.emit("  dcs   %d\n", r.deviceCmd)

	r.emitRanked("recognized escapes", r.escSeen)
	r.emitRanked("control sequences", r.csiSeen)
	r.emitRanked("operating system commands", r.oscSeen)
	return r.err
}

func (r *Recorder) emitRanked(title string, seen map[uint64]*seenCount) {
	if len(seen) == 0 {
		return
	}
	r.emit("  %s\n", title)
	counts := make([]*seenCount, 0, len(seen))
	for _, count := range seen {
		counts = append(counts, count)
	}
	slices.SortFunc(counts, func(a, b *seenCount) int {
		if a.n != b.n {
			return cmp.Compare(b.n, a.n)
		}
		return cmp.Compare(a.display, b.display)
	})
	for _, count := range counts {
		r.emit("    %3dx %s\n", count.n, count.display)
	}
}

func (r *Recorder) flushRun() {
	if len(r.run) == 0 {
		return
	}
	r.line("text", fmt.Sprintf("%q", r.run), r.run)
	r.run = r.run[:0]
}

// printable replaces ill-formed bytes in payload data so string payloads can
// be quoted into the transcript safely.
func (r *Recorder) printable(data []uint8) string {
	dec := unicode.UTF8.NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		r.logger.Warn("payload not decodable", "err", err)
		return string(data)
	}
	return string(decoded)
}

func (r *Recorder) line(kind, description string, wire []uint8) {
	pad := descWidth - dw.StringWidth(description)
	if pad < 1 {
		pad = 1
	}
	r.emit("%-5s %s%*s% x\n", kind, description, pad, "", wire)
}

func (r *Recorder) emit(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.err = err
	}
}

func encodeWire(sequence sequences.Encodable) []uint8 {
	var buf bytes.Buffer
	err := sequence.Encode(&buf)
	utils.Assert(err == nil)
	return buf.Bytes()
}
