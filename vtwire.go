// Package vtwire tokenizes terminal wire data into typed sequences and
// encodes typed sequences back into wire data. It never assigns meaning to
// what it carries, interpretation belongs to the handler.
package vtwire

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/hnimtadd/vtwire/logger"
	"github.com/hnimtadd/vtwire/sequences"
	"github.com/hnimtadd/vtwire/stream"
)

// Decoder feeds terminal output through the tokenizer and calls back into
// the configured handler. It implements io.Writer so pty output can be
// copied into it directly.
type Decoder struct {
	// The stream tokenizer. This parses the stream of escape codes and so
	// on from the wire and calls callbacks on the handler.
	stream *stream.Stream

	logger logger.Logger
}

type Options struct {
	// Handler receives the tokenized events. It only has to implement the
	// callback interfaces it cares about, see the handler package.
	Handler any

	Logger logger.Logger
}

func NewDecoder(opts Options) *Decoder {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Decoder{
		stream: stream.NewStream(opts.Handler, log),
		logger: log,
	}
}

// Write tokenizes a buffer of wire data. This is the manual API that users
// can call with pty data.
func (d *Decoder) Write(p []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while decoding", "panic", r, "stack", string(debug.Stack()))
			n = 0
			err = fmt.Errorf("panic while decoding: %v", r)
		}
	}()
	d.stream.NextSlice(p)
	return len(p), nil
}

// Process tokenizes a single byte.
//
// NOTE, this implementation is helpful for debugging as you can see the
// processing of each byte, but it is not as efficient as the slice version.
//
// Consider Write for better performance.
func (d *Decoder) Process(c byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while decoding", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic while decoding: %v", r)
		}
	}()
	d.stream.Next(c)
	return nil
}

// Encoder writes typed sequences back into wire form.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one sequence in its wire form. The only errors are write
// errors from the underlying writer, returned as is.
func (e *Encoder) Encode(sequence sequences.Encodable) error {
	return sequence.Encode(e.w)
}
