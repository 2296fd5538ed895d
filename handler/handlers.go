package handler

import (
	"github.com/hnimtadd/vtwire/sequences/csi"
	"github.com/hnimtadd/vtwire/sequences/dcs"
	"github.com/hnimtadd/vtwire/sequences/esc"
	"github.com/hnimtadd/vtwire/sequences/osc"
)

type (
	// PrintHandler receives decoded codepoints that are plain text.
	PrintHandler interface {
		Print(cp uint32)
	}

	// ExecuteHandler receives C0 and C1 control functions. What a control
	// function does is up to the handler.
	ExecuteHandler interface {
		Execute(c uint8)
	}

	// EscHandler receives simple escape sequences in their typed form.
	EscHandler interface {
		Esc(sequence esc.Sequence)
	}

	// EscRawHandler receives escape sequences carrying two or more
	// intermediates. Those have no typed form, without this handler the
	// stream drops them.
	EscRawHandler interface {
		EscRaw(command *esc.Command)
	}

	// CSIHandler receives tokenized control sequences.
	CSIHandler interface {
		CSI(command *csi.Command)
	}

	// OSCHandler receives tokenized operating system commands.
	OSCHandler interface {
		OSC(command *osc.Command)
	}

	// Handler aggregates every callback the stream can deliver. Implement
	// it to consume a stream completely, or implement just the pieces you
	// care about.
	Handler interface {
		PrintHandler
		ExecuteHandler
		EscHandler
		EscRawHandler
		CSIHandler
		OSCHandler
		dcs.Handler
	}
)
