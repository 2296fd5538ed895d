package ansi

type c1 struct {
	IND uint8 // IND moves the cursor down one line, scrolling if needed.
	NEL uint8 // NEL is the next line character.
	HTS uint8 // HTS sets a horizontal tab stop at the cursor column.
	RI  uint8 // RI moves the cursor up one line, scrolling if needed.
	SS2 uint8 // SS2 is single shift G2.
	SS3 uint8 // SS3 is single shift G3.
	DCS uint8 // DCS introduces a device control string.
	SOS uint8 // SOS introduces a start of string sequence.
	CSI uint8 // CSI introduces a control sequence.
	ST  uint8 // ST terminates OSC, DCS, SOS, PM and APC strings.
	OSC uint8 // OSC introduces an operating system command.
	PM  uint8 // PM introduces a privacy message.
	APC uint8 // APC introduces an application program command.
}

// C1 (8-bit) control characters from ANSI.
//
// Each of these is the one-byte form of an ESC Fe sequence, e.g. 0x9B is
// ESC '['. The tokenizer accepts both forms on input:
// https://vt100.net/docs/vt510-rm/chapter4.html
var C1 = c1{
	IND: 0x84,
	NEL: 0x85,
	HTS: 0x88,
	RI:  0x8D,
	SS2: 0x8E,
	SS3: 0x8F,
	DCS: 0x90,
	SOS: 0x98,
	CSI: 0x9B,
	ST:  0x9C,
	OSC: 0x9D,
	PM:  0x9E,
	APC: 0x9F,
}
