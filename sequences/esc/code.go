package esc

import (
	"fmt"

	"github.com/hnimtadd/vtwire/utils"
)

// Code identifies a simple escape sequence the recognition table knows: ESC
// followed by at most one intermediate byte and a final byte. The set covers
// the sequences terminals exchange in practice; anything else stays a raw
// Sequence.
type Code int

const (
	// RIS - full reset, return the terminal to its initial state.
	CodeFullReset Code = iota
	// IND - index. Note that for Vt52 and Windows 10 ANSI consoles,
	// this is interpreted as cursor up.
	CodeIndex
	// NEL - next line.
	CodeNextLine
	// Move the cursor to the bottom left corner of the screen.
	CodeCursorPositionLowerLeft
	// HTS - horizontal tab set.
	CodeHorizontalTabSet
	// RI - reverse index, move the cursor up one line keeping the column,
	// scrolling the buffer if necessary.
	CodeReverseIndex
	// SS2 - single shift of the G2 character set, affects next character only.
	CodeSingleShiftG2
	// SS3 - single shift of the G3 character set, affects next character only.
	CodeSingleShiftG3
	// SPA - start of guarded area.
	CodeStartOfGuardedArea
	// EPA - end of guarded area.
	CodeEndOfGuardedArea
	// SOS - start of string.
	CodeStartOfString
	// DECID - return terminal ID (obsolete form of CSI c, aka DA).
	CodeReturnTerminalID
	// ST - string terminator.
	CodeStringTerminator
	// PM - privacy message.
	CodePrivacyMessage
	// APC - application program command.
	CodeApplicationProgramCommand
	// DECSC - save cursor position.
	CodeDECSaveCursorPosition
	// DECRC - restore saved cursor position.
	CodeDECRestoreCursorPosition
	// DECPAM - application keypad.
	CodeDECApplicationKeypad
	// DECPNM - normal keypad.
	CodeDECNormalKeypad
	// Designate character set: DEC line drawing.
	CodeDECLineDrawing
	// Designate character set: US ASCII.
	CodeASCIICharacterSet

	// The codes below are typically sent by the terminal when keys are
	// pressed and application cursor/keypad mode is on.
	CodeApplicationModeArrowUpPress
	CodeApplicationModeArrowDownPress
	CodeApplicationModeArrowRightPress
	CodeApplicationModeArrowLeftPress
	CodeApplicationModeHomePress
	CodeApplicationModeEndPress
	CodeF1Press
	CodeF2Press
	CodeF3Press
	CodeF4Press
)

func (c Code) String() string {
	switch c {
	case CodeFullReset:
		return "FullReset"
	case CodeIndex:
		return "Index"
	case CodeNextLine:
		return "NextLine"
	case CodeCursorPositionLowerLeft:
		return "CursorPositionLowerLeft"
	case CodeHorizontalTabSet:
		return "HorizontalTabSet"
	case CodeReverseIndex:
		return "ReverseIndex"
	case CodeSingleShiftG2:
		return "SingleShiftG2"
	case CodeSingleShiftG3:
		return "SingleShiftG3"
	case CodeStartOfGuardedArea:
		return "StartOfGuardedArea"
	case CodeEndOfGuardedArea:
		return "EndOfGuardedArea"
	case CodeStartOfString:
		return "StartOfString"
	case CodeReturnTerminalID:
		return "ReturnTerminalID"
	case CodeStringTerminator:
		return "StringTerminator"
	case CodePrivacyMessage:
		return "PrivacyMessage"
	case CodeApplicationProgramCommand:
		return "ApplicationProgramCommand"
	case CodeDECSaveCursorPosition:
		return "DECSaveCursorPosition"
	case CodeDECRestoreCursorPosition:
		return "DECRestoreCursorPosition"
	case CodeDECApplicationKeypad:
		return "DECApplicationKeypad"
	case CodeDECNormalKeypad:
		return "DECNormalKeypad"
	case CodeDECLineDrawing:
		return "DECLineDrawing"
	case CodeASCIICharacterSet:
		return "ASCIICharacterSet"
	case CodeApplicationModeArrowUpPress:
		return "ApplicationModeArrowUpPress"
	case CodeApplicationModeArrowDownPress:
		return "ApplicationModeArrowDownPress"
	case CodeApplicationModeArrowRightPress:
		return "ApplicationModeArrowRightPress"
	case CodeApplicationModeArrowLeftPress:
		return "ApplicationModeArrowLeftPress"
	case CodeApplicationModeHomePress:
		return "ApplicationModeHomePress"
	case CodeApplicationModeEndPress:
		return "ApplicationModeEndPress"
	case CodeF1Press:
		return "F1Press"
	case CodeF2Press:
		return "F2Press"
	case CodeF3Press:
		return "F3Press"
	case CodeF4Press:
		return "F4Press"
	default:
		return "Unknown"
	}
}

// packedKey folds a byte pair into its recognition key. A pair with no
// intermediate keys on the final byte alone, so those keys stay below 1<<8;
// a pair with an intermediate shifts it into the high byte. Both lookup
// directions and the table itself derive their keys from this one function.
func packedKey(intermediate *uint8, control uint8) uint16 {
	if intermediate == nil {
		return uint16(control)
	}
	return uint16(*intermediate)<<8 | uint16(control)
}

func solo(control uint8) uint16 {
	return packedKey(nil, control)
}

func pair(intermediate uint8, control uint8) uint16 {
	return packedKey(&intermediate, control)
}

// codeKeys maps every Code to the packed key of its byte pair. This is the
// single source of truth for recognition, keep it in sync with the Code list
// above.
var codeKeys = map[Code]uint16{
	CodeFullReset:                 solo('c'),
	CodeIndex:                     solo('D'),
	CodeNextLine:                  solo('E'),
	CodeCursorPositionLowerLeft:   solo('F'),
	CodeHorizontalTabSet:          solo('H'),
	CodeReverseIndex:              solo('M'),
	CodeSingleShiftG2:             solo('N'),
	CodeSingleShiftG3:             solo('O'),
	CodeStartOfGuardedArea:        solo('V'),
	CodeEndOfGuardedArea:          solo('W'),
	CodeStartOfString:             solo('X'),
	CodeReturnTerminalID:          solo('Z'),
	CodeStringTerminator:          solo('\\'),
	CodePrivacyMessage:            solo('^'),
	CodeApplicationProgramCommand: solo('_'),

	CodeDECSaveCursorPosition:    solo('7'),
	CodeDECRestoreCursorPosition: solo('8'),
	CodeDECApplicationKeypad:     solo('='),
	CodeDECNormalKeypad:          solo('>'),

	CodeDECLineDrawing:    pair('(', '0'),
	CodeASCIICharacterSet: pair('(', 'B'),

	CodeApplicationModeArrowUpPress:    pair('O', 'A'),
	CodeApplicationModeArrowDownPress:  pair('O', 'B'),
	CodeApplicationModeArrowRightPress: pair('O', 'C'),
	CodeApplicationModeArrowLeftPress:  pair('O', 'D'),
	CodeApplicationModeHomePress:       pair('O', 'H'),
	CodeApplicationModeEndPress:        pair('O', 'F'),
	CodeF1Press:                        pair('O', 'P'),
	CodeF2Press:                        pair('O', 'Q'),
	CodeF3Press:                        pair('O', 'R'),
	CodeF4Press:                        pair('O', 'S'),
}

// keyCodes is the parse direction index, built once from codeKeys.
// Construction asserts key uniqueness, two codes sharing a packed key would
// make recognition ambiguous.
var keyCodes = func() map[uint16]Code {
	index := make(map[uint16]Code, len(codeKeys))
	for code, key := range codeKeys {
		_, collided := index[key]
		utils.Assert(
			!collided,
			fmt.Sprintf("escape byte pair 0x%04X registered twice", key),
		)
		index[key] = code
	}
	return index
}()

func codeFromKey(key uint16) (Code, bool) {
	code, ok := keyCodes[key]
	return code, ok
}

// keyFromCode recovers the packed key a Code was registered under. Codes
// produced by Parse always resolve, the ok result only guards hand-rolled
// Code values the table never held.
func keyFromCode(code Code) (uint16, bool) {
	key, ok := codeKeys[code]
	return key, ok
}
