/*
Control sequences are how a program drives its terminal: anything beyond
printing text, from cursor motion to window titles, is requested in-band.

The program has a single channel for all of it, the bytes it writes to the
pty. Plain text and commands share that stream, and commands are set apart
by control syntax. Most of the syntax opens with the escape byte (0x1B),
which is why the family as a whole often goes by escape codes.

The syntax has grown into several distinct families:

Control Characters: tokenized
Escape Sequences: tokenized
CSI Sequences ("Control Sequence Introducer"): tokenized
OSC Sequences ("Operating System Command"): tokenized
DCS Sequences ("Device Control Sequence"): tokenized
SOS Sequences ("Start Of String"): not tokenized
PM Sequences ("Privacy Message"): not tokenized
APC Sequences ("Application Program Command"): not tokenized

vtwire tokenizes the first five. Escape, CSI, OSC and DCS sequences become
typed values in the subpackages here, each able to write itself back to the
wire byte-exactly; control characters are dispatched as the bytes they are.
None of it assigns meaning: what a sequence does is entirely the business of
the handler it is dispatched to.
*/
package sequences
