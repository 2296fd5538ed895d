package sequences

import "io"

// Encodable is implemented by every typed control sequence that can write
// itself back to the wire in its original byte form.
type Encodable interface {
	Encode(w io.Writer) error
}
