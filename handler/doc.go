// Provide handler types for tokenized control sequences
//
// Since a consumer might not care about every kind of sequence, a caller of
// stream.Stream only needs to implement the handlers it wants to
//
// I ported these handlers into separate interfaces and use type assertion to
// detect if a specific handler is implemented
//
// Handlers receive sequences in typed form and decide for themselves what a
// sequence means, nothing here assigns any semantics
//
// E.g:
//
// - handler.EscHandler with Esc method
//
// - handler.CSIHandler with CSI method
package handler
