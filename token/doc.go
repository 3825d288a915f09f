// Package token provides tokenization support for the value grammar.
//
// A [Tokenizer] scans lazily from an offset within an in-memory document,
// so a value embedded in a larger text can be tokenized without looking
// past its end.  [Tokenize] is a convenience for tokenizing whole inputs.
//
// Positions ([Pos]) resolve to 1-based lines and columns through the
// [PosDoc] of the document they belong to.
package token
