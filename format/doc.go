// Package format names the text layouts the encoder can produce.
//
// Every layout parses back to the same value; they differ only in
// whitespace.  See package encode.
package format
