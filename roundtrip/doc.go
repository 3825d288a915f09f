// Package roundtrip checks that documents and values survive being
// parsed and written back out.
//
// Verify compares a source text with the text its Loader produces after
// normalizing both, and reports a context diff when they differ.
// CheckValue encodes a value, parses the result and compares the two
// values structurally.
//
// A Loader for whole resource files lives outside this module; the
// ValueLoader here handles documents which are plain sequences of
// values.
package roundtrip
