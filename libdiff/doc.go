// Package libdiff compares documents and values for round-trip checks.
//
// # Usage
//
//	// Compare two texts line by line
//	d := libdiff.DiffLines(libdiff.Normalize(src, false), libdiff.Normalize(out, false))
//	if !d.Equal() {
//		d.Format(os.Stdout, name, "PARSED FILE")
//	}
//
//	// Compare two values structurally
//	for _, c := range libdiff.DiffNodes(a, b) {
//		fmt.Println(c.String())
//	}
//
// Both diffs align sequences with github.com/sergi/go-diff by mapping
// each line or item to a rune.
//
// # Related Packages
//
//   - github.com/godot-format/gdvalue/ir - value representation
//   - github.com/godot-format/gdvalue/roundtrip - round-trip verifier
package libdiff
