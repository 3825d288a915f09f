// Package encode renders IR nodes as value grammar text.
//
// # Usage
//
//	node := ir.NewVector2(1, 2).Node
//	s, err := encode.String(node)          // "Vector2(1.0, 2.0)"
//
//	// engine 3.x layout, colored for a terminal
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.Godot3Format),
//	    encode.EncodeColors(encode.NewColors()))
//
// The output of every format parses back to a tree equal to the input.
// Floats are always written so they read back as floats, and a typed
// array keeps the bracketing it was parsed with.
//
// # Related Packages
//
//   - github.com/godot-format/gdvalue/ir - IR representation
//   - github.com/godot-format/gdvalue/parse - Parse text to IR
//   - github.com/godot-format/gdvalue/format - Output layouts
package encode
