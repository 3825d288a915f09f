// Package parse parses value grammar text into IR nodes.
//
// # Usage
//
//	// parse the value of "position = Vector2(1, 2)" starting at offset 11
//	node, end, err := parse.Value(src, 11)
//
//	// the whole input is one value
//	node, err := parse.Parse([]byte(`[1, "two", &"three"]`))
//
//	// a whitespace separated sequence of values
//	nodes, err := parse.ParseMulti(data)
//
// # Grammar
//
// Alternatives are tried in a fixed order and the first match wins:
//
//	value      := list | typedArray | dict | typedDict | object | primitive
//	list       := '[' [ value { ',' value } [ ',' ] ] ']'
//	typedArray := ident '[' type ']' '(' ( list | [ value { ',' value } ] ) ')'
//	dict       := '{' [ value ':' value { ',' value ':' value } ] '}'
//	typedDict  := ident '[' type ',' type ']' '(' dict ')'
//	object     := ident '(' [ value { ',' value } ] ')'
//	type       := object | ident
//	primitive  := 'null' | 'true' | 'false' | string | '&' string | number
//
// typedArray and typedDict share the head ident '[' ... ']' '(' and are
// parsed by one production which reads the head once.  A typed array
// body holding a single list is the bracketed form.  No other pair of
// alternatives shares a prefix longer than one token, so nothing is
// parsed twice.
//
// Text after a value is never needed to accept it.  A token that cannot
// be tokenized only matters if the parse fails there.
//
// Object-calls are reduced through an ir.Registry (ir.Default unless
// WithRegistry is given).  A constructor error ends the parse.
//
// # Errors
//
// A mismatch is reported as a *SyntaxError at the furthest token any
// alternative reached, together with the set of tokens that would have
// been accepted there.
//
// # Related Packages
//
//   - github.com/godot-format/gdvalue/ir - IR representation
//   - github.com/godot-format/gdvalue/encode - Encode IR to text
//   - github.com/godot-format/gdvalue/token - Tokenization
package parse
