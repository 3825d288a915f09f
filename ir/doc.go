// Package ir provides the value tree for the engine's text scene and
// resource value grammar.
//
// # Overview
//
// Every value which can appear on the right hand side of a property
// assignment is represented as an *ir.Node.  Parsing produces a tree of
// nodes (see package parse), and encoding renders a tree back to text
// (see package encode).  The IR contains no position information from
// input documents, making it purely semantic.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
//   - NullType: null
//   - BoolType: true / false in Bool
//   - NumberType: Int64 for integers, Float64 for decimals, Number as a
//     literal fallback for integers which do not fit an int64
//   - StringType: "text" in String
//   - StringNameType: &"text" in String
//   - ListType: [a, b] items in Values
//   - DictType: { k: v } keys in Fields, values in Values, in order
//   - ObjectType: Name(a, b) arguments in Values
//   - TypedArrayType: Name[T]([a, b]) the annotation T in Params[0],
//     items in Values
//   - TypedDictType: Name[K, V]({ k: v }) annotations in Params, entries
//     as for DictType
//   - IdentType: a bare identifier in Name, only used in Params
//
// # Objects and the Registry
//
// An object-call Name(args...) is reduced through a Registry.  Registered
// names validate their arguments and may reject them with a
// *ConstructionError.  Unregistered names always produce a generic
// ObjectType node carrying the name and arguments verbatim, so types the
// library does not model are carried forward unchanged.
//
// The builtin entries are Vector2, Vector3, Color, NodePath, ExtResource
// and SubResource.  Each has a view type (Vector2, Color, ...) whose named
// accessors read and write the positional arguments of the underlying
// node:
//
//	v, _ := ir.AsVector2(node)
//	v.SetX(3)          // node.Values[0] is now 3.0
//
// # Comparison and Hashing
//
// Nodes are compared structurally:
//
//	equal := ir.Equal(a, b)
//	order := ir.Compare(a, b)
//
// Order matters in every container, including dictionaries.  Numbers
// compare by value.  Hash is consistent with Equal.
//
// # Thread Safety
//
// Node structures are not thread-safe.  A Registry is.
package ir
