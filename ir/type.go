package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	StringNameType
	ListType
	DictType
	ObjectType
	TypedArrayType
	TypedDictType
	// IdentType is a bare identifier. It only occurs as a type annotation
	// in the Params of typed containers.
	IdentType
)

var typeNames = map[Type]string{
	NullType:       "Null",
	BoolType:       "Bool",
	NumberType:     "Number",
	StringType:     "String",
	StringNameType: "StringName",
	ListType:       "List",
	DictType:       "Dict",
	ObjectType:     "Object",
	TypedArrayType: "TypedArray",
	TypedDictType:  "TypedDictionary",
	IdentType:      "Ident",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		StringNameType,
		ListType,
		DictType,
		ObjectType,
		TypedArrayType,
		TypedDictType,
		IdentType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, DictType, ObjectType, TypedArrayType, TypedDictType:
		return false
	default:
		return true
	}
}

// IsNamed reports whether nodes of type t carry a Name.
func (t Type) IsNamed() bool {
	switch t {
	case ObjectType, TypedArrayType, TypedDictType, IdentType:
		return true
	default:
		return false
	}
}
