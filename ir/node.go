package ir

import (
	"errors"
	"strconv"
)

type Node struct {
	Type Type

	// Name of an object, typed container or identifier.
	Name string
	// Params holds the type annotations of typed containers.
	Params []*Node
	// Fields[i] is the key of Values[i] for dictionaries.
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	// Unbracketed marks a typed array whose items were written directly
	// inside the call parentheses. It does not take part in equality.
	Unbracketed bool
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Name = y.Name
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Unbracketed = y.Unbracketed
	dst.Params = cloneAll(y.Params)
	dst.Fields = cloneAll(y.Fields)
	dst.Values = cloneAll(y.Values)
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func cloneAll(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	res := make([]*Node, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumberLiteral keeps an integer literal which does not fit an int64.
func FromNumberLiteral(lit string) *Node {
	return &Node{
		Type:   NumberType,
		Number: lit,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromStringName(v string) *Node {
	return &Node{
		Type:   StringNameType,
		String: v,
	}
}

func Ident(name string) *Node {
	return &Node{
		Type: IdentType,
		Name: name,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ListType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = DictType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

// NewObject returns a generic object node. It does not consult the
// registry, see Construct for that.
func NewObject(name string, args ...*Node) *Node {
	if args == nil {
		args = []*Node{}
	}
	return &Node{
		Type:   ObjectType,
		Name:   name,
		Values: args,
	}
}

// NewTypedArray returns Array[elem]([items...]).  elem is an IdentType
// or ObjectType node.
func NewTypedArray(elem *Node, items ...*Node) *Node {
	return NewNamedTypedArray("Array", elem, items...)
}

func NewNamedTypedArray(name string, elem *Node, items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{
		Type:   TypedArrayType,
		Name:   name,
		Params: []*Node{elem},
		Values: items,
	}
}

// NewTypedDict returns Dictionary[key, val]({kvs...}).
func NewTypedDict(key, val *Node, kvs ...KeyVal) *Node {
	return NewNamedTypedDict("Dictionary", key, val, kvs...)
}

func NewNamedTypedDict(name string, key, val *Node, kvs ...KeyVal) *Node {
	res := FromKeyVals(kvs)
	res.Type = TypedDictType
	res.Name = name
	res.Params = []*Node{key, val}
	return res
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Arg returns the i'th positional argument, list item or dict value, or
// nil if out of range.
func (y *Node) Arg(i int) *Node {
	if i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetArg replaces the i'th positional slot.  It panics if i is out of
// range, slots are never added or removed through SetArg.
func (y *Node) SetArg(i int, v *Node) {
	y.Values[i] = v
}

// Get returns the value associated with the first key equal to key in a
// dictionary, or nil.
func Get(y *Node, key *Node) *Node {
	for i, f := range y.Fields {
		if Equal(f, key) {
			return y.Values[i]
		}
	}
	return nil
}

// GetString is Get with a string key.
func GetString(y *Node, key string) *Node {
	for i, f := range y.Fields {
		if f.Type == StringType && f.String == key {
			return y.Values[i]
		}
	}
	return nil
}

// ElementType returns the element type annotation of a typed array.
func (y *Node) ElementType() *Node {
	if y.Type != TypedArrayType || len(y.Params) != 1 {
		return nil
	}
	return y.Params[0]
}

// KeyType and ValueType return the annotations of a typed dictionary.
func (y *Node) KeyType() *Node {
	if y.Type != TypedDictType || len(y.Params) != 2 {
		return nil
	}
	return y.Params[0]
}

func (y *Node) ValueType() *Node {
	if y.Type != TypedDictType || len(y.Params) != 2 {
		return nil
	}
	return y.Params[1]
}

// Float returns the numeric value of a number node as a float64.
func (y *Node) Float() (float64, bool) {
	if y == nil || y.Type != NumberType {
		return 0, false
	}
	switch {
	case y.Int64 != nil:
		return float64(*y.Int64), true
	case y.Float64 != nil:
		return *y.Float64, true
	case y.Number != "":
		f, err := strconv.ParseFloat(y.Number, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// IsInteger reports whether a number node holds an integer literal.
func (y *Node) IsInteger() bool {
	return y.Type == NumberType && (y.Int64 != nil || (y.Float64 == nil && y.Number != ""))
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, ys := range [][]*Node{y.Params, y.Fields, y.Values} {
			for _, yy := range ys {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// summary is a short, encoder independent description used in error
// messages.
func (y *Node) summary() string {
	if y == nil {
		return "<nil>"
	}
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		switch {
		case y.Int64 != nil:
			return strconv.FormatInt(*y.Int64, 10)
		case y.Float64 != nil:
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		default:
			return y.Number
		}
	case StringType:
		return strconv.Quote(y.String)
	case StringNameType:
		return "&" + strconv.Quote(y.String)
	case IdentType:
		return y.Name
	case ObjectType, TypedArrayType, TypedDictType:
		return y.Name + "(...)"
	default:
		return y.Type.String() + "(...)"
	}
}
