package ir

import (
	"fmt"
	"strconv"
)

var builtins = map[string]Constructor{
	"Vector2":     Fixed(2, numberArg),
	"Vector3":     Fixed(3, numberArg),
	"Color":       Fixed(4, channelArg),
	"NodePath":    Fixed(1, stringArg),
	"ExtResource": Fixed(1, idArg),
	"SubResource": Fixed(1, idArg),
}

func numberArg(i int, arg *Node) error {
	if arg.Type != NumberType {
		return fmt.Errorf("%w: argument %d is %s, not a number", ErrDomain, i, arg.Type)
	}
	return nil
}

func channelArg(i int, arg *Node) error {
	if err := numberArg(i, arg); err != nil {
		return err
	}
	f, _ := arg.Float()
	if !(f >= 0 && f <= 1) {
		return fmt.Errorf("%w: channel %d is %s, not in [0,1]", ErrDomain, i, arg.summary())
	}
	return nil
}

func stringArg(i int, arg *Node) error {
	if arg.Type != StringType {
		return fmt.Errorf("%w: argument %d is %s, not a string", ErrDomain, i, arg.Type)
	}
	return nil
}

func idArg(i int, arg *Node) error {
	switch {
	case arg.Type == StringType:
		return nil
	case arg.IsInteger():
		return nil
	}
	return fmt.Errorf("%w: argument %d is %s, not an integer or string id", ErrDomain, i, arg.summary())
}

func floatArg(n *Node, i int) float64 {
	f, _ := n.Arg(i).Float()
	return f
}

// Vector2 is a view of a Vector2(x, y) object node.  Its accessors read
// and write the node's positional arguments.
type Vector2 struct{ *Node }

func NewVector2(x, y float64) Vector2 {
	return Vector2{NewObject("Vector2", FromFloat(x), FromFloat(y))}
}

// AsVector2 returns the Vector2 view of n, if n is a well formed
// Vector2 object.
func AsVector2(n *Node) (Vector2, bool) {
	if !isObject(n, "Vector2", 2) {
		return Vector2{}, false
	}
	return Vector2{n}, true
}

func (v Vector2) X() float64     { return floatArg(v.Node, 0) }
func (v Vector2) Y() float64     { return floatArg(v.Node, 1) }
func (v Vector2) SetX(x float64) { v.SetArg(0, FromFloat(x)) }
func (v Vector2) SetY(y float64) { v.SetArg(1, FromFloat(y)) }

type Vector3 struct{ *Node }

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{NewObject("Vector3", FromFloat(x), FromFloat(y), FromFloat(z))}
}

func AsVector3(n *Node) (Vector3, bool) {
	if !isObject(n, "Vector3", 3) {
		return Vector3{}, false
	}
	return Vector3{n}, true
}

func (v Vector3) X() float64     { return floatArg(v.Node, 0) }
func (v Vector3) Y() float64     { return floatArg(v.Node, 1) }
func (v Vector3) Z() float64     { return floatArg(v.Node, 2) }
func (v Vector3) SetX(x float64) { v.SetArg(0, FromFloat(x)) }
func (v Vector3) SetY(y float64) { v.SetArg(1, FromFloat(y)) }
func (v Vector3) SetZ(z float64) { v.SetArg(2, FromFloat(z)) }

// Color is a view of a Color(r, g, b, a) object node.
//
// Channels are checked to lie in [0,1] by NewColor and by the registry
// constructor only.  The setters do not check; call Validate after
// mutating if the invariant matters.
type Color struct{ *Node }

func NewColor(r, g, b, a float64) (Color, error) {
	n, err := Fixed(4, channelArg)("Color", []*Node{FromFloat(r), FromFloat(g), FromFloat(b), FromFloat(a)})
	if err != nil {
		return Color{}, err
	}
	return Color{n}, nil
}

func AsColor(n *Node) (Color, bool) {
	if !isObject(n, "Color", 4) {
		return Color{}, false
	}
	return Color{n}, true
}

func (c Color) R() float64     { return floatArg(c.Node, 0) }
func (c Color) G() float64     { return floatArg(c.Node, 1) }
func (c Color) B() float64     { return floatArg(c.Node, 2) }
func (c Color) A() float64     { return floatArg(c.Node, 3) }
func (c Color) SetR(r float64) { c.SetArg(0, FromFloat(r)) }
func (c Color) SetG(g float64) { c.SetArg(1, FromFloat(g)) }
func (c Color) SetB(b float64) { c.SetArg(2, FromFloat(b)) }
func (c Color) SetA(a float64) { c.SetArg(3, FromFloat(a)) }

// Validate checks the channel invariant against the current arguments.
func (c Color) Validate() error {
	_, err := Fixed(4, channelArg)(c.Name, c.Values)
	return err
}

type NodePath struct{ *Node }

func NewNodePath(path string) NodePath {
	return NodePath{NewObject("NodePath", FromString(path))}
}

func AsNodePath(n *Node) (NodePath, bool) {
	if !isObject(n, "NodePath", 1) {
		return NodePath{}, false
	}
	return NodePath{n}, true
}

func (p NodePath) Path() string        { return p.Arg(0).String }
func (p NodePath) SetPath(path string) { p.SetArg(0, FromString(path)) }

// ExtResource refers to an external resource by id.  The id is an
// integer in engine 3 files and a string in engine 4 files.
type ExtResource struct{ *Node }

func NewExtResource(id *Node) ExtResource {
	return ExtResource{NewObject("ExtResource", id)}
}

func AsExtResource(n *Node) (ExtResource, bool) {
	if !isObject(n, "ExtResource", 1) {
		return ExtResource{}, false
	}
	return ExtResource{n}, true
}

func (r ExtResource) ID() *Node      { return r.Arg(0) }
func (r ExtResource) SetID(id *Node) { r.SetArg(0, id) }

type SubResource struct{ *Node }

func NewSubResource(id *Node) SubResource {
	return SubResource{NewObject("SubResource", id)}
}

func AsSubResource(n *Node) (SubResource, bool) {
	if !isObject(n, "SubResource", 1) {
		return SubResource{}, false
	}
	return SubResource{n}, true
}

func (r SubResource) ID() *Node      { return r.Arg(0) }
func (r SubResource) SetID(id *Node) { r.SetArg(0, id) }

func isObject(n *Node, name string, arity int) bool {
	return n != nil && n.Type == ObjectType && n.Name == name && len(n.Values) == arity
}

// IDString renders an id argument the way it is usually looked up:
// integers in decimal, strings verbatim.
func IDString(id *Node) string {
	switch {
	case id == nil:
		return ""
	case id.Type == StringType:
		return id.String
	case id.Int64 != nil:
		return strconv.FormatInt(*id.Int64, 10)
	case id.Number != "":
		return id.Number
	}
	return id.summary()
}
