package ir

import (
	"errors"
	"testing"
)

func TestViewsAliasArgs(t *testing.T) {
	v := NewVector3(1, 2, 3)
	v.SetY(5)
	if f, _ := v.Arg(1).Float(); f != 5 {
		t.Errorf("SetY wrote %v", f)
	}
	v.SetArg(2, FromInt(9))
	if v.Z() != 9 {
		t.Errorf("Z() = %v after SetArg", v.Z())
	}

	p := NewNodePath("a/b")
	p.Values[0] = FromString("c")
	if p.Path() != "c" {
		t.Errorf("Path() = %q", p.Path())
	}
	p.SetPath("d:e")
	if p.Arg(0).String != "d:e" {
		t.Errorf("SetPath wrote %q", p.Arg(0).String)
	}

	r := NewExtResource(FromInt(3))
	if IDString(r.ID()) != "3" {
		t.Errorf("id %q", IDString(r.ID()))
	}
	r.SetID(FromString("1_abc"))
	if IDString(r.Values[0]) != "1_abc" {
		t.Errorf("id %q", IDString(r.Values[0]))
	}
	s := NewSubResource(FromString("x"))
	if _, ok := AsSubResource(s.Node); !ok {
		t.Errorf("AsSubResource rejects its own node")
	}
}

func TestColor(t *testing.T) {
	c, err := NewColor(0, 0.5, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c.G() != 0.5 || c.A() != 1 {
		t.Errorf("got %v %v", c.G(), c.A())
	}
	// setters do not check the channel range
	c.SetR(2)
	if c.R() != 2 {
		t.Errorf("R() = %v", c.R())
	}
	if err := c.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("Validate: %v", err)
	}
	c.SetR(1)
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if _, err := NewColor(-1, 0, 0, 0); !errors.Is(err, ErrConstruction) {
		t.Errorf("NewColor(-1, ...): %v", err)
	}
}

func TestAsRejects(t *testing.T) {
	if _, ok := AsVector2(NewObject("Vector2", FromInt(1))); ok {
		t.Errorf("accepted wrong arity")
	}
	if _, ok := AsVector2(NewObject("Vector3", FromInt(1), FromInt(2))); ok {
		t.Errorf("accepted wrong name")
	}
	if _, ok := AsColor(FromSlice(nil)); ok {
		t.Errorf("accepted list")
	}
	if _, ok := AsNodePath(nil); ok {
		t.Errorf("accepted nil")
	}
}
