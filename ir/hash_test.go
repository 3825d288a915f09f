package ir

import "testing"

func TestHashDistinguishesPositions(t *testing.T) {
	pairs := [][2]*Node{
		{NewObject("A", FromInt(1), FromInt(2)), NewObject("A", FromInt(2), FromInt(1))},
		{FromSlice([]*Node{FromString("ab"), FromString("")}), FromSlice([]*Node{FromString("a"), FromString("b")})},
		{NewObject("AB"), NewObject("A", FromString("B"))},
		{FromString("a"), FromStringName("a")},
		{
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromString("b")}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromString("a")}}),
		},
	}
	for i, p := range pairs {
		if Equal(p[0], p[1]) {
			t.Fatalf("pair %d: nodes should differ", i)
		}
		if p[0].Hash() == p[1].Hash() {
			t.Errorf("pair %d: hash collision", i)
		}
	}
}

func TestHashStable(t *testing.T) {
	n := NewTypedDict(Ident("String"), NewObject("ExtResource", FromString("1_x")),
		KeyVal{Key: FromString("k"), Val: FromSlice([]*Node{FromFloat(0.5), Null()})})
	h := n.Hash()
	for range 3 {
		if n.Clone().Hash() != h {
			t.Fatalf("hash of clone differs")
		}
	}
}
