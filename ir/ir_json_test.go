package ir

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	nodes := []*Node{
		Null(),
		FromBool(true),
		FromInt(-3),
		FromFloat(math.Inf(-1)),
		FromFloat(math.NaN()),
		FromNumberLiteral("123456789012345678901234567890"),
		FromStringName(""),
		FromSlice(nil),
		NewTypedDict(Ident("String"), NewObject("ExtResource", FromString("1")),
			KeyVal{Key: FromString("k"), Val: NewVector2(1, 2).Node}),
	}
	ta := NewTypedArray(Ident("StringName"), FromStringName("a"))
	ta.Unbracketed = true
	nodes = append(nodes, ta)
	for _, n := range nodes {
		d, err := json.Marshal(n)
		if err != nil {
			t.Errorf("%s: %v", n.summary(), err)
			continue
		}
		m := &Node{}
		if err := json.Unmarshal(d, m); err != nil {
			t.Errorf("%s: %v", d, err)
			continue
		}
		if !Equal(n, m) || n.Unbracketed != m.Unbracketed {
			t.Errorf("%s did not round trip", d)
		}
	}
}

func TestJSONRejects(t *testing.T) {
	for _, in := range []string{
		`{"type": "Number"}`,
		`{"type": "Dict", "fields": [{"type": "Null"}], "values": []}`,
		`{"type": "Nope"}`,
	} {
		if err := json.Unmarshal([]byte(in), &Node{}); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}
