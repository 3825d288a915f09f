package libdiff

import (
	"testing"

	"github.com/godot-format/gdvalue/parse"
	"github.com/google/go-cmp/cmp"
)

func TestDiffNodes(t *testing.T) {
	tests := []struct {
		from, to string
		want     []string
	}{
		{`[1, 2, 3]`, `[1, 2, 3]`, nil},
		{`[1, 2.0]`, `[1.0, 2]`, nil},
		{`1`, `"x"`, []string{`$: 1 -> "x"`}},
		{`[1, 2, 3]`, `[1, 3]`, []string{`[1]: - 2`}},
		{`[1, 3]`, `[1, 2, 3]`, []string{`[1]: + 2`}},
		{`[1, 2, 3]`, `[1, 5, 3]`, []string{`[1]: 2 -> 5`}},
		{`[Vector2(1, 2)]`, `[Vector2(1, 3)]`, []string{`[0].args[1]: 2 -> 3`}},
		{`Vector2(1, 2)`, `Vector3(1, 2, 3)`, []string{`$: Vector2(1, 2) -> Vector3(1, 2, 3)`}},
		{
			`{ "a": 1, "b": 2 }`,
			`{ "a": 1, "b": 3, "c": 4 }`,
			[]string{`{"b"}: 2 -> 3`, `{"c"}: + 4`},
		},
		{`{ "a": [1, 2] }`, `{ "a": [1] }`, []string{`{"a"}[1]: - 2`}},
		{`Array[int]([1])`, `Array[float]([1])`, []string{`.params[0]: int -> float`}},
		{`Array[int]([1, 2])`, `Array[int]([2])`, []string{`.items[0]: - 1`}},
		{
			`Dictionary[String, int]({ "a": 1 })`,
			`Dictionary[String, int]({ "a": 2 })`,
			[]string{`{"a"}: 1 -> 2`},
		},
	}
	for _, tt := range tests {
		from, err := parse.Parse([]byte(tt.from))
		if err != nil {
			t.Fatalf("%s: %v", tt.from, err)
		}
		to, err := parse.Parse([]byte(tt.to))
		if err != nil {
			t.Fatalf("%s: %v", tt.to, err)
		}
		var got []string
		for _, c := range DiffNodes(from, to) {
			got = append(got, c.String())
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s vs %s (-want +got):\n%s", tt.from, tt.to, diff)
		}
	}
}

func TestDiffNodesNil(t *testing.T) {
	changes := DiffNodes(nil, nil)
	if changes != nil {
		t.Errorf("got %v", changes)
	}
	parsed, err := parse.Parse([]byte(`null`))
	if err != nil {
		t.Fatal(err)
	}
	changes = DiffNodes(parsed, nil)
	if len(changes) != 1 || changes[0].Kind != Replace || changes[0].To != nil {
		t.Errorf("got %v", changes)
	}
}
