package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/godot-format/gdvalue/format"

	"github.com/google/go-cmp/cmp"
)

func TestFmtReader(t *testing.T) {
	in := "[1,2 ,  3]\n{\"a\":Vector2(1,2)}\nArray[int]([])\n"
	cases := []struct {
		format format.Format
		want   string
	}{
		{
			format: format.CanonicalFormat,
			want:   "[1, 2, 3]\n{ \"a\": Vector2(1, 2) }\nArray[int]([])\n",
		},
		{
			format: format.Godot4Format,
			want:   "[1, 2, 3]\n{\n\"a\": Vector2(1, 2)\n}\nArray[int]([])\n",
		},
	}
	for _, c := range cases {
		cfg := &FmtConfig{MainConfig: &MainConfig{Format: c.format}}
		var b strings.Builder
		if err := fmtReader(cfg, &b, strings.NewReader(in)); err != nil {
			t.Fatalf("%s: %v", c.format, err)
		}
		if diff := cmp.Diff(c.want, b.String()); diff != "" {
			t.Errorf("%s (-want +got):\n%s", c.format, diff)
		}
	}

	cfg := &FmtConfig{MainConfig: &MainConfig{}}
	var b strings.Builder
	if err := fmtReader(cfg, &b, strings.NewReader("[1,")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDumpReader(t *testing.T) {
	in := "[\n  Foo(1),\n  \"x\"\n]\n{}\n"

	var b strings.Builder
	if err := dumpReader(&DumpConfig{MainConfig: &MainConfig{}}, &b, strings.NewReader(in), "-"); err != nil {
		t.Fatal(err)
	}
	dec := json.NewDecoder(strings.NewReader(b.String()))
	n := 0
	for dec.More() {
		var v any
		if err := dec.Decode(&v); err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 2 {
		t.Errorf("got %d json documents, want 2", n)
	}

	b.Reset()
	if err := dumpReader(&DumpConfig{MainConfig: &MainConfig{}, YAML: true}, &b, strings.NewReader(in), "-"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(b.String(), "---\n"); got != 1 {
		t.Errorf("got %d yaml separators, want 1:\n%s", got, b.String())
	}

	b.Reset()
	if err := dumpReader(&DumpConfig{MainConfig: &MainConfig{}, Pos: true}, &b, strings.NewReader(in), "-"); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"1:1 List ",
		"  2:3 Object Foo",
		"    2:7 Number 1",
		"  3:3 String \"x\"",
		"5:1 Dict ",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	b.Reset()
	if err := dumpReader(&DumpConfig{MainConfig: &MainConfig{}, Tokens: true}, &b, strings.NewReader("[1]"), "-"); err != nil {
		t.Fatal(err)
	}
	if b.Len() == 0 {
		t.Error("no tokens printed")
	}
}
