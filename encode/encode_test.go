package encode_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/format"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/libdiff"
	"github.com/godot-format/gdvalue/parse"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func list(vs ...*ir.Node) *ir.Node { return ir.FromSlice(vs) }

func kv(k, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }

type encTest struct {
	name string
	in   *ir.Node
	// canonical, godot4, godot3
	want [3]string
}

func encTests() []encTest {
	bare := ir.NewTypedArray(ir.Ident("int"), ir.FromInt(1), ir.FromInt(2))
	bare.Unbracketed = true
	bareList := ir.NewTypedArray(ir.Ident("Array"), list(ir.FromInt(1)))
	bareList.Unbracketed = true
	same := func(s string) [3]string { return [3]string{s, s, s} }
	return []encTest{
		{"null", ir.Null(), same("null")},
		{"bool", list(ir.FromBool(true), ir.FromBool(false)), [3]string{"[true, false]", "[true, false]", "[ true, false ]"}},
		{"string", ir.FromString("a\"b\\c\nd"), same("\"a\\\"b\\\\c\nd\"")},
		{"string name", ir.FromStringName("x"), same(`&"x"`)},
		{"big integer", ir.FromNumberLiteral("123456789012345678901234"), same("123456789012345678901234")},
		{"empty list", list(), [3]string{"[]", "[]", "[  ]"}},
		{"empty dict", ir.FromKeyVals(nil), same("{}")},
		{
			"dict",
			ir.FromKeyVals([]ir.KeyVal{kv(ir.FromString("a"), ir.FromInt(1)), kv(ir.FromInt(2), list())}),
			[3]string{`{ "a": 1, 2: [] }`, "{\n\"a\": 1,\n2: []\n}", "{\n\"a\": 1,\n2: [  ]\n}"},
		},
		{
			"object",
			ir.NewObject("Vector2", ir.FromFloat(1), ir.FromFloat(2.5)),
			[3]string{"Vector2(1.0, 2.5)", "Vector2(1.0, 2.5)", "Vector2( 1.0, 2.5 )"},
		},
		{"no args", ir.NewObject("Transform"), [3]string{"Transform()", "Transform()", "Transform(  )"}},
		{
			"typed array",
			ir.NewTypedArray(ir.Ident("int"), ir.FromInt(1), ir.FromInt(2)),
			[3]string{"Array[int]([1, 2])", "Array[int]([1, 2])", "Array[int]([ 1, 2 ])"},
		},
		{"bare typed array", bare, same("Array[int](1, 2)")},
		{"bare single list", bareList, [3]string{"Array[Array]([[1]])", "Array[Array]([[1]])", "Array[Array]([ [ 1 ] ])"}},
		{
			"typed dict",
			ir.NewTypedDict(ir.Ident("String"), ir.NewObject("Resource", ir.FromString("x")),
				kv(ir.FromString("k"), ir.Null())),
			[3]string{
				`Dictionary[String, Resource("x")]({ "k": null })`,
				"Dictionary[String, Resource(\"x\")]({\n\"k\": null\n})",
				"Dictionary[String, Resource( \"x\" )]({\n\"k\": null\n})",
			},
		},
	}
}

func TestEncodeFormats(t *testing.T) {
	fmts := []format.Format{format.CanonicalFormat, format.Godot4Format, format.Godot3Format}
	for _, tt := range encTests() {
		for i, f := range fmts {
			got, err := encode.String(tt.in, encode.EncodeFormat(f))
			if err != nil {
				t.Errorf("%s/%s: %v", tt.name, f, err)
				continue
			}
			if got != tt.want[i] {
				t.Errorf("%s/%s: got %q want %q", tt.name, f, got, tt.want[i])
			}
		}
	}
}

func TestEncodeReparses(t *testing.T) {
	for _, tt := range encTests() {
		for _, f := range format.AllFormats() {
			s := encode.MustString(tt.in, encode.EncodeFormat(f))
			back, err := parse.Parse([]byte(s))
			if err != nil {
				t.Errorf("%s/%s: %q: %v", tt.name, f, s, err)
				continue
			}
			if !ir.Equal(tt.in, back) {
				t.Errorf("%s/%s: %q read back differently", tt.name, f, s)
			}
		}
	}
}

func TestListPaddingNormalizes(t *testing.T) {
	v := list(ir.FromInt(1), ir.FromString("a b"), list(), ir.NewObject("Foo", list(ir.FromInt(2))))
	padded := `[ 1, "a b", [ ], Foo( [ 2 ] ) ]`
	for _, f := range format.AllFormats() {
		got := libdiff.Normalize(encode.MustString(v, encode.EncodeFormat(f)), false)
		if diff := cmp.Diff(libdiff.Normalize(padded, false), got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", f, diff)
		}
	}
}

func TestEncodeFloats(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{-3, "-3.0"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-07"},
		{math.Copysign(0, -1), "-0.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tt := range tests {
		got, err := encode.String(ir.FromFloat(tt.in))
		if err != nil {
			t.Errorf("%v: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v: got %q want %q", tt.in, got, tt.want)
		}
		back, err := parse.Parse([]byte(got))
		if err != nil {
			t.Errorf("%q: %v", got, err)
			continue
		}
		if back.Float64 == nil {
			t.Errorf("%q read back as %v", got, back.Type)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	noParams := ir.NewTypedArray(nil)
	noParams.Params = nil
	lopsided := ir.FromKeyVals([]ir.KeyVal{kv(ir.FromInt(1), ir.FromInt(2))})
	lopsided.Values = nil
	tests := []struct {
		name string
		in   *ir.Node
	}{
		{"nil", nil},
		{"identifier", ir.Ident("int")},
		{"nested identifier", list(ir.Ident("int"))},
		{"bad name", ir.NewObject("1x")},
		{"empty name", ir.NewObject("")},
		{"number without value", &ir.Node{Type: ir.NumberType}},
		{"missing params", noParams},
		{"nil param", ir.NewTypedArray(nil, ir.FromInt(1))},
		{"value param", ir.NewTypedArray(ir.FromInt(1))},
		{"lopsided dict", lopsided},
		{"unknown type", &ir.Node{Type: ir.Type(99)}},
	}
	for _, tt := range tests {
		_, err := encode.String(tt.in)
		if !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("%s: got %v", tt.name, err)
		}
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	encode.MustString(ir.Ident("x"))
}

func tagged(tag string) func(string, ...any) string {
	return func(v string, _ ...any) string { return tag + v + tag }
}

func TestEncodeColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(v string, _ ...any) string { return v },
		Map: map[encode.Colorable]func(string, ...any) string{
			{Type: ir.NumberType, Attr: encode.ValueColor}:     tagged("#"),
			{Type: ir.ListType, Attr: encode.SepColor}:         tagged("|"),
			{Type: ir.StringType, Attr: encode.FieldColor}:     tagged("~"),
			{Type: ir.ObjectType, Attr: encode.NameColor}:      tagged("^"),
			{Type: ir.StringNameType, Attr: encode.SigilColor}: tagged("*"),
		},
	}
	in := list(
		ir.FromInt(1),
		ir.FromKeyVals([]ir.KeyVal{kv(ir.FromString("k"), ir.FromStringName("n"))}),
		ir.NewObject("V", ir.FromInt(2)),
	)
	got, err := encode.String(in, encode.EncodeColors(colors))
	if err != nil {
		t.Fatal(err)
	}
	want := `|[|#1#|, |{ ~"k"~: *&*"n" }|, |^V^(#2#)|]|`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	plain, err := encode.String(in, encode.EncodeColors(colors), encode.EncodeColors(nil))
	if err != nil {
		t.Fatal(err)
	}
	if plain != `[1, { "k": &"n" }, V(2)]` {
		t.Errorf("got %q", plain)
	}
}

func TestNewColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	got, err := encode.String(ir.FromKeyVals([]ir.KeyVal{kv(ir.FromString("100%"), ir.FromInt(1))}),
		encode.EncodeColors(encode.NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("no escape sequences in %q", got)
	}
	if !strings.Contains(got, `"100%"`) {
		t.Errorf("key mangled in %q", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := encode.FormatFromOpts(); f != format.CanonicalFormat {
		t.Errorf("default %s", f)
	}
	if f := encode.FormatFromOpts(encode.EncodeFormat(format.Godot3Format)); f != format.Godot3Format {
		t.Errorf("got %s", f)
	}
}
