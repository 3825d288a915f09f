package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/godot-format/gdvalue/format"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	Color  func(ir.Type, ColorAttr, string) string
}

// Encode writes the text form of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// String returns the text form of node.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.NullType:
		return writeString(w, applyValueColor(es, ir.NullType, "null"))
	case ir.BoolType:
		return writeString(w, applyValueColor(es, ir.BoolType, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.StringType:
		return writeString(w, applyValueColor(es, ir.StringType, token.Quote(node.String)))
	case ir.StringNameType:
		sigil := applyColor(es, ir.StringNameType, SigilColor, "&")
		return writeString(w, sigil+applyValueColor(es, ir.StringNameType, token.Quote(node.String)))
	case ir.ListType:
		return encodeList(node.Values, w, es)
	case ir.DictType:
		return encodeDict(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.TypedArrayType:
		return encodeTypedArray(node, w, es)
	case ir.TypedDictType:
		return encodeTypedDict(node, w, es)
	case ir.IdentType:
		return fmt.Errorf("%w: identifier %q outside a type annotation", ErrEncoding, node.Name)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, int(node.Type))
	}
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = formatFloat(*node.Float64)
	case node.Number != "":
		v = node.Number
	default:
		return fmt.Errorf("%w: number without value", ErrEncoding)
	}
	return writeString(w, applyValueColor(es, ir.NumberType, v))
}

// formatFloat renders f so that it reads back as the same float, and as
// a float rather than an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".e") {
		v += ".0"
	}
	return v
}

func encodeList(values []*ir.Node, w io.Writer, es *EncState) error {
	open, close := "[", "]"
	if es.format.PadBrackets() {
		open, close = "[ ", " ]"
	}
	if err := writeSep(w, es, ir.ListType, open); err != nil {
		return err
	}
	if err := encodeSeq(values, ir.ListType, w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ListType, close)
}

func encodeSeq(values []*ir.Node, cType ir.Type, w io.Writer, es *EncState) error {
	for i, v := range values {
		if i > 0 {
			if err := writeSep(w, es, cType, ", "); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeDict(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: %s with %d keys and %d values", ErrEncoding,
			node.Type, len(node.Fields), len(node.Values))
	}
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.DictType, "{}")
	}
	open, sep, close := "{ ", ", ", " }"
	if es.format.MultilineDicts() {
		open, sep, close = "{\n", ",\n", "\n}"
	}
	if err := writeSep(w, es, ir.DictType, open); err != nil {
		return err
	}
	for i, k := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ir.DictType, sep); err != nil {
				return err
			}
		}
		if err := encodeKey(k, w, es); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.DictType, ": "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.DictType, close)
}

func encodeKey(k *ir.Node, w io.Writer, es *EncState) error {
	if es.Color == nil || k == nil {
		return encode(k, w, es)
	}
	// keys are colored as fields, whatever their type
	buf := bytes.NewBuffer(nil)
	sub := &EncState{format: es.format}
	if err := encode(k, buf, sub); err != nil {
		return err
	}
	return writeString(w, es.Color(k.Type, FieldColor, buf.String()))
}

func writeName(w io.Writer, es *EncState, t ir.Type, name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q is not an identifier", ErrEncoding, name)
	}
	return writeString(w, applyColor(es, t, NameColor, name))
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func callParens(es *EncState) (string, string) {
	if es.format.PadBrackets() {
		return "( ", " )"
	}
	return "(", ")"
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeName(w, es, ir.ObjectType, node.Name); err != nil {
		return err
	}
	open, close := callParens(es)
	if err := writeSep(w, es, ir.ObjectType, open); err != nil {
		return err
	}
	if err := encodeSeq(node.Values, ir.ObjectType, w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, close)
}

// encodeParams writes the [T] or [K, V] annotation of a typed container.
func encodeParams(node *ir.Node, n int, w io.Writer, es *EncState) error {
	if len(node.Params) != n {
		return fmt.Errorf("%w: %s %s with %d type parameters", ErrEncoding,
			node.Type, node.Name, len(node.Params))
	}
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	for i, p := range node.Params {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ", "); err != nil {
				return err
			}
		}
		if p == nil {
			return fmt.Errorf("%w: nil type annotation", ErrEncoding)
		}
		switch p.Type {
		case ir.IdentType:
			if err := writeName(w, es, ir.IdentType, p.Name); err != nil {
				return err
			}
		case ir.ObjectType:
			if err := encodeObject(p, w, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s is not a type annotation", ErrEncoding, p.Type)
		}
	}
	return writeSep(w, es, node.Type, "]")
}

func encodeTypedArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeName(w, es, ir.TypedArrayType, node.Name); err != nil {
		return err
	}
	if err := encodeParams(node, 1, w, es); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.TypedArrayType, "("); err != nil {
		return err
	}
	// A lone list item written bare would read back as the item list.
	bare := node.Unbracketed &&
		!(len(node.Values) == 1 && node.Values[0] != nil && node.Values[0].Type == ir.ListType)
	var err error
	if bare {
		err = encodeSeq(node.Values, ir.TypedArrayType, w, es)
	} else {
		err = encodeList(node.Values, w, es)
	}
	if err != nil {
		return err
	}
	return writeSep(w, es, ir.TypedArrayType, ")")
}

func encodeTypedDict(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeName(w, es, ir.TypedDictType, node.Name); err != nil {
		return err
	}
	if err := encodeParams(node, 2, w, es); err != nil {
		return err
	}
	if err := writeSep(w, es, ir.TypedDictType, "("); err != nil {
		return err
	}
	if err := encodeDict(node, w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.TypedDictType, ")")
}
