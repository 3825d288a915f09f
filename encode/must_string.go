package encode

import (
	"github.com/godot-format/gdvalue/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
