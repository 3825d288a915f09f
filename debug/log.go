package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/ir"
)

var out io.Writer = os.Stderr

// Node formats a node in its text form for %s and %v verbs.
type Node struct{ *ir.Node }

func (y Node) String() string {
	if y.Node == nil {
		return "<nil>"
	}
	s, err := encode.String(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", *y.Node)
	}
	return s
}

// Logf writes a diagnostic line to stderr.  *ir.Node arguments given to
// %v are rendered in their text form; wrap them in Node for %s.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = Node{x}.String()
		case []*ir.Node:
			strs := make([]string, len(x))
			for j, n := range x {
				strs[j] = Node{n}.String()
			}
			args[i] = strs
		}
	}
	fmt.Fprintf(out, msg, args...)
}
