package roundtrip

import (
	"fmt"
	"strings"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/parse"
)

// Loader parses a whole document.  The result's String method renders
// the document back to text.
type Loader interface {
	Load(src []byte) (fmt.Stringer, error)
}

// ValueLoader loads documents made of whitespace separated values and
// writes them back one value per line.
type ValueLoader struct {
	Parse  []parse.ParseOption
	Encode []encode.EncodeOption
}

func (l *ValueLoader) Load(src []byte) (fmt.Stringer, error) {
	values, err := parse.ParseMulti(src, l.Parse...)
	if err != nil {
		return nil, err
	}
	doc := &Document{Values: values}
	var b strings.Builder
	for i, v := range values {
		if err := encode.Encode(v, &b, l.Encode...); err != nil {
			return nil, fmt.Errorf("error encoding value %d: %w", i, err)
		}
		b.WriteByte('\n')
	}
	doc.text = b.String()
	return doc, nil
}

// Document is the result of ValueLoader.Load.
type Document struct {
	Values []*ir.Node
	text   string
}

func (d *Document) String() string {
	return d.text
}
