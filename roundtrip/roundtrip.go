package roundtrip

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/libdiff"
	"github.com/godot-format/gdvalue/parse"
)

var ErrMismatch = errors.New("round-trip mismatch")

// ParsedName is the name given to the re-serialized side of a diff.
const ParsedName = "PARSED FILE"

type Result struct {
	Name string
	Diff *libdiff.TextDiff
}

// OK reports whether the source and its re-serialization agree.
func (r *Result) OK() bool {
	return r.Diff.Equal()
}

// Report writes a notice and the context diff when r is not OK.
func (r *Result) Report(w io.Writer) error {
	if r.OK() {
		return nil
	}
	if _, err := fmt.Fprintf(w, "! Difference detected on %s\n", r.Name); err != nil {
		return err
	}
	return r.Diff.Format(w, r.Name, ParsedName)
}

// Verify loads src with l and compares the normalized source text with
// the normalized text of the loaded document.  Load errors are returned
// as is.
func Verify(name string, src []byte, l Loader, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	doc, err := l.Load(src)
	if err != nil {
		return nil, err
	}
	from := libdiff.Normalize(string(src), cfg.unescape)
	to := libdiff.Normalize(doc.String(), cfg.unescape)
	return &Result{Name: name, Diff: libdiff.DiffLines(from, to)}, nil
}

// CheckValue encodes v, parses the text back and compares the result
// with v.
func CheckValue(v *ir.Node, opts ...Option) error {
	cfg := newConfig(opts)
	s, err := encode.String(v, cfg.encOpts()...)
	if err != nil {
		return err
	}
	back, err := parse.Parse([]byte(s), cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("%w: %q does not parse: %w", ErrMismatch, s, err)
	}
	changes := libdiff.DiffNodes(v, back)
	if len(changes) == 0 {
		return nil
	}
	msgs := make([]string, len(changes))
	for i := range changes {
		msgs[i] = changes[i].String()
	}
	return fmt.Errorf("%w: %s", ErrMismatch, strings.Join(msgs, "; "))
}
