package libdiff

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// ContextLines is the number of unchanged lines shown around each
// change by TextDiff.Format.
const ContextLines = 3

type opTag byte

const (
	opEqual opTag = iota
	opDelete
	opInsert
	opReplace
)

// opcode describes how From[i1:i2] turns into To[j1:j2].
type opcode struct {
	tag            opTag
	i1, i2, j1, j2 int
}

// TextDiff is a line diff between two normalized documents.
type TextDiff struct {
	From, To []string
	ops      []opcode
}

// DiffLines compares two line sequences.  Lines are compared whole,
// including any newlines they contain.
func DiffLines(from, to []string) *TextDiff {
	m := map[string]rune{}
	fromRunes := mapLines(m, from)
	toRunes := mapLines(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	res := &TextDiff{From: from, To: to}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			res.add(opEqual, fi, fi+n, ti, ti+n)
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			res.add(opDelete, fi, fi+n, ti, ti)
			fi += n
		case diffpatch.DiffInsert:
			res.add(opInsert, fi, fi, ti, ti+n)
			ti += n
		}
	}
	return res
}

func mapLines(m map[string]rune, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := m[line]
		if !ok {
			r = rune(len(m))
			m[line] = r
		}
		rs[i] = r
	}
	return rs
}

// add appends an opcode, merging neighbouring deletes and inserts into
// a replace.
func (d *TextDiff) add(tag opTag, i1, i2, j1, j2 int) {
	if n := len(d.ops); tag != opEqual && n > 0 && d.ops[n-1].tag != opEqual {
		last := &d.ops[n-1]
		last.tag = opReplace
		last.i2 = max(last.i2, i2)
		last.j2 = max(last.j2, j2)
		return
	}
	d.ops = append(d.ops, opcode{tag, i1, i2, j1, j2})
}

// Equal reports whether the two documents have the same lines.
func (d *TextDiff) Equal() bool {
	for _, op := range d.ops {
		if op.tag != opEqual {
			return false
		}
	}
	return true
}

// groups splits the opcodes into hunks with at most n lines of context.
func (d *TextDiff) groups(n int) [][]opcode {
	codes := append([]opcode(nil), d.ops...)
	if len(codes) == 0 {
		codes = []opcode{{opEqual, 0, 1, 0, 1}}
	}
	if c := &codes[0]; c.tag == opEqual {
		c.i1, c.j1 = max(c.i1, c.i2-n), max(c.j1, c.j2-n)
	}
	if c := &codes[len(codes)-1]; c.tag == opEqual {
		c.i2, c.j2 = min(c.i2, c.i1+n), min(c.j2, c.j1+n)
	}
	var (
		res   [][]opcode
		group []opcode
	)
	for _, c := range codes {
		if c.tag == opEqual && c.i2-c.i1 > 2*n {
			group = append(group, opcode{opEqual, c.i1, min(c.i2, c.i1+n), c.j1, min(c.j2, c.j1+n)})
			res = append(res, group)
			group = nil
			c.i1, c.j1 = max(c.i1, c.i2-n), max(c.j1, c.j2-n)
		}
		group = append(group, c)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].tag == opEqual) {
		res = append(res, group)
	}
	return res
}

func contextRange(start, stop int) string {
	first, n := start+1, stop-start
	if n == 0 {
		first--
	}
	if n <= 1 {
		return fmt.Sprint(first)
	}
	return fmt.Sprintf("%d,%d", first, first+n-1)
}

var linePrefix = map[opTag]string{
	opEqual:   "  ",
	opDelete:  "- ",
	opInsert:  "+ ",
	opReplace: "! ",
}

// Format writes d as a context diff.  Every output line is trimmed and
// indented by four spaces, so lines holding multi-line strings stay
// visually grouped.  Nothing is written when the documents are equal.
func (d *TextDiff) Format(w io.Writer, fromName, toName string) error {
	var out []string
	for gi, group := range d.groups(ContextLines) {
		if gi == 0 {
			out = append(out, "*** "+fromName, "--- "+toName)
		}
		first, last := group[0], group[len(group)-1]
		out = append(out, "***************")
		out = append(out, fmt.Sprintf("*** %s ****", contextRange(first.i1, last.i2)))
		if hasTag(group, opDelete, opReplace) {
			for _, c := range group {
				if c.tag == opInsert {
					continue
				}
				for _, line := range d.From[c.i1:c.i2] {
					out = append(out, linePrefix[c.tag]+line)
				}
			}
		}
		out = append(out, fmt.Sprintf("--- %s ----", contextRange(first.j1, last.j2)))
		if hasTag(group, opInsert, opReplace) {
			for _, c := range group {
				if c.tag == opDelete {
					continue
				}
				for _, line := range d.To[c.j1:c.j2] {
					out = append(out, linePrefix[c.tag]+line)
				}
			}
		}
	}
	for _, l := range out {
		l = strings.TrimSpace(l)
		l = "    " + strings.ReplaceAll(l, "\n", "\n    ") + "\n"
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
	}
	return nil
}

// String returns the formatted diff with generic file names.
func (d *TextDiff) String() string {
	var b strings.Builder
	_ = d.Format(&b, "from", "to")
	return b.String()
}

func hasTag(group []opcode, tags ...opTag) bool {
	for _, c := range group {
		for _, t := range tags {
			if c.tag == t {
				return true
			}
		}
	}
	return false
}
