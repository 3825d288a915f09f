package libdiff

import (
	"fmt"
	"strconv"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind int

const (
	Replace ChangeKind = iota
	Insert
	Delete
)

func (k ChangeKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "replace"
	}
}

// Change is one structural difference.  From is nil for inserts and To
// is nil for deletes.
type Change struct {
	Kind ChangeKind
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	path := c.Path
	if path == "" {
		path = "$"
	}
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("%s: + %s", path, text(c.To))
	case Delete:
		return fmt.Sprintf("%s: - %s", path, text(c.From))
	default:
		return fmt.Sprintf("%s: %s -> %s", path, text(c.From), text(c.To))
	}
}

func text(n *ir.Node) string {
	switch {
	case n == nil:
		return "<nil>"
	case n.Type == ir.IdentType:
		return n.Name
	}
	s, err := encode.String(n)
	if err != nil {
		return fmt.Sprintf("<%s>", n.Type)
	}
	return s
}

// DiffNodes returns the differences between from and to, or nil if they
// are equal.  Sequences are aligned so that an inserted or deleted item
// does not show up as a change of every item after it.
//
// Paths address list items as [i], object arguments as .args[i], typed
// array items as .items[i], type annotations as .params[i] and
// dictionary values by their encoded key as {key}.
func DiffNodes(from, to *ir.Node) []Change {
	var res []Change
	diffNode(&res, "", from, to)
	return res
}

func diffNode(res *[]Change, path string, from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	if from == nil || to == nil || from.Type != to.Type || from.Name != to.Name || from.Type.IsLeaf() {
		*res = append(*res, Change{Kind: Replace, Path: path, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ListType:
		diffSeq(res, path, "", from.Values, to.Values)
	case ir.ObjectType:
		diffSeq(res, path, ".args", from.Values, to.Values)
	case ir.TypedArrayType:
		diffSeq(res, path, ".params", from.Params, to.Params)
		diffSeq(res, path, ".items", from.Values, to.Values)
	case ir.DictType:
		diffDict(res, path, from, to)
	case ir.TypedDictType:
		diffSeq(res, path, ".params", from.Params, to.Params)
		diffDict(res, path, from, to)
	}
}

func index(path, field string, i int) string {
	return path + field + "[" + strconv.Itoa(i) + "]"
}

// diffSeq aligns from and to by diffing per-item hashes, pairing
// deleted and inserted runs item by item.
func diffSeq(res *[]Change, path, field string, from, to []*ir.Node) {
	m := map[uint64]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var dels []int
	flushDels := func() {
		for _, i := range dels {
			*res = append(*res, Change{Kind: Delete, Path: index(path, field, i), From: from[i]})
		}
		dels = nil
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffEqual:
			flushDels()
			for range n {
				// equal hashes need not be equal values
				diffNode(res, index(path, field, fi), from[fi], to[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(dels) > 0 {
					di := dels[0]
					dels = dels[1:]
					diffNode(res, index(path, field, di), from[di], to[ti])
				} else {
					*res = append(*res, Change{Kind: Insert, Path: index(path, field, ti), To: to[ti]})
				}
				ti++
			}
		}
	}
	flushDels()
}

func mapValues(m map[uint64]rune, nodes []*ir.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, v := range nodes {
		var h uint64
		if v != nil {
			h = v.Hash()
		}
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}

// diffDict aligns entries by key, keeping key order.
func diffDict(res *[]Change, path string, from, to *ir.Node) {
	m := map[uint64]rune{}
	fromRunes := mapValues(m, from.Fields)
	toRunes := mapValues(m, to.Fields)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	keyPath := func(k *ir.Node) string {
		return path + "{" + text(k) + "}"
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				*res = append(*res, Change{Kind: Delete, Path: keyPath(from.Fields[fi]), From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				fk, tk := from.Fields[fi], to.Fields[ti]
				if ir.Equal(fk, tk) {
					diffNode(res, keyPath(fk), from.Values[fi], to.Values[ti])
				} else {
					*res = append(*res,
						Change{Kind: Delete, Path: keyPath(fk), From: from.Values[fi]},
						Change{Kind: Insert, Path: keyPath(tk), To: to.Values[ti]})
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				*res = append(*res, Change{Kind: Insert, Path: keyPath(to.Fields[ti]), To: to.Values[ti]})
				ti++
			}
		}
	}
}
