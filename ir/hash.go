package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal: equal
// nodes hash equal.  Unbracketed is not hashed.
//
// The seed is fixed for the life of the process.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.Type))

	switch n.Type {
	case NullType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		// numbers hash by value so that 1 and 1.0 collide
		f, _ := n.Float()
		writeUint64(&h, floatBits(f))
	case StringType, StringNameType:
		h.WriteString(n.String)
	case IdentType:
		h.WriteString(n.Name)
	case ListType:
		writeSeq(&h, n.Values)
	case DictType:
		writeDict(&h, n)
	case ObjectType:
		writeName(&h, n.Name)
		writeSeq(&h, n.Values)
	case TypedArrayType:
		writeName(&h, n.Name)
		writeSeq(&h, n.Params)
		writeSeq(&h, n.Values)
	case TypedDictType:
		writeName(&h, n.Name)
		writeSeq(&h, n.Params)
		writeDict(&h, n)
	}
	return h.Sum64()
}

func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return 0x7ff8000000000001
	case f == 0:
		return 0
	}
	return math.Float64bits(f)
}

func writeUint64(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// writeName length-prefixes the name so that it cannot run into the
// payload.
func writeName(h *maphash.Hash, name string) {
	writeUint64(h, uint64(len(name)))
	h.WriteString(name)
}

func writeSeq(h *maphash.Hash, ns []*Node) {
	writeUint64(h, uint64(len(ns)))
	for _, v := range ns {
		writeUint64(h, v.Hash())
	}
}

func writeDict(h *maphash.Hash, n *Node) {
	writeUint64(h, uint64(len(n.Fields)))
	for i, field := range n.Fields {
		writeUint64(h, field.Hash())
		writeUint64(h, n.Values[i].Hash())
	}
}
