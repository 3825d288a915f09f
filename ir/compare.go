package ir

import (
	"cmp"
	"math"
	"math/big"
	"strings"
)

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by numeric value, so 1 and 1.0 are equal.  NaN is
// equal to itself and less than any other number.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType, StringNameType:
		return strings.Compare(a.String, b.String)
	case IdentType:
		return strings.Compare(a.Name, b.Name)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ListType:
		return compareSeqs(a.Values, b.Values)
	case DictType:
		return compareDicts(a, b)
	case ObjectType:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareSeqs(a.Values, b.Values)
	case TypedArrayType:
		if c := compareHead(a, b); c != 0 {
			return c
		}
		return compareSeqs(a.Values, b.Values)
	case TypedDictType:
		if c := compareHead(a, b); c != 0 {
			return c
		}
		return compareDicts(a, b)
	case NullType:
		return 0
	}
	return 0
}

// rank returns the sorting rank of a type.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case StringNameType:
		return 4
	case IdentType:
		return 5
	case ListType:
		return 6
	case DictType:
		return 7
	case ObjectType:
		return 8
	case TypedArrayType:
		return 9
	case TypedDictType:
		return 10
	}
	return 100
}

// compareNumbers is exact: integers never pass through float64.
func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	ia, aInt := bigInt(a)
	ib, bInt := bigInt(b)
	switch {
	case aInt && bInt:
		return ia.Cmp(ib)
	case aInt:
		return compareIntFloat(ia, b)
	case bInt:
		return -compareIntFloat(ib, a)
	}
	fa, _ := a.Float()
	fb, _ := b.Float()
	return cmp.Compare(fa, fb)
}

// bigInt returns the value of an integer node.
func bigInt(y *Node) (*big.Int, bool) {
	switch {
	case y.Int64 != nil:
		return big.NewInt(*y.Int64), true
	case y.Float64 == nil && y.Number != "":
		return new(big.Int).SetString(y.Number, 10)
	}
	return nil, false
}

func compareIntFloat(i *big.Int, y *Node) int {
	f, _ := y.Float()
	if math.IsNaN(f) {
		return 1
	}
	return new(big.Float).SetInt(i).Cmp(big.NewFloat(f))
}

func compareHead(a, b *Node) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return compareSeqs(a.Params, b.Params)
}

func compareSeqs(a, b []*Node) int {
	lenA := len(a)
	lenB := len(b)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareDicts(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
