package token

// isKeyWordPrefix reports whether d starts with the word pre and pre is
// not followed by further identifier characters.
func isKeyWordPrefix(d, pre []byte) bool {
	if len(d) < len(pre) {
		return false
	}
	for i := range pre {
		if d[i] != pre[i] {
			return false
		}
	}
	if len(d) == len(pre) {
		return true
	}
	return !identChar(d[len(pre)])
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identChar(c byte) bool {
	return identStart(c) || asciiDigit(c)
}

// identLen returns the length of the identifier at the start of d.
func identLen(d []byte) int {
	if len(d) == 0 || !identStart(d[0]) {
		return 0
	}
	i := 1
	for i < len(d) && identChar(d[i]) {
		i++
	}
	return i
}

var (
	kwInf    = []byte("inf")
	kwNegInf = []byte("-inf")
	kwNaN    = []byte("nan")
)
