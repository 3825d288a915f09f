package token

import (
	"encoding/hex"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote renders v as a double quoted string.  Only '"' and '\' are
// escaped; newlines and other characters are written as is.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"', '\\':
			d = append(d, '\\', c)
		default:
			d = append(d, c)
		}
	}
	d = append(d, '"')
	return string(d)
}

func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString(b), nil
}

// bsEscQuoted returns the length of the quoted string at the start of d,
// closing quote included.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	escaped := false
	start := 1
	n := len(d)
	for start < n {
		r, sz := utf8.DecodeRune(d[start:])
		if r == utf8.RuneError && sz == 1 {
			return start, ErrBadUTF8
		}
		start += sz
		switch r {
		case '"':
			if !escaped {
				return start, nil
			}
			escaped = false
		case 'u':
			if escaped {
				if start+4 > n || !allHex(d[start:start+4]) {
					return start, ErrBadUnicode
				}
			}
			escaped = false
		case '\\':
			escaped = !escaped
		default:
			escaped = false
		}
	}
	return n, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a quoted string already checked by the
// tokenizer.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d))
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			r, sz := utf8.DecodeRune(d[i:n])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= n {
			break
		}
		c = d[i]
		i++
		switch c {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r, sz := decodeU(d[i:n])
			b.WriteRune(r)
			i += sz
		default:
			r, sz := utf8.DecodeRune(d[i-1 : n])
			b.WriteRune(r)
			i += sz - 1
		}
	}
	return b.String()
}

// decodeU decodes the hex digits following \u, joining a surrogate pair
// when a second \u escape completes it.
func decodeU(d []byte) (rune, int) {
	r, ok := hex4(d)
	if !ok {
		return utf8.RuneError, 0
	}
	if !utf16.IsSurrogate(r) {
		return r, 4
	}
	if len(d) >= 10 && d[4] == '\\' && d[5] == 'u' {
		if r2, ok := hex4(d[6:]); ok {
			if rr := utf16.DecodeRune(r, r2); rr != utf8.RuneError {
				return rr, 10
			}
		}
	}
	return utf8.RuneError, 4
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[:4]); err != nil {
		return 0, false
	}
	return rune(dst[0])<<8 | rune(dst[1]), true
}
