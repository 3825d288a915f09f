package libdiff

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize splits text into lines suitable for comparing a source
// document with its re-serialized form.
//
// Lines are trimmed and blank lines dropped.  A quoted string spanning
// several physical lines is kept as one line.  Outside quotes, runs of
// spaces collapse to one space and spaces next to a non-word character
// are removed.  When unescape is set, escape sequences inside quotes
// are decoded.
func Normalize(text string, unescape bool) []string {
	var (
		res  []string
		segs []string
		buf  strings.Builder
	)
	flush := func() {
		for i := range segs {
			if i%2 == 0 {
				segs[i] = squeeze(segs[i])
			} else if unescape {
				segs[i] = unescapeQuoted(segs[i])
			}
		}
		res = append(res, strings.Join(segs, ""))
		segs = segs[:0]
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for {
			q := realQuote(line)
			if q < 0 {
				break
			}
			buf.WriteString(line[:q+1])
			segs = append(segs, buf.String())
			buf.Reset()
			line = line[q+1:]
		}
		buf.WriteString(line)
		if len(segs)%2 == 1 {
			// inside a string which continues on the next line
			buf.WriteByte('\n')
			continue
		}
		if buf.Len() > 0 {
			segs = append(segs, buf.String())
			buf.Reset()
		}
		flush()
	}
	if buf.Len() > 0 {
		segs = append(segs, strings.TrimSuffix(buf.String(), "\n"))
		buf.Reset()
	}
	if len(segs) > 0 {
		flush()
	}
	return res
}

// realQuote returns the index of the first '"' in s which is preceded
// by an even number of backslashes, or -1.
func realQuote(s string) int {
	bs := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			bs++
			continue
		case '"':
			if bs%2 == 0 {
				return i
			}
		}
		bs = 0
	}
	return -1
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// squeeze collapses spaces and drops those adjacent to non-word
// characters.
func squeeze(s string) string {
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i := 0; i < len(rs); i++ {
		if rs[i] != ' ' {
			out = append(out, rs[i])
			continue
		}
		j := i
		for j+1 < len(rs) && rs[j+1] == ' ' {
			j++
		}
		keep := (i == 0 || isWord(rs[i-1])) && (j+1 == len(rs) || isWord(rs[j+1]))
		if keep {
			out = append(out, ' ')
		}
		i = j
	}
	return string(out)
}

// unescapeQuoted decodes the escape sequences of s, leaving malformed
// ones as they are.
func unescapeQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for len(s) > 0 {
		if s[0] != '\\' {
			r, n := utf8.DecodeRuneInString(s)
			b.WriteRune(r)
			s = s[n:]
			continue
		}
		r, _, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			b.WriteByte('\\')
			s = s[1:]
			continue
		}
		b.WriteRune(r)
		s = tail
	}
	return b.String()
}
