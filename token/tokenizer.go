package token

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Tokenizer produces tokens on demand from an in-memory document,
// starting at a given offset.  Nothing past the last requested token is
// examined, so a value may be followed by arbitrary text.
type Tokenizer struct {
	doc    []byte
	posDoc *PosDoc
	off    int
}

// NewTokenizer creates a Tokenizer reading doc from offset off.
func NewTokenizer(doc []byte, off int) *Tokenizer {
	return NewTokenizerDoc(NewPosDoc(doc), off)
}

// NewTokenizerDoc is NewTokenizer sharing an existing PosDoc.
func NewTokenizerDoc(pd *PosDoc, off int) *Tokenizer {
	return &Tokenizer{
		doc:    pd.d,
		posDoc: pd,
		off:    min(max(off, 0), len(pd.d)),
	}
}

func (t *Tokenizer) PosDoc() *PosDoc { return t.posDoc }

// Offset is the offset just past the last token returned.
func (t *Tokenizer) Offset() int { return t.off }

// Next returns the next token.  At the end of the document it returns a
// TEOF token, repeatedly.
func (t *Tokenizer) Next() (*Token, error) {
	d := t.doc
	i := skipSpace(d, t.off)
	if i == len(d) {
		t.off = i
		return &Token{Type: TEOF, Pos: t.posDoc.end()}, nil
	}
	tok, err := t.scan(i)
	if err != nil {
		return nil, err
	}
	t.off = tok.End()
	return tok, nil
}

func (t *Tokenizer) scan(i int) (*Token, error) {
	d := t.doc
	pos := t.posDoc.Pos(i)
	mk := func(tt TokenType, n int) *Token {
		return &Token{Type: tt, Pos: pos, Bytes: d[i : i+n]}
	}
	switch c := d[i]; c {
	case '[':
		return mk(TLSquare, 1), nil
	case ']':
		return mk(TRSquare, 1), nil
	case '{':
		return mk(TLCurl, 1), nil
	case '}':
		return mk(TRCurl, 1), nil
	case '(':
		return mk(TLParen, 1), nil
	case ')':
		return mk(TRParen, 1), nil
	case ',':
		return mk(TComma, 1), nil
	case ':':
		return mk(TColon, 1), nil
	case '&':
		return mk(TAmp, 1), nil
	case '"':
		n, err := bsEscQuoted(d[i:])
		if err != nil {
			if errors.Is(err, ErrUnterminated) {
				return nil, NewTokenizeErr(fmt.Errorf("%w string", err), pos)
			}
			return nil, NewTokenizeErr(err, t.posDoc.Pos(i+n))
		}
		return mk(TString, n), nil
	case '-', '+', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if isKeyWordPrefix(d[i:], kwNegInf) {
			return mk(TFloat, len(kwNegInf)), nil
		}
		n, isFloat, err := number(d[i:])
		if err != nil {
			return nil, UnexpectedErr(fmt.Sprintf("%q", c), pos)
		}
		if isFloat {
			return mk(TFloat, n), nil
		}
		return mk(TInteger, n), nil
	default:
		n := identLen(d[i:])
		if n == 0 {
			return nil, UnexpectedErr(describeByte(d[i:]), pos)
		}
		if isKeyWordPrefix(d[i:], kwInf) || isKeyWordPrefix(d[i:], kwNaN) {
			return mk(TFloat, n), nil
		}
		return mk(TIdent, n), nil
	}
}

// Tokenize returns every token of d, ending with TEOF.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	t := NewTokenizer(d, 0)
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
		if tok.Type == TEOF {
			return dst, nil
		}
	}
}

func skipSpace(d []byte, i int) int {
	for i < len(d) {
		switch d[i] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

func describeByte(d []byte) string {
	r, _ := utf8.DecodeRune(d)
	return fmt.Sprintf("%q", r)
}
