package token

import (
	"fmt"
	"math"
	"strconv"
)

type TokenType int

const (
	TLSquare TokenType = iota
	TRSquare
	TLCurl
	TRCurl
	TLParen
	TRParen
	TComma
	TColon
	TAmp
	TString
	TInteger
	TFloat
	TIdent
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TComma:   "TComma",
		TColon:   "TColon",
		TAmp:     "TAmp",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TIdent:   "TIdent",
		TEOF:     "TEOF",
	}[t]
}

// Describe returns how the token type reads in a diagnostic.
func (t TokenType) Describe() string {
	switch t {
	case TLSquare:
		return "'['"
	case TRSquare:
		return "']'"
	case TLCurl:
		return "'{'"
	case TRCurl:
		return "'}'"
	case TLParen:
		return "'('"
	case TRParen:
		return "')'"
	case TComma:
		return "','"
	case TColon:
		return "':'"
	case TAmp:
		return "'&'"
	case TString:
		return "string"
	case TInteger:
		return "integer"
	case TFloat:
		return "float"
	case TIdent:
		return "identifier"
	case TEOF:
		return "end of input"
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// End is the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

// String returns the decoded text of a string token and the raw text of
// any other token.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// Float returns the value of a TFloat token.
func (t *Token) Float() (float64, error) {
	switch string(t.Bytes) {
	case "inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		return 0, NewTokenizeErr(fmt.Errorf("%w: %w", ErrNumber, err), t.Pos)
	}
	return f, nil
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
