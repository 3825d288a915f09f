package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tests := []tokTest{
		{
			in:    `[1, 2.5, "x"]`,
			types: []TokenType{TLSquare, TInteger, TComma, TFloat, TComma, TString, TRSquare, TEOF},
			texts: []string{"[", "1", ",", "2.5", ",", "x", "]", ""},
		},
		{
			in:    `Array[StringName](&"a")`,
			types: []TokenType{TIdent, TLSquare, TIdent, TRSquare, TLParen, TAmp, TString, TRParen, TEOF},
			texts: []string{"Array", "[", "StringName", "]", "(", "&", "a", ")", ""},
		},
		{
			in:    "{\n\t\"k\": -1e-3 }",
			types: []TokenType{TLCurl, TString, TColon, TFloat, TRCurl, TEOF},
			texts: []string{"{", "k", ":", "-1e-3", "}", ""},
		},
		{
			in:    `inf -inf nan info _x9 .5 1. +3 007`,
			types: []TokenType{TFloat, TFloat, TFloat, TIdent, TIdent, TFloat, TFloat, TInteger, TInteger, TEOF},
			texts: []string{"inf", "-inf", "nan", "info", "_x9", ".5", "1.", "+3", "007", ""},
		},
		{
			in:    "\"multi\nline\"",
			types: []TokenType{TString, TEOF},
			texts: []string{"multi\nline", ""},
		},
		{
			in:    `1e 2`,
			types: []TokenType{TInteger, TIdent, TInteger, TEOF},
			texts: []string{"1", "e", "2", ""},
		},
	}
	for _, tt := range tests {
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		types := make([]TokenType, len(toks))
		texts := make([]string, len(toks))
		for i := range toks {
			types[i] = toks[i].Type
			texts[i] = toks[i].String()
		}
		if diff := cmp.Diff(tt.types, types); diff != "" {
			t.Errorf("%q types (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(tt.texts, texts); diff != "" {
			t.Errorf("%q texts (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
		off int
	}{
		{`"abc`, ErrUnterminated, 0},
		{`[1, "a\u12"]`, ErrBadUnicode, 8},
		{`[1, @]`, ErrUnexpected, 4},
		{`-x`, ErrUnexpected, 0},
		{`  .`, ErrUnexpected, 2},
		{"\"a\xff\"", ErrBadUTF8, 2},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: %T is not a *TokenizeErr", tt.in, err)
			continue
		}
		if te.Pos.I != tt.off {
			t.Errorf("%q: error at %d, want %d", tt.in, te.Pos.I, tt.off)
		}
	}
}

func TestTokenizerLazy(t *testing.T) {
	doc := []byte(`x = Vector2(1, 2) @@@ garbage`)
	tk := NewTokenizer(doc, 4)
	var got []string
	for {
		tok, err := tk.Next()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, tok.String())
		if tok.Type == TRParen {
			break
		}
	}
	if diff := cmp.Diff([]string{"Vector2", "(", "1", ",", "2", ")"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if tk.Offset() != strings.Index(string(doc), " @@@") {
		t.Errorf("offset %d", tk.Offset())
	}
}

func TestTokenFloat(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`-inf 1.5e2`))
	if err != nil {
		t.Fatal(err)
	}
	f, err := toks[0].Float()
	if err != nil || f > -1e308 {
		t.Errorf("-inf: %v %v", f, err)
	}
	f, err = toks[1].Float()
	if err != nil || f != 150 {
		t.Errorf("1.5e2: %v %v", f, err)
	}
}
