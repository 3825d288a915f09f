package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godot-format/gdvalue/token"
)

var ErrSyntax = errors.New("syntax error")

// SyntaxError reports where the input stopped matching the grammar.
// Expected holds the alternatives tried at Pos; Found describes what was
// there instead.  When the input could not be tokenized, Err holds the
// *token.TokenizeErr.
type SyntaxError struct {
	Pos      token.Pos
	Expected []string
	Found    string
	Err      error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", ErrSyntax, e.Err)
	}
	var want string
	switch len(e.Expected) {
	case 0:
		want = "value"
	case 1:
		want = e.Expected[0]
	default:
		want = "one of " + strings.Join(e.Expected, ", ")
	}
	return fmt.Sprintf("%s: expected %s, found %s at %s", ErrSyntax, want, e.Found, e.Pos)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSyntax}
	}
	return []error{ErrSyntax, e.Err}
}

func (e *SyntaxError) Line() int { return e.Pos.Line() }
func (e *SyntaxError) Col() int  { return e.Pos.Col() }

func tokenizeErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &SyntaxError{Pos: te.Pos, Err: err}
	}
	return err
}

func found(t *token.Token) string {
	switch t.Type {
	case token.TEOF:
		return t.Type.Describe()
	case token.TString, token.TIdent, token.TInteger, token.TFloat:
		s := string(t.Bytes)
		if rs := []rune(s); len(rs) > 24 {
			s = string(rs[:21]) + "..."
		}
		return fmt.Sprintf("%s %q", t.Type.Describe(), s)
	default:
		return t.Type.Describe()
	}
}
