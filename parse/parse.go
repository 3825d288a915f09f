package parse

import (
	"errors"
	"slices"

	"github.com/godot-format/gdvalue/debug"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/token"
)

// Value parses one value starting at byte offset pos of src and returns
// it with the offset just past its last token.  Text after the value may
// be looked at but is never required to be valid.
func Value(src []byte, pos int, opts ...ParseOption) (*ir.Node, int, error) {
	p := newParser(token.NewTokenizer(src, pos), newOpts(opts))
	n, err := p.top()
	if err != nil {
		return nil, pos, err
	}
	p.finish(n)
	return n, p.end(), nil
}

// Parse parses src, which must hold exactly one value.
func Parse(src []byte, opts ...ParseOption) (*ir.Node, error) {
	p := newParser(token.NewTokenizer(src, 0), newOpts(opts))
	n, err := p.top()
	if err != nil {
		return nil, err
	}
	if err := p.eof(); err != nil {
		return nil, err
	}
	p.finish(n)
	return n, nil
}

// ParseMulti parses a whitespace separated sequence of values.
func ParseMulti(src []byte, opts ...ParseOption) ([]*ir.Node, error) {
	p := newParser(token.NewTokenizer(src, 0), newOpts(opts))
	var res []*ir.Node
	for {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch t.Type {
		case token.TEOF:
			return res, nil
		case tPending:
			return nil, p.tokErr
		}
		n, err := p.top()
		if err != nil {
			return nil, err
		}
		p.finish(n)
		res = append(res, n)
	}
}

// parser is a backtracking recursive descent parser over a lazily
// filled token buffer.  Alternatives reset i on failure.
type parser struct {
	tk   *token.Tokenizer
	toks []*token.Token
	i    int
	opts *parseOpts

	// furthest failure
	failAt   int
	expected []string

	pos map[*ir.Node]*token.Pos

	// tokErr is the tokenizer error behind a trailing tPending token.
	tokErr error
}

// tPending stands for input which could not be tokenized.  It matches
// no production, so it is only reported when a parse fails on it.
const tPending token.TokenType = -1

func newParser(tk *token.Tokenizer, opts *parseOpts) *parser {
	return &parser{
		tk:     tk,
		opts:   opts,
		failAt: -1,
	}
}

func (p *parser) peek() (*token.Token, error) {
	for len(p.toks) <= p.i {
		if n := len(p.toks); n > 0 && (p.toks[n-1].Type == token.TEOF || p.toks[n-1].Type == tPending) {
			return p.toks[n-1], nil
		}
		t, err := p.tk.Next()
		if err != nil {
			var te *token.TokenizeErr
			if !errors.As(err, &te) {
				return nil, err
			}
			p.tokErr = tokenizeErr(err)
			t = &token.Token{Type: tPending, Pos: &te.Pos}
		}
		if debug.Tokens() {
			debug.Logf("token %s %q at %d\n", t.Type, t.Bytes, t.Pos.I)
		}
		p.toks = append(p.toks, t)
	}
	return p.toks[p.i], nil
}

// accept consumes the next token if it has type tt, and otherwise
// records tt as expected here.
func (p *parser) accept(tt token.TokenType) (*token.Token, bool, error) {
	t, err := p.peek()
	if err != nil {
		return nil, false, err
	}
	if t.Type != tt {
		p.fail(tt.Describe())
		return nil, false, nil
	}
	p.i++
	return t, true, nil
}

func (p *parser) fail(what string) {
	switch {
	case p.i > p.failAt:
		p.failAt = p.i
		p.expected = append(p.expected[:0], what)
	case p.i == p.failAt:
		if !slices.Contains(p.expected, what) {
			p.expected = append(p.expected, what)
		}
	}
}

// top parses one value with fresh failure tracking.
func (p *parser) top() (*ir.Node, error) {
	p.failAt = -1
	p.expected = p.expected[:0]
	p.pos = nil
	if p.opts.positions != nil {
		p.pos = map[*ir.Node]*token.Pos{}
	}
	n, ok, err := p.value()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.syntaxErr()
	}
	return n, nil
}

func (p *parser) syntaxErr() error {
	p.i = max(p.failAt, 0)
	t, err := p.peek()
	if err != nil {
		return err
	}
	if t.Type == tPending {
		return p.tokErr
	}
	exp := slices.Clone(p.expected)
	slices.Sort(exp)
	return &SyntaxError{
		Pos:      *t.Pos,
		Expected: exp,
		Found:    found(t),
	}
}

func (p *parser) eof() error {
	t, err := p.peek()
	if err != nil {
		return err
	}
	switch t.Type {
	case token.TEOF:
		return nil
	case tPending:
		return p.tokErr
	}
	return &SyntaxError{
		Pos:      *t.Pos,
		Expected: []string{token.TEOF.Describe()},
		Found:    found(t),
	}
}

// end is the offset just past the last consumed token.
func (p *parser) end() int {
	if p.i == 0 {
		return p.tk.Offset()
	}
	return p.toks[p.i-1].End()
}

// finish copies the positions of the nodes of n, skipping nodes built
// by abandoned alternatives.
func (p *parser) finish(n *ir.Node) {
	if p.opts.positions == nil {
		return
	}
	_ = n.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if pos, ok := p.pos[y]; ok {
			p.opts.positions[y] = pos
		}
		return true, nil
	})
}

func (p *parser) trackPos(n *ir.Node, start int) {
	if p.pos != nil {
		p.pos[n] = p.toks[start].Pos
	}
}
