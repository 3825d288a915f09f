package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/godot-format/gdvalue/debug"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/token"
)

// Each production returns (node, true, nil) on a match, (nil, false,
// nil) when the input does not match and the caller may try another
// alternative, or an error which ends the parse.
type production func() (*ir.Node, bool, error)

func (p *parser) value() (*ir.Node, bool, error) {
	start := p.i
	alts := []struct {
		name string
		f    production
	}{
		{"list", p.list},
		{"typed container", p.typed},
		{"dict", p.dict},
		{"object", p.object},
		{"primitive", p.primitive},
	}
	for _, alt := range alts {
		n, ok, err := alt.f()
		if err != nil {
			return nil, false, err
		}
		if ok {
			p.trackPos(n, start)
			return n, true, nil
		}
		if debug.Parse() && p.i > start {
			debug.Logf("parse: %s abandoned at token %d after %d tokens\n", alt.name, start, p.i-start)
		}
		p.i = start
	}
	return nil, false, nil
}

// list := '[' [ value { ',' value } [ ',' ] ] ']'
func (p *parser) list() (*ir.Node, bool, error) {
	items, ok, err := p.listItems()
	if !ok || err != nil {
		return nil, ok, err
	}
	return ir.FromSlice(items), true, nil
}

func (p *parser) listItems() ([]*ir.Node, bool, error) {
	if _, ok, err := p.accept(token.TLSquare); !ok || err != nil {
		return nil, ok, err
	}
	items := []*ir.Node{}
	if _, ok, err := p.accept(token.TRSquare); ok || err != nil {
		return items, ok, err
	}
	for {
		v, ok, err := p.value()
		if !ok || err != nil {
			return nil, ok, err
		}
		items = append(items, v)
		if _, ok, err := p.accept(token.TRSquare); ok || err != nil {
			return items, ok, err
		}
		if _, ok, err := p.accept(token.TComma); !ok || err != nil {
			return nil, ok, err
		}
		if _, ok, err := p.accept(token.TRSquare); ok || err != nil {
			return items, ok, err
		}
	}
}

// typed := ident typeParams '(' body ')'
//
// One type parameter makes a typed array, whose body is a single list or
// the items written directly: Array[int]([1, 2]) or Array[int](1, 2).  Two
// make a typed dictionary, whose body is a dict.  The head is parsed once
// for both.
func (p *parser) typed() (*ir.Node, bool, error) {
	name, ok, err := p.ident()
	if !ok || err != nil {
		return nil, ok, err
	}
	params, ok, err := p.typeParams()
	if !ok || err != nil {
		return nil, ok, err
	}
	if _, ok, err := p.accept(token.TLParen); !ok || err != nil {
		return nil, ok, err
	}
	if len(params) == 2 {
		kvs, ok, err := p.dictEntries()
		if !ok || err != nil {
			return nil, ok, err
		}
		if _, ok, err := p.accept(token.TRParen); !ok || err != nil {
			return nil, ok, err
		}
		return ir.NewNamedTypedDict(name, params[0], params[1], kvs...), true, nil
	}
	start := p.i
	items, ok, err := p.args()
	if !ok || err != nil {
		return nil, ok, err
	}
	if len(items) == 1 && items[0].Type == ir.ListType && p.toks[start].Type == token.TLSquare {
		return ir.NewNamedTypedArray(name, params[0], items[0].Values...), true, nil
	}
	res := ir.NewNamedTypedArray(name, params[0], items...)
	res.Unbracketed = true
	return res, true, nil
}

// dict := '{' [ value ':' value { ',' value ':' value } ] '}'
func (p *parser) dict() (*ir.Node, bool, error) {
	kvs, ok, err := p.dictEntries()
	if !ok || err != nil {
		return nil, ok, err
	}
	return ir.FromKeyVals(kvs), true, nil
}

func (p *parser) dictEntries() ([]ir.KeyVal, bool, error) {
	if _, ok, err := p.accept(token.TLCurl); !ok || err != nil {
		return nil, ok, err
	}
	kvs := []ir.KeyVal{}
	if _, ok, err := p.accept(token.TRCurl); ok || err != nil {
		return kvs, ok, err
	}
	for {
		k, ok, err := p.value()
		if !ok || err != nil {
			return nil, ok, err
		}
		if _, ok, err := p.accept(token.TColon); !ok || err != nil {
			return nil, ok, err
		}
		v, ok, err := p.value()
		if !ok || err != nil {
			return nil, ok, err
		}
		kvs = append(kvs, ir.KeyVal{Key: k, Val: v})
		if _, ok, err := p.accept(token.TRCurl); ok || err != nil {
			return kvs, ok, err
		}
		if _, ok, err := p.accept(token.TComma); !ok || err != nil {
			return nil, ok, err
		}
	}
}

// typeParams := '[' type [ ',' type ] ']'
func (p *parser) typeParams() ([]*ir.Node, bool, error) {
	if _, ok, err := p.accept(token.TLSquare); !ok || err != nil {
		return nil, ok, err
	}
	params := make([]*ir.Node, 0, 2)
	for {
		t, ok, err := p.typeAnnotation()
		if !ok || err != nil {
			return nil, ok, err
		}
		params = append(params, t)
		if _, ok, err := p.accept(token.TRSquare); ok || err != nil {
			return params, ok, err
		}
		if len(params) == 2 {
			return nil, false, nil
		}
		if _, ok, err := p.accept(token.TComma); !ok || err != nil {
			return nil, ok, err
		}
	}
}

// type := object | ident
func (p *parser) typeAnnotation() (*ir.Node, bool, error) {
	start := p.i
	n, ok, err := p.object()
	if ok || err != nil {
		if ok {
			p.trackPos(n, start)
		}
		return n, ok, err
	}
	p.i = start
	name, ok, err := p.ident()
	if !ok || err != nil {
		return nil, ok, err
	}
	n = ir.Ident(name)
	p.trackPos(n, start)
	return n, true, nil
}

// object := ident '(' [ value { ',' value } ] ')'
func (p *parser) object() (*ir.Node, bool, error) {
	start := p.i
	name, ok, err := p.ident()
	if !ok || err != nil {
		return nil, ok, err
	}
	if _, ok, err := p.accept(token.TLParen); !ok || err != nil {
		return nil, ok, err
	}
	args, ok, err := p.args()
	if !ok || err != nil {
		return nil, ok, err
	}
	n, err := p.opts.registry.Construct(name, args)
	if debug.Registry() {
		if err != nil {
			debug.Logf("registry: %s: %v\n", name, err)
		} else {
			debug.Logf("registry: %s -> %s\n", name, debug.Node{Node: n})
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w at %s", err, p.toks[start].Pos)
	}
	if n == nil {
		return nil, false, fmt.Errorf("%w: constructor for %s returned nil at %s",
			ir.ErrConstruction, name, p.toks[start].Pos)
	}
	return n, true, nil
}

// args := [ value { ',' value } ] ')'
func (p *parser) args() ([]*ir.Node, bool, error) {
	args := []*ir.Node{}
	if _, ok, err := p.accept(token.TRParen); ok || err != nil {
		return args, ok, err
	}
	for {
		v, ok, err := p.value()
		if !ok || err != nil {
			return nil, ok, err
		}
		args = append(args, v)
		if _, ok, err := p.accept(token.TRParen); ok || err != nil {
			return args, ok, err
		}
		if _, ok, err := p.accept(token.TComma); !ok || err != nil {
			return nil, ok, err
		}
	}
}

func (p *parser) ident() (string, bool, error) {
	t, ok, err := p.accept(token.TIdent)
	if !ok || err != nil {
		return "", ok, err
	}
	return string(t.Bytes), true, nil
}

// primitive := 'null' | bool | string | '&' string | integer | float
func (p *parser) primitive() (*ir.Node, bool, error) {
	t, err := p.peek()
	if err != nil {
		return nil, false, err
	}
	switch t.Type {
	case token.TIdent:
		kw := string(t.Bytes)
		switch {
		case kw == "null":
			p.i++
			return ir.Null(), true, nil
		case strings.EqualFold(kw, "true"):
			p.i++
			return ir.FromBool(true), true, nil
		case strings.EqualFold(kw, "false"):
			p.i++
			return ir.FromBool(false), true, nil
		}
	case token.TString:
		p.i++
		return ir.FromString(t.String()), true, nil
	case token.TAmp:
		p.i++
		s, ok, err := p.accept(token.TString)
		if !ok || err != nil {
			return nil, ok, err
		}
		return ir.FromStringName(s.String()), true, nil
	case token.TInteger:
		p.i++
		return integer(t), true, nil
	case token.TFloat:
		p.i++
		f, err := t.Float()
		if err != nil {
			return nil, false, tokenizeErr(err)
		}
		return ir.FromFloat(f), true, nil
	}
	for _, what := range []string{"null", "true", "false", "string", "'&'", "integer", "float"} {
		p.fail(what)
	}
	return nil, false, nil
}

// integer keeps literals outside the int64 range verbatim.
func integer(t *token.Token) *ir.Node {
	lit := string(t.Bytes)
	i, err := strconv.ParseInt(lit, 10, 64)
	if err == nil {
		return ir.FromInt(i)
	}
	if errors.Is(err, strconv.ErrRange) {
		return ir.FromNumberLiteral(strings.TrimPrefix(lit, "+"))
	}
	// the tokenizer only produces decimal digits
	panic(fmt.Sprintf("integer token %q: %v", lit, err))
}
