package parse

import (
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/token"
)

type parseOpts struct {
	registry  *ir.Registry
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithRegistry reduces object-calls through r instead of ir.Default.
func WithRegistry(r *ir.Registry) ParseOption {
	return func(o *parseOpts) { o.registry = r }
}

// ParsePositions records in m the position of the first token of every
// node in the result.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{registry: ir.Default}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.registry == nil {
		pOpts.registry = ir.Default
	}
	return pOpts
}
