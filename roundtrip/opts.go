package roundtrip

import (
	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/format"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/parse"
)

type config struct {
	unescape bool
	format   format.Format
	registry *ir.Registry
}

type Option func(*config)

// Unescape decodes escape sequences inside quoted strings before
// comparing texts.
func Unescape(v bool) Option {
	return func(c *config) { c.unescape = v }
}

// Format sets the text format CheckValue encodes with.
func Format(f format.Format) Option {
	return func(c *config) { c.format = f }
}

// Registry sets the constructor registry used when parsing.
func Registry(r *ir.Registry) Option {
	return func(c *config) { c.registry = r }
}

func newConfig(opts []Option) *config {
	c := &config{registry: ir.Default}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.WithRegistry(c.registry)}
}

func (c *config) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{encode.EncodeFormat(c.format)}
}
