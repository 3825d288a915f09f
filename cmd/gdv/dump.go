package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/parse"
	"github.com/godot-format/gdvalue/token"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if err := dumpReader(cfg, cc.Out, cc.In, "-"); err != nil {
			return err
		}
		return nil
	}
	for _, file := range args {
		if err := dumpFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(cfg, w, f, file); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader, name string) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	if cfg.Tokens {
		toks, err := token.Tokenize(nil, in)
		if err != nil {
			return err
		}
		token.PrintTokens(w, toks, name)
		return nil
	}
	positions := map[*ir.Node]*token.Pos{}
	opts := cfg.parseOpts()
	if cfg.Pos {
		opts = append(opts, parse.ParsePositions(positions))
	}
	values, err := parse.ParseMulti(in, opts...)
	if err != nil {
		return err
	}
	for i, v := range values {
		if cfg.Pos {
			if err := dumpPositions(w, v, positions); err != nil {
				return fmt.Errorf("error dumping value %d: %w", i, err)
			}
			continue
		}
		j, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		if cfg.YAML {
			if i > 0 {
				if _, err := w.Write([]byte("---\n")); err != nil {
					return fmt.Errorf("error writing value %d: %w", i, err)
				}
			}
			j, err = yaml.JSONToYAML(j)
			if err != nil {
				return fmt.Errorf("internal error: %w", err)
			}
			if _, err := w.Write(j); err != nil {
				return fmt.Errorf("error writing value %d: %w", i, err)
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\n", j); err != nil {
			return fmt.Errorf("error writing value %d: %w", i, err)
		}
	}
	return nil
}

// dumpPositions writes one line per node of v, indented by depth.
func dumpPositions(w io.Writer, v *ir.Node, positions map[*ir.Node]*token.Pos) error {
	depth := 0
	return v.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return true, nil
		}
		depth++
		pos := positions[y]
		at := "-"
		if pos != nil {
			line, col := pos.LineCol()
			at = fmt.Sprintf("%d:%d", line, col)
		}
		desc := y.Name
		if y.Type != ir.IdentType && y.Type.IsLeaf() {
			desc = encode.MustString(y)
		}
		_, err := fmt.Fprintf(w, "%*s%s %s %s\n", 2*(depth-1), "", at, y.Type, desc)
		return true, err
	})
}
