package main

import (
	"fmt"
	"io"
	"os"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/parse"

	"github.com/scott-cotton/cli"
)

func fmtValues(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		if err := fmtReader(cfg, cc.Out, cc.In); err != nil {
			return err
		}
		return nil
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, file string) error {
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
	if err := fmtReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func fmtReader(cfg *FmtConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	values, err := parse.ParseMulti(in, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	for i, v := range values {
		if err := encode.Encode(v, w, opts...); err != nil {
			return fmt.Errorf("error encoding value %d: %w", i, err)
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return fmt.Errorf("error writing value %d: %w", i, err)
		}
	}
	return nil
}
