package main

import (
	"fmt"
	"io"
	"os"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/format"
	"github.com/godot-format/gdvalue/ir"
	"github.com/godot-format/gdvalue/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Format format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.WithRegistry(ir.Default)}
}

// encOpts colors output when asked to with -color, or when w is a
// terminal and -color was not given at all.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.Format),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main == nil {
		return res
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	All      bool   `cli:"name=all desc='check all files even if one fails'"`
	Verbose  bool   `cli:"name=v aliases=verbose desc='log each file as it is checked'"`
	Unescape bool   `cli:"name=unescape desc='decode string escapes before comparing'"`
	Ext      string `cli:"name=ext desc='comma separated extensions of files searched in directories (default .gdv)'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Tokens bool `cli:"name=tokens desc='dump tokens instead of values'"`
	Pos    bool `cli:"name=pos desc='dump source positions of values'"`
	YAML   bool `cli:"name=y aliases=yaml desc='dump in yaml rather than json'"`

	Dump *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
