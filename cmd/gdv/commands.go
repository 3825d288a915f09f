package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output format: canonical/c, godot4/4, godot3/3",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.Format), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "gdv").
		WithSynopsis("gdv [opts] command [opts]").
		WithDescription("gdv reads and writes the value notation of Godot scene and resource files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gdvMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			DumpCommand(cfg),
			TypesCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("re-serialize value streams").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtValues(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-all] [-v] [-unescape] [-ext exts] [files or dirs]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check parses each file, writes it back out and compares the two texts.

Files hold whitespace separated values, as written by fmt.  Scene and
resource files (.tscn, .tres) are not read whole: their section headers and
key = value lines belong to an outer loader which check does not provide.

Directories are searched for .gdv files, or for the extensions given with
-ext.  Before comparing, both
texts are normalized: lines are trimmed, blank lines dropped, strings spanning
several lines joined and spaces outside strings squeezed.  With -unescape,
escape sequences inside strings are decoded as well.

check stops at the first file which differs unless -all is given.`

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-tokens] [-pos] [-y] [files]").
		WithDescription("dump IR").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list the object names with registered constructors").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
