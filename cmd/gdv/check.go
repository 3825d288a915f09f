package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/roundtrip"

	"github.com/scott-cotton/cli"
)

var errCheckFailed = errors.New("round-trip check failed")

// defaultCheckExts names value stream files, the only files the value
// loader reads.  Scene and resource files need an outer loader for their
// section headers and key = value lines.
var defaultCheckExts = []string{".gdv"}

func (cfg *CheckConfig) exts() []string {
	if cfg.Ext == "" {
		return defaultCheckExts
	}
	var res []string
	for _, e := range strings.Split(cfg.Ext, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		res = append(res, e)
	}
	return res
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	loader := &roundtrip.ValueLoader{
		Parse:  cfg.parseOpts(),
		Encode: []encode.EncodeOption{encode.EncodeFormat(cfg.Format)},
	}
	failed := 0
	for _, arg := range args {
		files, err := checkFiles(arg, cfg.exts())
		if err != nil {
			return err
		}
		for _, file := range files {
			ok, err := checkFile(cfg, cc.Out, file, loader)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
			failed++
			if !cfg.All {
				return errCheckFailed
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d files differ", errCheckFailed, failed)
	}
	_, err = fmt.Fprintln(cc.Out, "All tests passed!")
	return err
}

// checkFiles expands a directory into the files below it whose
// extension is one of exts.
func checkFiles(arg string, exts []string) ([]string, error) {
	if arg == "-" {
		return []string{arg}, nil
	}
	st, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{arg}, nil
	}
	var res []string
	err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(exts, filepath.Ext(path)) {
			return nil
		}
		res = append(res, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func checkFile(cfg *CheckConfig, w io.Writer, file string, l roundtrip.Loader) (bool, error) {
	if cfg.Verbose {
		theLog.Info("parsing", "file", file)
	}
	var (
		src []byte
		err error
	)
	if file == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(file)
	}
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", file, err)
	}
	res, err := roundtrip.Verify(file, src, l, roundtrip.Unescape(cfg.Unescape))
	if err != nil {
		fmt.Fprintf(os.Stderr, "! Parsing error on %s\n%v\n", file, err)
		return false, nil
	}
	if err := res.Report(w); err != nil {
		return false, err
	}
	return res.OK(), nil
}
