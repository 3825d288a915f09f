package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/godot-format/gdvalue/encode"
	"github.com/godot-format/gdvalue/format"
	"github.com/godot-format/gdvalue/roundtrip"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.gdv"), "1\n")
	writeFile(t, filepath.Join(dir, "sub", "b.gdv"), "2\n")
	writeFile(t, filepath.Join(dir, "sub", "c.tres"), "[resource]\nsize = 1\n")
	writeFile(t, filepath.Join(dir, "sub", "d.gd"), "extends Node\n")

	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	got, err := checkFiles(dir, cfg.exts())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.gdv"), filepath.Join(dir, "sub", "b.gdv")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default extensions (-want +got):\n%s", diff)
	}

	cfg.Ext = "tres, .gd"
	if diff := cmp.Diff([]string{".tres", ".gd"}, cfg.exts()); diff != "" {
		t.Errorf("-ext (-want +got):\n%s", diff)
	}
	got, err = checkFiles(dir, cfg.exts())
	if err != nil {
		t.Fatal(err)
	}
	want = []string{filepath.Join(dir, "sub", "c.tres"), filepath.Join(dir, "sub", "d.gd")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("-ext files (-want +got):\n%s", diff)
	}

	got, err = checkFiles(filepath.Join(dir, "sub", "d.gd"), defaultCheckExts)
	if err != nil || len(got) != 1 {
		t.Errorf("explicit file: %v %v", got, err)
	}
	if _, err := checkFiles(filepath.Join(dir, "missing"), defaultCheckExts); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.gdv")
	bad := filepath.Join(dir, "bad.gdv")
	broken := filepath.Join(dir, "broken.gdv")
	writeFile(t, good, "{\n\"a\": Vector2(1, 2)\n}\n")
	writeFile(t, bad, "1.50\n")
	writeFile(t, broken, "[1,\n")

	cfg := &CheckConfig{MainConfig: &MainConfig{Format: format.Godot4Format}}
	l := &roundtrip.ValueLoader{Encode: []encode.EncodeOption{encode.EncodeFormat(cfg.Format)}}

	var b strings.Builder
	ok, err := checkFile(cfg, &b, good, l)
	if err != nil || !ok || b.Len() != 0 {
		t.Errorf("good: %v %v %q", ok, err, b.String())
	}
	ok, err = checkFile(cfg, &b, bad, l)
	if err != nil || ok {
		t.Errorf("bad: %v %v", ok, err)
	}
	if !strings.HasPrefix(b.String(), "! Difference detected on "+bad+"\n") {
		t.Errorf("bad report %q", b.String())
	}
	ok, err = checkFile(cfg, &b, broken, l)
	if err != nil || ok {
		t.Errorf("broken: %v %v", ok, err)
	}
}
