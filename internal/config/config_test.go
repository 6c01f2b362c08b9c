package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
directory = "/home/me/notes"
editor = "hx"

[ui]
accent = "6"
code_theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Directory != "/home/me/notes" {
		t.Errorf("Directory = %q", cfg.Directory)
	}
	if cfg.Editor != "hx" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
	if cfg.UI.Accent != "6" || cfg.UI.CodeTheme != "dracula" {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("directory = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestResolveDirectoryPrecedence(t *testing.T) {
	cfg := &Config{Directory: "/from/config"}

	t.Setenv("JOT_DIR", "")
	got, err := cfg.ResolveDirectory("/from/flag")
	if err != nil || got != "/from/flag" {
		t.Errorf("flag: got %q, %v", got, err)
	}

	t.Setenv("JOT_DIR", "/from/env")
	got, err = cfg.ResolveDirectory("")
	if err != nil || got != "/from/env" {
		t.Errorf("env: got %q, %v", got, err)
	}

	t.Setenv("JOT_DIR", "")
	got, err = cfg.ResolveDirectory("")
	if err != nil || got != "/from/config" {
		t.Errorf("config: got %q, %v", got, err)
	}

	empty := &Config{}
	if _, err := empty.ResolveDirectory(""); err == nil {
		t.Error("expected error when nothing is configured")
	}
}

func TestResolveEditorPrecedence(t *testing.T) {
	t.Setenv("JOT_EDITOR", "")
	t.Setenv("EDITOR", "")

	if got := (&Config{Editor: "hx"}).ResolveEditor(); got != "hx" {
		t.Errorf("config editor: %q", got)
	}

	t.Setenv("JOT_EDITOR", "nano")
	t.Setenv("EDITOR", "emacs")
	if got := (&Config{}).ResolveEditor(); got != "nano" {
		t.Errorf("JOT_EDITOR: %q", got)
	}

	t.Setenv("JOT_EDITOR", "")
	if got := (&Config{}).ResolveEditor(); got != "emacs" {
		t.Errorf("EDITOR: %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := (&Config{}).ResolveEditor(); got != "vi" {
		t.Errorf("default: %q", got)
	}
}
