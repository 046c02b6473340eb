package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TRACE_OUTPUT_DIR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "trace.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.OutputDir != def.OutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, def.OutputDir)
	}
	if cfg.Tool != def.Tool {
		t.Errorf("Tool = %q, want %q", cfg.Tool, def.Tool)
	}
	if cfg.IndexPath != def.IndexPath {
		t.Errorf("IndexPath = %q, want %q", cfg.IndexPath, def.IndexPath)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	t.Setenv("TRACE_OUTPUT_DIR", "")
	content := `
output_dir: out/netlists
symbol_dir: /opt/kicad/symbols
tool: my-tool
title_block:
  title: My Module
  company: Trace Modular
  revision: r3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out/netlists" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.SymbolDir != "/opt/kicad/symbols" {
		t.Errorf("SymbolDir = %q", cfg.SymbolDir)
	}
	if cfg.Tool != "my-tool" {
		t.Errorf("Tool = %q", cfg.Tool)
	}
	if cfg.TitleBlock.Title != "My Module" || cfg.TitleBlock.Revision != "r3" {
		t.Errorf("TitleBlock = %+v", cfg.TitleBlock)
	}
	// Unset fields keep their defaults.
	if cfg.IndexPath != Default().IndexPath {
		t.Errorf("IndexPath = %q", cfg.IndexPath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRACE_OUTPUT_DIR", "/tmp/override")
	cfg, err := Load(filepath.Join(t.TempDir(), "trace.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/override" {
		t.Errorf("OutputDir = %q, want env override", cfg.OutputDir)
	}
}

func TestLoadRejectsEmptyOutputDir(t *testing.T) {
	t.Setenv("TRACE_OUTPUT_DIR", "")
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte("output_dir: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("empty output_dir should fail")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should fail")
	}
}
