// Package config loads the project configuration from trace.yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional config file name at the project root.
const DefaultFile = "trace.yaml"

// Config is the project configuration.
type Config struct {
	// OutputDir receives generated netlists and BOMs.
	OutputDir string `yaml:"output_dir"`

	// SymbolDir overrides symbol-library discovery. Empty means use the
	// KICAD8_SYMBOL_DIR environment variable or the platform defaults.
	SymbolDir string `yaml:"symbol_dir"`

	// IndexPath is where the symbol index cache lives.
	IndexPath string `yaml:"index_path"`

	// Tool is the tool string stamped into netlist headers.
	Tool string `yaml:"tool"`

	TitleBlock TitleBlock `yaml:"title_block"`
}

// TitleBlock feeds the netlist design header.
type TitleBlock struct {
	Title    string `yaml:"title"`
	Company  string `yaml:"company"`
	Revision string `yaml:"revision"`
}

// Default returns the configuration used when no trace.yaml exists. The
// output path mirrors the KiCad project layout this repository ships with.
func Default() Config {
	return Config{
		OutputDir: "kicad/trace-eurorack-module/netlists",
		IndexPath: ".trace/symbol-index.db",
		Tool:      "trace-eurorack",
		TitleBlock: TitleBlock{
			Title: "Trace Eurorack Module",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables override file values:
// TRACE_OUTPUT_DIR for the output directory, KICAD8_SYMBOL_DIR for the
// symbol directory (read later by the symbols package).
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults apply
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if dir := os.Getenv("TRACE_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}
	if cfg.OutputDir == "" {
		return Config{}, fmt.Errorf("%s: output_dir must not be empty", path)
	}
	if cfg.IndexPath == "" {
		cfg.IndexPath = Default().IndexPath
	}
	if cfg.Tool == "" {
		cfg.Tool = Default().Tool
	}
	return cfg, nil
}
