package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	// Register all circuit definitions.
	_ "github.com/tracemodular/trace-eurorack/circuits"
	"github.com/tracemodular/trace-eurorack/internal/buildinfo"
	"github.com/tracemodular/trace-eurorack/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	outputDir  string
)

var rootCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace Eurorack Module - circuits-as-code build tool",
	Long: `trace builds the Trace Eurorack module's circuits: each circuit is
defined in Go, checked against electrical rules, and emitted as a KiCad
netlist for manual layout in the PCB editor.

Examples:
  trace build                          # Build all circuits
  trace build power_supply             # Build one circuit
  trace erc input_channel              # Rules check only
  trace netlist info out/power_supply.net
  trace symbols verify                 # Check catalog against KiCad libraries`,
	Version: buildinfo.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "project config file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
}

// loadConfig reads the project config and applies the --output override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}
