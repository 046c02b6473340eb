package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracemodular/trace-eurorack/internal/bom"
	"github.com/tracemodular/trace-eurorack/internal/buildinfo"
	"github.com/tracemodular/trace-eurorack/internal/config"
	"github.com/tracemodular/trace-eurorack/pkg/circuit"
	"github.com/tracemodular/trace-eurorack/pkg/erc"
	"github.com/tracemodular/trace-eurorack/pkg/kicad/netlist"
)

var buildCmd = &cobra.Command{
	Use:   "build [circuit...]",
	Short: "Build circuits: rules check, netlist and BOM",
	Long: `Build runs each circuit definition through the electrical rules check
and, when it passes, writes its KiCad netlist and BOM into the output
directory. Without arguments every registered circuit is built. Any
failure fails the whole build.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := selectCircuits(args)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	banner("Trace Eurorack Module - Circuit Build")

	failed := 0
	for _, entry := range entries {
		if err := buildOne(entry, cfg); err != nil {
			fmt.Printf("FAILED: %s: %v\n", entry.Name, err)
			failed++
		}
	}

	fmt.Println()
	if failed > 0 {
		banner(fmt.Sprintf("BUILD FAILED - %d of %d circuits failed", failed, len(entries)))
		return fmt.Errorf("%d circuit(s) failed", failed)
	}
	banner("BUILD COMPLETE - All circuits generated successfully")
	return nil
}

func buildOne(entry circuit.Entry, cfg config.Config) error {
	banner("Building: " + entry.Name)

	c, res, err := checkCircuit(entry)
	printViolations(res)
	if err != nil {
		return err
	}

	opts := netlist.Options{
		Tool:     buildinfo.Tool(cfg.Tool),
		Title:    cfg.TitleBlock.Title,
		Company:  cfg.TitleBlock.Company,
		Revision: buildinfo.Revision(".", cfg.TitleBlock.Revision),
	}
	nl := netlist.Generate(c, opts)
	netPath := filepath.Join(cfg.OutputDir, netlist.FileName(entry.Name))
	if err := nl.WriteFile(netPath); err != nil {
		return err
	}
	fmt.Printf("Netlist written to: %s\n", netPath)

	bomPath := filepath.Join(cfg.OutputDir, entry.Name+"_bom.csv")
	if err := writeBOMFile(c, bomPath); err != nil {
		return err
	}
	fmt.Printf("BOM written to: %s\n", bomPath)

	slog.Debug("circuit built",
		"circuit", entry.Name,
		"parts", len(c.Parts()),
		"nets", len(c.Nets()),
		"warnings", res.WarningCount())
	return nil
}

// checkCircuit constructs a circuit and runs the rules check, returning an
// error when construction failed or the check found errors.
func checkCircuit(entry circuit.Entry) (*circuit.Circuit, *erc.Result, error) {
	start := time.Now()
	c := entry.Build()
	if err := c.Err(); err != nil {
		return nil, &erc.Result{}, fmt.Errorf("construction: %w", err)
	}
	res := erc.Check(c)
	slog.Debug("rules check finished",
		"circuit", entry.Name,
		"errors", res.ErrorCount(),
		"warnings", res.WarningCount(),
		"took", time.Since(start))
	if !res.Passed() {
		return c, res, fmt.Errorf("electrical rules check found %d error(s)", res.ErrorCount())
	}
	return c, res, nil
}

func printViolations(res *erc.Result) {
	for _, v := range res.Violations {
		fmt.Printf("  %s\n", v)
	}
}

func writeBOMFile(c *circuit.Circuit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create BOM file: %w", err)
	}
	if err := bom.WriteCSV(f, bom.Build(c)); err != nil {
		f.Close()
		return fmt.Errorf("write BOM: %w", err)
	}
	return f.Close()
}

// selectCircuits resolves the circuits named on the command line, or all
// registered circuits when none are named.
func selectCircuits(names []string) ([]circuit.Entry, error) {
	if len(names) == 0 {
		entries := circuit.Registered()
		if len(entries) == 0 {
			return nil, fmt.Errorf("no circuits registered")
		}
		return entries, nil
	}
	var entries []circuit.Entry
	for _, name := range names {
		entry, ok := circuit.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown circuit %q, run 'trace list' to see circuits", name)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}
