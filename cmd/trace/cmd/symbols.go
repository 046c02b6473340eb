package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tracemodular/trace-eurorack/circuits"
	"github.com/tracemodular/trace-eurorack/pkg/kicad/symbols"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "KiCad symbol library operations",
	Long: `Commands that resolve against the installed KiCad symbol libraries.
The library directory is discovered from ` + symbols.EnvVar + ` or the
platform's default install location.`,
}

var symbolsVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check the part catalog against the KiCad libraries",
	RunE:  runSymbolsVerify,
}

var symbolsSearchCmd = &cobra.Command{
	Use:   "search <library> <name>",
	Short: "Search a KiCad library for symbols matching a substring",
	Args:  cobra.ExactArgs(2),
	RunE:  runSymbolsSearch,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
	symbolsCmd.AddCommand(symbolsVerifyCmd)
	symbolsCmd.AddCommand(symbolsSearchCmd)
}

// openIndex locates the symbol directory and opens the cache over it.
func openIndex() (*symbols.Index, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	dir := cfg.SymbolDir
	if dir == "" {
		dir, err = symbols.FindSymbolDir()
		if err != nil {
			return nil, err
		}
	}
	slog.Debug("using symbol directory", "dir", dir)
	return symbols.OpenIndex(cfg.IndexPath, dir)
}

func runSymbolsVerify(cmd *cobra.Command, args []string) error {
	ix, err := openIndex()
	if err != nil {
		return err
	}
	defer ix.Close()

	ctx := context.Background()
	mismatches := 0
	for _, def := range circuits.Catalog() {
		sym, err := ix.Lookup(ctx, def.LibID())
		if err != nil {
			fmt.Printf("  %s: %v\n", def.LibID(), err)
			mismatches++
			continue
		}
		findings := symbols.Verify(def, sym)
		for _, f := range findings {
			fmt.Printf("  %s\n", f)
		}
		mismatches += len(findings)
	}

	if mismatches > 0 {
		return fmt.Errorf("%d catalog mismatch(es)", mismatches)
	}
	fmt.Println("Catalog matches the installed KiCad libraries")
	return nil
}

func runSymbolsSearch(cmd *cobra.Command, args []string) error {
	ix, err := openIndex()
	if err != nil {
		return err
	}
	defer ix.Close()

	names, err := ix.SearchSymbols(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Printf("No symbols matching %q in library %s\n", args[1], args[0])
		return nil
	}
	for _, name := range names {
		fmt.Printf("  %s:%s\n", args[0], name)
	}
	return nil
}
