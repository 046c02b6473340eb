package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracemodular/trace-eurorack/internal/buildinfo"
	"github.com/tracemodular/trace-eurorack/pkg/kicad/netlist"
)

var netlistCmd = &cobra.Command{
	Use:   "netlist",
	Short: "KiCad netlist operations",
	Long:  `Commands for generating and inspecting KiCad netlist files (.net)`,
}

var netlistGenCmd = &cobra.Command{
	Use:   "gen <circuit>",
	Short: "Generate a circuit's netlist to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetlistGen,
}

var netlistInfoCmd = &cobra.Command{
	Use:   "info <netlist_file>",
	Short: "Summarize a generated netlist file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetlistInfo,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.AddCommand(netlistGenCmd)
	netlistCmd.AddCommand(netlistInfoCmd)
}

func runNetlistGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	entries, err := selectCircuits(args[:1])
	if err != nil {
		return err
	}
	c, _, err := checkCircuit(entries[0])
	if err != nil {
		return err
	}
	nl := netlist.Generate(c, netlist.Options{
		Tool:     buildinfo.Tool(cfg.Tool),
		Title:    cfg.TitleBlock.Title,
		Company:  cfg.TitleBlock.Company,
		Revision: buildinfo.Revision(".", cfg.TitleBlock.Revision),
	})
	return nl.Write(os.Stdout)
}

func runNetlistInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	nl, err := netlist.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing netlist: %w", err)
	}

	fmt.Printf("Netlist: %s\n", filename)
	fmt.Printf("Source: %s\n", nl.Design.Source)
	fmt.Printf("Tool: %s\n", nl.Design.Tool)
	fmt.Printf("Date: %s\n", nl.Design.Date)
	if rev := nl.Design.Sheet.TitleBlock.Revision; rev != "" {
		fmt.Printf("Revision: %s\n", rev)
	}
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", len(nl.Components))
	fmt.Printf("  Library parts: %d\n", len(nl.LibParts))
	fmt.Printf("  Nets: %d\n", len(nl.Nets))
	fmt.Println()

	if len(nl.Components) > 0 {
		fmt.Println("Components:")

		// Group by reference prefix
		byPrefix := make(map[string][]string)
		for _, comp := range nl.Components {
			prefix := refPrefix(comp.Ref)
			byPrefix[prefix] = append(byPrefix[prefix], comp.Ref)
		}
		var prefixes []string
		for p := range byPrefix {
			prefixes = append(prefixes, p)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			refs := byPrefix[prefix]
			sort.Strings(refs)
			fmt.Printf("  %s: %s\n", prefix, strings.Join(refs, ", "))
		}
		fmt.Println()
	}

	if len(nl.Nets) > 0 {
		fmt.Println("Nets:")
		for _, net := range nl.Nets {
			nodes := make([]string, 0, len(net.Nodes))
			for _, node := range net.Nodes {
				nodes = append(nodes, node.Ref+"."+node.Pin)
			}
			fmt.Printf("  %s: %s\n", net.Name, strings.Join(nodes, ", "))
		}
	}

	return nil
}

func refPrefix(ref string) string {
	for i, c := range ref {
		if c >= '0' && c <= '9' {
			return ref[:i]
		}
	}
	return ref
}
