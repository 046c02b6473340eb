package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ercCmd = &cobra.Command{
	Use:   "erc [circuit...]",
	Short: "Run the electrical rules check without generating output",
	RunE:  runErc,
}

func init() {
	rootCmd.AddCommand(ercCmd)
}

func runErc(cmd *cobra.Command, args []string) error {
	entries, err := selectCircuits(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, entry := range entries {
		fmt.Printf("%s:\n", entry.Name)
		_, res, err := checkCircuit(entry)
		printViolations(res)
		if err != nil {
			failed++
			fmt.Printf("  %v\n", err)
			continue
		}
		fmt.Printf("  OK (%d warning(s))\n", res.WarningCount())
	}

	if failed > 0 {
		return fmt.Errorf("%d circuit(s) failed the rules check", failed)
	}
	return nil
}
