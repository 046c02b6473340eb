package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracemodular/trace-eurorack/pkg/circuit"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered circuits",
	Run: func(cmd *cobra.Command, args []string) {
		for _, entry := range circuit.Registered() {
			fmt.Printf("  %-16s %s\n", entry.Name, entry.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
