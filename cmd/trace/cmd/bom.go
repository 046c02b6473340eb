package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tracemodular/trace-eurorack/internal/bom"
)

var bomCmd = &cobra.Command{
	Use:   "bom <circuit>",
	Short: "Print a circuit's bill of materials as CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := selectCircuits(args)
		if err != nil {
			return err
		}
		c, _, err := checkCircuit(entries[0])
		if err != nil {
			return err
		}
		return bom.WriteCSV(os.Stdout, bom.Build(c))
	},
}

func init() {
	rootCmd.AddCommand(bomCmd)
}
