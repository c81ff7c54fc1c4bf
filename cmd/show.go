package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/promptvary/internal/variants"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Re-render the report for a saved variant file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := variants.Read(args[0])
		if err != nil {
			return err
		}
		variants.Report(os.Stdout, records)
		return nil
	},
}
