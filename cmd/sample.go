package cmd

import (
	"os"

	"github.com/theirongolddev/budgetcut/internal/budget"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample budget as TOML",
	Long:  "Print the built-in sample budget as TOML, e.g. `budgetcut sample > budget.toml`.",
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(_ *cobra.Command, _ []string) error {
	data, err := budget.Encode(budget.Sample())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
