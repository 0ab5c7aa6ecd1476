package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/cli"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Bar and distribution charts of the budget's expenses",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	b, _, err := loadBudget()
	if err != nil {
		return err
	}
	if len(b.Expenses) == 0 {
		fmt.Println("\n  No expenses to chart.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderExpenseBars(b.Expenses, currency(), chartWidth()))
	fmt.Println()
	fmt.Print(cli.RenderExpenseShare(b.Expenses, chartWidth()))
	fmt.Println()

	return nil
}
