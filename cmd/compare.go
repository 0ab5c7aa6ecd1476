package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/cli"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/optimize"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the exact and greedy strategies side by side",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	b, source, err := loadBudget()
	if err != nil {
		return err
	}

	cmp, err := optimize.Compare(cmd.Context(), b)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("STRATEGY COMPARISON  " + source))
	fmt.Println()
	fmt.Print(cli.RenderComparison(cmp, currency()))

	exact, _ := cmp.Outcome(model.StrategyExact)
	greedy, _ := cmp.Outcome(model.StrategyGreedy)
	if exact.Reached != greedy.Reached {
		fmt.Println()
		fmt.Println("  Note: only one strategy reaches the goal. Knapsack never cuts a category")
		fmt.Println("  partially, so it can fall short where Greedy does not.")
	}
	fmt.Println()

	return nil
}
