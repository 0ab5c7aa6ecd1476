package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/cli"
	"github.com/theirongolddev/budgetcut/internal/optimize"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print the budget and suggested cuts per strategy",
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	b, source, err := loadBudget()
	if err != nil {
		return err
	}
	strats, err := strategies()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET OPTIMIZATION  " + source))
	fmt.Println()
	fmt.Print(cli.RenderBudget(b, currency()))

	for _, s := range strats {
		plan, err := optimize.Run(s, b)
		if err != nil {
			return err
		}
		log.Debug().
			Str("strategy", string(s)).
			Int("adjustments", len(plan.Adjustments)).
			Int64("total", plan.Total()).
			Msg("plan computed")

		fmt.Println()
		fmt.Print(cli.RenderSuggestions(plan, b.SavingsGoal, currency()))
	}
	fmt.Println()

	return nil
}
