package cmd

import (
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.BudgetFile != "" {
		fmt.Printf("    Budget file: %s\n", cfg.General.BudgetFile)
	} else {
		fmt.Println("    Budget file: not set (built-in sample)")
	}
	fmt.Printf("    Strategy:    %s\n", cfg.General.Strategy)
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:    %s\n", cfg.Display.Currency)
	fmt.Printf("    Chart width: %d\n", cfg.Display.ChartWidth)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `budgetcut setup` to reconfigure.")
	return nil
}
