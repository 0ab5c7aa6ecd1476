package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/budget"
	"github.com/theirongolddev/budgetcut/internal/config"
	"github.com/theirongolddev/budgetcut/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	vals := wizardStart()
	chartWidth := strconv.Itoa(vals.Display.ChartWidth)

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Budget file").
				Description("TOML or YAML budget. Leave blank to use the built-in sample.").
				Value(&vals.General.BudgetFile).
				Validate(validateBudgetFile),
			huh.NewSelect[string]().
				Title("Default strategy").
				Options(
					huh.NewOption("Both (compare)", "both"),
					huh.NewOption("Knapsack (exact, whole categories)", "exact"),
					huh.NewOption("Greedy (fast, partial cuts)", "greedy"),
				).
				Value(&vals.General.Strategy),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(4).
				Value(&vals.Display.Currency),
			huh.NewInput().
				Title("Chart width").
				Value(&chartWidth).
				Validate(validateChartWidth),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	vals.General.BudgetFile = strings.TrimSpace(vals.General.BudgetFile)
	width, err := parseChartWidth(chartWidth)
	if err != nil {
		return err
	}
	vals.Display.ChartWidth = width

	if err := config.Save(vals); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `budgetcut setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// wizardStart returns the saved config without environment overrides, so
// values from BUDGETCUT_* variables are never written back to the file.
func wizardStart() config.Config {
	vals, err := config.LoadFile(config.Path())
	if err != nil {
		log.Warn().Err(err).Msg("config unreadable, starting from defaults")
		return config.DefaultConfig()
	}
	return vals
}

func validateBudgetFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	_, err := budget.Load(path)
	return err
}

func validateChartWidth(s string) error {
	_, err := parseChartWidth(s)
	return err
}

func parseChartWidth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 10 || n > 200 {
		return 0, fmt.Errorf("enter a number between 10 and 200")
	}
	return n, nil
}
