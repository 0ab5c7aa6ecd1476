// Package cmd implements the budgetcut CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/budgetcut/internal/budget"
	"github.com/theirongolddev/budgetcut/internal/config"
	"github.com/theirongolddev/budgetcut/internal/logging"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/optimize"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagBudget   string
	flagGoal     int64
	flagStrategy string
	flagQuiet    bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "budgetcut",
	Short: "Pick which expenses to cut to reach a savings goal",
	Long: "Compare an exact knapsack selection against a fast greedy heuristic\n" +
		"for cutting recurring expenses while keeping the important ones funded.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle: runSuggest -> loadBudget -> rootCmd.
	rootCmd.RunE = runSuggest

	rootCmd.PersistentFlags().StringVarP(&flagBudget, "budget", "b", "", "Budget file (.toml, .yaml); built-in sample if unset")
	rootCmd.PersistentFlags().Int64VarP(&flagGoal, "goal", "g", 0, "Override the budget's savings goal")
	rootCmd.PersistentFlags().StringVarP(&flagStrategy, "strategy", "s", "", "Strategy: exact, greedy or both")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
}

var cfg config.Config

func setup(_ *cobra.Command, _ []string) error {
	logging.Setup(os.Stderr, logging.Level(flagVerbose, flagQuiet))

	if err := config.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("ignoring .env")
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		// Commands still work on defaults
		log.Warn().Err(err).Str("path", config.Path()).Msg("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}
	return nil
}

// loadBudget is the shared input path used by all commands. It returns the
// budget and a short description of where it came from.
func loadBudget() (model.Budget, string, error) {
	path := flagBudget
	if path == "" {
		path = cfg.General.BudgetFile
	}

	var (
		b      model.Budget
		source string
	)
	if path == "" {
		b, source = budget.Sample(), "sample budget"
	} else {
		var err error
		b, err = budget.Load(path)
		if err != nil {
			return model.Budget{}, "", err
		}
		source = path
	}

	if rootCmd.PersistentFlags().Changed("goal") {
		if flagGoal < 0 {
			return model.Budget{}, "", fmt.Errorf("--goal: %w: %d", optimize.ErrInvalidGoal, flagGoal)
		}
		b = b.WithGoal(flagGoal)
	}

	log.Debug().
		Str("source", source).
		Int("expenses", len(b.Expenses)).
		Int64("goal", b.SavingsGoal).
		Msg("budget loaded")
	return b, source, nil
}

// strategies resolves --strategy, falling back to the configured default.
func strategies() ([]model.Strategy, error) {
	name := flagStrategy
	if name == "" {
		name = cfg.General.Strategy
	}
	if name == "" || name == "both" {
		return model.Strategies, nil
	}
	s, err := model.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []model.Strategy{s}, nil
}

func currency() string {
	if cfg.Display.Currency == "" {
		return "$"
	}
	return cfg.Display.Currency
}

func chartWidth() int {
	if cfg.Display.ChartWidth < 10 {
		return 40
	}
	return cfg.Display.ChartWidth
}
