package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theirongolddev/budgetcut/internal/config"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/optimize"
)

func resetFlags(t *testing.T) {
	t.Helper()
	reset := func() {
		flagBudget, flagGoal, flagStrategy = "", 0, ""
		rootCmd.PersistentFlags().Lookup("goal").Changed = false
		cfg = config.DefaultConfig()
	}
	reset()
	t.Cleanup(reset)
}

func setGoal(t *testing.T, v string) {
	t.Helper()
	if err := rootCmd.PersistentFlags().Set("goal", v); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBudget_SampleWithGoalOverride(t *testing.T) {
	resetFlags(t)
	setGoal(t, "0")

	b, source, err := loadBudget()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != "sample budget" {
		t.Errorf("source = %q, want sample budget", source)
	}
	if b.SavingsGoal != 0 {
		t.Errorf("SavingsGoal = %d, want 0 (override)", b.SavingsGoal)
	}
	if len(b.Expenses) != 5 {
		t.Errorf("expenses = %d, want 5", len(b.Expenses))
	}
}

func TestLoadBudget_NoGoalFlagKeepsBudgetGoal(t *testing.T) {
	resetFlags(t)

	b, _, err := loadBudget()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.SavingsGoal != 500 {
		t.Errorf("SavingsGoal = %d, want 500", b.SavingsGoal)
	}
}

func TestLoadBudget_NegativeGoalRejected(t *testing.T) {
	resetFlags(t)
	setGoal(t, "-5")

	_, _, err := loadBudget()
	if !errors.Is(err, optimize.ErrInvalidGoal) {
		t.Fatalf("err = %v, want ErrInvalidGoal", err)
	}
}

func TestLoadBudget_ConfiguredFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	content := "savings_goal: 40\nexpense:\n  - name: tv\n    cost: 60\npriorities:\n  tv: 1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg.General.BudgetFile = path

	b, source, err := loadBudget()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != path || b.SavingsGoal != 40 {
		t.Errorf("source/goal = %q/%d, want %q/40", source, b.SavingsGoal, path)
	}
}

func TestStrategies(t *testing.T) {
	resetFlags(t)

	got, err := strategies()
	if err != nil || !reflect.DeepEqual(got, model.Strategies) {
		t.Fatalf("default = %v, %v; want both", got, err)
	}

	cfg.General.Strategy = "greedy"
	got, _ = strategies()
	if !reflect.DeepEqual(got, []model.Strategy{model.StrategyGreedy}) {
		t.Errorf("configured = %v, want greedy", got)
	}

	flagStrategy = "knapsack"
	got, _ = strategies()
	if !reflect.DeepEqual(got, []model.Strategy{model.StrategyExact}) {
		t.Errorf("flag = %v, want exact", got)
	}

	flagStrategy = "random"
	if _, err := strategies(); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestValidateChartWidth(t *testing.T) {
	for _, good := range []string{"40", " 40 "} {
		if err := validateChartWidth(good); err != nil {
			t.Errorf("%q: %v", good, err)
		}
	}
	for _, bad := range []string{"", "abc", "5", "500"} {
		if err := validateChartWidth(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseChartWidth_TrimsInput(t *testing.T) {
	n, err := parseChartWidth(" 40 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 40 {
		t.Errorf("width = %d, want 40", n)
	}
}

func TestWizardStart_IgnoresEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BUDGETCUT_BUDGET_FILE", "/tmp/from-env.toml")
	t.Setenv("BUDGETCUT_STRATEGY", "greedy")

	saved := config.DefaultConfig()
	saved.General.Strategy = "exact"
	if err := config.Save(saved); err != nil {
		t.Fatal(err)
	}

	got := wizardStart()
	if got.General.Strategy != "exact" {
		t.Errorf("Strategy = %q, want exact (from file)", got.General.Strategy)
	}
	if got.General.BudgetFile != "" {
		t.Errorf("BudgetFile = %q, want empty", got.General.BudgetFile)
	}
}
