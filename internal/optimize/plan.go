package optimize

import (
	"context"
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/model"

	"golang.org/x/sync/errgroup"
)

// Reached reports whether a plan frees up at least goal.
func Reached(plan model.Plan, goal int64) bool {
	return plan.Total() >= goal
}

// RetainedPriority sums the priorities of expenses the plan leaves untouched.
// Expenses without a priority count as zero.
func RetainedPriority(plan model.Plan, expenses []model.Expense, priorities map[string]int) int {
	retained := 0
	for _, e := range expenses {
		if !plan.Touches(e.Name) {
			retained += priorities[e.Name]
		}
	}
	return retained
}

// Run dispatches to the selector for strategy.
func Run(strategy model.Strategy, b model.Budget) (model.Plan, error) {
	switch strategy {
	case model.StrategyExact:
		return Exact(b.Expenses, b.Priorities, b.SavingsGoal)
	case model.StrategyGreedy:
		return Greedy(b.Expenses, b.Priorities, b.SavingsGoal)
	}
	return model.Plan{}, fmt.Errorf("unknown strategy %q", strategy)
}

// Outcome is one strategy's plan plus the metrics used to compare it.
type Outcome struct {
	Plan     model.Plan
	Total    int64
	Retained int
	Touched  int
	Reached  bool
}

// Comparison holds the outcome of every strategy for one budget.
type Comparison struct {
	Goal     int64
	Outcomes []Outcome // ordered as model.Strategies
}

// Outcome returns the outcome for strategy, if present.
func (c Comparison) Outcome(strategy model.Strategy) (Outcome, bool) {
	for _, o := range c.Outcomes {
		if o.Plan.Strategy == strategy {
			return o, true
		}
	}
	return Outcome{}, false
}

// Evaluate computes the comparison metrics for a plan.
func Evaluate(plan model.Plan, b model.Budget) Outcome {
	return Outcome{
		Plan:     plan,
		Total:    plan.Total(),
		Retained: RetainedPriority(plan, b.Expenses, b.Priorities),
		Touched:  len(plan.Adjustments),
		Reached:  Reached(plan, b.SavingsGoal),
	}
}

// Compare runs every strategy over the same budget concurrently.
func Compare(ctx context.Context, b model.Budget) (Comparison, error) {
	if err := Validate(b); err != nil {
		return Comparison{}, err
	}

	outcomes := make([]Outcome, len(model.Strategies))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range model.Strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plan, err := Run(s, b)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			outcomes[i] = Evaluate(plan, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	return Comparison{Goal: b.SavingsGoal, Outcomes: outcomes}, nil
}
