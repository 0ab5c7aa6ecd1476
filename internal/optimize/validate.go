// Package optimize selects which expenses to cut to reach a savings goal.
//
// Two strategies are provided: Exact solves the 0/1 knapsack over
// (cost, priority) with the goal as capacity, and Greedy cuts the least
// important categories first, partially if needed. Both are pure and safe
// to call concurrently.
package optimize

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/model"
)

var (
	// ErrMissingPriority means an expense has no entry in the priority map.
	ErrMissingPriority = errors.New("missing priority")
	// ErrInvalidGoal means the savings goal is negative.
	ErrInvalidGoal = errors.New("invalid savings goal")
	// ErrInvalidAmount means a cost or priority is negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDuplicateCategory means a category name appears more than once.
	ErrDuplicateCategory = errors.New("duplicate category")
	// ErrCapacityTooLarge means the exact table would exceed MaxTableCells.
	ErrCapacityTooLarge = errors.New("capacity too large for exact selection")
)

// categories validates the inputs and joins expenses with their priorities,
// preserving expense order.
func categories(expenses []model.Expense, priorities map[string]int, goal int64) ([]model.Category, error) {
	if goal < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGoal, goal)
	}

	seen := make(map[string]struct{}, len(expenses))
	out := make([]model.Category, 0, len(expenses))
	for _, e := range expenses {
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, e.Name)
		}
		seen[e.Name] = struct{}{}

		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: cost of %q is %d", ErrInvalidAmount, e.Name, e.Cost)
		}
		p, ok := priorities[e.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPriority, e.Name)
		}
		if p < 0 {
			return nil, fmt.Errorf("%w: priority of %q is %d", ErrInvalidAmount, e.Name, p)
		}
		out = append(out, model.Category{Name: e.Name, Cost: e.Cost, Priority: p})
	}
	return out, nil
}

// Validate checks a budget without running a selector.
func Validate(b model.Budget) error {
	_, err := categories(b.Expenses, b.Priorities, b.SavingsGoal)
	return err
}
