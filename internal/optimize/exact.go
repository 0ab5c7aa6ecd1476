package optimize

import (
	"fmt"

	"github.com/theirongolddev/budgetcut/internal/model"
)

// MaxTableCells bounds the size of the exact selector's table.
const MaxTableCells = 50_000_000

// Exact picks the set of whole categories with the highest total priority
// whose combined cost fits within goal. Every adjustment cuts a category by
// its full cost. Adjustments are returned in reverse expense order.
//
// A zero-cost category with positive priority is always selected.
func Exact(expenses []model.Expense, priorities map[string]int, goal int64) (model.Plan, error) {
	cats, err := categories(expenses, priorities, goal)
	if err != nil {
		return model.Plan{}, err
	}
	plan := model.Plan{Strategy: model.StrategyExact}

	// Rows for capacities at or above the total cost are identical, so the
	// table never needs to be wider than min(goal, total). The sum stops at
	// goal and cannot overflow.
	var capacity int64
	for _, c := range cats {
		if c.Cost >= goal-capacity {
			capacity = goal
			break
		}
		capacity += c.Cost
	}

	n := len(cats)
	if capacity >= MaxTableCells || int64(n+1) > MaxTableCells/(capacity+1) {
		return model.Plan{}, fmt.Errorf("%w: %d categories x %d", ErrCapacityTooLarge, n, capacity+1)
	}
	width := capacity + 1

	stride := int(width)
	table := make([]int, (n+1)*stride)
	for i := 1; i <= n; i++ {
		c := cats[i-1]
		row := table[i*stride : (i+1)*stride]
		prev := table[(i-1)*stride : i*stride]
		for w := 0; w < stride; w++ {
			row[w] = prev[w]
			if c.Cost <= int64(w) {
				if v := c.Priority + prev[w-int(c.Cost)]; v > row[w] {
					row[w] = v
				}
			}
		}
	}

	w := int(capacity)
	for i := n; i > 0; i-- {
		if table[i*stride+w] == table[(i-1)*stride+w] {
			continue
		}
		c := cats[i-1]
		plan.Adjustments = append(plan.Adjustments, model.Adjustment{Category: c.Name, Amount: c.Cost})
		w -= int(c.Cost)
	}

	return plan, nil
}
