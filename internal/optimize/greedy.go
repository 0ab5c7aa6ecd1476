package optimize

import (
	"sort"

	"github.com/theirongolddev/budgetcut/internal/model"
)

// Greedy cuts categories in ascending priority order, each by as much as is
// still needed, until goal is met or categories run out. Ties keep expense
// order. The last category touched may be cut only partially.
//
// The result is not guaranteed to maximize retained priority.
func Greedy(expenses []model.Expense, priorities map[string]int, goal int64) (model.Plan, error) {
	cats, err := categories(expenses, priorities, goal)
	if err != nil {
		return model.Plan{}, err
	}
	plan := model.Plan{Strategy: model.StrategyGreedy}

	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Priority < cats[j].Priority
	})

	remaining := goal
	for _, c := range cats {
		if remaining <= 0 {
			break
		}
		cut := min(c.Cost, remaining)
		if cut == 0 {
			continue
		}
		plan.Adjustments = append(plan.Adjustments, model.Adjustment{Category: c.Name, Amount: cut})
		remaining -= cut
	}

	return plan, nil
}
