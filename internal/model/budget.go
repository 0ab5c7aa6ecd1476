// Package model defines domain types for budgetcut budgets and plans.
package model

// Expense is one recurring expense category and what is currently spent on it.
type Expense struct {
	Name string
	Cost int64
}

// Category joins an expense with its priority. Higher priority means more
// important to keep funded.
type Category struct {
	Name     string
	Cost     int64
	Priority int
}

// Budget is one input dataset: income, expenses in enumeration order,
// per-category priorities and the savings goal.
type Budget struct {
	Income      int64
	Expenses    []Expense
	Priorities  map[string]int
	SavingsGoal int64
}

// TotalExpenses returns the sum of all expense costs.
func (b Budget) TotalExpenses() int64 {
	var total int64
	for _, e := range b.Expenses {
		total += e.Cost
	}
	return total
}

// Remaining returns income left over after expenses. Negative when
// expenses exceed income.
func (b Budget) Remaining() int64 {
	return b.Income - b.TotalExpenses()
}

// WithGoal returns a copy of the budget with a different savings goal.
func (b Budget) WithGoal(goal int64) Budget {
	b.SavingsGoal = goal
	return b
}
