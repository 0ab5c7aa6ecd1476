package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/optimize"
)

// NotReachableMessage is shown when a plan cannot free up the whole goal.
const NotReachableMessage = "Your expenses are too high to meet the savings goal with adjustments alone."

// SuggestionLines returns the plain-text suggestions for a plan: a header
// naming the strategy, then one line per adjustment when the goal is
// reached, or NotReachableMessage otherwise.
func SuggestionLines(plan model.Plan, goal int64, currency string) []string {
	lines := []string{
		fmt.Sprintf("=== %s Budget Optimization Suggestions ===", plan.Strategy.Title()),
	}
	if !optimize.Reached(plan, goal) {
		return append(lines, NotReachableMessage)
	}

	lines = append(lines, fmt.Sprintf("To reach your savings goal of %s%d, consider adjusting these expenses:", currency, goal))
	for _, a := range plan.Adjustments {
		lines = append(lines, "- Reduce "+a.Category+" by "+currency+strconv.FormatInt(a.Amount, 10))
	}
	return lines
}

// RenderSuggestions renders SuggestionLines with color.
func RenderSuggestions(plan model.Plan, goal int64, currency string) string {
	lines := SuggestionLines(plan, goal, currency)

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(lines[0]))
	b.WriteString("\n")
	for i, line := range lines[1:] {
		b.WriteString("  ")
		switch {
		case line == NotReachableMessage:
			b.WriteString(warnStyle.Render(line))
		case i == 0:
			b.WriteString(mutedStyle.Render(line))
		default:
			b.WriteString(valueStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(RenderProgressBar(plan.Total(), goal, 30))
	b.WriteString("\n")
	return b.String()
}

// RenderBudget renders income, the expense table and the savings goal.
func RenderBudget(b model.Budget, currency string) string {
	total := b.TotalExpenses()

	rows := make([][]string, 0, len(b.Expenses)+3)
	for _, e := range b.Expenses {
		priority := "-"
		if p, ok := b.Priorities[e.Name]; ok {
			priority = strconv.Itoa(p)
		}
		rows = append(rows, []string{
			e.Name,
			FormatAmount(currency, e.Cost),
			priority,
			FormatPercent(Share(e.Cost, total)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", FormatAmount(currency, total), "", ""})

	var out strings.Builder
	fmt.Fprintf(&out, "  %s %s\n\n",
		mutedStyle.Render("Income:"), valueStyle.Render(FormatAmount(currency, b.Income)))
	out.WriteString(RenderTable(Table{
		Title:   "Expenses",
		Headers: []string{"Category", "Cost", "Priority", "Share"},
		Rows:    rows,
	}))
	fmt.Fprintf(&out, "  %s %s   %s %s\n",
		mutedStyle.Render("Savings Goal:"), valueStyle.Render(FormatAmount(currency, b.SavingsGoal)),
		mutedStyle.Render("Left after expenses:"), valueStyle.Render(FormatAmount(currency, b.Remaining())))
	return out.String()
}

// RenderComparison renders one row per strategy outcome.
func RenderComparison(cmp optimize.Comparison, currency string) string {
	rows := make([][]string, 0, len(cmp.Outcomes))
	for _, o := range cmp.Outcomes {
		reached := "no"
		if o.Reached {
			reached = "yes"
		}
		rows = append(rows, []string{
			o.Plan.Strategy.Title(),
			FormatAmount(currency, o.Total),
			strconv.Itoa(o.Touched),
			strconv.Itoa(o.Retained),
			reached,
		})
	}

	return RenderTable(Table{
		Title:   fmt.Sprintf("Strategies vs goal of %s", FormatAmount(currency, cmp.Goal)),
		Headers: []string{"Strategy", "Cut", "Categories", "Retained Priority", "Reached"},
		Rows:    rows,
	})
}
