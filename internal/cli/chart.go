package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderExpenseBars renders a horizontal bar chart of cost per category.
func RenderExpenseBars(expenses []model.Expense, currency string, width int) string {
	if len(expenses) == 0 {
		return ""
	}

	labelW := 0
	var peak int64
	for _, e := range expenses {
		labelW = max(labelW, lipgloss.Width(e.Name))
		peak = max(peak, e.Cost)
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Monthly Expenses"))
	b.WriteString("\n")
	for _, e := range expenses {
		fmt.Fprintf(&b, "  %s %s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-*s", labelW, e.Name)),
			RenderHorizontalBar(e.Cost, peak, width, ColorBlue),
			valueStyle.Render(FormatAmount(currency, e.Cost)))
	}
	return b.String()
}

// ShareSegments splits width cells across expenses in proportion to cost.
// Rounding leftovers go to the largest remainders so the segments always
// fill width exactly when any cost is positive.
func ShareSegments(expenses []model.Expense, width int) []int {
	segs := make([]int, len(expenses))
	var total int64
	for _, e := range expenses {
		total += max(e.Cost, 0)
	}
	if total <= 0 || width <= 0 {
		return segs
	}

	rems := make([]float64, len(expenses))
	used := 0
	for i, e := range expenses {
		exact := float64(max(e.Cost, 0)) / float64(total) * float64(width)
		segs[i] = int(exact)
		rems[i] = exact - float64(segs[i])
		used += segs[i]
	}
	for ; used < width; used++ {
		best := 0
		for i := range rems {
			if rems[i] > rems[best] {
				best = i
			}
		}
		segs[best]++
		rems[best] = -1
	}
	return segs
}

// RenderExpenseShare renders the cost distribution as a single stacked bar
// with a legend of percentage shares.
func RenderExpenseShare(expenses []model.Expense, width int) string {
	if len(expenses) == 0 {
		return ""
	}

	var total int64
	for _, e := range expenses {
		total += e.Cost
	}
	segs := ShareSegments(expenses, width)

	var bar, legend strings.Builder
	for i, e := range expenses {
		color := Palette[i%len(Palette)]
		style := lipgloss.NewStyle().Foreground(color)
		bar.WriteString(style.Render(strings.Repeat("█", segs[i])))
		fmt.Fprintf(&legend, "  %s %s %s\n",
			style.Render("■"),
			valueStyle.Render(e.Name),
			mutedStyle.Render(FormatPercent(Share(e.Cost, total))))
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render("Expense Distribution"))
	b.WriteString("\n  ")
	b.WriteString(bar.String())
	b.WriteString("\n")
	b.WriteString(legend.String())
	return b.String()
}
