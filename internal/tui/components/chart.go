package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/cli"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// PlanBars renders one horizontal bar per expense. When plan is non-nil the
// part of each bar the plan cuts is drawn in the warn color and the cut
// amount is listed after the cost.
func PlanBars(expenses []model.Expense, plan *model.Plan, currency string, width int) string {
	if len(expenses) == 0 {
		return ""
	}
	t := theme.Active

	cuts := make(map[string]int64)
	if plan != nil {
		for _, a := range plan.Adjustments {
			cuts[a.Category] = a.Amount
		}
	}

	labelW := 0
	var peak int64
	for _, e := range expenses {
		labelW = max(labelW, lipgloss.Width(e.Name))
		peak = max(peak, e.Cost)
	}
	if peak == 0 {
		peak = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keepStyle := lipgloss.NewStyle().Foreground(t.Accent)
	cutStyle := lipgloss.NewStyle().Foreground(t.Warn)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, e := range expenses {
		total := scaled(e.Cost, peak, width)
		cut := scaled(cuts[e.Name], peak, width)
		if cut > total {
			cut = total
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, e.Name)))
		b.WriteString(" ")
		b.WriteString(keepStyle.Render(strings.Repeat("█", total-cut)))
		b.WriteString(cutStyle.Render(strings.Repeat("▒", cut)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(cli.FormatAmount(currency, e.Cost)))
		if amt, ok := cuts[e.Name]; ok {
			b.WriteString(cutStyle.Render(" -" + cli.FormatAmount(currency, amt)))
		}
		if i < len(expenses)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ShareBar renders the expense distribution as one stacked bar plus legend.
func ShareBar(expenses []model.Expense, width int) string {
	t := theme.Active
	segs := cli.ShareSegments(expenses, width)

	var total int64
	for _, e := range expenses {
		total += e.Cost
	}

	var bar strings.Builder
	legend := make([]string, 0, len(expenses))
	for i, e := range expenses {
		style := lipgloss.NewStyle().Foreground(t.SeriesColor(i))
		bar.WriteString(style.Render(strings.Repeat("█", segs[i])))
		legend = append(legend, style.Render("■")+" "+
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(
				fmt.Sprintf("%s %s", e.Name, cli.FormatPercent(cli.Share(e.Cost, total)))))
	}
	return bar.String() + "\n" + strings.Join(legend, "  ")
}

func scaled(v, peak int64, width int) int {
	if v <= 0 {
		return 0
	}
	n := int(float64(v) / float64(peak) * float64(width))
	return max(n, 1)
}
