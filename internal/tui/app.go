// Package tui provides the read-only Bubble Tea dashboard for budgetcut.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/cli"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/optimize"
	"github.com/theirongolddev/budgetcut/internal/tui/components"
	"github.com/theirongolddev/budgetcut/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlansMsg is sent when both strategies have been computed.
type PlansMsg struct {
	Comparison optimize.Comparison
	Err        error
}

// App is the root Bubble Tea model.
type App struct {
	budget   model.Budget
	source   string
	currency string

	cmp    optimize.Comparison
	err    error
	loaded bool

	width     int
	height    int
	activeTab int
	showHelp  bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
)

// NewApp creates the dashboard for one budget. source names where the
// budget came from and is shown in the status bar.
func NewApp(b model.Budget, source, currency string) App {
	return App{
		budget:   b,
		source:   source,
		currency: currency,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return comparePlansCmd(a.budget)
}

func comparePlansCmd(b model.Budget) tea.Cmd {
	return func() tea.Msg {
		cmp, err := optimize.Compare(context.Background(), b)
		return PlansMsg{Comparison: cmp, Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case PlansMsg:
		a.cmp = msg.Comparison
		a.err = msg.Err
		a.loaded = true
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "left", "shift+tab", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if r := []rune(key); len(r) == 1 {
				if idx := components.TabIdxByKey(r[0]); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  budgetcut needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Computing plans..."
	}
	if a.showHelp {
		return a.viewHelp()
	}

	var body string
	switch {
	case a.err != nil:
		body = a.viewError()
	case a.activeTab == 0:
		body = a.viewOverview()
	case a.activeTab == 1:
		body = a.viewPlan(model.StrategyExact)
	case a.activeTab == 2:
		body = a.viewPlan(model.StrategyGreedy)
	default:
		body = a.viewCompare()
	}

	return components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(a.contentWidth(), a.source)
}

func (a App) viewError() string {
	t := theme.Active
	return components.ContentCard("Cannot compute plans",
		lipgloss.NewStyle().Foreground(t.Warn).Render(a.err.Error()),
		a.contentWidth())
}

func (a App) viewOverview() string {
	w := a.contentWidth()
	b := a.budget

	metrics := components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: cli.FormatAmount(a.currency, b.Income)},
		{Label: "Expenses", Value: cli.FormatAmount(a.currency, b.TotalExpenses()),
			Note: strconv.Itoa(len(b.Expenses)) + " categories"},
		{Label: "Savings Goal", Value: cli.FormatAmount(a.currency, b.SavingsGoal)},
		{Label: "Left Over", Value: cli.FormatAmount(a.currency, b.Remaining())},
	}, w)

	inner := components.CardInnerWidth(w)
	bars := components.ContentCard("Monthly Expenses",
		components.PlanBars(b.Expenses, nil, a.currency, inner/2), w)
	share := components.ContentCard("Expense Distribution",
		components.ShareBar(b.Expenses, inner), w)

	return lipgloss.JoinVertical(lipgloss.Left, metrics, bars, share)
}

func (a App) viewPlan(s model.Strategy) string {
	w := a.contentWidth()
	out, ok := a.cmp.Outcome(s)
	if !ok {
		return ""
	}

	lines := cli.SuggestionLines(out.Plan, a.cmp.Goal, a.currency)
	suggestions := components.ContentCard(lines[0], strings.Join(lines[1:], "\n"), w)

	inner := components.CardInnerWidth(w)
	plan := out.Plan
	bars := components.ContentCard("Cuts",
		components.PlanBars(a.budget.Expenses, &plan, a.currency, inner/2), w)

	return lipgloss.JoinVertical(lipgloss.Left, suggestions, bars)
}

func (a App) viewCompare() string {
	w := a.contentWidth()
	inner := components.CardInnerWidth(w)

	labelW := 0
	for _, o := range a.cmp.Outcomes {
		labelW = max(labelW, len(o.Plan.Strategy.Title()))
	}

	var goalRows, metricRows []string
	for _, o := range a.cmp.Outcomes {
		pct := 1.0
		if a.cmp.Goal > 0 {
			pct = cli.Share(o.Total, a.cmp.Goal)
		}
		goalRows = append(goalRows, components.GoalBar(o.Plan.Strategy.Title(), pct, labelW, max(inner-labelW-8, 10)))
		metricRows = append(metricRows, fmt.Sprintf("%-*s  cut %s in %d categories, retained priority %d",
			labelW, o.Plan.Strategy.Title(), cli.FormatAmount(a.currency, o.Total), o.Touched, o.Retained))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Goal coverage", strings.Join(goalRows, "\n"), w),
		components.ContentCard("Trade-off", strings.Join(metricRows, "\n"), w),
	)
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := [][2]string{
		{"←/→ tab", "switch tabs"},
		{"o k g c", "jump to Overview, Knapsack, Greedy, Compare"},
		{"?", "toggle help"},
		{"q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-10s", r[0])))
		b.WriteString(descStyle.Render(r[1]))
		b.WriteString("\n")
	}
	return "\n" + components.ContentCard("Keys", strings.TrimRight(b.String(), "\n"), a.contentWidth())
}
