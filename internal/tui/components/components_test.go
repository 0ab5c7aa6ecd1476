package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/budgetcut/internal/model"
	"github.com/theirongolddev/budgetcut/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLayoutRow_SumsToWidth(t *testing.T) {
	widths := LayoutRow(101, 4)
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 101 {
		t.Fatalf("sum = %d, want 101 (%v)", sum, widths)
	}
	if widths[0] != 26 || widths[3] != 25 {
		t.Errorf("widths = %v, want remainder on first items", widths)
	}
}

func TestMetricCardRow_Width(t *testing.T) {
	theme.SetActive("flexoki-dark")
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "$3,000"},
		{Label: "Goal", Value: "$500", Note: "monthly"},
	}, 60)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestPlanBars_MarksCuts(t *testing.T) {
	expenses := []model.Expense{{Name: "rent", Cost: 1000}, {Name: "tv", Cost: 100}}
	plan := &model.Plan{Adjustments: []model.Adjustment{{Category: "rent", Amount: 500}}}

	out := PlanBars(expenses, plan, "$", 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "█████▒▒▒▒▒ $1,000 -$500") {
		t.Errorf("rent line = %q", lines[0])
	}
	if strings.Contains(lines[1], "-$") {
		t.Errorf("untouched category shows a cut: %q", lines[1])
	}
}

func TestGoalBar_ClampsPercent(t *testing.T) {
	out := GoalBar("Greedy", 1.7, 8, 20)
	if !strings.Contains(out, "100%") {
		t.Errorf("GoalBar = %q, want 100%%", out)
	}
	if CoverageColor(0.5) != theme.Active.Warn || CoverageColor(1) != theme.Active.Good {
		t.Error("CoverageColor picks wrong colors")
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('c'); got != 3 {
		t.Errorf("TabIdxByKey('c') = %d, want 3", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
