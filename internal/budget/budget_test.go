package budget

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/budgetcut/internal/optimize"
)

func writeBudget(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleTOML = `
income = 3000
savings_goal = 500

[[expense]]
name = "rent"
cost = 1000

[[expense]]
name = "groceries"
cost = 300

[priorities]
rent = 10
groceries = 8
`

func TestLoad_TOMLKeepsExpenseOrder(t *testing.T) {
	b, err := Load(writeBudget(t, "budget.toml", sampleTOML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Income != 3000 || b.SavingsGoal != 500 {
		t.Errorf("Income/SavingsGoal = %d/%d, want 3000/500", b.Income, b.SavingsGoal)
	}
	if len(b.Expenses) != 2 || b.Expenses[0].Name != "rent" || b.Expenses[1].Name != "groceries" {
		t.Fatalf("Expenses = %+v, want rent then groceries", b.Expenses)
	}
	if b.Priorities["groceries"] != 8 {
		t.Errorf("groceries priority = %d, want 8", b.Priorities["groceries"])
	}
}

func TestLoad_YAML(t *testing.T) {
	content := strings.Join([]string{
		"income: 2000",
		"savings_goal: 150",
		"expense:",
		"  - name: transport",
		"    cost: 100",
		"  - name: streaming",
		"    cost: 20",
		"priorities:",
		"  transport: 6",
		"  streaming: 1",
	}, "\n")

	for _, ext := range []string{".yaml", ".yml"} {
		b, err := Load(writeBudget(t, "budget"+ext, content))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ext, err)
		}
		if len(b.Expenses) != 2 || b.Expenses[1].Name != "streaming" || b.Expenses[1].Cost != 20 {
			t.Fatalf("%s: Expenses = %+v", ext, b.Expenses)
		}
		if b.Priorities["streaming"] != 1 {
			t.Errorf("%s: streaming priority = %d, want 1", ext, b.Priorities["streaming"])
		}
	}
}

func TestLoad_MissingPrioritySurfacesAtSelection(t *testing.T) {
	content := `
savings_goal = 100

[[expense]]
name = "rent"
cost = 1000

[[expense]]
name = "gym"
cost = 50

[priorities]
rent = 10
`
	b, err := Load(writeBudget(t, "budget.toml", content))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if err := optimize.Validate(b); !errors.Is(err, optimize.ErrMissingPriority) {
		t.Fatalf("Validate err = %v, want ErrMissingPriority", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"unknown extension", "budget.json", "{}", "unsupported budget format"},
		{"no expenses", "budget.toml", "savings_goal = 5\n", "no expenses"},
		{"unknown key", "budget.toml", "bogus = 1\n" + sampleTOML, "unknown key"},
		{"unnamed expense", "budget.yaml", "expense:\n  - cost: 5\n", "has no name"},
		{"bad yaml field", "budget.yaml", "expenses: []\n", "parsing budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeBudget(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestEncode_LoadsBack(t *testing.T) {
	data, err := Encode(Sample())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	b, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("ParseTOML: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(b, Sample()) {
		t.Fatalf("decoded = %+v, want %+v", b, Sample())
	}
}
