// Package budget loads budgets from TOML or YAML files and provides the
// built-in sample dataset.
package budget

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/budgetcut/internal/model"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape shared by the TOML and YAML formats.
type file struct {
	Income      int64          `toml:"income" yaml:"income"`
	SavingsGoal int64          `toml:"savings_goal" yaml:"savings_goal"`
	Expenses    []fileExpense  `toml:"expense" yaml:"expense"`
	Priorities  map[string]int `toml:"priorities" yaml:"priorities"`
}

type fileExpense struct {
	Name string `toml:"name" yaml:"name"`
	Cost int64  `toml:"cost" yaml:"cost"`
}

// Sample returns the built-in demo budget.
func Sample() model.Budget {
	return model.Budget{
		Income: 3000,
		Expenses: []model.Expense{
			{Name: "rent", Cost: 1000},
			{Name: "groceries", Cost: 300},
			{Name: "utilities", Cost: 200},
			{Name: "entertainment", Cost: 150},
			{Name: "transport", Cost: 100},
		},
		Priorities: map[string]int{
			"rent":          10,
			"groceries":     8,
			"utilities":     7,
			"entertainment": 4,
			"transport":     5,
		},
		SavingsGoal: 500,
	}
}

// Load reads a budget file. The format is chosen by extension:
// .toml, or .yaml/.yml.
func Load(path string) (model.Budget, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		return model.Budget{}, fmt.Errorf("reading budget: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return model.Budget{}, fmt.Errorf("unsupported budget format %q (want .toml, .yaml or .yml)", ext)
	}
}

// ParseTOML decodes a TOML budget document.
func ParseTOML(data []byte) (model.Budget, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing budget: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return model.Budget{}, fmt.Errorf("parsing budget: unknown key %q", undecoded[0].String())
	}
	return f.toModel()
}

// ParseYAML decodes a YAML budget document.
func ParseYAML(data []byte) (model.Budget, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return model.Budget{}, fmt.Errorf("parsing budget: %w", err)
	}
	return f.toModel()
}

func (f file) toModel() (model.Budget, error) {
	if len(f.Expenses) == 0 {
		return model.Budget{}, fmt.Errorf("parsing budget: no expenses")
	}

	b := model.Budget{
		Income:      f.Income,
		SavingsGoal: f.SavingsGoal,
		Expenses:    make([]model.Expense, 0, len(f.Expenses)),
		Priorities:  make(map[string]int, len(f.Priorities)),
	}
	for i, e := range f.Expenses {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return model.Budget{}, fmt.Errorf("parsing budget: expense %d has no name", i+1)
		}
		b.Expenses = append(b.Expenses, model.Expense{Name: name, Cost: e.Cost})
	}
	for name, p := range f.Priorities {
		b.Priorities[strings.TrimSpace(name)] = p
	}
	return b, nil
}

// Encode writes b as a TOML budget document.
func Encode(b model.Budget) ([]byte, error) {
	f := file{
		Income:      b.Income,
		SavingsGoal: b.SavingsGoal,
		Priorities:  b.Priorities,
	}
	for _, e := range b.Expenses {
		f.Expenses = append(f.Expenses, fileExpense{Name: e.Name, Cost: e.Cost})
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("encoding budget: %w", err)
	}
	return buf.Bytes(), nil
}
