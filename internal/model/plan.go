package model

import (
	"fmt"
	"strings"
)

// Strategy names a selection strategy.
type Strategy string

const (
	StrategyExact  Strategy = "exact"
	StrategyGreedy Strategy = "greedy"
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{StrategyExact, StrategyGreedy}

// Title returns the human-facing name of the strategy.
func (s Strategy) Title() string {
	switch s {
	case StrategyExact:
		return "Knapsack"
	case StrategyGreedy:
		return "Greedy"
	default:
		return string(s)
	}
}

// ParseStrategy resolves a strategy name, case-insensitively.
// "knapsack" is accepted as an alias for exact.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "knapsack":
		return StrategyExact, nil
	case "greedy":
		return StrategyGreedy, nil
	}
	return "", fmt.Errorf("unknown strategy %q (want exact or greedy)", name)
}

// Adjustment proposes reducing one category by Amount.
type Adjustment struct {
	Category string
	Amount   int64
}

// Plan is the ordered set of adjustments one strategy proposes.
type Plan struct {
	Strategy    Strategy
	Adjustments []Adjustment
}

// Total returns the combined amount of all adjustments.
func (p Plan) Total() int64 {
	var total int64
	for _, a := range p.Adjustments {
		total += a.Amount
	}
	return total
}

// Touches reports whether the plan adjusts the named category.
func (p Plan) Touches(category string) bool {
	for _, a := range p.Adjustments {
		if a.Category == category {
			return true
		}
	}
	return false
}
