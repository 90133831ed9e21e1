// Package domain holds the stack4devs entities and the pure rules over them:
// budget snapping, stack selection, alternatives, action text and roadmaps.
// Nothing here performs I/O, so every function is safe for concurrent use.
package domain

import "slices"

// budgetTiers are the monthly budget floors a stack can be authored at.
var budgetTiers = []int{0, 10, 50, 100, 200, 500, 1000, 2000, 3000, 4000, 5000}

// Stack is a predefined bundle of tools for a field at a budget tier.
type Stack struct {
	ID        string `json:"id"`
	Field     string `json:"field"`
	BudgetMin int    `json:"budget_min"`
	BudgetMax int    `json:"budget_max,omitempty"`
	Tools     []Tool `json:"tools"`
}

// SnapBudget returns the smallest tier not below budget, or the largest tier.
func SnapBudget(budget int) int {
	for _, tier := range budgetTiers {
		if tier >= budget {
			return tier
		}
	}

	return budgetTiers[len(budgetTiers)-1]
}

// Tiers returns a copy of the tier table.
func Tiers() []int {
	return slices.Clone(budgetTiers)
}

// ToolByName finds a tool in the stack.
func (s Stack) ToolByName(name string) (Tool, bool) {
	for _, t := range s.Tools {
		if t.Name == name {
			return t, true
		}
	}

	return Tool{}, false
}
