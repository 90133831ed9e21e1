package catalog

import (
	"fmt"
	"slices"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Lint reports authoring mistakes that do not stop a catalog from loading:
// stacks off the tier table, repeated tool names inside a stack, and use
// cases pointing at tools missing from the directory.
func Lint(docs ports.CatalogDocuments) []string {
	var warnings []string

	tiers := domain.Tiers()
	for _, s := range docs.Stacks {
		if !slices.Contains(tiers, s.BudgetMin) {
			warnings = append(warnings, fmt.Sprintf("stack %q: budget_min %d is not a tier", s.ID, s.BudgetMin))
		}

		seen := make(map[string]bool, len(s.Tools))
		for _, t := range s.Tools {
			if seen[t.Name] {
				warnings = append(warnings, fmt.Sprintf("stack %q: tool %q listed twice", s.ID, t.Name))
			}

			seen[t.Name] = true
		}
	}

	known := make(map[string]bool, len(docs.Tools))
	for _, t := range docs.Tools {
		known[t.ID] = true
	}

	for _, u := range docs.UseCases {
		for _, id := range u.RecommendedTools {
			if !known[id] {
				warnings = append(warnings, fmt.Sprintf("use case %q: unknown tool %q", u.ID, id))
			}
		}
	}

	return warnings
}
