package domain

// Pass names the selection rule that produced a stack.
type Pass string

const (
	PassExact    Pass = "exact"
	PassPartial  Pass = "partial"
	PassNearest  Pass = "nearest"
	PassTier     Pass = "tier"
	PassFallback Pass = "fallback"
)

// Selection is the outcome of SelectStack.
type Selection struct {
	Stack Stack
	Pass  Pass
	// Tier is the snapped budget the selection was made against.
	Tier int
}

// SelectStack picks the catalog stack for a requested field and budget.
//
// The budget is snapped to a tier, then the passes run in order:
// exact field at the tier, field substring at the tier, field substring at
// the closest tier (first seen wins ties), any stack at the tier, and
// finally catalog[0]. The only failure is an empty catalog.
func SelectStack(field string, budget int, catalog []Stack) (Selection, error) {
	if len(catalog) == 0 {
		return Selection{}, ErrEmptyCatalog
	}

	tier := SnapBudget(budget)

	for _, s := range catalog {
		if s.BudgetMin == tier && EqualFoldASCII(s.Field, field) {
			return Selection{Stack: s, Pass: PassExact, Tier: tier}, nil
		}
	}

	for _, s := range catalog {
		if s.BudgetMin == tier && ContainsFoldASCII(s.Field, field) {
			return Selection{Stack: s, Pass: PassPartial, Tier: tier}, nil
		}
	}

	nearest := -1
	bestDistance := 0

	for i, s := range catalog {
		if !ContainsFoldASCII(s.Field, field) {
			continue
		}

		d := distance(s.BudgetMin, tier)
		if nearest < 0 || d < bestDistance {
			nearest, bestDistance = i, d
		}
	}

	if nearest >= 0 {
		return Selection{Stack: catalog[nearest], Pass: PassNearest, Tier: tier}, nil
	}

	for _, s := range catalog {
		if s.BudgetMin == tier {
			return Selection{Stack: s, Pass: PassTier, Tier: tier}, nil
		}
	}

	return Selection{Stack: catalog[0], Pass: PassFallback, Tier: tier}, nil
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
