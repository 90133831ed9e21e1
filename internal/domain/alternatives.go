package domain

// MaxAlternatives caps the number of alternatives returned for a tool.
const MaxAlternatives = 3

// FindAlternatives returns up to MaxAlternatives tools that share the tool's
// purpose, drawn from every catalog stack at the current stack's tier.
// Tools are compared by name; distinct names are never deduplicated.
func FindAlternatives(tool Tool, current Stack, catalog []Stack) []Tool {
	out := make([]Tool, 0, MaxAlternatives)

	for _, s := range catalog {
		if s.BudgetMin != current.BudgetMin {
			continue
		}

		for _, t := range s.Tools {
			if t.Name == tool.Name || !EqualFoldASCII(t.Purpose, tool.Purpose) {
				continue
			}

			out = append(out, t)
			if len(out) == MaxAlternatives {
				return out
			}
		}
	}

	return out
}
