package domain

import "strings"

// DirectoryTool is an entry of the tool directory that community cases
// and use cases reference by id.
type DirectoryTool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// UseCase is a curated starting point that maps onto a stack query.
type UseCase struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	DefaultBudget    int      `json:"default_budget"`
	RecommendedTools []string `json:"recommended_tools"`
}

// Field derives the stack field for the use case: the category of its first
// recommended tool, else the first word of its title, lower-cased.
func (u UseCase) Field(lookup func(id string) (DirectoryTool, bool)) string {
	if len(u.RecommendedTools) > 0 && lookup != nil {
		if tool, ok := lookup(u.RecommendedTools[0]); ok && tool.Category != "" {
			return FoldASCII(tool.Category)
		}
	}

	first, _, _ := strings.Cut(strings.TrimSpace(u.Title), " ")

	return FoldASCII(first)
}
