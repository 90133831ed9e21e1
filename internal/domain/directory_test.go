package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseCase_Field(t *testing.T) {
	tools := map[string]DirectoryTool{
		"webflow": {ID: "webflow", Category: "Website"},
		"blank":   {ID: "blank"},
	}
	lookup := func(id string) (DirectoryTool, bool) {
		tool, ok := tools[id]
		return tool, ok
	}

	tests := []struct {
		name string
		uc   UseCase
		want string
	}{
		{"first tool category", UseCase{Title: "Launch a SaaS", RecommendedTools: []string{"webflow"}}, "website"},
		{"unknown tool falls back to title", UseCase{Title: "Blog Launch", RecommendedTools: []string{"nope"}}, "blog"},
		{"tool without category", UseCase{Title: "Community hub", RecommendedTools: []string{"blank"}}, "community"},
		{"no tools", UseCase{Title: "  Digital Products  "}, "digital"},
		{"empty title", UseCase{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.uc.Field(lookup))
		})
	}
}
