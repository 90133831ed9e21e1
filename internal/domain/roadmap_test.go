package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoadmap(t *testing.T) {
	tests := []struct {
		field     string
		wantFirst string
		wantLen   int
	}{
		{"saas", "Buy a domain", 6},
		{"micro-saas tools", "Buy a domain", 6},
		{"blog", "Buy a domain", 5},
		{"community", "Create Discord server", 4},
		{"digital products", "Create product in Gumroad", 4},
		{"SaaS", "Define your project goal", 3},
		{"", "Define your project goal", 3},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			tasks := GenerateRoadmap(tt.field)

			assert.Len(t, tasks, tt.wantLen)
			assert.Equal(t, tt.wantFirst, tasks[0].Title)
			for _, task := range tasks {
				assert.Equal(t, TaskTodo, task.Status)
			}
		})
	}
}

func TestGenerateRoadmap_SaasSteps(t *testing.T) {
	tasks := GenerateRoadmap("saas blog")

	assert.Equal(t, "Set up payments (Stripe)", tasks[2].Title)
	assert.Equal(t, "Launch!", tasks[5].Title)
}

func TestGenerateRoadmap_ReturnsFreshSlice(t *testing.T) {
	first := GenerateRoadmap("blog")
	first[0].Status = "done"

	assert.Equal(t, TaskTodo, GenerateRoadmap("blog")[0].Status)
}
