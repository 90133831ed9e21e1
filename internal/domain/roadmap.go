package domain

import "strings"

// TaskStatus tracks progress on a roadmap task.
type TaskStatus string

const TaskTodo TaskStatus = "todo"

// RoadmapTask is one launch step.
type RoadmapTask struct {
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

type roadmapTemplate struct {
	keyword string
	steps   []string
}

var roadmapTemplates = []roadmapTemplate{
	{"saas", []string{
		"Buy a domain",
		"Deploy landing page",
		"Set up payments (Stripe)",
		"Connect analytics",
		"Set up email marketing",
		"Launch!",
	}},
	{"blog", []string{
		"Buy a domain",
		"Deploy blog platform",
		"Set up analytics",
		"Connect newsletter",
		"Write first post",
	}},
	{"community", []string{
		"Create Discord server",
		"Set up onboarding bot",
		"Promote community",
		"Host first event",
	}},
	{"digital", []string{
		"Create product in Gumroad",
		"Design product assets",
		"Set up email list",
		"Launch sales page",
	}},
}

var defaultRoadmap = []string{
	"Define your project goal",
	"Pick your tools",
	"Launch!",
}

// GenerateRoadmap returns the launch checklist for a field.
// Keywords are matched case-sensitively against the field as given.
func GenerateRoadmap(field string) []RoadmapTask {
	steps := defaultRoadmap

	for _, tpl := range roadmapTemplates {
		if strings.Contains(field, tpl.keyword) {
			steps = tpl.steps
			break
		}
	}

	tasks := make([]RoadmapTask, len(steps))
	for i, s := range steps {
		tasks[i] = RoadmapTask{Title: s, Status: TaskTodo}
	}

	return tasks
}
