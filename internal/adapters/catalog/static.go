package catalog

import (
	"fmt"
	"slices"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Static is an immutable, indexed ports.Catalog.
type Static struct {
	stacks   []domain.Stack
	tools    []domain.DirectoryTool
	useCases []domain.UseCase

	stackIdx   map[string]int
	toolIdx    map[string]int
	useCaseIdx map[string]int
}

var _ ports.Catalog = (*Static)(nil)

// New indexes docs. Ids must be unique within each document.
func New(docs ports.CatalogDocuments) (*Static, error) {
	c := &Static{
		stacks:     docs.Stacks,
		tools:      docs.Tools,
		useCases:   docs.UseCases,
		stackIdx:   make(map[string]int, len(docs.Stacks)),
		toolIdx:    make(map[string]int, len(docs.Tools)),
		useCaseIdx: make(map[string]int, len(docs.UseCases)),
	}

	if c.tools == nil {
		c.tools = []domain.DirectoryTool{}
	}

	if c.useCases == nil {
		c.useCases = []domain.UseCase{}
	}

	for i, s := range c.stacks {
		if _, dup := c.stackIdx[s.ID]; dup {
			return nil, fmt.Errorf("duplicate stack id %q", s.ID)
		}

		c.stackIdx[s.ID] = i
	}

	for i, t := range c.tools {
		if _, dup := c.toolIdx[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", t.ID)
		}

		c.toolIdx[t.ID] = i
	}

	for i, u := range c.useCases {
		if _, dup := c.useCaseIdx[u.ID]; dup {
			return nil, fmt.Errorf("duplicate use case id %q", u.ID)
		}

		c.useCaseIdx[u.ID] = i
	}

	return c, nil
}

func (c *Static) Stacks() []domain.Stack { return slices.Clone(c.stacks) }

func (c *Static) StackByID(id string) (domain.Stack, error) {
	i, ok := c.stackIdx[id]
	if !ok {
		return domain.Stack{}, domain.NewNotFoundError("stack", id)
	}

	return c.stacks[i], nil
}

func (c *Static) Tools() []domain.DirectoryTool { return slices.Clone(c.tools) }

func (c *Static) ToolByID(id string) (domain.DirectoryTool, error) {
	i, ok := c.toolIdx[id]
	if !ok {
		return domain.DirectoryTool{}, domain.NewNotFoundError("tool", id)
	}

	return c.tools[i], nil
}

func (c *Static) UseCases() []domain.UseCase { return slices.Clone(c.useCases) }

func (c *Static) UseCaseByID(id string) (domain.UseCase, error) {
	i, ok := c.useCaseIdx[id]
	if !ok {
		return domain.UseCase{}, domain.NewNotFoundError("use case", id)
	}

	return c.useCases[i], nil
}
