package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// RecommendService answers stack queries over the catalog.
type RecommendService struct {
	catalog  ports.Catalog
	settings *SettingsService
	metrics  ports.DomainMetrics
	logger   *slog.Logger
}

// RecommendServiceConfig wires a RecommendService. Settings and Metrics
// are optional; without settings the preference defaults to manual.
type RecommendServiceConfig struct {
	Catalog  ports.Catalog
	Settings *SettingsService
	Metrics  ports.DomainMetrics
	Logger   *slog.Logger
}

// NewRecommendService creates a RecommendService.
func NewRecommendService(cfg RecommendServiceConfig) *RecommendService {
	return &RecommendService{
		catalog:  cfg.Catalog,
		settings: cfg.Settings,
		metrics:  metricsOrNoop(cfg.Metrics),
		logger:   loggerOrDefault(cfg.Logger, "app.RecommendService"),
	}
}

// RecommendationRequest is a stack query. An empty AIPreference means
// "use the stored setting".
type RecommendationRequest struct {
	Field        string
	Budget       int
	AIPreference domain.AIPreference
}

// ToolAdvice is one tool of a recommended stack with what to do with it.
type ToolAdvice struct {
	Tool         domain.Tool   `json:"tool"`
	Action       string        `json:"action"`
	Alternatives []domain.Tool `json:"alternatives"`
}

// Recommendation is the answer to a stack query.
type Recommendation struct {
	Field        string               `json:"field"`
	Budget       int                  `json:"budget"`
	Tier         int                  `json:"tier"`
	Pass         domain.Pass          `json:"pass"`
	FreeTier     bool                 `json:"free_tier"`
	AIPreference domain.AIPreference  `json:"ai_preference"`
	Stack        domain.Stack         `json:"stack"`
	Tools        []ToolAdvice         `json:"tools"`
	Roadmap      []domain.RoadmapTask `json:"roadmap"`
	UseCase      *domain.UseCase      `json:"use_case,omitempty"`
}

// Recommend selects a stack for req and annotates every tool.
func (s *RecommendService) Recommend(ctx context.Context, req RecommendationRequest) (*Recommendation, error) {
	pref := req.AIPreference
	if pref == "" {
		pref = s.storedPreference(ctx)
	} else if _, err := domain.ParseAIPreference(string(pref)); err != nil {
		return nil, err
	}

	stacks := s.catalog.Stacks()

	sel, err := domain.SelectStack(req.Field, req.Budget, stacks)
	if err != nil {
		return nil, fmt.Errorf("selecting stack: %w", err)
	}

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "stack selected",
		slog.String("field", req.Field),
		slog.Int("budget", req.Budget),
		slog.Int("tier", sel.Tier),
		slog.String("pass", string(sel.Pass)),
		slog.String("stack_id", sel.Stack.ID),
	)

	tools := make([]ToolAdvice, 0, len(sel.Stack.Tools))
	for _, t := range sel.Stack.Tools {
		tools = append(tools, ToolAdvice{
			Tool:         t,
			Action:       domain.DescribeAction(t, pref),
			Alternatives: domain.FindAlternatives(t, sel.Stack, stacks),
		})
	}

	s.metrics.RecordRecommendation(string(sel.Pass))

	return &Recommendation{
		Field:        req.Field,
		Budget:       req.Budget,
		Tier:         sel.Tier,
		Pass:         sel.Pass,
		FreeTier:     sel.Tier == 0,
		AIPreference: pref,
		Stack:        sel.Stack,
		Tools:        tools,
		Roadmap:      domain.GenerateRoadmap(req.Field),
	}, nil
}

// storedPreference falls back to manual when settings are unavailable.
func (s *RecommendService) storedPreference(ctx context.Context) domain.AIPreference {
	if s.settings == nil {
		return domain.AIPreferenceManual
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "settings unavailable, assuming manual", slog.Any("error", err))
		return domain.AIPreferenceManual
	}

	return settings.AIPreference
}

// Stacks lists the catalog stacks.
func (s *RecommendService) Stacks() []domain.Stack {
	return s.catalog.Stacks()
}

// Stack returns one catalog stack.
func (s *RecommendService) Stack(id string) (domain.Stack, error) {
	return s.catalog.StackByID(id)
}

// Alternatives returns the alternatives for a tool of a catalog stack.
func (s *RecommendService) Alternatives(stackID, toolName string) ([]domain.Tool, error) {
	stack, err := s.catalog.StackByID(stackID)
	if err != nil {
		return nil, err
	}

	tool, ok := stack.ToolByName(toolName)
	if !ok {
		return nil, domain.NewNotFoundError("tool", toolName)
	}

	return domain.FindAlternatives(tool, stack, s.catalog.Stacks()), nil
}

// Tiers lists the budget tiers.
func (s *RecommendService) Tiers() []int {
	return domain.Tiers()
}

// Roadmap returns the starter tasks for field.
func (s *RecommendService) Roadmap(field string) []domain.RoadmapTask {
	return domain.GenerateRoadmap(field)
}

// Tools lists the tool directory.
func (s *RecommendService) Tools() []domain.DirectoryTool {
	return s.catalog.Tools()
}

// UseCases lists the curated use cases.
func (s *RecommendService) UseCases() []domain.UseCase {
	return s.catalog.UseCases()
}

// ExploreUseCase turns a use case into a stack query and answers it.
func (s *RecommendService) ExploreUseCase(ctx context.Context, id string) (*Recommendation, error) {
	uc, err := s.catalog.UseCaseByID(id)
	if err != nil {
		return nil, err
	}

	field := uc.Field(func(toolID string) (domain.DirectoryTool, bool) {
		t, err := s.catalog.ToolByID(toolID)
		return t, err == nil
	})

	rec, err := s.Recommend(ctx, RecommendationRequest{Field: field, Budget: uc.DefaultBudget})
	if err != nil {
		return nil, err
	}

	rec.UseCase = &uc

	return rec, nil
}
