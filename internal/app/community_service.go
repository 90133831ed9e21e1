package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// FlagAutoApprove decides whether new cases start approved.
const FlagAutoApprove = "community.auto_approve"

const caseIDPrefix = "community-"

// CommunityService manages the community case list.
type CommunityService struct {
	store        ports.Store
	catalog      ports.Catalog
	accounts     *AccountService
	flags        ports.FeatureFlags
	metrics      ports.DomainMetrics
	shareBaseURL string
	logger       *slog.Logger
	now          func() time.Time
	mu           sync.Mutex
}

// CommunityServiceConfig wires a CommunityService. Flags and Metrics are
// optional.
type CommunityServiceConfig struct {
	Store        ports.Store
	Catalog      ports.Catalog
	Accounts     *AccountService
	Flags        ports.FeatureFlags
	Metrics      ports.DomainMetrics
	ShareBaseURL string
	Logger       *slog.Logger
}

// NewCommunityService creates a CommunityService.
func NewCommunityService(cfg CommunityServiceConfig) *CommunityService {
	return &CommunityService{
		store:        cfg.Store,
		catalog:      cfg.Catalog,
		accounts:     cfg.Accounts,
		flags:        cfg.Flags,
		metrics:      metricsOrNoop(cfg.Metrics),
		shareBaseURL: cfg.ShareBaseURL,
		logger:       loggerOrDefault(cfg.Logger, "app.CommunityService"),
		now:          time.Now,
	}
}

type createInput struct {
	author string
	draft  domain.CaseDraft
}

type caseChange struct {
	cases []domain.CommunityCase
	index int
}

func (c caseChange) current() domain.CommunityCase {
	return c.cases[c.index]
}

// Create stores a new case authored by the signed-in user.
func (s *CommunityService) Create(ctx context.Context, draft domain.CaseDraft) (domain.CommunityCase, error) {
	author, err := s.accounts.RequireUser(ctx)
	if err != nil {
		return domain.CommunityCase{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return Execute(ctx, Operation[createInput, caseChange, domain.CommunityCase]{
		Name: "create_case",
		Validate: func(_ context.Context, in createInput) error {
			if err := in.draft.Validate(); err != nil {
				return err
			}

			return s.checkTools(in.draft.Tools)
		},
		Perform: func(ctx context.Context, in createInput) (caseChange, error) {
			cases, err := s.cases(ctx)
			if err != nil {
				return caseChange{}, err
			}

			c := domain.CommunityCase{
				ID:          caseIDPrefix + uuid.NewString(),
				Title:       in.draft.Title,
				Description: in.draft.Description,
				Budget:      in.draft.Budget,
				Tools:       slices.Clone(in.draft.Tools),
				SocialLinks: in.draft.SocialLinks,
				Author:      in.author,
				CreatedAt:   s.now().UTC(),
				Approved:    s.autoApprove(ctx),
			}

			return caseChange{cases: slices.Insert(cases, 0, c), index: 0}, nil
		},
		Archive: func(ctx context.Context, _ createInput, next caseChange) error {
			return s.save(ctx, next.cases)
		},
		Respond: func(ctx context.Context, _ createInput, next caseChange) (domain.CommunityCase, error) {
			c := next.current()
			s.metrics.RecordCommunityEvent(EventCreated)
			logging.FromContext(ctx).InfoContext(ctx, "community case created",
				slog.String("case_id", c.ID),
				slog.Bool("approved", c.Approved),
			)

			return c, nil
		},
	}, createInput{author: author, draft: draft})
}

type updateInput struct {
	id     string
	update domain.CaseUpdate
}

// Update merges update into the case. Content edits are limited to the
// author; approval may be toggled by whoever is using the profile.
func (s *CommunityService) Update(ctx context.Context, id string, update domain.CaseUpdate) (domain.CommunityCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Execute(ctx, Operation[updateInput, caseChange, domain.CommunityCase]{
		Name: "update_case",
		Validate: func(_ context.Context, in updateInput) error {
			if in.update.Tools != nil {
				return s.checkTools(in.update.Tools)
			}

			return nil
		},
		Perform: func(ctx context.Context, in updateInput) (caseChange, error) {
			next, err := s.locate(ctx, in.id)
			if err != nil {
				return caseChange{}, err
			}

			if in.update.TouchesContent() {
				user, err := s.accounts.RequireUser(ctx)
				if err != nil {
					return caseChange{}, err
				}

				if user != next.current().Author {
					return caseChange{}, domain.NewForbiddenError("edit case", "only the author may edit it")
				}
			}

			if err := in.update.Apply(&next.cases[next.index]); err != nil {
				return caseChange{}, err
			}

			return next, nil
		},
		Archive: func(ctx context.Context, _ updateInput, next caseChange) error {
			return s.save(ctx, next.cases)
		},
		Respond: func(_ context.Context, _ updateInput, next caseChange) (domain.CommunityCase, error) {
			s.metrics.RecordCommunityEvent(EventUpdated)
			return next.current(), nil
		},
	}, updateInput{id: id, update: update})
}

// Like adds one like on behalf of the signed-in user.
func (s *CommunityService) Like(ctx context.Context, id string) (domain.CommunityCase, error) {
	if _, err := s.accounts.RequireUser(ctx); err != nil {
		return domain.CommunityCase{}, err
	}

	return s.bump(ctx, "like_case", id, EventLiked, func(c *domain.CommunityCase) { c.Likes++ })
}

// IncrementViews counts one view of the case.
func (s *CommunityService) IncrementViews(ctx context.Context, id string) (domain.CommunityCase, error) {
	return s.bump(ctx, "view_case", id, EventViewed, func(c *domain.CommunityCase) { c.Views++ })
}

func (s *CommunityService) bump(ctx context.Context, name, id, event string, fn func(*domain.CommunityCase)) (domain.CommunityCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Execute(ctx, Operation[string, caseChange, domain.CommunityCase]{
		Name: name,
		Perform: func(ctx context.Context, id string) (caseChange, error) {
			next, err := s.locate(ctx, id)
			if err != nil {
				return caseChange{}, err
			}

			fn(&next.cases[next.index])

			return next, nil
		},
		Archive: func(ctx context.Context, _ string, next caseChange) error {
			return s.save(ctx, next.cases)
		},
		Respond: func(_ context.Context, _ string, next caseChange) (domain.CommunityCase, error) {
			s.metrics.RecordCommunityEvent(event)
			return next.current(), nil
		},
	}, id)
}

// Get returns one case.
func (s *CommunityService) Get(ctx context.Context, id string) (domain.CommunityCase, error) {
	found, err := s.locate(ctx, id)
	if err != nil {
		return domain.CommunityCase{}, err
	}

	return found.current(), nil
}

// CaseQuery filters and pages List. After is the id of the last case of
// the previous page; Limit below 1 means no limit.
type CaseQuery struct {
	Approved *bool
	Author   string
	After    string
	Limit    int
}

// CasePage is one page of cases. More is set when cases follow the page.
type CasePage struct {
	Cases []domain.CommunityCase
	More  bool
}

// List returns the matching cases, newest first.
func (s *CommunityService) List(ctx context.Context, q CaseQuery) (CasePage, error) {
	cases, err := s.cases(ctx)
	if err != nil {
		return CasePage{}, err
	}

	if q.After != "" {
		i := slices.IndexFunc(cases, func(c domain.CommunityCase) bool { return c.ID == q.After })
		if i < 0 {
			return CasePage{}, domain.NewValidationErrorWithValue("cursor", "does not point at a known case", q.After)
		}

		cases = cases[i+1:]
	}

	page := CasePage{Cases: []domain.CommunityCase{}}

	for _, c := range cases {
		if q.Approved != nil && c.Approved != *q.Approved {
			continue
		}

		if q.Author != "" && c.Author != q.Author {
			continue
		}

		if q.Limit > 0 && len(page.Cases) == q.Limit {
			page.More = true
			break
		}

		page.Cases = append(page.Cases, c)
	}

	return page, nil
}

// ListApproved returns every approved case.
func (s *CommunityService) ListApproved(ctx context.Context) ([]domain.CommunityCase, error) {
	approved := true

	page, err := s.List(ctx, CaseQuery{Approved: &approved})

	return page.Cases, err
}

// ListByAuthor returns every case written by author.
func (s *CommunityService) ListByAuthor(ctx context.Context, author string) ([]domain.CommunityCase, error) {
	page, err := s.List(ctx, CaseQuery{Author: author})

	return page.Cases, err
}

// ShareLink builds the outbound link for sharing a case on platform.
func (s *CommunityService) ShareLink(ctx context.Context, id string, platform domain.SharePlatform) (domain.ShareLink, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return domain.ShareLink{}, err
	}

	s.metrics.RecordCommunityEvent(EventShared)

	return domain.BuildShareLink(c, platform, s.shareBaseURL), nil
}

func (s *CommunityService) cases(ctx context.Context) ([]domain.CommunityCase, error) {
	return load(ctx, s.store, keyCommunityCases, []domain.CommunityCase{})
}

func (s *CommunityService) locate(ctx context.Context, id string) (caseChange, error) {
	cases, err := s.cases(ctx)
	if err != nil {
		return caseChange{}, err
	}

	i := slices.IndexFunc(cases, func(c domain.CommunityCase) bool { return c.ID == id })
	if i < 0 {
		return caseChange{}, domain.NewNotFoundError("community case", id)
	}

	return caseChange{cases: cases, index: i}, nil
}

func (s *CommunityService) save(ctx context.Context, cases []domain.CommunityCase) error {
	if err := s.store.Set(ctx, keyCommunityCases, cases); err != nil {
		return fmt.Errorf("saving community cases: %w", err)
	}

	return nil
}

func (s *CommunityService) checkTools(ids []string) error {
	for _, id := range ids {
		if _, err := s.catalog.ToolByID(id); err != nil {
			return domain.NewValidationErrorWithValue("tools", "unknown tool", id)
		}
	}

	return nil
}

func (s *CommunityService) autoApprove(ctx context.Context) bool {
	if s.flags == nil {
		return false
	}

	return s.flags.IsEnabled(ctx, FlagAutoApprove, false)
}
