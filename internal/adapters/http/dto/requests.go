package dto

import (
	"github.com/stack4devs/stack4devs/internal/domain"
)

// RecommendQuery is the query of GET /stacks/recommend.
type RecommendQuery struct {
	Field        string `form:"field"         validate:"required,notblank"`
	Budget       int    `form:"budget"`
	AIPreference string `form:"ai_preference" validate:"omitempty,oneof=manual ai hybrid"`
}

// AlternativesQuery is the query of GET /stacks/:id/alternatives.
type AlternativesQuery struct {
	Tool string `form:"tool" validate:"required"`
}

// RoadmapQuery is the query of GET /roadmap. An empty field yields the
// generic roadmap.
type RoadmapQuery struct {
	Field string `form:"field"`
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// UserResponse names the signed-in user. Username is "" when nobody is.
type UserResponse struct {
	Username string `json:"username"`
}

// FavoriteToolRequest saves a tool of a catalog stack.
type FavoriteToolRequest struct {
	StackID string `json:"stack_id" validate:"required"`
	Name    string `json:"name"     validate:"required"`
}

// FavoriteStackRequest saves a catalog stack.
type FavoriteStackRequest struct {
	ID string `json:"id" validate:"required"`
}

// ThemeRequest is the body of PUT /settings/theme.
type ThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// AIPreferenceRequest is the body of PUT /settings/ai-preference.
type AIPreferenceRequest struct {
	AIPreference string `json:"aiPreference" validate:"required"`
}

// SocialLinks mirrors domain.SocialLinks with URL checks.
type SocialLinks struct {
	WhatsApp  string `json:"whatsapp"  validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Discord   string `json:"discord"   validate:"omitempty,url"`
	Reddit    string `json:"reddit"    validate:"omitempty,url"`
	X         string `json:"x"         validate:"omitempty,url"`
}

func (s SocialLinks) toDomain() domain.SocialLinks {
	return domain.SocialLinks(s)
}

// CreateCaseRequest is the body of POST /cases. Budget and tool ids are
// checked against the offered amounts and the directory by the service.
type CreateCaseRequest struct {
	Title       string      `json:"title"        validate:"required,notblank"`
	Description string      `json:"description"  validate:"required,notblank"`
	Budget      int         `json:"budget"       validate:"gte=0"`
	Tools       []string    `json:"tools"        validate:"required,min=1,dive,required"`
	SocialLinks SocialLinks `json:"social_links"`
}

// ToDraft converts the request.
func (r CreateCaseRequest) ToDraft() domain.CaseDraft {
	return domain.CaseDraft{
		Title:       r.Title,
		Description: r.Description,
		Budget:      r.Budget,
		Tools:       r.Tools,
		SocialLinks: r.SocialLinks.toDomain(),
	}
}

// UpdateCaseRequest is the body of PATCH /cases/:id. Absent fields are
// left unchanged.
type UpdateCaseRequest struct {
	Title       *string      `json:"title"        validate:"omitempty,notblank"`
	Description *string      `json:"description"  validate:"omitempty,notblank"`
	Budget      *int         `json:"budget"       validate:"omitempty,gte=0"`
	Tools       []string     `json:"tools"        validate:"omitempty,min=1,dive,required"`
	SocialLinks *SocialLinks `json:"social_links"`
	Approved    *bool        `json:"approved"`
}

// ToUpdate converts the request.
func (r UpdateCaseRequest) ToUpdate() domain.CaseUpdate {
	u := domain.CaseUpdate{
		Title:       r.Title,
		Description: r.Description,
		Budget:      r.Budget,
		Tools:       r.Tools,
		Approved:    r.Approved,
	}

	if r.SocialLinks != nil {
		links := r.SocialLinks.toDomain()
		u.SocialLinks = &links
	}

	return u
}

// CaseListQuery is the query of GET /cases.
type CaseListQuery struct {
	PageRequest
	Approved *bool  `form:"approved"`
	Author   string `form:"author"`
}
