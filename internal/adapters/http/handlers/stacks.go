package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// ListResponse wraps a collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func list[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}

	return ListResponse[T]{Items: items}
}

// TiersResponse is the body of GET /tiers.
type TiersResponse struct {
	Tiers []int `json:"tiers"`
}

// RoadmapResponse is the body of GET /roadmap.
type RoadmapResponse struct {
	Field string               `json:"field"`
	Tasks []domain.RoadmapTask `json:"tasks"`
}

// StackHandler serves the catalog and recommendations.
type StackHandler struct {
	service *app.RecommendService
}

// NewStackHandler creates a StackHandler.
func NewStackHandler(service *app.RecommendService) *StackHandler {
	return &StackHandler{service: service}
}

// ListStacks handles GET /api/v1/stacks.
func (h *StackHandler) ListStacks(c *gin.Context) {
	c.JSON(http.StatusOK, list(h.service.Stacks()))
}

// Recommend handles GET /api/v1/stacks/recommend.
func (h *StackHandler) Recommend(c *gin.Context) {
	var q dto.RecommendQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	rec, err := h.service.Recommend(c.Request.Context(), app.RecommendationRequest{
		Field:        q.Field,
		Budget:       q.Budget,
		AIPreference: domain.AIPreference(q.AIPreference),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// GetStack handles GET /api/v1/stacks/:id.
func (h *StackHandler) GetStack(c *gin.Context) {
	stack, err := h.service.Stack(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stack)
}

// Alternatives handles GET /api/v1/stacks/:id/alternatives?tool=.
func (h *StackHandler) Alternatives(c *gin.Context) {
	var q dto.AlternativesQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	alts, err := h.service.Alternatives(c.Param("id"), q.Tool)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list(alts))
}

// Tiers handles GET /api/v1/tiers.
func (h *StackHandler) Tiers(c *gin.Context) {
	c.JSON(http.StatusOK, TiersResponse{Tiers: h.service.Tiers()})
}

// Tools handles GET /api/v1/tools.
func (h *StackHandler) Tools(c *gin.Context) {
	c.JSON(http.StatusOK, list(h.service.Tools()))
}

// UseCases handles GET /api/v1/usecases.
func (h *StackHandler) UseCases(c *gin.Context) {
	c.JSON(http.StatusOK, list(h.service.UseCases()))
}

// ExploreUseCase handles GET /api/v1/usecases/:id/recommendation.
func (h *StackHandler) ExploreUseCase(c *gin.Context) {
	rec, err := h.service.ExploreUseCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Roadmap handles GET /api/v1/roadmap?field=.
func (h *StackHandler) Roadmap(c *gin.Context) {
	var q dto.RoadmapQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, RoadmapResponse{Field: q.Field, Tasks: h.service.Roadmap(q.Field)})
}

// RegisterRoutes mounts the catalog routes on rg.
func (h *StackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stacks := rg.Group("/stacks")
	stacks.GET("", h.ListStacks)
	stacks.GET("/recommend", h.Recommend)
	stacks.GET("/:id", h.GetStack)
	stacks.GET("/:id/alternatives", h.Alternatives)

	rg.GET("/tiers", h.Tiers)
	rg.GET("/tools", h.Tools)
	rg.GET("/usecases", h.UseCases)
	rg.GET("/usecases/:id/recommendation", h.ExploreUseCase)
	rg.GET("/roadmap", h.Roadmap)
}
