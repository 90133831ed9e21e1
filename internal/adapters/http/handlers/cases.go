package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// CaseHandler serves community cases.
type CaseHandler struct {
	cases *app.CommunityService
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(cases *app.CommunityService) *CaseHandler {
	return &CaseHandler{cases: cases}
}

func caseID(c domain.CommunityCase) string { return c.ID }

func respondCase(c *gin.Context, status int, cc domain.CommunityCase, err error) {
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(status, cc)
}

// List handles GET /api/v1/cases with cursor, limit, approved and author.
func (h *CaseHandler) List(c *gin.Context) {
	var q dto.CaseListQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	after, err := q.After()
	if errors.Is(err, dto.ErrInvalidCursor) {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, err.Error())
		return
	}

	page, err := h.cases.List(c.Request.Context(), app.CaseQuery{
		Approved: q.Approved,
		Author:   q.Author,
		After:    after,
		Limit:    q.PageLimit(),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(page.Cases, page.More, caseID))
}

// Create handles POST /api/v1/cases.
func (h *CaseHandler) Create(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	cc, err := h.cases.Create(c.Request.Context(), req.ToDraft())
	respondCase(c, http.StatusCreated, cc, err)
}

// Get handles GET /api/v1/cases/:id. Every read counts as a view.
func (h *CaseHandler) Get(c *gin.Context) {
	cc, err := h.cases.IncrementViews(c.Request.Context(), c.Param("id"))
	respondCase(c, http.StatusOK, cc, err)
}

// Update handles PATCH /api/v1/cases/:id.
func (h *CaseHandler) Update(c *gin.Context) {
	var req dto.UpdateCaseRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	cc, err := h.cases.Update(c.Request.Context(), c.Param("id"), req.ToUpdate())
	respondCase(c, http.StatusOK, cc, err)
}

// Like handles POST /api/v1/cases/:id/like.
func (h *CaseHandler) Like(c *gin.Context) {
	cc, err := h.cases.Like(c.Request.Context(), c.Param("id"))
	respondCase(c, http.StatusOK, cc, err)
}

// Share handles GET /api/v1/cases/:id/share/:platform.
func (h *CaseHandler) Share(c *gin.Context) {
	link, err := h.cases.ShareLink(c.Request.Context(), c.Param("id"), domain.SharePlatform(c.Param("platform")))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// RegisterRoutes mounts the case routes on rg. Creating and liking sit
// behind gate; editing checks authorship itself since approval is open.
func (h *CaseHandler) RegisterRoutes(rg *gin.RouterGroup, gate gin.HandlerFunc) {
	cases := rg.Group("/cases")
	cases.GET("", h.List)
	cases.POST("", gate, h.Create)
	cases.GET("/:id", h.Get)
	cases.PATCH("/:id", h.Update)
	cases.POST("/:id/like", gate, h.Like)
	cases.GET("/:id/share/:platform", h.Share)
}
