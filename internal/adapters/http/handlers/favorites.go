package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// FavoritesHandler serves the signed-in user's saved tools and stacks.
// Saved entries are copied from the catalog, so the client only names them.
type FavoritesHandler struct {
	favorites *app.FavoritesService
	catalog   *app.RecommendService
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(favorites *app.FavoritesService, catalog *app.RecommendService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, catalog: catalog}
}

func respondTools(c *gin.Context, fav domain.Favorites, err error) {
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list(fav.Tools))
}

func respondStacks(c *gin.Context, fav domain.Favorites, err error) {
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list(fav.Stacks))
}

// ListTools handles GET /api/v1/favorites/tools.
func (h *FavoritesHandler) ListTools(c *gin.Context) {
	fav, err := h.favorites.Get(c.Request.Context())
	respondTools(c, fav, err)
}

// AddTool handles POST /api/v1/favorites/tools.
func (h *FavoritesHandler) AddTool(c *gin.Context) {
	var req dto.FavoriteToolRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	stack, err := h.catalog.Stack(req.StackID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	tool, ok := stack.ToolByName(req.Name)
	if !ok {
		dto.HandleError(c, domain.NewNotFoundError("tool", req.Name))
		return
	}

	fav, err := h.favorites.AddTool(c.Request.Context(), tool)
	respondTools(c, fav, err)
}

// RemoveTool handles DELETE /api/v1/favorites/tools?name=.
func (h *FavoritesHandler) RemoveTool(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "query parameter name is required")
		return
	}

	fav, err := h.favorites.RemoveTool(c.Request.Context(), name)
	respondTools(c, fav, err)
}

// ListStacks handles GET /api/v1/favorites/stacks.
func (h *FavoritesHandler) ListStacks(c *gin.Context) {
	fav, err := h.favorites.Get(c.Request.Context())
	respondStacks(c, fav, err)
}

// AddStack handles POST /api/v1/favorites/stacks.
func (h *FavoritesHandler) AddStack(c *gin.Context) {
	var req dto.FavoriteStackRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	stack, err := h.catalog.Stack(req.ID)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	fav, err := h.favorites.AddStack(c.Request.Context(), stack)
	respondStacks(c, fav, err)
}

// RemoveStack handles DELETE /api/v1/favorites/stacks?id=.
func (h *FavoritesHandler) RemoveStack(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		dto.RespondWithCode(c, dto.ErrorCodeBadRequest, "query parameter id is required")
		return
	}

	fav, err := h.favorites.RemoveStack(c.Request.Context(), id)
	respondStacks(c, fav, err)
}

// RegisterRoutes mounts the favorites routes on rg behind gate.
func (h *FavoritesHandler) RegisterRoutes(rg *gin.RouterGroup, gate gin.HandlerFunc) {
	favorites := rg.Group("/favorites", gate)
	favorites.GET("/tools", h.ListTools)
	favorites.POST("/tools", h.AddTool)
	favorites.DELETE("/tools", h.RemoveTool)
	favorites.GET("/stacks", h.ListStacks)
	favorites.POST("/stacks", h.AddStack)
	favorites.DELETE("/stacks", h.RemoveStack)
}
