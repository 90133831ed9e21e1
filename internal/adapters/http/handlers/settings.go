package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// SettingsHandler serves the device preferences.
type SettingsHandler struct {
	settings *app.SettingsService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settings *app.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func respondSettings(c *gin.Context, s domain.Settings, err error) {
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	respondSettings(c, s, err)
}

// UpdateTheme handles PUT /api/v1/settings/theme.
func (h *SettingsHandler) UpdateTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	s, err := h.settings.UpdateTheme(c.Request.Context(), req.Theme)
	respondSettings(c, s, err)
}

// UpdateAIPreference handles PUT /api/v1/settings/ai-preference.
func (h *SettingsHandler) UpdateAIPreference(c *gin.Context) {
	var req dto.AIPreferenceRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	s, err := h.settings.UpdateAIPreference(c.Request.Context(), req.AIPreference)
	respondSettings(c, s, err)
}

// RegisterRoutes mounts the settings routes on rg.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	settings.GET("", h.Get)
	settings.PUT("/theme", h.UpdateTheme)
	settings.PUT("/ai-preference", h.UpdateAIPreference)
}
