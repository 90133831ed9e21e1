package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/app"
)

// AccountHandler serves local sign-up and sign-in.
type AccountHandler struct {
	accounts *app.AccountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts *app.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) credentials(c *gin.Context) (app.Credentials, bool) {
	var req dto.CredentialsRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return app.Credentials{}, false
	}

	return app.Credentials{Username: req.Username, Password: req.Password}, true
}

// Register handles POST /api/v1/account/register.
func (h *AccountHandler) Register(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), creds)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{Username: user})
}

// Login handles POST /api/v1/account/login.
func (h *AccountHandler) Login(c *gin.Context) {
	creds, ok := h.credentials(c)
	if !ok {
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), creds)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Username: user})
}

// Logout handles POST /api/v1/account/logout.
func (h *AccountHandler) Logout(c *gin.Context) {
	if err := h.accounts.Logout(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me handles GET /api/v1/account/me. Signed out is not an error here.
func (h *AccountHandler) Me(c *gin.Context) {
	user, err := h.accounts.CurrentUser(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{Username: user})
}

// RegisterRoutes mounts the account routes on rg.
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	account := rg.Group("/account")
	account.POST("/register", h.Register)
	account.POST("/login", h.Login)
	account.POST("/logout", h.Logout)
	account.GET("/me", h.Me)
}
