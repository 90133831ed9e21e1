package dto

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails map[string]string
	}{
		{
			name:        "not found",
			err:         fmt.Errorf("lookup: %w", domain.NewNotFoundError("stack", "nope")),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: `stack with id "nope" not found`,
		},
		{
			name:        "conflict keeps the reason only",
			err:         fmt.Errorf("register: perform: %w", domain.NewConflictError("user", "Username already exists")),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "Username already exists",
		},
		{
			name:        "validation with field",
			err:         domain.NewValidationError("field", "must not be blank"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "validation failed for field: must not be blank",
			wantDetails: map[string]string{"field": "must not be blank"},
		},
		{
			name:        "unauthorized",
			err:         fmt.Errorf("login: %w", domain.NewUnauthorizedError("Invalid username or password")),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    ErrorCodeUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "forbidden",
			err:         domain.NewForbiddenError("edit case", "only the author may edit it"),
			wantStatus:  http.StatusForbidden,
			wantCode:    ErrorCodeForbidden,
			wantMessage: `operation "edit case" forbidden: only the author may edit it`,
		},
		{
			name:        "unavailable",
			err:         domain.NewUnavailableError("remote-catalog", "timeout"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: `service "remote-catalog" unavailable: timeout`,
		},
		{
			name:        "empty catalog",
			err:         fmt.Errorf("selecting stack: %w", domain.ErrEmptyCatalog),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "stack catalog is empty",
		},
		{
			name:        "bare sentinel",
			err:         fmt.Errorf("x: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrorCodeNotFound,
			wantMessage: "not found",
		},
		{
			name:        "internal never leaks",
			err:         errors.New("bolt: database not open at /home/ada/.stack4devs"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: internalMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, resp := FromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}

func TestHTTPStatusFromCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, HTTPStatusFromCode(ErrorCodeBadRequest))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatusFromCode(ErrorCodeTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusFromCode("SOMETHING_ELSE"))
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleError(c, domain.NewUnauthorizedError("Sign in required"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":{"code":"UNAUTHORIZED","message":"Sign in required"}}`, w.Body.String())
}

func TestPageRequest(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultLimit, PageRequest{}.PageLimit())
	assert.Equal(t, 7, PageRequest{Limit: 7}.PageLimit())
	assert.Equal(t, MaxLimit, PageRequest{Limit: 1000}.PageLimit())

	after, err := PageRequest{}.After()
	require.NoError(t, err)
	assert.Empty(t, after)

	after, err = PageRequest{Cursor: EncodeCursor("community-1")}.After()
	require.NoError(t, err)
	assert.Equal(t, "community-1", after)

	for _, bad := range []string{"%%%", "bm90LWpzb24", EncodeCursor("")} {
		_, err = PageRequest{Cursor: bad}.After()
		assert.ErrorIs(t, err, ErrInvalidCursor, bad)
	}
}

func TestNewPage(t *testing.T) {
	t.Parallel()

	id := func(s string) string { return s }

	p := NewPage([]string{"a", "b"}, true, id)
	assert.True(t, p.HasMore)
	c, err := DecodeCursor(p.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "b", c.After)

	p = NewPage([]string{"a"}, false, id)
	assert.Empty(t, p.NextCursor)

	p = NewPage[string](nil, false, id)
	assert.NotNil(t, p.Items)
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantErr     error
		wantDetails map[string]string
	}{
		{name: "valid", body: `{"title":"T","description":"D","budget":10,"tools":["ghost"]}`},
		{name: "malformed", body: `{"title":`, wantErr: ErrBinding},
		{
			name:        "blank title and no tools",
			body:        `{"title":"  ","description":"D","tools":[]}`,
			wantErr:     ErrValidation,
			wantDetails: map[string]string{"title": "must not be blank", "tools": "must be at least 1"},
		},
		{
			name:        "bad social link",
			body:        `{"title":"T","description":"D","tools":["a"],"social_links":{"x":"not a url"}}`,
			wantErr:     ErrValidation,
			wantDetails: map[string]string{"x": "must be a valid URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req CreateCaseRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, domain.CaseDraft{Title: "T", Description: "D", Budget: 10, Tools: []string{"ghost"}}, req.ToDraft())

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, ValidationErrors(err))
			}
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		wantErr error
	}{
		{"field=SaaS&budget=50&ai_preference=hybrid", nil},
		{"field=SaaS", nil},
		{"budget=50", ErrValidation},
		{"field=SaaS&budget=-1", nil},
		{"field=SaaS&ai_preference=robots", ErrValidation},
		{"field=SaaS&budget=lots", ErrBinding},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/stacks/recommend?"+tt.query, nil)

		var q RecommendQuery
		err := BindQueryAndValidate(c, &q)

		if tt.wantErr == nil {
			assert.NoError(t, err, tt.query)
		} else {
			assert.ErrorIs(t, err, tt.wantErr, tt.query)
		}
	}
}

func TestUpdateCaseRequest_ToUpdate(t *testing.T) {
	t.Parallel()

	title := "New"
	u := UpdateCaseRequest{Title: &title, SocialLinks: &SocialLinks{Discord: "https://discord.gg/x"}}.ToUpdate()

	assert.True(t, u.TouchesContent())
	assert.Equal(t, "New", *u.Title)
	assert.Equal(t, "https://discord.gg/x", u.SocialLinks.Discord)
	assert.Nil(t, u.Approved)

	approved := true
	u = UpdateCaseRequest{Approved: &approved}.ToUpdate()
	assert.False(t, u.TouchesContent())
}
