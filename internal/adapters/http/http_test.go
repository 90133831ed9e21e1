package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/adapters/http/dto"
	"github.com/stack4devs/stack4devs/internal/adapters/http/handlers"
	"github.com/stack4devs/stack4devs/internal/adapters/storage/memory"
	"github.com/stack4devs/stack4devs/internal/app"
	"github.com/stack4devs/stack4devs/internal/platform/config"
	"github.com/stack4devs/stack4devs/internal/platform/telemetry"
	"github.com/stack4devs/stack4devs/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine wires the full router over the embedded catalog and an
// in-memory profile.
func newTestEngine(t testing.TB) *gin.Engine {
	t.Helper()

	cat, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewDomainMetrics(reg)
	store := memory.New()
	logger := discardLogger()

	accounts := app.NewAccountService(store, logger)
	settings := app.NewSettingsService(store, logger)

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		ServiceName: "stack4devs-test",
		Timeout:     5 * time.Second,
		Health:      handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{Version: "test"}, reg),
		Recommend: app.NewRecommendService(app.RecommendServiceConfig{
			Catalog:  cat,
			Settings: settings,
			Metrics:  metrics,
			Logger:   logger,
		}),
		Accounts:  accounts,
		Favorites: app.NewFavoritesService(store, accounts, logger),
		Settings:  settings,
		Community: app.NewCommunityService(app.CommunityServiceConfig{
			Store:        store,
			Catalog:      cat,
			Accounts:     accounts,
			Metrics:      metrics,
			ShareBaseURL: "https://stack4devs.example/",
			Logger:       logger,
		}),
	})

	return engine
}

func do(t *testing.T, engine *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestRouterHealthRoutes(t *testing.T) {
	engine := newTestEngine(t)

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := do(t, engine, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestRouterSetsRequestIDs(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/v1/tiers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestRouterRecommend(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("exact match", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/stacks/recommend?field=SaaS&budget=0", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rec app.Recommendation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

		assert.Equal(t, "SaaS", rec.Stack.Field)
		assert.True(t, rec.FreeTier)
		assert.NotEmpty(t, rec.Tools)
		assert.NotEmpty(t, rec.Roadmap)
	})

	t.Run("missing field", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/stacks/recommend?budget=10", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrorCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "field")
	})

	t.Run("negative budget snaps to the free tier", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/stacks/recommend?field=Blog&budget=-5", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var rec app.Recommendation
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

		assert.Equal(t, 0, rec.Tier)
		assert.True(t, rec.FreeTier)
	})
}

func TestRouterCatalogLookups(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "stacks", path: "/api/v1/stacks", status: http.StatusOK},
		{name: "one stack", path: "/api/v1/stacks/saas-starter", status: http.StatusOK},
		{name: "unknown stack", path: "/api/v1/stacks/nope", status: http.StatusNotFound},
		{name: "alternatives", path: "/api/v1/stacks/saas-starter/alternatives?tool=Carrd", status: http.StatusOK},
		{name: "alternatives for unknown tool", path: "/api/v1/stacks/saas-starter/alternatives?tool=Nope", status: http.StatusNotFound},
		{name: "tools", path: "/api/v1/tools", status: http.StatusOK},
		{name: "use cases", path: "/api/v1/usecases", status: http.StatusOK},
		{name: "explore use case", path: "/api/v1/usecases/launch-saas/recommendation", status: http.StatusOK},
		{name: "roadmap", path: "/api/v1/roadmap?field=Blog", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, engine, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRouterGatesUserRoutes(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/v1/favorites/tools", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Sign in required", decodeError(t, w).Error.Message)

	w = do(t, engine, http.MethodPost, "/api/v1/account/register", dto.CredentialsRequest{Username: "ada", Password: "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/favorites/stacks", dto.FavoriteStackRequest{ID: "saas-starter"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, engine, http.MethodGet, "/api/v1/favorites/stacks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "saas-starter")
}

func TestRouterCommunityFlow(t *testing.T) {
	engine := newTestEngine(t)

	draft := dto.CreateCaseRequest{
		Title:       "Shipped in a weekend",
		Description: "Landing page and payments",
		Budget:      0,
		Tools:       []string{"carrd"},
	}

	w := do(t, engine, http.MethodPost, "/api/v1/cases", draft)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/account/register", dto.CredentialsRequest{Username: "ada", Password: "secret"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, engine, http.MethodPost, "/api/v1/cases", draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Author string `json:"author"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ada", created.Author)
	assert.True(t, strings.HasPrefix(created.ID, "community-"))

	w = do(t, engine, http.MethodPost, "/api/v1/cases/"+created.ID+"/like", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/cases/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Likes int `json:"likes"`
		Views int `json:"views"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Likes)
	assert.Equal(t, 1, got.Views)

	w = do(t, engine, http.MethodGet, "/api/v1/cases/"+created.ID+"/share/x", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, engine, http.MethodGet, "/api/v1/cases?author=ada", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)
}

func TestRouterUnknownCaseCursor(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/api/v1/cases?cursor=not-base64!", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServerNew(t *testing.T) {
	cfg := &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           8080,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
	}

	srv := New(cfg, discardLogger())

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "localhost", port: 8080, want: "localhost:8080"},
		{host: "0.0.0.0", port: 3000, want: "0.0.0.0:3000"},
		{host: "::1", port: 9000, want: "[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			srv := New(&config.ServerConfig{Host: tt.host, Port: tt.port}, discardLogger())
			assert.Equal(t, tt.want, srv.Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(&config.ServerConfig{Host: "127.0.0.1", Port: 0, ReadTimeout: time.Second}, discardLogger())

	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err, ok := <-errCh:
		if ok {
			require.NoError(t, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMaxBodySize(t *testing.T) {
	srv := New(&config.ServerConfig{MaxRequestSize: 16}, discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.String(http.StatusOK, string(body))
	})

	t.Run("under limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("short")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "short", w.Body.String())
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(strings.Repeat("x", 64))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
