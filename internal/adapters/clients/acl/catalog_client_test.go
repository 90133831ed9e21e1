package acl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stack4devs/stack4devs/internal/adapters/clients"
	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/config"
)

const (
	remoteStacks = `{"data":{"stacks":[{"id":"blog-free","field":"Blog","budget_min":0,
		"tools":[{"name":"Hashnode","purpose":"Blog platform","automation":"ai"}]}]}}`
	remoteTools    = `{"tools":[{"id":"hashnode","name":"Hashnode","category":"Blog"}]}`
	remoteUseCases = `{"usecases":[{"id":"start-blog","title":"Start a blog","default_budget":0,"recommended_tools":["hashnode"]}]}`
)

func remoteConfig() config.RemoteCatalogConfig {
	return config.RemoteCatalogConfig{
		Name:         "remote-catalog",
		StacksURI:    "/stacks.json",
		ToolsURI:     "/tools.json",
		UseCasesURI:  "/usecases.json",
		StacksPath:   "data.stacks",
		ToolsPath:    "tools",
		UseCasesPath: "usecases",
	}
}

func newCatalogServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newCatalogClient(t *testing.T, baseURL string, rc config.RemoteCatalogConfig) *CatalogClient {
	t.Helper()

	c, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: "remote-catalog",
		Timeout:     2 * time.Second,
		Retry:       config.RetryConfig{MaxAttempts: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 2},
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Second, HalfOpenLimit: 1},
	})
	require.NoError(t, err)

	return NewCatalogClient(c, rc, nil)
}

func TestCatalogClient_Load(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{
		"/stacks.json":   remoteStacks,
		"/tools.json":    remoteTools,
		"/usecases.json": remoteUseCases,
	})

	cat, err := newCatalogClient(t, srv.URL, remoteConfig()).Load(context.Background())
	require.NoError(t, err)

	s, err := cat.StackByID("blog-free")
	require.NoError(t, err)
	assert.Equal(t, domain.AutomationAI, s.Tools[0].Automation)

	tool, err := cat.ToolByID("hashnode")
	require.NoError(t, err)
	assert.Equal(t, "Hashnode", tool.Name)

	uc, err := cat.UseCaseByID("start-blog")
	require.NoError(t, err)
	assert.Equal(t, []string{"hashnode"}, uc.RecommendedTools)
}

func TestCatalogClient_OptionalDocumentsMissing(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{"/stacks.json": remoteStacks})

	docs, err := newCatalogClient(t, srv.URL, remoteConfig()).Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, docs.Stacks, 1)
	assert.Empty(t, docs.Tools)
	assert.Empty(t, docs.UseCases)
}

func TestCatalogClient_StacksRequired(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{"/tools.json": remoteTools})

	_, err := newCatalogClient(t, srv.URL, remoteConfig()).Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)

	rc := remoteConfig()
	rc.StacksURI = ""
	_, err = newCatalogClient(t, srv.URL, rc).Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogClient_SchemaViolation(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{
		"/stacks.json": `{"data":{"stacks":[{"id":"x","field":"Blog","budget_min":-5,"tools":[]}]}}`,
	})

	_, err := newCatalogClient(t, srv.URL, remoteConfig()).Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogClient_UpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cc := newCatalogClient(t, srv.URL, remoteConfig())

	_, err := cc.Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrUnavailable)

	assert.Equal(t, "remote-catalog", cc.Name())
	require.ErrorIs(t, cc.Check(context.Background()), domain.ErrUnavailable)
}

func TestCatalogClient_Check(t *testing.T) {
	srv := newCatalogServer(t, map[string]string{"/stacks.json": remoteStacks})

	cc := newCatalogClient(t, srv.URL, remoteConfig())

	assert.NoError(t, cc.Check(context.Background()))
	assert.True(t, cc.Optional())
}
