package acl

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/stack4devs/stack4devs/internal/adapters/catalog"
	"github.com/stack4devs/stack4devs/internal/adapters/clients"
	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/platform/config"
	"github.com/stack4devs/stack4devs/internal/platform/logging"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// CatalogClient loads catalog documents published over HTTP. Each document
// may wrap its array anywhere in a larger payload; the configured gjson
// paths say where.
type CatalogClient struct {
	BaseAdapter

	cfg    config.RemoteCatalogConfig
	logger *slog.Logger
}

var _ ports.OptionalChecker = (*CatalogClient)(nil)

// NewCatalogClient creates a CatalogClient. Panics if client is nil.
func NewCatalogClient(client *clients.Client, cfg config.RemoteCatalogConfig, logger *slog.Logger) *CatalogClient {
	if client == nil {
		panic("acl: CatalogClient requires a client")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CatalogClient{
		BaseAdapter: NewBaseAdapter(client, cfg.Name),
		cfg:         cfg,
		logger:      logger,
	}
}

type remoteDocument struct {
	kind catalog.Kind
	uri  string
	path string
}

func (c *CatalogClient) documents() []remoteDocument {
	return []remoteDocument{
		{kind: catalog.KindStacks, uri: c.cfg.StacksURI, path: c.cfg.StacksPath},
		{kind: catalog.KindTools, uri: c.cfg.ToolsURI, path: c.cfg.ToolsPath},
		{kind: catalog.KindUseCases, uri: c.cfg.UseCasesURI, path: c.cfg.UseCasesPath},
	}
}

// Fetch downloads the documents concurrently and validates each against
// its schema. The stacks document is required; a tools or use case
// document that is unconfigured or answers 404 is left empty.
func (c *CatalogClient) Fetch(ctx context.Context) (ports.CatalogDocuments, error) {
	docs := c.documents()
	raw := make([][]byte, len(docs))

	g, gctx := errgroup.WithContext(ctx)

	for i, d := range docs {
		if d.uri == "" {
			if d.kind == catalog.KindStacks {
				return ports.CatalogDocuments{}, domain.NewValidationError("catalog.remote.stacks_uri", "is required")
			}

			continue
		}

		g.Go(func() error {
			body, err := c.fetchDocument(gctx, d)
			if err != nil {
				return err
			}

			raw[i] = body

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ports.CatalogDocuments{}, err
	}

	var out ports.CatalogDocuments

	for i, d := range docs {
		if raw[i] == nil {
			continue
		}

		if err := catalog.Decode(&out, d.kind, raw[i], catalog.FormatJSON); err != nil {
			return ports.CatalogDocuments{}, err
		}
	}

	logging.FromContext(ctx).InfoContext(ctx, "remote catalog fetched",
		slog.String("upstream", c.ServiceName()),
		slog.Int("stacks", len(out.Stacks)),
		slog.Int("tools", len(out.Tools)),
		slog.Int("use_cases", len(out.UseCases)),
	)

	return out, nil
}

// fetchDocument downloads one document and extracts its array.
func (c *CatalogClient) fetchDocument(ctx context.Context, d remoteDocument) ([]byte, error) {
	resource := string(d.kind) + " document"

	c.logger.Log(ctx, logging.LevelTrace, "fetching catalog document",
		slog.String("kind", string(d.kind)),
		slog.String("uri", d.uri),
	)

	body, err := c.BaseAdapter.Fetch(ctx, d.uri, resource)
	if err != nil {
		if d.kind != catalog.KindStacks && domain.IsNotFound(err) {
			c.logger.WarnContext(ctx, "optional catalog document missing", slog.String("kind", string(d.kind)))
			return nil, nil
		}

		return nil, err
	}

	return Extract(body, d.path, string(d.kind))
}

// Load fetches and indexes the catalog.
func (c *CatalogClient) Load(ctx context.Context) (*catalog.Static, error) {
	docs, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.New(docs)
}

// Name implements ports.HealthChecker.
func (c *CatalogClient) Name() string {
	return c.ServiceName()
}

// Optional reports that an unreachable remote only degrades readiness.
// The catalog was fetched at startup and stays in memory.
func (c *CatalogClient) Optional() bool {
	return true
}

// Check implements ports.HealthChecker by fetching the stacks document.
func (c *CatalogClient) Check(ctx context.Context) error {
	_, err := c.BaseAdapter.Fetch(ctx, c.cfg.StacksURI, "stacks document")

	return err
}
