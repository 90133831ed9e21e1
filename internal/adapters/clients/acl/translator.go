package acl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/stack4devs/stack4devs/internal/adapters/clients"
	"github.com/stack4devs/stack4devs/internal/domain"
)

// maxDocumentBody bounds a single upstream document.
const maxDocumentBody = 8 << 20

// BaseAdapter carries the client and upstream name shared by adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter wraps client. An empty serviceName falls back to the
// client's own name.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	if serviceName == "" {
		serviceName = client.ServiceName()
	}

	return BaseAdapter{client: client, serviceName: serviceName}
}

func (a *BaseAdapter) ServiceName() string {
	return a.serviceName
}

// Fetch GETs path and returns the body. Any failure is a domain error.
func (a *BaseAdapter) Fetch(ctx context.Context, path, resource string) ([]byte, error) {
	resp, err := a.client.Get(ctx, path)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, resource)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, MapHTTPError(resp, nil, a.serviceName, resource)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBody+1))
	if err != nil {
		return nil, domain.NewUnavailableError(a.serviceName, fmt.Sprintf("reading %s: %v", resource, err))
	}

	if len(body) > maxDocumentBody {
		return nil, domain.NewValidationError(resource, "document exceeds size limit")
	}

	return body, nil
}

// Extract pulls the JSON value at a gjson path out of body and wraps it as
// {"<key>": value}, the envelope the catalog decoder expects. An empty path
// selects the whole body.
func Extract(body []byte, path, key string) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, domain.NewValidationError(key, "upstream document is not valid JSON")
	}

	if path == "" {
		path = "@this"
	}

	value := gjson.GetBytes(body, path)
	if !value.Exists() {
		return nil, domain.NewValidationError(key, fmt.Sprintf("path %q not found in upstream document", path))
	}

	if !value.IsArray() {
		return nil, domain.NewValidationError(key, fmt.Sprintf("path %q is not an array", path))
	}

	return fmt.Appendf(nil, `{%q:%s}`, key, value.Raw), nil
}
