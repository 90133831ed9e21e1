package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page size bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ErrInvalidCursor is returned for a cursor this API did not issue.
var ErrInvalidCursor = errors.New("invalid cursor")

// PageRequest is the cursor and page size of a list request.
type PageRequest struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit"  validate:"omitempty,gte=1,lte=100"`
}

// PageLimit returns Limit clamped to [1, MaxLimit], DefaultLimit when unset.
func (p PageRequest) PageLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// After decodes Cursor into the id of the last item already served.
// An empty cursor means the first page.
func (p PageRequest) After() (string, error) {
	if p.Cursor == "" {
		return "", nil
	}

	c, err := DecodeCursor(p.Cursor)
	if err != nil {
		return "", err
	}

	return c.After, nil
}

// Cursor is the opaque position handed to clients.
type Cursor struct {
	After string `json:"after"`
}

// EncodeCursor returns the URL-safe form of a cursor pointing after id.
func EncodeCursor(id string) string {
	raw, _ := json.Marshal(Cursor{After: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a value produced by EncodeCursor.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}

	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.After == "" {
		return Cursor{}, ErrInvalidCursor
	}

	return c, nil
}

// Page is one page of a list.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPage wraps items. When more follow, the next cursor points after the
// last item, identified by id.
func NewPage[T any](items []T, hasMore bool, id func(T) string) Page[T] {
	if items == nil {
		items = []T{}
	}

	p := Page[T]{Items: items, HasMore: hasMore}
	if hasMore && len(items) > 0 {
		p.NextCursor = EncodeCursor(id(items[len(items)-1]))
	}

	return p
}
