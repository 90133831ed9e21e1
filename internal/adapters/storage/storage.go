// Package storage opens the local key/value store that holds accounts,
// favorites, settings and community cases.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/stack4devs/stack4devs/internal/adapters/storage/bolt"
	"github.com/stack4devs/stack4devs/internal/adapters/storage/memory"
	"github.com/stack4devs/stack4devs/internal/adapters/storage/sqlite"
	"github.com/stack4devs/stack4devs/internal/platform/config"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// Store is a ports.Store that can report health and be closed.
type Store interface {
	ports.Store
	ports.HealthChecker
	io.Closer
}

var (
	_ Store = (*bolt.Store)(nil)
	_ Store = (*sqlite.Store)(nil)
	_ Store = (*memory.Store)(nil)
)

// Open returns the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Second
	}

	switch cfg.Driver {
	case config.StorageDriverBolt:
		return bolt.Open(cfg.Path, timeout)
	case config.StorageDriverSQLite:
		return sqlite.Open(ctx, cfg.Path, timeout)
	case config.StorageDriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
