// Package sqlite implements the key/value store as a single gorm-managed
// SQLite table.
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/stack4devs/stack4devs/internal/domain"
)

// entry is one row of the kv table. Value is declared TEXT so SQLite keeps
// JSON scalars as written instead of coercing them to numbers.
type entry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (entry) TableName() string { return "kv_entries" }

// Store persists JSON values keyed by string.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the database at path and migrates the kv table.
// busyTimeout bounds how long a writer waits on a locked database.
func Open(ctx context.Context, path string, busyTimeout time.Duration) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure store dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_txlock=immediate",
		path, busyTimeout.Milliseconds())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// One connection serializes writers; SQLite allows a single writer anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// Get decodes the value at key into dst.
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	var e entry

	err := s.db.WithContext(ctx).Where("entry_key = ?", key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("read %q: %w", key, err)
	}

	if err := json.Unmarshal(e.Value, dst); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}

	return true, nil
}

// Set upserts value at key as JSON.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	e := entry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now().UTC()}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	return nil
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&entry{}).Error; err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "store" }

// Check pings the database.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}

	if err != nil {
		return domain.NewUnavailableError("store", err.Error())
	}

	return nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
