package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stack4devs/stack4devs/internal/domain"
	"github.com/stack4devs/stack4devs/internal/ports"
)

// SettingsService reads and writes the device-wide preferences.
type SettingsService struct {
	store  ports.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(store ports.Store, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: loggerOrDefault(logger, "app.SettingsService")}
}

// Get returns the stored settings, filling unset fields with defaults.
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := load(ctx, s.store, keySettings, domain.DefaultSettings())
	if err != nil {
		return domain.Settings{}, err
	}

	def := domain.DefaultSettings()

	if settings.Theme == "" {
		settings.Theme = def.Theme
	}

	if settings.AIPreference == "" {
		settings.AIPreference = def.AIPreference
	}

	return settings, nil
}

// UpdateTheme validates and stores theme.
func (s *SettingsService) UpdateTheme(ctx context.Context, raw string) (domain.Settings, error) {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.Settings{}, err
	}

	return s.update(ctx, func(st *domain.Settings) { st.Theme = theme })
}

// UpdateAIPreference validates and stores the AI preference.
func (s *SettingsService) UpdateAIPreference(ctx context.Context, raw string) (domain.Settings, error) {
	pref, err := domain.ParseAIPreference(raw)
	if err != nil {
		return domain.Settings{}, err
	}

	return s.update(ctx, func(st *domain.Settings) { st.AIPreference = pref })
}

func (s *SettingsService) update(ctx context.Context, mutate func(*domain.Settings)) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	mutate(&settings)

	if err := s.store.Set(ctx, keySettings, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("saving settings: %w", err)
	}

	s.logger.DebugContext(ctx, "settings saved",
		slog.String("theme", string(settings.Theme)),
		slog.String("ai_preference", string(settings.AIPreference)),
	)

	return settings, nil
}
