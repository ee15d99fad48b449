// Package settings manages the persisted theme preference.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/domain"
)

// kvStore defines the persistence operations needed by the settings service.
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Service implements theme preference operations.
type Service struct {
	log   *slog.Logger
	store kvStore
}

// NewService creates a new settings service instance.
func NewService(logger *slog.Logger, store kvStore) *Service {
	return &Service{
		log:   logger.With("service", "settings"),
		store: store,
	}
}

// Theme returns the stored theme. A missing or unrecognised value yields
// domain.ThemeSystem.
func (s *Service) Theme(ctx context.Context) domain.Theme {
	v, err := s.store.Get(ctx, localstore.KeyTheme)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			s.log.WarnContext(ctx, "failed to read theme", slog.String("error", err.Error()))
		}
		return domain.ThemeSystem
	}
	t := domain.Theme(v)
	if !t.IsValid() {
		s.log.WarnContext(ctx, "ignoring unknown stored theme", slog.String("theme", v))
		return domain.ThemeSystem
	}
	return t
}

// SetTheme persists t.
func (s *Service) SetTheme(ctx context.Context, t domain.Theme) error {
	if !t.IsValid() {
		return domain.NewValidationError("theme", "must be light, dark or system")
	}
	if err := s.store.Set(ctx, localstore.KeyTheme, t.String()); err != nil {
		return fmt.Errorf("settings.SetTheme: %w", err)
	}
	s.log.DebugContext(ctx, "theme changed", slog.String("theme", t.String()))
	return nil
}

// Toggle switches dark to light and anything else to dark, and returns the
// new theme.
func (s *Service) Toggle(ctx context.Context) (domain.Theme, error) {
	next := domain.ThemeDark
	if s.Theme(ctx) == domain.ThemeDark {
		next = domain.ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return s.Theme(ctx), err
	}
	return next, nil
}
