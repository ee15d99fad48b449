package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/domain"
)

func newTestService() (*Service, *localstore.Memory) {
	store := localstore.NewMemory()
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), store), store
}

func TestService_Theme_DefaultsToSystem(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	assert.Equal(t, domain.ThemeSystem, svc.Theme(context.Background()))
}

func TestService_Theme_UnknownValue(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()
	require.NoError(t, store.Set(context.Background(), localstore.KeyTheme, "sepia"))
	assert.Equal(t, domain.ThemeSystem, svc.Theme(context.Background()))
}

func TestService_SetTheme(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newTestService()

	require.NoError(t, svc.SetTheme(ctx, domain.ThemeLight))
	assert.Equal(t, domain.ThemeLight, svc.Theme(ctx))

	v, err := store.Get(ctx, localstore.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	err = svc.SetTheme(ctx, domain.Theme("neon"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.ThemeLight, svc.Theme(ctx))
}

func TestService_Toggle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService()

	got, err := svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, got, "system toggles to dark")

	got, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, got)

	got, err = svc.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, got)
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) { return "", errors.New("io") }
func (brokenStore) Set(context.Context, string, string) error  { return errors.New("io") }

func TestService_StoreFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), brokenStore{})

	assert.Equal(t, domain.ThemeSystem, svc.Theme(ctx))
	assert.Error(t, svc.SetTheme(ctx, domain.ThemeDark))

	got, err := svc.Toggle(ctx)
	assert.Error(t, err)
	assert.Equal(t, domain.ThemeSystem, got)
}
