package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/config"
	"github.com/heartmarshall/cinefluent/internal/domain"
)

func testConfig(storagePath string) *config.Config {
	return &config.Config{
		API:     config.APIConfig{BaseURL: "http://localhost:8000", Timeout: time.Second, UseMock: true},
		Retry:   config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond},
		Mock:    config.MockConfig{TokenSecret: "test-secret-at-least-32-chars-long-for-security", TokenTTL: time.Hour},
		Storage: config.StorageConfig{Path: storagePath},
		Log:     config.LogConfig{Level: "error", Format: "text"},
	}
}

func TestNew_OfflineLoginPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	a, err := New(ctx, testConfig(path), io.Discard)
	require.NoError(t, err)
	assert.True(t, a.Client.MockMode())

	a.Auth.Init(ctx)
	require.NoError(t, a.Auth.Login(ctx, mockdata.DemoEmail, mockdata.DemoPassword))
	require.NoError(t, a.Settings.SetTheme(ctx, domain.ThemeDark))
	require.NoError(t, a.Close())

	b, err := New(ctx, testConfig(path), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	assert.NotEmpty(t, b.Session.Token(), "token restored at startup")
	snap := b.Auth.Init(ctx)
	require.True(t, snap.Authenticated())
	assert.Equal(t, mockdata.DemoUserID, snap.User.ID)
	assert.Equal(t, domain.ThemeDark, b.Settings.Theme(ctx))
}

func TestNew_InMemoryStorage(t *testing.T) {
	a, err := New(context.Background(), testConfig(""), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	_, ok := a.Store.(*localstore.Memory)
	assert.True(t, ok, "empty storage path uses the in-memory store")
}

func TestNew_EmptyBaseURLForcesMock(t *testing.T) {
	cfg := testConfig("")
	cfg.API.BaseURL = ""
	cfg.API.UseMock = false

	a, err := New(context.Background(), cfg, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	assert.True(t, a.Client.MockMode())
}

func TestClose_Nil(t *testing.T) {
	var a *App
	assert.NoError(t, a.Close())
}
