package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/cinefluent/internal/adapter/localstore"
	"github.com/heartmarshall/cinefluent/internal/adapter/mockdata"
	"github.com/heartmarshall/cinefluent/internal/apiclient"
	"github.com/heartmarshall/cinefluent/internal/auth"
	"github.com/heartmarshall/cinefluent/internal/config"
	authsvc "github.com/heartmarshall/cinefluent/internal/service/auth"
	"github.com/heartmarshall/cinefluent/internal/service/settings"
	"github.com/heartmarshall/cinefluent/internal/session"
)

// mockIssuer names the issuer of tokens handed out by the offline provider.
const mockIssuer = "cinefluent-mock"

// App is the wired client layer shared by every presentation.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Store    localstore.Store
	Session  *session.Session
	Mock     *mockdata.Provider
	Client   *apiclient.Client
	Auth     *authsvc.Controller
	Settings *settings.Service
}

// New builds the client layer from cfg. Logs go to logOut. The persisted
// session token, if any, is loaded so requests are authenticated from the
// start. Close releases the local store.
func New(ctx context.Context, cfg *config.Config, logOut io.Writer) (*App, error) {
	logger := NewLogger(cfg.Log, logOut)

	store, err := localstore.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("app.New: open store: %w", err)
	}

	sess := session.New(logger, store)
	if _, err := sess.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "failed to restore session", slog.String("error", err.Error()))
	}

	tokens := auth.NewTokenIssuer(cfg.Mock.TokenSecret, mockIssuer, cfg.Mock.TokenTTL)
	mock, err := mockdata.New(logger, tokens, cfg.Mock.Latency)
	if err != nil {
		store.Close() //nolint:errcheck
		return nil, fmt.Errorf("app.New: mock provider: %w", err)
	}

	client := apiclient.New(logger, sess, mock, apiclient.Options{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		MockMode: cfg.API.MockMode(),
		Retry: apiclient.RetryPolicy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Backoff:     apiclient.LinearBackoff(cfg.Retry.BaseDelay),
		},
	})

	logger.DebugContext(ctx, "client initialized",
		slog.String("version", BuildVersion()),
		slog.String("base_url", cfg.API.BaseURL),
		slog.Bool("mock_mode", client.MockMode()),
		slog.String("storage", cfg.Storage.Path),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Store:    store,
		Session:  sess,
		Mock:     mock,
		Client:   client,
		Auth:     authsvc.NewController(logger, client, sess),
		Settings: settings.NewService(logger, store),
	}, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a == nil || a.Store == nil {
		return nil
	}
	if err := a.Store.Close(); err != nil {
		return fmt.Errorf("app.Close: close store: %w", err)
	}
	return nil
}
