// Package app wires configuration into the studio and its backends. Both
// the web server and the Telegram bot start from Build.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"aura-ai/internal/batch"
	"aura-ai/internal/config"
	"aura-ai/internal/edit"
	"aura-ai/internal/gemini"
	"aura-ai/internal/httpclient"
	"aura-ai/internal/i18n"
	"aura-ai/internal/proxy"
	"aura-ai/internal/session"
	"aura-ai/internal/studio"
)

// App holds the long-lived components. Close releases the session store.
type App struct {
	Config     config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client
	Editor     edit.Editor
	Store      session.Store
	Studio     *studio.Service
	Translator *i18n.Translator

	closers []io.Closer
}

func NewLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
}

func Build(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = NewLogger(cfg.LogLevel)
	}

	// one request per selected style plus the custom prompt may run at once
	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4:      cfg.PreferIPv4,
		Timeout:         cfg.HTTPTimeout,
		MaxConnsPerHost: cfg.MaxConcurrent * 6,
	})

	a := &App{
		Config:     cfg,
		Logger:     logger,
		HTTPClient: httpClient,
		Editor:     NewEditor(cfg, httpClient, logger),
		Translator: i18n.New(cfg.DefaultLocale),
	}

	store, err := a.newStore(ctx)
	if err != nil {
		return nil, err
	}
	a.Store = store

	a.Studio = studio.New(studio.Options{
		Store:         store,
		Orchestrator:  batch.New(batch.Options{Editor: a.Editor, Logger: logger}),
		WarningTTL:    cfg.SelectionWarning,
		DefaultLocale: cfg.DefaultLocale,
		Logger:        logger,
	})

	logger.Info("studio ready",
		"edit_backend", cfg.EditBackend,
		"session_backend", cfg.SessionBackend,
		"model", cfg.GeminiModel,
		"key_set", cfg.GeminiAPIKey != "",
	)
	return a, nil
}

// NewEditor picks the edit backend named by EDIT_BACKEND.
func NewEditor(cfg config.Config, httpClient *http.Client, logger *slog.Logger) edit.Editor {
	switch cfg.EditBackend {
	case config.BackendProxy:
		return proxy.New(proxy.Options{URL: cfg.ProxyURL, HTTPClient: httpClient, Logger: logger})
	default:
		return NewModelEditor(cfg, httpClient, logger)
	}
}

// NewModelEditor returns an editor that talks to the model directly, never
// through the forwarding service.
func NewModelEditor(cfg config.Config, httpClient *http.Client, logger *slog.Logger) edit.Editor {
	opts := gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		Model:      cfg.GeminiModel,
		HTTPClient: httpClient,
		Logger:     logger,
	}
	if cfg.EditBackend == config.BackendSDK {
		return gemini.NewSDK(opts)
	}
	return gemini.New(opts)
}

func (a *App) newStore(ctx context.Context) (session.Store, error) {
	opts := session.Options{TTL: a.Config.SessionTTL}

	if a.Config.SessionBackend != config.SessionRedis {
		return session.NewMemoryStore(opts), nil
	}

	rdb, err := session.Connect(ctx, session.RedisOptions{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	a.closers = append(a.closers, rdb)
	return session.NewRedisStore(rdb, opts), nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
