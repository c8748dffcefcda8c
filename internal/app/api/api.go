// Package api собирает HTTP-сервис управления паутами: хранилище,
// миграции, кеш, рассылку снимков, бизнес-сервисы и роутер.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/matheusvidal/gestor-pautas/internal/cache"
	"github.com/matheusvidal/gestor-pautas/internal/config"
	"github.com/matheusvidal/gestor-pautas/internal/feed"
	"github.com/matheusvidal/gestor-pautas/internal/lib/jwt"
	"github.com/matheusvidal/gestor-pautas/internal/migrations"
	identityservice "github.com/matheusvidal/gestor-pautas/internal/services/identity"
	pautaservice "github.com/matheusvidal/gestor-pautas/internal/services/pauta"
	reportservice "github.com/matheusvidal/gestor-pautas/internal/services/report"
	"github.com/matheusvidal/gestor-pautas/internal/storage"
)

// App представляет HTTP-приложение управления паутами.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New инициализирует зависимости и собирает приложение.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	snapshots := feed.New(db, logger)

	pautaService := pautaservice.NewPautaService(db, cacheRedis, snapshots, logger)
	reportService := reportservice.NewReportService(db, cacheRedis, logger)
	identityService := identityservice.NewIdentityService(db, tokens, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, tokens, pautaService, reportService, identityService, snapshots)

	srv := &http.Server{
		Addr:        cfg.AddressHTTP,
		Handler:     router,
		ReadTimeout: cfg.TimeoutHTTP,
		// WriteTimeout не задаём: поток снимков держит соединение
		// открытым дольше любого разумного таймаута записи.
		IdleTimeout: cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
