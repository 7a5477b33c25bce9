// Package emaildispatcher собирает приложение: хранилища, сервисы,
// HTTP-сервер и его жизненный цикл.
package emaildispatcher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/email-dispatcher/internal/config"
	"github.com/magabrotheeeer/email-dispatcher/internal/history"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/jwt"
	"github.com/magabrotheeeer/email-dispatcher/internal/lib/sl"
	"github.com/magabrotheeeer/email-dispatcher/internal/migrations"
	"github.com/magabrotheeeer/email-dispatcher/internal/provider/resend"
	authservice "github.com/magabrotheeeer/email-dispatcher/internal/services/auth"
	dispatchservice "github.com/magabrotheeeer/email-dispatcher/internal/services/dispatch"
	scriptservice "github.com/magabrotheeeer/email-dispatcher/internal/services/script"
	userservice "github.com/magabrotheeeer/email-dispatcher/internal/services/user"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage/failover"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage/filestore"
	"github.com/magabrotheeeer/email-dispatcher/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер приложения и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение из конфигурации: основное и резервное хранилища,
// журнал отправок, клиент почтового API, сервисы и маршруты.
//
// Недоступность PostgreSQL на старте не фатальна: миграции откладываются,
// а запросы до восстановления базы обслуживает резервное файловое хранилище.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(db.DB, "./migrations"); err != nil {
		logger.Warn("failed to run migrations, primary storage may be unavailable", sl.Err(err))
	}

	files, err := filestore.New(cfg.FallbackDir)
	if err != nil {
		return nil, err
	}

	users := failover.NewUsers(db, files, logger)
	scripts := failover.NewScripts(db, files, logger)

	historyStore, err := newHistoryStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := resend.NewClient(cfg.APIKey, cfg.APIURL, cfg.FromEmail)

	authService := authservice.NewAuthService(users, jwtMaker)
	userService := userservice.NewUserService(users)
	scriptService := scriptservice.NewScriptService(scripts)
	dispatchService := dispatchservice.NewDispatchService(providerClient, historyStore, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, userService, scriptService, dispatchService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// newHistoryStore выбирает бэкенд журнала отправок по конфигурации.
func newHistoryStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (history.Store, error) {
	switch cfg.HistoryBackend {
	case "redis":
		store, err := history.NewRedisStore(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		logger.Info("email history backed by redis", slog.String("addr", cfg.AddressRedis))
		return store, nil
	default:
		logger.Info("email history kept in memory")
		return history.NewMemoryStore(), nil
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
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
		_ = a.db.DB.Close()
		return err
	}
}
