package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"task-manager.com/task-manager/internal/auth"
	config "task-manager.com/task-manager/internal/configs"
	httpapi "task-manager.com/task-manager/internal/http"
	"task-manager.com/task-manager/internal/ratelimit"
	repository "task-manager.com/task-manager/internal/repositories"
	"task-manager.com/task-manager/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Migrates the database and serves the task manager HTTP API until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, database, err := bootstrap()
		if err != nil {
			return err
		}
		if sqlDB, err := database.DB(); err == nil {
			defer sqlDB.Close()
		}

		tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
		if err != nil {
			return err
		}

		authService, err := services.NewAuthService(
			repository.NewUserRepository(database),
			auth.NewPasswordHasher(cfg.BcryptCost),
			tokens,
		)
		if err != nil {
			return err
		}
		taskService := services.NewTaskService(repository.NewTaskRepository(database))
		tagService := services.NewTagService(repository.NewTagRepository(database))

		limiter, closeLimiter, err := newLimiter(cfg)
		if err != nil {
			return err
		}
		defer closeLimiter()

		handler := httpapi.NewHandler(authService, taskService, tagService, httpapi.CookieConfig{
			Secure: cfg.Production(),
		})
		e := httpapi.NewServer(handler, httpapi.ServerOptions{
			Logger:  slog.Default(),
			Limiter: limiter,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			slog.Info("HTTP server listening", "addr", cfg.AppURL, "env", cfg.Environment)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("server stopped", "error", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return err
		}

		slog.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newLimiter returns nil when rate limiting is off. A Redis address makes the
// quota shared between instances.
func newLimiter(cfg config.Config) (ratelimit.Limiter, func(), error) {
	noop := func() {}
	if cfg.RateLimit <= 0 {
		return nil, noop, nil
	}

	opts := ratelimit.Options{Limit: cfg.RateLimit, Window: time.Minute}
	if cfg.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(opts), noop, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, noop, err
	}

	return ratelimit.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, opts), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
