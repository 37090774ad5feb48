package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ymurata/taskleaf/internal/config"
	"github.com/ymurata/taskleaf/internal/database"
	"github.com/ymurata/taskleaf/internal/handlers"
	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/redis"
	"github.com/ymurata/taskleaf/internal/session"
	"github.com/ymurata/taskleaf/internal/storage"
	"github.com/ymurata/taskleaf/internal/views"
)

func main() {
	log := logger.New("server")
	log.SetStdLog()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	pool, err := database.Connect(ctx, database.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database: %v", err)
	}

	redisClient, err := redis.NewClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	renderer, err := views.New()
	if err != nil {
		log.Fatal("Failed to load templates: %v", err)
	}

	users := storage.NewPostgresUserStore(pool)
	tasks := storage.NewPostgresTaskStore(pool)
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handlers.NewRouter(users, tasks, sessions, renderer),
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
