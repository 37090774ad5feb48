// Seeds demo users and tasks. There is no registration flow, so this is
// how accounts come to exist in a fresh environment.
package main

import (
	"context"
	"errors"

	"github.com/ymurata/taskleaf/internal/auth"
	"github.com/ymurata/taskleaf/internal/config"
	"github.com/ymurata/taskleaf/internal/database"
	"github.com/ymurata/taskleaf/internal/logger"
	"github.com/ymurata/taskleaf/internal/models"
	"github.com/ymurata/taskleaf/internal/storage"
)

type seedUser struct {
	name     string
	email    string
	password string
	tasks    []models.Task
}

var seedUsers = []seedUser{
	{
		name:     "ユーザーA",
		email:    "a@example.com",
		password: "password",
		tasks: []models.Task{
			{Name: "最初のタスク", Description: "タスク管理の流れを確認する"},
			{Name: "テストを書く", Description: "タスク管理機能のシステムテスト"},
		},
	},
	{
		name:     "ユーザーB",
		email:    "b@example.com",
		password: "password",
	},
}

func main() {
	log := logger.New("seed")
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

	users := storage.NewPostgresUserStore(pool)
	tasks := storage.NewPostgresTaskStore(pool)

	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.password)
		if err != nil {
			log.Fatal("Failed to hash password: %v", err)
		}

		user := &models.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: hash,
		}

		if err := users.CreateUser(ctx, user); err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				log.Info("User %s already exists, skipping", su.email)
				continue
			}
			log.Fatal("Failed to create user %s: %v", su.email, err)
		}
		log.Info("Created user %s", su.email)

		for _, tk := range su.tasks {
			task := tk
			task.UserID = user.ID
			if err := tasks.CreateTask(ctx, &task); err != nil {
				log.Fatal("Failed to create task %s: %v", task.Name, err)
			}
			log.Info("Created task %s for %s", task.Name, su.email)
		}
	}
}
