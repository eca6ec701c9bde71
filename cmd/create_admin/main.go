// create_admin bootstraps an admin account into the users document so
// the dashboard is reachable on a fresh install.
//
// Usage: create_admin -user admin -pass <password>
package main

import (
	"context"
	"flag"

	"wheel_backend/internal/config"
	"wheel_backend/internal/db"
	"wheel_backend/internal/domain"
	"wheel_backend/internal/logger"
	"wheel_backend/internal/service"
	"wheel_backend/internal/store"
)

func main() {
	username := flag.String("user", "admin", "admin username")
	password := flag.String("pass", "", "admin password")
	flag.Parse()

	if *password == "" {
		logger.Fatal("-pass is required")
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	var st store.Store
	switch cfg.StorageDriver {
	case "postgres":
		pool := db.Connect(cfg.DatabaseURL)
		defer pool.Close()
		st = store.NewPostgresStore(pool)
	default:
		fs, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Fatal("failed to open data dir", "dir", cfg.DataDir, "error", err)
		}
		st = fs
	}

	ctx := context.Background()
	users, err := st.LoadUsers(ctx)
	if err != nil {
		logger.Fatal("failed to load users", "error", err)
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		logger.Fatal("failed to hash password", "error", err)
	}

	for i := range users {
		if users[i].Username == *username {
			users[i].Role = domain.RoleAdmin
			users[i].PasswordHash = hash
			if err := st.SaveUsers(ctx, users); err != nil {
				logger.Fatal("failed to save users", "error", err)
			}
			logger.Info("existing user promoted to admin", "user", *username)
			return
		}
	}

	users = append(users, domain.User{
		Username:     *username,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		History:      []domain.PlayRecord{},
	})
	if err := st.SaveUsers(ctx, users); err != nil {
		logger.Fatal("failed to save users", "error", err)
	}
	logger.Info("admin user created", "user", *username)
}
