package main

import (
	"context"
	"log"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Bootstraps the database schema and a starter category set for every
// existing user. Safe to run repeatedly.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema is up to date")

	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	if err := seedCategories(ctx, db, categoryRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (user_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS receipts (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		file_size BIGINT NOT NULL,
		content_type TEXT NOT NULL,
		file_url TEXT NOT NULL,
		transaction_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		receipt_id UUID REFERENCES receipts(id) ON DELETE SET NULL,
		category_id UUID REFERENCES categories(id) ON DELETE SET NULL,
		description TEXT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		date DATE NOT NULL,
		type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_categories_user ON categories (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_receipts_user ON receipts (user_id)`,
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var starterCategories = []string{
	"General",
	"Groceries",
	"Dining",
	"Transport",
	"Utilities",
	"Entertainment",
	"Salary",
	"Other Income",
}

// seedCategories gives every user the starter categories they are missing.
func seedCategories(ctx context.Context, db *pgxpool.Pool, repo *repository.CategoryRepository, logger *zap.Logger) error {
	rows, err := db.Query(ctx, "SELECT id FROM users")
	if err != nil {
		return err
	}
	defer rows.Close()

	var userIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return err
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	created := 0
	for _, userID := range userIDs {
		existing, err := repo.ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		have := make(map[string]bool, len(existing))
		for _, c := range existing {
			have[c.Name] = true
		}

		now := time.Now()
		for _, name := range starterCategories {
			if have[name] {
				continue
			}
			category := &models.Category{
				ID:        uuid.New(),
				UserID:    userID,
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := repo.Create(ctx, category); err != nil {
				logger.Error("Failed to create category",
					zap.String("user_id", userID.String()),
					zap.String("name", name),
					zap.Error(err),
				)
				continue
			}
			created++
		}
	}

	logger.Info("Seeded starter categories",
		zap.Int("users", len(userIDs)),
		zap.Int("created", created),
	)
	return nil
}
