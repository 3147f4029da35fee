package main

// Run database migrations:
//   go run ./cmd/migrate            apply pending migrations
//   go run ./cmd/migrate -down      revert the latest migration
//   go run ./cmd/migrate -status    print migration status

import (
	"context"
	"flag"
	"fmt"
	"os"

	"healthplan-backend/internal/shared/config"
	"healthplan-backend/internal/shared/storage/db"
	"healthplan-backend/internal/shared/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	down := flag.Bool("down", false, "revert the most recent migration")
	status := flag.Bool("status", false, "print migration status")
	flag.Parse()

	cfg := config.Load()
	if err := telemetry.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "logger init:", err)
	}
	defer telemetry.Sync()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err})
		return 1
	}
	defer sqlDB.Close()

	switch {
	case *status:
		err = db.MigrationStatus(ctx, sqlDB)
	case *down:
		err = db.RollbackMigration(ctx, sqlDB)
	default:
		err = db.RunMigrations(ctx, sqlDB)
	}
	if err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		return 1
	}
	telemetry.Info("migrate.done", map[string]any{"down": *down, "status": *status})
	return 0
}
