package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/logger"

	"go.uber.org/zap"
)

func main() {
	mode := flag.String("mode", "up", "migration mode: up or down")
	dir := flag.String("dir", "./migrations", "directory holding *.sql migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	conn := db.InitDB(cfg)
	defer conn.Close()

	if err := run(conn, *mode, *dir); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}
}

func run(conn *sql.DB, mode, migrationsDir string) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	switch mode {
	case "up":
		return migrateUp(conn, files)
	case "down":
		return migrateDown(conn, files)
	default:
		return fmt.Errorf("unknown mode: %s (use 'up' or 'down')", mode)
	}
}

func migrateUp(conn *sql.DB, files []string) error {
	log := logger.L()
	applied := 0

	for _, file := range files {
		version := filepath.Base(file)

		var exists bool
		err := conn.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Debug("skipping applied migration", zap.String("version", version))
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		log.Info("applying migration", zap.String("version", version))
		if err := applyInTx(conn, section(string(content), "Up"),
			`INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("migration %s: %w", version, err)
		}
		applied++
	}

	log.Info("migrations complete", zap.Int("applied", applied))
	return nil
}

// migrateDown rolls back the most recently applied migration.
func migrateDown(conn *sql.DB, files []string) error {
	log := logger.L()

	var lastVersion string
	err := conn.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("no migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get last applied migration: %w", err)
	}

	var path string
	for _, f := range files {
		if filepath.Base(f) == lastVersion {
			path = f
			break
		}
	}
	if path == "" {
		return fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))
	if err := applyInTx(conn, section(string(content), "Down"),
		`DELETE FROM schema_migrations WHERE version = $1`, lastVersion); err != nil {
		return fmt.Errorf("rollback %s: %w", lastVersion, err)
	}
	return nil
}

// applyInTx runs the migration body and its bookkeeping statement together.
func applyInTx(conn *sql.DB, body, bookkeeping, version string) error {
	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(body); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec(bookkeeping, version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// section returns the statements between "-- +migrate <name>" and the next marker.
func section(content, name string) string {
	var part strings.Builder
	in := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "-- +migrate") {
			if in {
				break
			}
			in = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-- +migrate")) == name
			continue
		}
		if in {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
