// Package pgtest provisions a PostgreSQL database with the application schema
// for integration tests. It uses an external database when TEST_DB_HOST is set
// and a throwaway container otherwise.
package pgtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated test database
type Database struct {
	DB        *gorm.DB
	container *postgres.PostgresContainer
}

// Start connects to the test database and applies db/init_pg_db.sql
func Start(ctx context.Context) (*Database, error) {
	var (
		dsn       string
		container *postgres.PostgresContainer
		err       error
	)

	if dbHost := os.Getenv("TEST_DB_HOST"); dbHost != "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost,
			envOr("TEST_DB_PORT", "5432"),
			envOr("TEST_DB_USER", "postgres"),
			envOr("TEST_DB_PASSWORD", "postgres"),
			envOr("TEST_DB_NAME", "test_db"),
		)
		fmt.Printf("Using external database: %s\n", dbHost)
	} else {
		container, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
		}

		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			terminate(ctx, container)
			return nil, fmt.Errorf("failed to get connection string: %w", err)
		}
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		terminate(ctx, container)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applySchema(db); err != nil {
		terminate(ctx, container)
		return nil, err
	}

	return &Database{DB: db, container: container}, nil
}

// Terminate stops the container, if one was started
func (d *Database) Terminate(ctx context.Context) {
	if d == nil {
		return
	}
	terminate(ctx, d.container)
}

// BeginTx starts a transaction that is rolled back when the test ends
func (d *Database) BeginTx(t *testing.T) *gorm.DB {
	tx := d.DB.Begin()
	require.NotNil(t, tx)
	require.NoError(t, tx.Error)

	t.Cleanup(func() {
		tx.Rollback()
	})

	return tx
}

// applySchema runs the schema initialization and the optional test seed data
func applySchema(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dir := dbDir()
	schemaSQL, err := os.ReadFile(filepath.Join(dir, "init_pg_db.sql")) //nolint:gosec,G304
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	seedPath := filepath.Join(dir, "pg_test_data.sql")
	if _, err := os.Stat(seedPath); err == nil {
		seedSQL, err := os.ReadFile(seedPath) //nolint:gosec,G304
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
		if _, err := sqlDB.Exec(string(seedSQL)); err != nil {
			return fmt.Errorf("failed to execute seed data: %w", err)
		}
	}

	return nil
}

// dbDir locates the repository db/ directory from this source file
func dbDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "db")
}

func terminate(ctx context.Context, container *postgres.PostgresContainer) {
	if container == nil {
		return
	}
	if err := container.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
