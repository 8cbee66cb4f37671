//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mark47B/pr-health-dashboard/internal/infra/storage/pg"
)

var (
	dbContainer *postgres.PostgresContainer
	dbURL       string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}
	dbContainer = container

	dbURL, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	if err := applyMigrations(dbURL); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	code := m.Run()

	_ = dbContainer.Terminate(ctx)

	os.Exit(code)
}

// applyMigrations runs the same embedded migrations the server applies at startup.
func applyMigrations(databaseURL string) error {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return pg.Migrate(db)
}

// setupTestDB returns a connection to an emptied database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err, "failed to connect to test database")

	_, err = db.Exec(`TRUNCATE TABLE user_projects, projects, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to truncate tables")

	t.Cleanup(func() { db.Close() })
	return db
}
