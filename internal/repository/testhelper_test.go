package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"blog-backend/internal/domain"
)

// TestDB bundles the throwaway Postgres container with its pool.
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB starts a Postgres container, applies the migrations from
// migrations/ and returns a ready pool. Callers defer Cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("connection string: %v", err)
	}

	m, err := migrate.New("file://"+migrationsPath, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("create migrator: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("apply migrations: %v", err)
	}
	m.Close()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("create pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("ping database: %v", err)
	}

	return &TestDB{Pool: pool, Container: pgContainer, ConnStr: connStr}
}

// Cleanup closes the pool and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
}

// TruncateTables empties the given tables in one statement so subtests start
// from a clean slate.
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	if _, err := tdb.Pool.Exec(context.Background(), query); err != nil {
		t.Fatalf("truncate %v: %v", tables, err)
	}
}

// newTestUser builds a user row with unique username and email.
func newTestUser() *domain.User {
	id := uuid.New().String()
	now := time.Now()
	return &domain.User{
		ID:           id,
		Username:     "user" + id[:8],
		Email:        id[:8] + "@example.com",
		PasswordHash: "hash",
		PasswordSalt: "salt",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// newTestArticle builds an article row authored by the given user.
func newTestArticle(authorID string, tags ...string) *domain.Article {
	id := uuid.New().String()
	now := time.Now()
	return &domain.Article{
		ID:          id,
		Slug:        "test-article-" + id[:8],
		Title:       "Test Article",
		Description: "description",
		Body:        "body",
		Tags:        tags,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
