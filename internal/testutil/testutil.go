package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/audwofla/Aramalyze/internal/api"
	"github.com/audwofla/Aramalyze/internal/config"
	"github.com/audwofla/Aramalyze/internal/logger"
	"github.com/audwofla/Aramalyze/internal/repository"
	repoPostgres "github.com/audwofla/Aramalyze/internal/repository/postgres"
	repoSQLite "github.com/audwofla/Aramalyze/internal/repository/sqlite"
	"github.com/audwofla/Aramalyze/internal/service"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// TestDB manages a database for one test: a testcontainers PostgreSQL
// instance or an in-memory SQLite store.
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection.
// It skips the test under -short.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_aramalyze"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// NewSQLiteDB returns a private in-memory SQLite store with the schema
// applied.
func NewSQLiteDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repoSQLite.NewConnection(dsn, gormLogger.Silent)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	testDB := &TestDB{DB: db, DSN: dsn}
	t.Cleanup(func() {
		testDB.Cleanup()
	})
	return testDB
}

// Cleanup closes the connection and terminates the container, if any.
func (tdb *TestDB) Cleanup() {
	if sqlDB, err := tdb.DB.DB(); err == nil {
		sqlDB.Close()
	}
	if tdb.Container != nil {
		tdb.Container.Terminate(context.Background())
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	// Children first
	tables := []string{
		"champion_spell_changes",
		"champion_aram_mods",
		"champion_tag",
		"patch_loads",
		"champions",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig(canonicalDir string) *config.Config {
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.CanonicalDir = canonicalDir
	cfg.JWTSecret = "test-jwt-secret-key-for-testing-only"
	cfg.Database = config.DatabaseConfig{Driver: "sqlite", URL: ":memory:"}
	cfg.DataDragon.Concurrency = 2
	return &cfg
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewTestServer creates a complete test server backed by in-memory SQLite
// and a temporary canonical directory.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewSQLiteDB(t)
	cfg := TestConfig(t.TempDir())
	log := logger.NewNop()

	repos := repoPostgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, repoPostgres.NewUnitOfWork(testDB.DB), cfg, log)
	router := api.NewRouter(services, log)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}

// AdminToken issues a token accepted by the load endpoint.
func (ts *TestServer) AdminToken(t *testing.T) string {
	t.Helper()

	token, err := ts.Services.Auth.IssueAdminToken("test-admin", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue admin token: %v", err)
	}
	return token
}
