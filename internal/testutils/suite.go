package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/config"
	"volunteer-scheduler-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "scheduler"
	pgPassword = "scheduler-test"
	pgDatabase = "scheduler_test"
)

// postgresHarness owns the one container every integration package shares.
type postgresHarness struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var harness postgresHarness

// BaseTestSuite gives repository and route suites a migrated database that
// is emptied around every test.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	harness.once.Do(func() { harness.err = harness.start() })
	if harness.err != nil {
		t.Fatalf("postgres test container: %v", harness.err)
	}
	return &BaseTestSuite{DB: harness.db, Config: harness.cfg}
}

// RunMain runs a package's tests and purges the container afterwards,
// including when the run is interrupted.
func RunMain(m *testing.M, pkg string) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Printf("%s tests interrupted", pkg)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// CleanupSharedContainer closes the pool and removes the container. Safe to
// call when nothing was started.
func CleanupSharedContainer() {
	if harness.db != nil {
		if sqlDB, err := harness.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		harness.db = nil
	}
	if harness.pool == nil || harness.resource == nil {
		return
	}
	if err := harness.pool.Purge(harness.resource); err != nil {
		log.Printf("WARN: purge %s: %v", harness.resource.Container.Name, err)
	}
	harness.pool, harness.resource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB empties every scheduler table.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range database.TableNames() {
		if migrator.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
		}
	}
}

func (h *postgresHarness) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	h.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        envOr("TEST_POSTGRES_TAG", "16-alpine"),
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("run postgres: %w", err)
	}
	h.resource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return h.connect(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	h.cfg = testConfig(dsn)
	log.Printf("postgres test container %s ready", resource.Container.Name)
	return nil
}

// connect waits for the server to accept connections, then migrates.
func (h *postgresHarness) connect(dsn string) error {
	readiness, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer readiness.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := readiness.PingContext(ctx); err != nil {
		return err
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	h.db = db
	return nil
}

func testConfig(dsn string) *config.Config {
	return &config.Config{
		DatabaseURL:      dsn,
		Port:             "0",
		LogLevel:         "debug",
		Environment:      "test",
		JWTSecret:        "scheduler-test-secret",
		JWTExpiryHours:   1,
		NotifyBufferSize: 16,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
