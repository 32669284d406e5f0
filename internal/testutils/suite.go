package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"guard-deployment-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "guard"
	pgPassword = "guard-test"
	pgDatabase = "guard_deployment_test"
)

var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
)

// deploymentTables lists every table in child-to-parent order
var deploymentTables = []string{
	"approval_escalations",
	"approval_requests",
	"auto_approval_rules",
	"assignments",
	"post_orders_acknowledgements",
	"schedule_entries",
	"site_assignments",
	"posts",
	"shifts",
	"workers",
	"sites",
}

// BaseTestSuite gives repository suites a migrated database that is
// emptied around each test
type BaseTestSuite struct {
	DB *gorm.DB
}

// SetupTestSuite starts (once) the shared Postgres container and returns a
// handle on it. Integration suites call it from SetupSuite.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	pgOnce.Do(func() { pgInitErr = initSharedPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to initialize shared postgres container: %v", pgInitErr)
	}
	return &BaseTestSuite{DB: pgDB}
}

// CleanupSharedContainer purges the Postgres container, if one was started
func CleanupSharedContainer() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if pgPool != nil && pgResource != nil {
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge postgres resource: %v", err)
		}
		pgResource = nil
		pgPool = nil
		pgDB = nil
	}
}

func (s *BaseTestSuite) SetupTest()         { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest()      { s.CleanTestDB() }
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the deployment tables that exist
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range deploymentTables {
		if m.HasTable(t) {
			s.DB.Exec(`TRUNCATE TABLE "` + t + `" CASCADE`)
		}
	}
}

func initSharedPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
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
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		// pgx answers as soon as the server accepts connections, before gorm migrates
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
		if err != nil {
			return err
		}
		pgDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker postgres: %w", err)
	}

	log.Printf("Shared Postgres ready on %s", port)
	return nil
}
