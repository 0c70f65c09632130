package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"outing-board-backend/internal/database"
	"outing-board-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "board"
	pgPassword = "board"
	pgDatabase = "board_test"
)

// one container serves every integration suite in the test binary
var (
	pgOnce     sync.Once
	pgErr      error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgDSN      string
)

// PostgresFixture gives integration tests a migrated settings database
type PostgresFixture struct {
	DB  *gorm.DB
	DSN string
}

// SetupPostgres starts the shared container on first use
func SetupPostgres(t *testing.T) *PostgresFixture {
	t.Helper()
	pgOnce.Do(func() { pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("postgres fixture: %v", pgErr)
	}
	return &PostgresFixture{DB: pgDB, DSN: pgDSN}
}

// Reset clears every stored setting
func (f *PostgresFixture) Reset() {
	if f.DB == nil {
		return
	}
	f.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.AppSetting{})
}

// PurgePostgres closes the pool and removes the container. Call it from TestMain.
func PurgePostgres() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool == nil || pgResource == nil {
		return
	}
	if err := pgPool.Purge(pgResource); err != nil {
		log.Printf("could not purge %s: %v", pgResource.Container.Name, err)
	}
	pgPool, pgResource = nil, nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

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
	pgPool, pgResource = pool, resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)
		return conn.Ping(ctx)
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("initialize settings schema: %w", err)
	}
	pgDB, pgDSN = db, dsn

	log.Printf("postgres fixture listening on %s", resource.GetPort("5432/tcp"))
	return nil
}
