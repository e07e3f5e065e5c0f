//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"ticketing-notifier/cmd/bootstrap"
	"ticketing-notifier/cmd/bootstrap/components"
	"ticketing-notifier/internal/infra/db"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/usecase/outbox"
	"ticketing-notifier/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")

	migrationsDir = "migrations"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// App is the wired service as the e2e suites see it. The outbox worker loop is not started;
// suites call ProcessBatch themselves so job timing stays deterministic.
type App struct {
	Router *gin.Engine
	Config config.Config
	Worker *outbox.Worker
}

// SharedSuite gives each suite its own database on a shared Postgres container and its own in-memory Redis.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Worker *outbox.Worker
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := createDatabase(t)
	pool, closePool, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	// Redis はインメモリで代替（pub/sub と TTL の検証に十分）
	mr := miniredis.RunT(t)

	app := startApp(t, pool, dbCfg, mr.Addr())

	s.DB = pool
	s.Redis = mr
	s.Router = app.Router
	s.Worker = app.Worker
	s.Config = app.Config
}

// SetupSubTest resets tables and keys so subtests do not see each other's rows, markers or claims.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	s.Redis.FlushAll()
}

func postgresContainer(t *testing.T) testcontainers.Container {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				// 耐久性は不要なのでデータは RAM 上、fsync も無効
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "notifier-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")
	return pgContainer
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase creates a throwaway database for the calling suite and drops it on cleanup.
func createDatabase(t *testing.T) config.DBConfig {
	t.Helper()
	ctx := context.Background()

	c := postgresContainer(t)
	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	name := "notifier_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if p, err := pgxpool.New(cleanupCtx, adminDSN(host, port)); err == nil {
			_, _ = p.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
			p.Close()
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 4,
	}
}

// applyMigrations runs every .sql file under migrations/ in name order. go test runs from the
// package directory, so the directory is looked up from there towards the module root.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := findUp(migrationsDir)
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", f, err)
		}
	}
	return nil
}

func findUp(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		cand := filepath.Join(dir, name)
		if info, err := os.Stat(cand); err == nil && info.IsDir() {
			return cand, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found above the working directory", name)
		}
		dir = parent
	}
}

func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig, redisAddr string) *App {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.Addr = redisAddr
	cfg.Cache.Driver = "redis"

	var out App
	app := fx.New(
		fx.Module("testdb", fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() db.DBTX { return pool },
		)),
		fx.Module("testconfig", fx.Provide(
			func() config.Config { return cfg },
			func(c config.Config) config.DispatchConfig { return c.Dispatch },
		)),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.CacheModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&out.Router, &out.Config, &out.Worker),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return &out
}
