package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/linskybing/projecthub-go/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration returns a migrated database. TEST_DB_DSN points at
// an existing server; otherwise a throwaway postgres container is started.
func SetupPostgresForIntegration() (*gorm.DB, *sql.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB := mustConnect(dsn)
		gormDB := mustMigrate(sqlDB)
		return gormDB, sqlDB, func() {
			_ = sqlDB.Close()
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "projecthub",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/projecthub?sslmode=disable", host, port.Port())
	sqlDB := mustConnect(dsn)
	gormDB := mustMigrate(sqlDB)

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return gormDB, sqlDB, cleanup
}

func mustConnect(dsn string) *sql.DB {
	// retry db connect
	var sqlDB *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

func mustMigrate(sqlDB *sql.DB) *gorm.DB {
	gormDB, err := db.Open(postgres.New(postgres.Config{Conn: sqlDB}), logger.Silent)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	return gormDB
}

// Truncate empties every table and resets identities.
func Truncate(gormDB *gorm.DB) error {
	var tables []string
	for _, m := range db.Models() {
		stmt := &gorm.Statement{DB: gormDB}
		if err := stmt.Parse(m); err != nil {
			return err
		}
		tables = append(tables, stmt.Schema.Table)
	}
	for _, t := range tables {
		if err := gormDB.Exec(fmt.Sprintf("TRUNCATE TABLE %q RESTART IDENTITY CASCADE", t)).Error; err != nil {
			return err
		}
	}
	return nil
}
