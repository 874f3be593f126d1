package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"reviewboard/internal/domain"
)

// Config tunes the connection pool. Zero values fall back to the defaults
// below.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = time.Hour
)

// Connect opens the database and verifies it is reachable. Postgres DSNs get
// the pgx-backed driver; anything else is treated as a SQLite path, used for
// local development and tests. An unreachable store is reported as
// domain.ErrConnectivity; no retry happens here.
func Connect(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	}

	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
	} else {
		log.Println("Using SQLite:", cfg.DSN)
		db, err = gorm.Open(
			gormsqlite.New(gormsqlite.Config{
				DriverName: "sqlite",
				DSN:        sqliteDSN(cfg.DSN),
			}),
			gormCfg,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}

	// Stale pooled connections are recycled by lifetime; database/sql also
	// retries transparently on driver.ErrBadConn before handing one out.
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}

	return db, nil
}

// sqliteDSN turns foreign key enforcement on. SQLite keeps it off per
// connection unless the DSN asks for it, which would let dangling references
// and restrict-policy deletes slip through.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Migrate creates or updates the three tables and their constraints. It is
// run as an explicit step (cmd/migrate) before the service starts.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Reviewer{},
		&domain.ReviewedObject{},
		&domain.Review{},
	)
}
