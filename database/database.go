package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	// Driver selects the backend, DriverPostgres or DriverSQLite.
	Driver string

	// Path is the database file used by DriverSQLite.
	Path string

	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool

	// Silent disables gorm's statement logger.
	Silent bool
}

func NewConnection(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if opts.Silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	switch opts.Driver {
	case DriverPostgres:
		return gorm.Open(postgres.Open(postgresDSN(opts)), cfg)
	case DriverSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("database: sqlite path is required")
		}
		db, err := gorm.Open(sqlite.Open(opts.Path+"?_busy_timeout=5000"), cfg)
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", opts.Driver)
	}
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func postgresDSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}
