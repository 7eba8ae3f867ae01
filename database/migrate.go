package database

import (
	"fmt"

	"moviestore/migrations"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

// Migrate applies every pending migration and returns how many ran.
// It is safe to call on every startup.
func Migrate(db *gorm.DB, driver string) (int, error) {
	dialect, err := migrationDialect(driver)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       ".",
	}

	return migrate.Exec(sqlDB, dialect, source, migrate.Up)
}

func migrationDialect(driver string) (string, error) {
	switch driver {
	case DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("database: unsupported driver %q", driver)
	}
}
