package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is a global variable to hold the database connection
var DB *gorm.DB

// Connect opens the database. DATABASE_URL selects PostgreSQL; without it
// the server falls back to a local SQLite file, which is how it runs on
// the Pi itself.
func Connect() (*gorm.DB, error) {
	if dsn := Getenv("DATABASE_URL", ""); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(Getenv("SQLITE_PATH", "db.sqlite")), &gorm.Config{})
}
