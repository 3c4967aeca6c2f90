package database

import (
	"database/sql"
	"os"
	"path/filepath"

	"brm-service/internal/app/config"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens the database file with a single connection, so a
// transaction carried in a context never waits on a second writer.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func NewSQLite(driverConfig *config.DriverConfig) *sql.DB {
	db, err := OpenSQLite(driverConfig.SQLite.Path)
	if err != nil {
		logrus.Fatalf("Failed to open sqlite database %s: %s", driverConfig.SQLite.Path, err.Error())
	}
	logrus.Printf("Successfully opened sqlite database %s", driverConfig.SQLite.Path)
	return db
}
