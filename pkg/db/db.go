package db

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // needed
	"github.com/sirupsen/logrus"
	"pokervm/internal/config"
)

var (
	instance *sql.DB
	lock     sync.Mutex
)

// Instance returns the shared database handle, opening it with the configured DSN
func Instance() (*sql.DB, error) {
	lock.Lock()
	defer lock.Unlock()

	if instance != nil {
		return instance, nil
	}

	dbh, err := Open(config.Instance().PGDSN)
	if err != nil {
		return nil, err
	}

	instance = dbh
	return instance, nil
}

// Open connects to the PostgreSQL database at dsn
func Open(dsn string) (*sql.DB, error) {
	dbh, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := dbh.Ping(); err != nil {
		_ = dbh.Close()
		return nil, err
	}

	return dbh, nil
}

// Migrate runs every pending migration found in migrationsPath
func Migrate(dbh *sql.DB, migrationsPath string) error {
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(dbh, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
