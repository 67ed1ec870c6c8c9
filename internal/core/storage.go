package core

import (
	"fmt"
	"os"
	"strings"

	"tqmcore/internal/infra/persistence/memory"
	"tqmcore/internal/infra/persistence/postgres"
	"tqmcore/internal/infra/persistence/sqlite"
	"tqmcore/pkg/domain"
)

// Storage configuration environment variables.
const (
	EnvStorageDriver = "TQMCORE_STORAGE_DRIVER"
	EnvSQLitePath    = "TQMCORE_SQLITE_PATH"
	EnvPostgresDSN   = "TQMCORE_POSTGRES_DSN"
)

const defaultSQLitePath = "data/tqmcore.db"

// OpenStoreFromEnv selects a persistence backend from the environment.
// Recognized drivers are "memory", "sqlite", and "postgres"; sqlite is the
// default so a bare install works with no configuration.
func OpenStoreFromEnv() (domain.Store, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv(EnvStorageDriver)))
	switch driver {
	case "", "sqlite":
		path := os.Getenv(EnvSQLitePath)
		if path == "" {
			path = defaultSQLitePath
		}
		store, err := sqlite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case "memory":
		return memory.NewStore(), nil
	case "postgres":
		dsn := os.Getenv(EnvPostgresDSN)
		if dsn == "" {
			return nil, fmt.Errorf("%s is required for the postgres driver", EnvPostgresDSN)
		}
		store, err := postgres.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
