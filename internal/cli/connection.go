package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/vvka-141/depmap/internal/config"
	"github.com/vvka-141/depmap/internal/db"
	"github.com/vvka-141/depmap/internal/store"
	"github.com/vvka-141/depmap/pkg/depmap"
)

// Environment variables consulted for the connection string, in order.
const (
	envConnection = "DEPMAP_DATABASE_URL"
	envDatabase   = "DATABASE_URL"
)

// storeFlags are shared by every command that reads the lookup store.
type storeFlags struct {
	connection string
	reference  string
}

// loadProjectConfig loads godotenv and depmap.yaml from dir.
// Returns nil config if depmap.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveConnectionString applies the precedence
// --connection > $DEPMAP_DATABASE_URL > $DATABASE_URL > depmap.yaml.
// Returns "" when no database is configured, along with where the value came from.
func resolveConnectionString(flag string, projectCfg *config.ProjectConfig) (string, string) {
	if flag != "" {
		return flag, "--connection"
	}
	if s := os.Getenv(envConnection); s != "" {
		return s, "$" + envConnection
	}
	if s := os.Getenv(envDatabase); s != "" {
		return s, "$" + envDatabase
	}
	if projectCfg == nil {
		return "", ""
	}
	if projectCfg.Connection != "" {
		return projectCfg.Connection, config.ConfigFileName
	}
	if !projectCfg.Database.IsEmpty() {
		return db.BuildConnectionString(connectionFromDatabase(projectCfg.Database)), config.ConfigFileName
	}
	return "", ""
}

func connectionFromDatabase(d config.DatabaseConfig) *depmap.ConnectionConfig {
	cfg := &depmap.ConnectionConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		Username: d.Username,
		SSLMode:  d.SSLMode,
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 5432
	}
	if cfg.Database == "" {
		cfg.Database = "postgres"
	}
	if cfg.Password == "" {
		cfg.Password = os.Getenv("PGPASSWORD")
	}
	return cfg
}

// resolveReferencePath prefers the flag over depmap.yaml.
func resolveReferencePath(flag string, projectCfg *config.ProjectConfig) string {
	if flag != "" || projectCfg == nil {
		return flag
	}
	return projectCfg.ReferencePath()
}

// openStore connects to the configured database, or falls back to an
// in-memory store when only a reference file is available. A reference file,
// if any, is imported before the store is returned.
func openStore(ctx context.Context, flags storeFlags, projectCfg *config.ProjectConfig, logger depmap.Logger) (depmap.LookupStore, error) {
	connString, source := resolveConnectionString(flags.connection, projectCfg)
	referencePath := resolveReferencePath(flags.reference, projectCfg)

	var st depmap.LookupStore
	switch {
	case connString != "":
		connConfig, err := db.ParseConnectionString(connString)
		if err != nil {
			return nil, fmt.Errorf("connection from %s: %w", source, err)
		}
		logger.Verbose("Connection resolved from %s: %s", source, connConfig)

		pool, err := db.Connect(ctx, connConfig, logger)
		if err != nil {
			return nil, err
		}
		st = store.NewPostgresStore(pool, logger)

	case referencePath != "":
		logger.Verbose("No database configured, using an in-memory store")
		st = store.NewMemoryStore()

	default:
		return nil, fmt.Errorf(`no database configured
Provide one of:
  1. --connection postgresql://user@host/db
  2. $%s or $%s
  3. connection: in %s
  4. --reference <file.yaml> to match without a database: %w`,
			envConnection, envDatabase, config.ConfigFileName, depmap.ErrInvalidConfig)
	}

	if referencePath != "" {
		if err := importReferenceFile(ctx, st, referencePath, logger); err != nil {
			st.Close()
			return nil, err
		}
	}
	return st, nil
}

func importReferenceFile(ctx context.Context, st depmap.LookupStore, path string, logger depmap.Logger) error {
	entries, err := store.LoadReferenceFile(path)
	if err != nil {
		return err
	}
	if err := st.ImportReference(ctx, entries); err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}
	logger.Verbose("Loaded %d reference entries from %s", len(entries), path)
	return nil
}
